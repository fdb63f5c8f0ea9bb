package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pwned-check/internal/adapter"
	"github.com/MKhiriev/go-pwned-check/internal/pwned"
)

var errorStatusMap = map[error]int{
	pwned.ErrInvalidDigest:        http.StatusBadRequest,
	adapter.ErrRateLimited:        http.StatusTooManyRequests,
	adapter.ErrServiceUnavailable: http.StatusBadGateway,
}

// statusFromError translates checker failures into facade status codes.
// Upstream trouble, whether on the wire or in the response body, is a
// gateway problem from the caller's point of view.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	var transportErr *pwned.TransportError
	var parseErr *pwned.ParseError
	if errors.As(err, &transportErr) || errors.As(err, &parseErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
