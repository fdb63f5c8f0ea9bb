package adapter

import "errors"

// Sentinel errors for the range API responses that callers may want to
// branch on. Everything else surfaces as a generic http status error.
var (
	ErrBadRequest         = errors.New("range api rejected request")
	ErrRateLimited        = errors.New("range api rate limited")
	ErrServiceUnavailable = errors.New("range api unavailable")
)
