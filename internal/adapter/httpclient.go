package adapter

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/MKhiriev/go-pwned-check/internal/config"
)

// newHTTPClient builds the transport under the resty client. With
// Retries > 0 requests go through retryablehttp, which backs off
// exponentially and honours Retry-After on 429 responses. The default
// backoff window is shortened: lookups are interactive.
func newHTTPClient(apiCfg config.ClientAPI) *http.Client {
	if apiCfg.Retries <= 0 {
		return &http.Client{}
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = apiCfg.Retries
	retryClient.RetryWaitMin = 200 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	retryClient.Logger = nil

	return retryClient.StandardClient()
}
