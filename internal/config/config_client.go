package config

import (
	"fmt"
	"time"
)

// ClientApp holds application-level settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the application version reported in the default User-Agent.
	Version string
	// LogLevel is the minimum emitted log level.
	LogLevel string
}

// ClientAPI holds settings used by the outbound range API client.
type ClientAPI struct {
	// BaseURL is the range service address.
	BaseURL string
	// RequestTimeout is the default timeout for outbound range requests.
	RequestTimeout time.Duration
	// UserAgent is sent with every outbound request.
	UserAgent string
	// Padding requests padded range responses.
	Padding bool
	// Retries is the number of retries for failed range requests.
	Retries int
}

// ClientConfig is the configuration view consumed by the check command and
// everything beneath it, assembled from [StructuredConfig].
type ClientConfig struct {
	// App contains application-level settings.
	App ClientApp
	// API contains range API client settings.
	API ClientAPI
}

// GetClientConfig builds and validates the client-side config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to outbound checking, resolves the default User-Agent from the
// application version, and validates the resulting [ClientConfig].
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		API: ClientAPI{
			BaseURL:        cfg.API.BaseURL,
			RequestTimeout: cfg.API.RequestTimeout,
			UserAgent:      cfg.API.UserAgent,
			Padding:        cfg.API.Padding,
			Retries:        cfg.API.Retries,
		},
	}

	if clientCfg.API.UserAgent == "" {
		clientCfg.API.UserAgent = "go-pwned-check/" + cfg.App.Version
	}

	return clientCfg, clientCfg.validate()
}
