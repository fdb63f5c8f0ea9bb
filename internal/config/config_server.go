package config

import (
	"fmt"
	"time"
)

// ServerHTTP holds listener settings for the HTTP facade.
type ServerHTTP struct {
	// HTTPAddress is the TCP address the facade listens on.
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
	// SelfTLS serves over TLS with a generated self-signed certificate.
	SelfTLS bool
	// TLSCertPath and TLSKeyPath point at a PEM certificate pair.
	TLSCertPath string
	TLSKeyPath  string
}

// ServerConfig is the configuration view consumed by the serve command. The
// facade is itself a client of the range API, so the view embeds the client
// groups alongside the listener settings.
type ServerConfig struct {
	// App contains application-level settings.
	App ClientApp
	// API contains range API client settings.
	API ClientAPI
	// Server contains HTTP listener settings.
	Server ServerHTTP
}

// GetServerConfig builds and validates the facade config view from the
// merged structured configuration.
func GetServerConfig(overrides *StructuredConfig) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
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
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
			SelfTLS:        cfg.Server.SelfTLS,
			TLSCertPath:    cfg.Server.TLSCertPath,
			TLSKeyPath:     cfg.Server.TLSKeyPath,
		},
	}

	if serverCfg.API.UserAgent == "" {
		serverCfg.API.UserAgent = "go-pwned-check/" + cfg.App.Version
	}

	return serverCfg, serverCfg.validate()
}
