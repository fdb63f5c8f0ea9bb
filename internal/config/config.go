// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-pwned-check application. It aggregates all sub-configurations and is
// populated by merging values from command-line overrides, environment
// variables, and an optional JSON file, with built-in defaults filling
// whatever remains unset.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the reported version and
	// the log level.
	App App `envPrefix:"APP_"`

	// API holds settings for the outbound range API client: base address,
	// timeout, user agent, padding and retry behaviour.
	API API `envPrefix:"API_"`

	// Server holds network address, timeout, and TLS settings for the
	// optional HTTP facade started by the serve command.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from overrides and environment variables.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint and embedded
	// in the default outbound User-Agent.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel selects the minimum emitted log level
	// ("trace", "debug", "info", "warn", "error").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// API holds settings for the outbound range API client.
type API struct {
	// BaseURL is the address of the range service. A bare host is accepted
	// and normalised by the adapter. Tests point this at a local double.
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound range request (e.g. "10s").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every range request. The remote service
	// rejects requests without one. Empty selects the built-in
	// "go-pwned-check/<version>".
	// Env: API_USER_AGENT
	UserAgent string `env:"USER_AGENT"`

	// Padding asks the range service to pad responses with zero-count
	// entries so that response sizes do not reveal range membership counts.
	// Env: API_PADDING
	Padding bool `env:"PADDING"`

	// Retries is the number of times a failed range request is retried
	// with backoff. Zero (the default) performs exactly one request per
	// lookup and leaves retry policy to the caller.
	// Env: API_RETRIES
	Retries int `env:"RETRIES"`
}

// Server holds network, timeout, and TLS settings for the HTTP facade.
type Server struct {
	// HTTPAddress is the TCP address on which the facade listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SelfTLS enables serving over TLS with an in-memory self-signed
	// certificate. Mutually exclusive with TLSCertPath/TLSKeyPath.
	// Env: SERVER_SELF_TLS
	SelfTLS bool `env:"SELF_TLS"`

	// TLSCertPath is the path to a PEM certificate for TLS serving.
	// Requires TLSKeyPath.
	// Env: SERVER_TLS_CERT_PATH
	TLSCertPath string `env:"TLS_CERT_PATH"`

	// TLSKeyPath is the path to the PEM private key matching TLSCertPath.
	// Env: SERVER_TLS_KEY_PATH
	TLSKeyPath string `env:"TLS_KEY_PATH"`
}

// defaultConfig returns the built-in base configuration. It is merged last,
// so it only fills fields no other source has set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: "info",
		},
		API: API{
			BaseURL:        "https://api.pwnedpasswords.com",
			RequestTimeout: 10 * time.Second,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}

// GetStructuredConfig loads and merges the application configuration from all
// available sources in the following priority order (earlier sources win,
// since merging only fills fields that are still zero):
//  1. Command-line overrides supplied by the CLI layer
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
