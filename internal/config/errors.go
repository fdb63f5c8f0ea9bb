package config

import "errors"

// Validation errors returned by the config views when required configuration
// groups are incomplete or invalid. Individual violations are wrapped around
// these sentinels and collected, so a single returned error can match more
// than one of them via errors.Is.
var (
	// ErrInvalidAPIConfigs indicates invalid range API client settings
	// (for example, missing base URL or non-positive request timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP facade settings
	// (for example, missing listen address or a half-configured TLS pair).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty version string).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
