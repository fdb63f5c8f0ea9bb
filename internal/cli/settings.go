package cli

import (
	"github.com/MKhiriev/go-pwned-check/internal/config"
	"github.com/MKhiriev/go-pwned-check/internal/logger"
)

// buildOverrides собирает переопределения конфигурации из флагов команды.
// Unset flags leave zero values, so lower-priority sources still apply.
func buildOverrides() *config.StructuredConfig {
	overrides := &config.StructuredConfig{JSONFilePath: configPath}

	overrides.API.BaseURL = apiAddress
	overrides.API.Padding = padding

	overrides.Server.HTTPAddress = listenAddress.String()
	overrides.Server.SelfTLS = selfTLS
	overrides.Server.TLSCertPath = tlsCert
	overrides.Server.TLSKeyPath = tlsKey

	if verbose {
		overrides.App.LogLevel = "debug"
	}

	return overrides
}

// applyLogLevel sets the global log level from config, with the verbose flag
// winning over the configured value.
func applyLogLevel(log *logger.Logger, appCfg config.ClientApp) {
	level := appCfg.LogLevel
	if verbose {
		level = "debug"
	}

	if err := logger.SetLevel(level); err != nil {
		log.Warn().Msgf("unknown log level %q, keeping default", level)
	}
}
