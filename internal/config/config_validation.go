// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The merged config is permissive on purpose: real rules live on the views,
// because only a view knows which groups its consumer actually needs.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

// validate collects every violation in the client view rather than stopping
// at the first one, so a misconfigured deployment reports all of its problems
// in a single run. Each violation wraps one of the package sentinels, so
// errors.Is still works on the combined result.
func (cfg *ClientConfig) validate() error {
	var errs *multierror.Error

	errs = multierror.Append(errs, cfg.validateClientGroups()...)

	return errs.ErrorOrNil()
}

func (cfg *ClientConfig) validateClientGroups() []error {
	var violations []error

	if cfg.App.Version == "" {
		violations = append(violations, fmt.Errorf("%w: version is empty", ErrInvalidAppConfigs))
	}

	if cfg.API.BaseURL == "" {
		violations = append(violations, fmt.Errorf("%w: base url is empty", ErrInvalidAPIConfigs))
	}
	if cfg.API.RequestTimeout <= 0 {
		violations = append(violations, fmt.Errorf("%w: request timeout must be positive", ErrInvalidAPIConfigs))
	}
	if cfg.API.Retries < 0 {
		violations = append(violations, fmt.Errorf("%w: retries must not be negative", ErrInvalidAPIConfigs))
	}

	return violations
}

// validate applies the client rules plus the listener rules for the facade.
func (cfg *ServerConfig) validate() error {
	var errs *multierror.Error

	clientView := &ClientConfig{App: cfg.App, API: cfg.API}
	errs = multierror.Append(errs, clientView.validateClientGroups()...)

	if cfg.Server.HTTPAddress == "" {
		errs = multierror.Append(errs, fmt.Errorf("%w: listen address is empty", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs))
	}

	certSet := cfg.Server.TLSCertPath != ""
	keySet := cfg.Server.TLSKeyPath != ""
	if certSet != keySet {
		errs = multierror.Append(errs, fmt.Errorf("%w: tls certificate and key must be configured together", ErrInvalidServerConfigs))
	}
	if cfg.Server.SelfTLS && (certSet || keySet) {
		errs = multierror.Append(errs, fmt.Errorf("%w: self-signed tls and a certificate pair are mutually exclusive", ErrInvalidServerConfigs))
	}

	return errs.ErrorOrNil()
}
