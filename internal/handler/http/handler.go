package http

import (
	"github.com/MKhiriev/go-pwned-check/internal/logger"
	"github.com/MKhiriev/go-pwned-check/internal/pwned"
)

type Handler struct {
	checker pwned.CredentialChecker
	version string

	logger *logger.Logger
}

func NewHandler(checker pwned.CredentialChecker, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		checker: checker,
		version: version,
		logger:  logger,
	}
}
