// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nbutton23/zxcvbn-go"

	"github.com/MKhiriev/go-pwned-check/internal/logger"
	"github.com/MKhiriev/go-pwned-check/internal/pwned"
	"github.com/MKhiriev/go-pwned-check/internal/utils"
	"github.com/MKhiriev/go-pwned-check/models"
)

func (h *Handler) checkPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var checkRequest models.CheckPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&checkRequest); err != nil {
		// Decode errors can quote request bytes, so the error itself stays
		// out of the log: the body carries a credential.
		log.Warn().Msg("invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	strength := estimateStrength(checkRequest.Password)
	h.writeVerdict(w, r, h.checker.Check(ctx, checkRequest.Password), strength)
}

func (h *Handler) checkDigest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var checkRequest models.CheckDigestRequest
	if err := json.NewDecoder(r.Body).Decode(&checkRequest); err != nil {
		log.Warn().Msg("invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	h.writeVerdict(w, r, h.checker.CheckDigest(ctx, checkRequest.Digest), nil)
}

// writeVerdict maps a checker result onto the HTTP response. A compromised
// credential is a completed check, not a server failure, so it is reported
// with 200 and a populated body.
func (h *Handler) writeVerdict(w http.ResponseWriter, r *http.Request, err error, strength *models.PasswordStrength) {
	log := logger.FromRequest(r)

	var compromised *pwned.CompromisedError
	switch {
	case err == nil:
		utils.WriteJSON(w, models.CheckResponse{Compromised: false, Strength: strength}, http.StatusOK)
	case errors.As(err, &compromised):
		utils.WriteJSON(w, models.CheckResponse{Compromised: true, Count: compromised.Count, Strength: strength}, http.StatusOK)
	case errors.Is(err, pwned.ErrInvalidDigest):
		log.Err(err).Msg("invalid digest provided")
		http.Error(w, "digest must be 40 or 32 hex characters", http.StatusBadRequest)
	default:
		log.Err(err).Msg("range lookup failed")
		http.Error(w, "breach data is unavailable", statusFromError(err))
	}
}

func estimateStrength(password string) *models.PasswordStrength {
	estimate := zxcvbn.PasswordStrength(password, nil)
	return &models.PasswordStrength{
		Score:            estimate.Score,
		Entropy:          estimate.Entropy,
		CrackTimeSeconds: estimate.CrackTime,
		CrackTimeDisplay: estimate.CrackTimeDisplay,
	}
}
