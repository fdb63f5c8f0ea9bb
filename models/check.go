// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CheckPasswordRequest is the inbound payload for POST /api/check/password.
type CheckPasswordRequest struct {
	// Password is the plaintext credential to check. It is hashed
	// immediately and never stored or logged.
	Password string `json:"password"`
}

// CheckDigestRequest is the inbound payload for POST /api/check/digest.
// It lets callers avoid sending plaintext to the facade at all.
type CheckDigestRequest struct {
	// Digest is a full hex digest of the credential, SHA-1 (40 chars)
	// or NTLM (32 chars). Case does not matter.
	Digest string `json:"digest"`
}

// CheckResponse reports the verdict for a single credential.
type CheckResponse struct {
	// Compromised is true when the credential appears in known breach
	// corpora.
	Compromised bool `json:"compromised"`

	// Count is how many times the credential was seen in breaches.
	// Zero when the credential is clean.
	Count int `json:"count"`

	// Strength is an offline strength estimate, present only for
	// plaintext checks. Digest checks omit it because the plaintext
	// is unknown.
	Strength *PasswordStrength `json:"strength,omitempty"`
}

// PasswordStrength is an offline estimate of how hard a credential is
// to crack, independent of whether it was breached.
type PasswordStrength struct {
	// Score ranges 0 to 4, higher is stronger.
	Score int `json:"score"`

	// Entropy is the estimated entropy in bits.
	Entropy float64 `json:"entropy"`

	// CrackTimeSeconds estimates offline cracking time.
	CrackTimeSeconds float64 `json:"crack_time_seconds"`

	// CrackTimeDisplay is the human readable form of CrackTimeSeconds.
	CrackTimeDisplay string `json:"crack_time_display"`
}
