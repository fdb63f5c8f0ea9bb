// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pwned implements the client side of a k-anonymity range lookup
// against a breached-credential corpus.
//
// A credential is hashed locally (SHA-1 by default, NTLM on request) and only
// the first five hex characters of the digest ever leave the process. The
// remote service answers with every corpus entry sharing that prefix, and the
// remainder of the digest is matched locally, so neither the credential nor
// enough of its digest to identify it is disclosed.
//
// The package deliberately reports a found credential as an error value,
// [CompromisedError], so that call sites cannot ignore a positive match by
// accident. [errors.Is] with [ErrCompromised] identifies the outcome;
// [CompromiseCount] extracts the breach count. Infrastructure failures
// surface as [TransportError] and [ParseError].
package pwned

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/pwned_mocks.go -package=mock

// RangeClient fetches one range of the breach corpus by digest prefix.
// Implementations are responsible for transport concerns only; the returned
// body is the raw text payload, one "SUFFIX:COUNT" entry per line.
type RangeClient interface {
	// FetchRange retrieves the corpus entries whose digests begin with
	// prefix, using the corpus selected by mode. Exactly one request is
	// performed per call unless the implementation was explicitly
	// configured to retry. The context bounds the whole exchange.
	FetchRange(ctx context.Context, prefix string, mode HashMode) (string, error)
}

// CredentialChecker is the consumer-facing surface of the lookup pipeline.
// The HTTP handler and the CLI depend on this interface rather than on
// [Checker] directly.
type CredentialChecker interface {
	// Check reports whether credential appears in the SHA-1 corpus.
	// nil means not found; see [Checker.Check] for the error contract.
	Check(ctx context.Context, credential string) error

	// CheckNTLM reports whether credential appears in the NTLM corpus.
	CheckNTLM(ctx context.Context, credential string) error

	// CheckDigest reports whether a pre-computed hex digest appears in the
	// corpus implied by its length (40 hex characters for SHA-1, 32 for
	// NTLM).
	CheckDigest(ctx context.Context, digest string) error
}
