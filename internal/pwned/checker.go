// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pwned

import (
	"context"

	"github.com/MKhiriev/go-pwned-check/internal/logger"
)

// Checker runs k-anonymity lookups against a breach corpus through a
// [RangeClient]. It holds no per-call state: every check is independent,
// costs exactly one range fetch, and retains nothing about the credential
// once it returns. Safe for concurrent use.
type Checker struct {
	ranges RangeClient
}

// NewChecker constructs a Checker over the given range client.
func NewChecker(ranges RangeClient) *Checker {
	return &Checker{ranges: ranges}
}

// Check reports whether credential appears in the SHA-1 breach corpus.
//
// The credential is hashed locally and only the first five hex characters of
// the digest are sent out. A nil return means the credential was not found.
// A found credential comes back as *[CompromisedError] carrying the breach
// count; transport and malformed-response failures come back as
// *[TransportError] and *[ParseError]. The credential is never retained,
// logged, or echoed into any error.
func (c *Checker) Check(ctx context.Context, credential string) error {
	return c.lookup(ctx, SHA1Digest(credential), ModeSHA1)
}

// CheckNTLM is Check against the NTLM (MD4 over UTF-16LE) corpus.
func (c *Checker) CheckNTLM(ctx context.Context, credential string) error {
	return c.lookup(ctx, NTLMDigest(credential), ModeNTLM)
}

// CheckDigest reports whether a pre-computed hex digest appears in the breach
// corpus selected by its length: 40 hex characters query the SHA-1 corpus,
// 32 the NTLM one. A digest that is neither fails with *[ParseError] wrapping
// [ErrInvalidDigest] before any request is made.
func (c *Checker) CheckDigest(ctx context.Context, digest string) error {
	normalized, mode, err := NormalizeDigest(digest)
	if err != nil {
		return err
	}

	return c.lookup(ctx, normalized, mode)
}

func (c *Checker) lookup(ctx context.Context, digest string, mode HashMode) error {
	prefix, suffix := SplitDigest(digest)

	// The prefix is shared with the remote service anyway, so it is the one
	// part of the digest that may appear in logs. Never the suffix.
	logger.FromContext(ctx).Debug().
		Str("prefix", prefix).
		Str("mode", string(mode)).
		Msg("range lookup")

	body, err := c.ranges.FetchRange(ctx, prefix, mode)
	if err != nil {
		return &TransportError{Err: err}
	}

	count, found, err := findSuffixCount(body, suffix)
	if err != nil {
		return &ParseError{Err: err}
	}
	// Entries with a zero count are padding injected by the service and do
	// not represent a breached credential.
	if !found || count == 0 {
		return nil
	}

	return &CompromisedError{Count: count}
}
