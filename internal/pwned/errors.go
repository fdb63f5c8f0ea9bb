// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pwned

import (
	"errors"
	"fmt"
)

var (
	// ErrCompromised identifies a [CompromisedError] via errors.Is without
	// requiring the caller to unpack the concrete type.
	ErrCompromised = errors.New("credential compromised")

	// ErrInvalidDigest marks a caller-supplied digest that is not valid hex
	// of a supported length. It is always wrapped in a [ParseError].
	ErrInvalidDigest = errors.New("invalid digest")
)

// CompromisedError reports that the checked credential was found in the
// breach corpus. Count is the number of breached accounts it was seen in,
// always at least 1.
//
// It is an error on purpose: a positive match must not be silently dropped
// the way a skipped return value can be. Error text never includes the
// credential or any part of its digest.
type CompromisedError struct {
	Count int
}

func (e *CompromisedError) Error() string {
	return fmt.Sprintf("credential compromised: seen %d times", e.Count)
}

// Is makes errors.Is(err, ErrCompromised) succeed for wrapped values.
func (e *CompromisedError) Is(target error) bool {
	return target == ErrCompromised
}

// TransportError reports that the range request could not be completed:
// connection failures, timeouts, cancellation, or a non-success HTTP status.
// The underlying cause is available via errors.Unwrap.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("range query transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError reports that a response arrived but could not be interpreted,
// or that a caller-supplied digest was rejected before any request was made.
// The underlying cause is available via errors.Unwrap.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("range response parse: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CompromiseCount extracts the breach count from err. The second return is
// false when err does not represent a compromised credential, including
// err == nil.
func CompromiseCount(err error) (int, bool) {
	var compromised *CompromisedError
	if errors.As(err, &compromised) {
		return compromised.Count, true
	}

	return 0, false
}
