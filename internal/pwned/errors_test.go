package pwned

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── CompromisedError ────────────────────────────────────────────────────────

func TestCompromisedError_Message(t *testing.T) {
	err := &CompromisedError{Count: 42}

	assert.Equal(t, "credential compromised: seen 42 times", err.Error())
}

func TestCompromisedError_MatchesSentinel(t *testing.T) {
	var err error = &CompromisedError{Count: 1}

	assert.ErrorIs(t, err, ErrCompromised)
}

func TestCompromisedError_MatchesSentinelWhenWrapped(t *testing.T) {
	err := fmt.Errorf("checking stored secret: %w", &CompromisedError{Count: 7})

	assert.ErrorIs(t, err, ErrCompromised)
}

// ── TransportError / ParseError ─────────────────────────────────────────────

func TestTransportError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestParseError_UnwrapsCause(t *testing.T) {
	cause := errors.New("malformed count on matched entry")
	err := &ParseError{Err: cause}

	assert.ErrorIs(t, err, cause)
}

func TestTransportAndParse_AreNotCompromised(t *testing.T) {
	assert.NotErrorIs(t, &TransportError{Err: errors.New("boom")}, ErrCompromised)
	assert.NotErrorIs(t, &ParseError{Err: errors.New("boom")}, ErrCompromised)
}

// ── CompromiseCount ─────────────────────────────────────────────────────────

func TestCompromiseCount_NilError(t *testing.T) {
	count, ok := CompromiseCount(nil)

	assert.False(t, ok)
	assert.Zero(t, count)
}

func TestCompromiseCount_Direct(t *testing.T) {
	count, ok := CompromiseCount(&CompromisedError{Count: 3})

	require.True(t, ok)
	assert.Equal(t, 3, count)
}

func TestCompromiseCount_Wrapped(t *testing.T) {
	err := fmt.Errorf("vault audit: %w", &CompromisedError{Count: 12})

	count, ok := CompromiseCount(err)

	require.True(t, ok)
	assert.Equal(t, 12, count)
}

func TestCompromiseCount_OtherError(t *testing.T) {
	count, ok := CompromiseCount(&TransportError{Err: errors.New("timeout")})

	assert.False(t, ok)
	assert.Zero(t, count)
}
