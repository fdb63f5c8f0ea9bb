package pwned

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf16"

	"golang.org/x/crypto/md4"
)

const (
	// SHA1DigestLen is the hex length of a SHA-1 digest.
	SHA1DigestLen = 40
	// NTLMDigestLen is the hex length of an NTLM (MD4) digest.
	NTLMDigestLen = 32
	// PrefixLen is the number of leading hex characters disclosed to the
	// range API. The remainder of the digest never leaves the process.
	PrefixLen = 5
)

// HashMode selects the corpus a range lookup is answered from.
type HashMode string

const (
	ModeSHA1 HashMode = "sha1"
	ModeNTLM HashMode = "ntlm"
)

// DigestLen returns the expected hex digest length for the mode.
func (m HashMode) DigestLen() int {
	if m == ModeNTLM {
		return NTLMDigestLen
	}

	return SHA1DigestLen
}

// SuffixLen returns the hex length of the locally matched remainder.
func (m HashMode) SuffixLen() int {
	return m.DigestLen() - PrefixLen
}

var (
	sha1HexPattern = regexp.MustCompile(`^[a-fA-F\d]{40}$`)
	ntlmHexPattern = regexp.MustCompile(`^[a-fA-F\d]{32}$`)
)

// SHA1Digest returns the uppercase hex SHA-1 digest of credential.
// The credential bytes are hashed exactly as provided: no trimming, no
// Unicode normalization. Every input, including the empty string, digests.
func SHA1Digest(credential string) string {
	sum := sha1.Sum([]byte(credential))

	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// NTLMDigest returns the uppercase hex MD4 digest of the UTF-16LE encoding
// of credential, the hash form used for NT password corpora.
func NTLMDigest(credential string) string {
	units := utf16.Encode([]rune(credential))
	encoded := make([]byte, 0, len(units)*2)
	for _, u := range units {
		encoded = append(encoded, byte(u), byte(u>>8))
	}

	h := md4.New()
	h.Write(encoded)

	return strings.ToUpper(hex.EncodeToString(h.Sum(nil)))
}

// SplitDigest splits a digest into the prefix sent to the range API and the
// suffix kept for local matching. The digest must be at least PrefixLen
// characters; digests produced by SHA1Digest, NTLMDigest or NormalizeDigest
// always are.
func SplitDigest(digest string) (prefix, suffix string) {
	return digest[:PrefixLen], digest[PrefixLen:]
}

// NormalizeDigest validates a caller-supplied hex digest and returns its
// uppercase form together with the hash mode implied by its length: 40 hex
// characters select SHA-1, 32 select NTLM.
//
// Rejections come back as a [ParseError] wrapping [ErrInvalidDigest]. The
// error text reports the offending length only; the digest value itself is
// deliberately withheld because 35 of its characters are enough to identify
// the credential it was derived from.
func NormalizeDigest(digest string) (string, HashMode, error) {
	digest = strings.TrimSpace(digest)

	switch {
	case sha1HexPattern.MatchString(digest):
		return strings.ToUpper(digest), ModeSHA1, nil
	case ntlmHexPattern.MatchString(digest):
		return strings.ToUpper(digest), ModeNTLM, nil
	default:
		return "", "", &ParseError{Err: fmt.Errorf("%w: want %d or %d hex characters, got length %d",
			ErrInvalidDigest, SHA1DigestLen, NTLMDigestLen, len(digest))}
	}
}
