package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer derives cache keys from computation inputs.
type Keyer interface {
	// RootsKey is the key for the integer roots of a polynomial.
	RootsKey(coeffs []int64) string
}

// DefaultKeyer produces keys of the form "roots:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RootsKey hashes the coefficient list. Equal lists give equal keys.
func (DefaultKeyer) RootsKey(coeffs []int64) string {
	if coeffs == nil {
		coeffs = []int64{}
	}
	return hashKey("roots", coeffs)
}

// ScopedKeyer wraps a Keyer with a prefix so different consumers of a shared
// backend do not see each other's entries.
//
//	cliKeys := NewDefaultKeyer()
//	apiKeys := NewScopedKeyer(NewDefaultKeyer(), "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer means DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// RootsKey generates a prefixed roots key.
func (k *ScopedKeyer) RootsKey(coeffs []int64) string {
	return k.prefix + k.inner.RootsKey(coeffs)
}

// hashKey returns prefix:sha256(json(parts)).
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash computes a SHA-256 hash of the input data as 64 hex characters.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
