package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Hash represents a cryptographic hash.
type Hash string

// NewHash creates a new hash from data.
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation.
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty.
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal.
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// FingerprintHash identifies the content of a Fingerprint independent of its
// anchor identity, so two observations of the same distribution hash equal.
type FingerprintHash Hash

func (h FingerprintHash) String() string { return Hash(h).String() }

// ComputeFingerprintHash derives a deterministic hash from the ordered fields
// that make up a fingerprint's content (dtype, cardinality, ratios, samples,
// patterns). Inputs are sorted before hashing so field order never affects
// the result.
func ComputeFingerprintHash(dtype string, cardinality int, nullRatio, uniqueRatio float64, samples, patterns []string) FingerprintHash {
	sortedSamples := append([]string(nil), samples...)
	sort.Strings(sortedSamples)
	sortedPatterns := append([]string(nil), patterns...)
	sort.Strings(sortedPatterns)

	var data strings.Builder
	fmt.Fprintf(&data, "dtype=%s;card=%d;null=%.6f;uniq=%.6f;", dtype, cardinality, nullRatio, uniqueRatio)
	for _, s := range sortedSamples {
		data.WriteString(s)
		data.WriteByte(',')
	}
	data.WriteByte(';')
	for _, p := range sortedPatterns {
		data.WriteString(p)
		data.WriteByte(',')
	}

	return FingerprintHash(NewHash([]byte(data.String())))
}
