package core

import (
	"testing"
)

func TestNewHashDeterministic(t *testing.T) {
	h1 := NewHash([]byte("payload"))
	h2 := NewHash([]byte("payload"))
	if h1 != h2 {
		t.Errorf("expected equal hashes for equal input, got %s and %s", h1, h2)
	}
	if h1.IsEmpty() {
		t.Error("expected non-empty hash")
	}
}

func TestHashEquals(t *testing.T) {
	h1 := NewHash([]byte("a"))
	h2 := NewHash([]byte("b"))
	if h1.Equals(h2) {
		t.Error("expected different payloads to produce different hashes")
	}
	if !h1.Equals(h1) {
		t.Error("expected a hash to equal itself")
	}
}

func TestComputeFingerprintHashOrderIndependence(t *testing.T) {
	samples := []string{"b", "a", "c"}
	patterns := []string{"NNN-NNN", "XXX"}

	h1 := ComputeFingerprintHash("integer", 3, 0.1, 0.9, samples, patterns)

	reorderedSamples := []string{"c", "b", "a"}
	reorderedPatterns := []string{"XXX", "NNN-NNN"}
	h2 := ComputeFingerprintHash("integer", 3, 0.1, 0.9, reorderedSamples, reorderedPatterns)

	if h1 != h2 {
		t.Errorf("expected field reordering to be irrelevant to the hash, got %s vs %s", h1, h2)
	}
}

func TestComputeFingerprintHashSensitivity(t *testing.T) {
	base := ComputeFingerprintHash("integer", 3, 0.1, 0.9, []string{"a"}, []string{"NNN"})
	changedCardinality := ComputeFingerprintHash("integer", 4, 0.1, 0.9, []string{"a"}, []string{"NNN"})
	if base == changedCardinality {
		t.Error("expected cardinality change to change the fingerprint hash")
	}

	changedDtype := ComputeFingerprintHash("float", 3, 0.1, 0.9, []string{"a"}, []string{"NNN"})
	if base == changedDtype {
		t.Error("expected dtype change to change the fingerprint hash")
	}
}
