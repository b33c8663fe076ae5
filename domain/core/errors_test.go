package core

import (
	"errors"
	"testing"
)

func TestNewInvalidInputWraps(t *testing.T) {
	err := NewInvalidInput("chi-square: mismatched bin counts")
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("expected wrapped error to satisfy errors.Is(ErrInvalidInput)")
	}
	if !IsInvalidInput(err) {
		t.Error("expected IsInvalidInput to report true")
	}
	if IsIncompatibleSchema(err) {
		t.Error("did not expect an invalid-input error to report as incompatible schema")
	}
}

func TestNewIncompatibleSchemaWraps(t *testing.T) {
	err := NewIncompatibleSchema("distribution", "non-numeric dtype")
	if !errors.Is(err, ErrIncompatibleSchema) {
		t.Error("expected wrapped error to satisfy errors.Is(ErrIncompatibleSchema)")
	}
	if !IsIncompatibleSchema(err) {
		t.Error("expected IsIncompatibleSchema to report true")
	}
}

func TestNewInternalWraps(t *testing.T) {
	err := NewInternal("detector order invariant violated")
	if !IsInternal(err) {
		t.Error("expected IsInternal to report true")
	}
}

func TestTimeoutAndCancelledSentinels(t *testing.T) {
	if !IsTimeout(ErrTimeout) {
		t.Error("expected ErrTimeout to self-report as timeout")
	}
	if !IsCancelled(ErrCancelled) {
		t.Error("expected ErrCancelled to self-report as cancelled")
	}
	if IsTimeout(ErrCancelled) {
		t.Error("did not expect ErrCancelled to report as timeout")
	}
}
