package core

import (
	"errors"
	"fmt"
)

// Sentinel error kinds (spec §7). Detectors, kernels and the batch/stream
// drivers wrap these so callers can classify failures with errors.Is.
var (
	// ErrInvalidInput covers malformed fingerprint strings, mismatched
	// lengths for chi-square, and empty kernel inputs.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIncompatibleSchema covers a dtype mismatch where a detector
	// requires equivalence (distribution/unit on numeric columns).
	ErrIncompatibleSchema = errors.New("incompatible schema")

	// ErrTimeout covers an evaluation that exceeded its soft deadline.
	ErrTimeout = errors.New("evaluation timed out")

	// ErrCancelled covers a caller-requested cancellation.
	ErrCancelled = errors.New("evaluation cancelled")

	// ErrInternal covers invariant violations; fatal to the evaluation.
	ErrInternal = errors.New("internal invariant violation")
)

// NewInvalidInput wraps ErrInvalidInput with calling context (spec §7:
// "InvalidInput in a kernel fails just the calling detector with logged
// context").
func NewInvalidInput(context string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, context)
}

// NewIncompatibleSchema wraps ErrIncompatibleSchema with the detector name
// that could not apply to the given dtype.
func NewIncompatibleSchema(detector, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrIncompatibleSchema, detector, reason)
}

// NewInternal wraps ErrInternal with diagnostic context.
func NewInternal(context string) error {
	return fmt.Errorf("%w: %s", ErrInternal, context)
}

// IsInvalidInput reports whether err is (or wraps) ErrInvalidInput.
func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsIncompatibleSchema reports whether err is (or wraps) ErrIncompatibleSchema.
func IsIncompatibleSchema(err error) bool { return errors.Is(err, ErrIncompatibleSchema) }

// IsTimeout reports whether err is (or wraps) ErrTimeout.
func IsTimeout(err error) bool { return errors.Is(err, ErrTimeout) }

// IsCancelled reports whether err is (or wraps) ErrCancelled.
func IsCancelled(err error) bool { return errors.Is(err, ErrCancelled) }

// IsInternal reports whether err is (or wraps) ErrInternal.
func IsInternal(err error) bool { return errors.Is(err, ErrInternal) }

// IsSkippable reports whether err should cause the calling detector to be
// skipped rather than abort the whole evaluation (spec §7: IncompatibleSchema
// is "recovered by skipping that detector"; InvalidInput "fails just the
// calling detector"). Timeout, Cancelled and Internal are never skippable.
func IsSkippable(err error) bool {
	return IsIncompatibleSchema(err) || IsInvalidInput(err)
}
