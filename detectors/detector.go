// Package detectors implements the five column drift detectors (spec §4.4
// C4): distribution, format, unit, joinability and confidence. Each
// detector is stateless, declares the dtype shape it requires (design note
// "Detector polymorphism": a capability check rather than ad-hoc
// branching), and returns either a drift.DriftType or nothing.
package detectors

import (
	"driftwatch/domain/cell"
	"driftwatch/domain/core"
	"driftwatch/domain/drift"
)

// Input bundles everything one detector call needs: the baseline Anchor,
// the current column's raw values and its freshly computed Fingerprint.
// Detectors never mutate any of these.
type Input struct {
	Anchor      drift.Anchor
	Current     []cell.Value
	Fingerprint drift.Fingerprint
	Config      drift.Config

	// Flagged holds the DriftTypes already produced by the distribution,
	// format, unit and joinability detectors in this evaluation.
	// ConfidenceDetector is the only consumer (spec §4.4.5: "derived").
	Flagged []drift.DriftType
}

// Detector evaluates one drift kind. Applicable reports whether the
// detector's required dtype/shape is satisfied by the input; the engine's
// Evaluate pipeline calls Detect only when Applicable is true,
// replacing ad-hoc per-detector branching with a capability check.
type Detector interface {
	Kind() drift.Kind
	Applicable(in Input) bool
	Detect(in Input) (*drift.DriftType, error)
}

// FixedOrder is the detector evaluation order mandated by spec §4.4 "State
// / order": distribution, format, unit, joinability, confidence — the last
// consumes the outputs of the first four, so it always runs last.
func FixedOrder() []Detector {
	return []Detector{
		DistributionDetector{},
		FormatDetector{},
		UnitDetector{},
		JoinabilityDetector{},
		// ConfidenceDetector is constructed per-call by the engine package
		// once it has the other four results; it is not part of the fixed,
		// order-independent slice returned here.
	}
}

// wrapIncompatible is the standard way a detector declines to evaluate
// because of a dtype mismatch (spec §7: "detector-level IncompatibleSchema
// is recovered by skipping that detector").
func wrapIncompatible(kind drift.Kind, reason string) error {
	return core.NewIncompatibleSchema(string(kind), reason)
}
