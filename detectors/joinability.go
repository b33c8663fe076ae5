package detectors

import "driftwatch/domain/drift"

// JoinabilityDetector flags a change in unique-ratio stability, i.e. how
// suitable a column remains as a join key (spec §4.4.4). It applies
// regardless of dtype.
type JoinabilityDetector struct{}

func (JoinabilityDetector) Kind() drift.Kind { return drift.KindJoinability }

func (JoinabilityDetector) Applicable(in Input) bool { return true }

func (d JoinabilityDetector) Detect(in Input) (*drift.DriftType, error) {
	urH := in.Anchor.Fingerprint.UniqueRatio
	urC := in.Fingerprint.UniqueRatio
	delta := urH - urC
	if delta < 0 {
		delta = -delta
	}

	threshold := in.Config.UniquenessThreshold
	if threshold <= 0 {
		threshold = 0.05
	}
	if delta <= threshold {
		return nil, nil
	}

	severity := joinabilitySeverity(delta)
	duplicateIncrease := (1 - urC) - (1 - urH)
	keyIntegrity := 1 - delta

	return &drift.DriftType{
		Kind:        drift.KindJoinability,
		Severity:    severity,
		MetricValue: delta,
		Threshold:   threshold,
		Description: "unique-ratio shifted beyond threshold",
		Detail: drift.JoinabilityDetail{
			Delta:             delta,
			DuplicateIncrease: duplicateIncrease,
			KeyIntegrity:      keyIntegrity,
		},
	}, nil
}

// joinabilitySeverity applies the cut-points from spec §4.4.4: critical
// beyond 0.5, high beyond 0.25, medium beyond 0.10, else low.
func joinabilitySeverity(delta float64) drift.Severity {
	switch {
	case delta > 0.5:
		return drift.SeverityCritical
	case delta > 0.25:
		return drift.SeverityHigh
	case delta > 0.10:
		return drift.SeverityMedium
	default:
		return drift.SeverityLow
	}
}
