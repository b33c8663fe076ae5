package detectors

import "driftwatch/domain/drift"

// confidenceWeights are the per-kind weights applied to the severity
// penalty of each flagged drift when computing confidence degradation
// (spec §4.4.5). Joinability is not itself degraded against; it still
// contributes weight like the others.
var confidenceWeights = map[drift.Kind]float64{
	drift.KindDistribution: 0.20,
	drift.KindFormat:       0.30,
	drift.KindUnit:         0.30,
	drift.KindJoinability:  0.20,
}

// ConfidenceDetector derives a mapping-confidence degradation from the
// other four detectors' flagged outputs (spec §4.4.5). It requires a prior
// confidence value on the anchor and always runs last (spec §4.4 "State /
// order").
type ConfidenceDetector struct{}

func (ConfidenceDetector) Kind() drift.Kind { return drift.KindConfidence }

func (ConfidenceDetector) Applicable(in Input) bool {
	return in.Anchor.Confidence != nil
}

func (d ConfidenceDetector) Detect(in Input) (*drift.DriftType, error) {
	if !d.Applicable(in) {
		return nil, wrapIncompatible(d.Kind(), "confidence detector requires a prior anchor confidence")
	}

	oldConf := *in.Anchor.Confidence
	degradation := 0.0
	for _, dt := range in.Flagged {
		degradation += confidenceWeights[dt.Kind] * dt.Severity.Penalty()
	}

	newConf := oldConf * (1 - degradation)
	if newConf < 0 {
		newConf = 0
	}
	if newConf > 1 {
		newConf = 1
	}

	deltaConf := oldConf - newConf
	if deltaConf < 0 {
		deltaConf = 0
	}

	threshold := in.Config.ConfidenceDegradationThreshold
	if threshold <= 0 {
		threshold = 0.10
	}
	if deltaConf <= threshold {
		return nil, nil
	}

	return &drift.DriftType{
		Kind:        drift.KindConfidence,
		Severity:    confidenceSeverity(deltaConf),
		MetricValue: deltaConf,
		Threshold:   threshold,
		Description: "mapping confidence degraded beyond threshold",
		Detail: drift.ConfidenceDetail{
			OldConfidence: oldConf,
			NewConfidence: newConf,
			Degradation:   degradation,
		},
	}, nil
}

// confidenceSeverity applies the cut-points from spec §4.4.5: 0.40
// critical, 0.25 high, 0.15 medium, else low.
func confidenceSeverity(deltaConf float64) drift.Severity {
	switch {
	case deltaConf > 0.40:
		return drift.SeverityCritical
	case deltaConf > 0.25:
		return drift.SeverityHigh
	case deltaConf > 0.15:
		return drift.SeverityMedium
	default:
		return drift.SeverityLow
	}
}
