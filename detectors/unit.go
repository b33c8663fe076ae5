package detectors

import (
	"driftwatch/domain/drift"
)

// UnitDetector flags a scale/unit change in a numeric column by comparing
// baseline and current value ranges (spec §4.4.3).
type UnitDetector struct{}

func (UnitDetector) Kind() drift.Kind { return drift.KindUnit }

func (UnitDetector) Applicable(in Input) bool {
	return in.Anchor.Fingerprint.Dtype.IsNumeric() && in.Fingerprint.Dtype.IsNumeric() &&
		in.Anchor.Fingerprint.Min != nil && in.Anchor.Fingerprint.Max != nil &&
		in.Fingerprint.Min != nil && in.Fingerprint.Max != nil
}

func (d UnitDetector) Detect(in Input) (*drift.DriftType, error) {
	if !d.Applicable(in) {
		return nil, wrapIncompatible(d.Kind(), "unit detector requires numeric min/max on both sides")
	}

	rangeH := *in.Anchor.Fingerprint.Max - *in.Anchor.Fingerprint.Min
	rangeC := *in.Fingerprint.Max - *in.Fingerprint.Min
	if rangeH == 0 || rangeC == 0 {
		return nil, nil
	}

	scale := rangeC / rangeH
	threshold := in.Config.ScaleChangeThreshold
	if threshold <= 0 {
		threshold = 5.0
	}

	if scale <= threshold && scale >= 1/threshold {
		return nil, nil
	}

	severity := unitSeverity(scale)

	return &drift.DriftType{
		Kind:        drift.KindUnit,
		Severity:    severity,
		MetricValue: scale,
		Threshold:   threshold,
		Description: "value range scale changed beyond threshold",
		Detail: drift.UnitDetail{
			Scale:  scale,
			RangeH: rangeH,
			RangeC: rangeC,
		},
	}, nil
}

// unitSeverity applies the cut-points from spec §4.4.3: critical beyond
// 100x/1/100x, high beyond 50x/1/50x, medium beyond 10x/1/10x, else low.
func unitSeverity(scale float64) drift.Severity {
	magnitude := scale
	if magnitude < 1 {
		magnitude = 1 / magnitude
	}
	switch {
	case magnitude > 100:
		return drift.SeverityCritical
	case magnitude > 50:
		return drift.SeverityHigh
	case magnitude > 10:
		return drift.SeverityMedium
	default:
		return drift.SeverityLow
	}
}
