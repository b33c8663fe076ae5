package detectors

import (
	"driftwatch/domain/drift"
	"driftwatch/patterns"
)

// FormatDetector flags a regex/structural pattern shift in a non-numeric
// column against its baseline (spec §4.4.2).
type FormatDetector struct{}

func (FormatDetector) Kind() drift.Kind { return drift.KindFormat }

// Applicable skips the detector only when both sides are numeric (spec
// §4.4.2: "Skip if both sides are numeric").
func (FormatDetector) Applicable(in Input) bool {
	return !(in.Anchor.Fingerprint.Dtype.IsNumeric() && in.Fingerprint.Dtype.IsNumeric())
}

func (d FormatDetector) Detect(in Input) (*drift.DriftType, error) {
	if !d.Applicable(in) {
		return nil, wrapIncompatible(d.Kind(), "format detector skipped: both sides numeric")
	}

	historical := in.Anchor.Fingerprint.SampleValues
	current := in.Fingerprint.SampleValues
	if len(historical) == 0 || len(current) == 0 {
		return nil, nil
	}

	analyzer := patterns.New(in.Anchor.Fingerprint.RegexPatterns)
	result := analyzer.Analyze(historical, current)

	if result.Similarity >= in.Config.PatternSimilarityThreshold {
		return nil, nil
	}

	severity := formatSeverity(result.Stability)
	if hasSemanticLoss(result.LostPatterns) {
		severity = elevate(severity)
	}

	return &drift.DriftType{
		Kind:        drift.KindFormat,
		Severity:    severity,
		MetricValue: 1 - result.Similarity,
		Threshold:   1 - in.Config.PatternSimilarityThreshold,
		Description: "pattern similarity dropped below threshold",
		Detail: drift.FormatDetail{
			Similarity:      result.Similarity,
			NewPatterns:     result.NewPatterns,
			LostPatterns:    result.LostPatterns,
			ChangedPatterns: result.ChangedPatterns,
			Stability:       result.Stability,
		},
	}, nil
}

// formatSeverity maps the PatternAnalyzer stability label onto the drift
// severity scale (spec §4.4.2).
func formatSeverity(stability string) drift.Severity {
	switch stability {
	case patterns.StabilityFormatShift:
		return drift.SeverityCritical
	case patterns.StabilityMajorChange:
		return drift.SeverityHigh
	case patterns.StabilityMinorChange:
		return drift.SeverityMedium
	default:
		return drift.SeverityLow
	}
}

func hasSemanticLoss(lost []string) bool {
	for _, p := range lost {
		if patterns.IsSemanticPattern(p) {
			return true
		}
	}
	return false
}

// elevate bumps a severity one level, capping at critical.
func elevate(s drift.Severity) drift.Severity {
	if s < drift.SeverityCritical {
		return s + 1
	}
	return s
}
