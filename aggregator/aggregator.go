// Package aggregator rolls up the drift types produced by the five
// detectors into one overall severity, confidence score and advisory
// recommendation set (spec §4.5 C5 Aggregator).
package aggregator

import "driftwatch/domain/drift"

// Aggregate computes the overall severity and confidence score for a set
// of flagged drift types (spec §4.5). An empty slice yields
// drift.SeverityLow and confidence 0.5: with no types the count term and
// the penalty sum are both zero, leaving the 0.5 base.
func Aggregate(types []drift.DriftType) (drift.Severity, float64) {
	return overallSeverity(types), confidenceScore(types)
}

// overallSeverity applies spec §4.5: "critical if max≥4 or avg≥3.5; high if
// max≥3 or avg≥2.5; medium if max≥2 or avg≥1.5; else low."
func overallSeverity(types []drift.DriftType) drift.Severity {
	if len(types) == 0 {
		return drift.SeverityLow
	}

	maxScore := 0.0
	sumScore := 0.0
	for _, dt := range types {
		score := dt.Severity.Score()
		if score > maxScore {
			maxScore = score
		}
		sumScore += score
	}
	avgScore := sumScore / float64(len(types))

	switch {
	case maxScore >= 4 || avgScore >= 3.5:
		return drift.SeverityCritical
	case maxScore >= 3 || avgScore >= 2.5:
		return drift.SeverityHigh
	case maxScore >= 2 || avgScore >= 1.5:
		return drift.SeverityMedium
	default:
		return drift.SeverityLow
	}
}

// confidenceScore applies spec §4.5: "clamp(0.5 + min(|types|/3, 1) -
// Σ penalty_sev, 0.1, 1.0)", using the same severity penalties as §4.4.5.
func confidenceScore(types []drift.DriftType) float64 {
	countTerm := float64(len(types)) / 3
	if countTerm > 1 {
		countTerm = 1
	}

	penaltySum := 0.0
	for _, dt := range types {
		penaltySum += dt.Severity.Penalty()
	}

	score := 0.5 + countTerm - penaltySum
	if score < 0.1 {
		score = 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}
