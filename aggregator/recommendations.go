package aggregator

import "driftwatch/domain/drift"

// recommendationsByKind is the fixed advisory text keyed by detected drift
// kind (spec §4.5: "a fixed, de-duplicated advisory set keyed by detected
// kinds and overall severity").
var recommendationsByKind = map[drift.Kind]string{
	drift.KindDistribution: "Investigate upstream changes to the value distribution before trusting downstream aggregates.",
	drift.KindFormat:       "Review the producing system for a format/encoding change; re-derive regex patterns if the new format is intentional.",
	drift.KindUnit:         "Confirm whether a unit or scale change (e.g. cents to dollars) was deployed upstream.",
	drift.KindJoinability:  "Re-validate join keys against this column before relying on it for record linkage.",
	drift.KindConfidence:   "Treat any prior mapping decisions keyed on this column's confidence as stale until re-reviewed.",
}

// severityRecommendations adds one advisory per overall severity level,
// escalating in tone as severity rises.
var severityRecommendations = map[drift.Severity]string{
	drift.SeverityCritical: "Escalate immediately: this drift is severe enough to break consumers relying on the baseline.",
	drift.SeverityHigh:     "Prioritize review in the current cycle; downstream consumers are likely affected.",
	drift.SeverityMedium:   "Schedule a review; monitor for continued drift in subsequent observations.",
}

// Recommendations returns a de-duplicated, order-stable advisory list for
// the flagged drift types and their aggregated overall severity.
func Recommendations(types []drift.DriftType, overall drift.Severity) []string {
	seen := make(map[string]struct{})
	var out []string

	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, kind := range []drift.Kind{
		drift.KindDistribution, drift.KindFormat, drift.KindUnit,
		drift.KindJoinability, drift.KindConfidence,
	} {
		for _, dt := range types {
			if dt.Kind == kind {
				add(recommendationsByKind[kind])
				break
			}
		}
	}

	add(severityRecommendations[overall])

	return out
}
