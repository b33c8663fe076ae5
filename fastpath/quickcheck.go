// Package fastpath implements the reduced-cost evaluation path from spec
// §4.6 C6: fingerprint-only quick-checks, bounded stratified sampling,
// optional concurrent pre-checks and a streaming variant.
package fastpath

import (
	"fmt"

	"driftwatch/domain/drift"
)

// cardinalityRatioHigh, cardinalityRatioLow and nullRatioDeltaCritical are
// the fingerprint-only thresholds from spec §4.6: "cardinality ratio >10x
// or <0.1x or null-ratio delta >0.5 → critical immediately."
const (
	cardinalityRatioHigh       = 10.0
	cardinalityRatioLow        = 0.1
	nullRatioDeltaCritical     = 0.5
)

// QuickCheck performs the O(1) fingerprint-only check from spec §4.6. It
// returns a critical DriftType the instant an obvious change is visible
// from the fingerprints alone, without touching the raw column values.
func QuickCheck(baseline, current drift.Fingerprint) *drift.DriftType {
	if baseline.Dtype != current.Dtype {
		kind := drift.KindDistribution
		if !(baseline.Dtype.IsNumeric() || current.Dtype.IsNumeric()) {
			kind = drift.KindFormat
		}
		return &drift.DriftType{
			Kind:        kind,
			Severity:    drift.SeverityCritical,
			MetricValue: 1,
			Threshold:   0,
			Description: fmt.Sprintf("dtype changed from %s to %s", baseline.Dtype, current.Dtype),
		}
	}

	if baseline.Cardinality > 0 {
		ratio := float64(current.Cardinality) / float64(baseline.Cardinality)
		if ratio > cardinalityRatioHigh || ratio < cardinalityRatioLow {
			return &drift.DriftType{
				Kind:        drift.KindDistribution,
				Severity:    drift.SeverityCritical,
				MetricValue: ratio,
				Threshold:   cardinalityRatioHigh,
				Description: "cardinality ratio crossed the quick-check bound",
			}
		}
	}

	nullDelta := baseline.NullRatio - current.NullRatio
	if nullDelta < 0 {
		nullDelta = -nullDelta
	}
	if nullDelta > nullRatioDeltaCritical {
		return &drift.DriftType{
			Kind:        drift.KindFormat,
			Severity:    drift.SeverityCritical,
			MetricValue: nullDelta,
			Threshold:   nullRatioDeltaCritical,
			Description: "null ratio moved beyond the quick-check bound",
		}
	}

	return nil
}
