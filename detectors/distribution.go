package detectors

import (
	"math"

	"github.com/montanaflynn/stats"

	"driftwatch/domain/cell"
	"driftwatch/domain/drift"
	"driftwatch/fingerprint"
	"driftwatch/kernels"
)

// DistributionDetector flags a shift in the numeric distribution of a
// column against its baseline (spec §4.4.1).
type DistributionDetector struct{}

func (DistributionDetector) Kind() drift.Kind { return drift.KindDistribution }

func (DistributionDetector) Applicable(in Input) bool {
	return in.Anchor.Fingerprint.Dtype.IsNumeric() && in.Fingerprint.Dtype.IsNumeric()
}

func (d DistributionDetector) Detect(in Input) (*drift.DriftType, error) {
	if !d.Applicable(in) {
		return nil, wrapIncompatible(d.Kind(), "distribution detector requires numeric dtype on both sides")
	}

	baseline := fingerprint.ParseNumericSamples(in.Anchor.Fingerprint.SampleValues)
	current := numericValues(in.Current)
	if len(baseline) == 0 || len(current) == 0 {
		return nil, nil
	}

	if len(baseline) < in.Config.MinBaselineForKS {
		return d.meanShiftFallback(baseline, current)
	}
	return d.ksAndPSI(in.Config, baseline, current)
}

// meanShiftFallback is the deliberate, compatibility-preserving policy for
// small baselines (spec §4.4.1, §9 Open Questions: "must be preserved for
// compatibility"): rel = |mean_cur-mean_hist| / max(1, |mean_hist|).
func (d DistributionDetector) meanShiftFallback(baseline, current []float64) (*drift.DriftType, error) {
	meanHist, err := stats.Mean(baseline)
	if err != nil {
		return nil, nil
	}
	meanCur, err := stats.Mean(current)
	if err != nil {
		return nil, nil
	}

	denom := math.Abs(meanHist)
	if denom < 1 {
		denom = 1
	}
	rel := math.Abs(meanCur-meanHist) / denom
	if rel <= 0.20 {
		return nil, nil
	}

	severity := drift.SeverityMedium
	if rel > 1 {
		severity = drift.SeverityHigh
	}

	return &drift.DriftType{
		Kind:        drift.KindDistribution,
		Severity:    severity,
		MetricValue: rel,
		Threshold:   0.20,
		Description: "mean shifted beyond the small-baseline heuristic threshold",
		Detail: drift.DistributionDetail{
			UsedFallback: true,
		},
	}, nil
}

func (d DistributionDetector) ksAndPSI(cfg drift.Config, baseline, current []float64) (*drift.DriftType, error) {
	ks, err := kernels.KSTwoSample(baseline, current, cfg.KSPValueThreshold)
	if err != nil {
		return nil, err
	}
	psi, err := kernels.PSI(baseline, current, 10)
	if err != nil {
		return nil, err
	}

	ksSignificant := ks.PValue < cfg.KSPValueThreshold
	psiSignificant := psi.Score > cfg.PSIThreshold

	large := len(baseline)+len(current) >= cfg.FastPathLargeSampleThreshold
	var triggered bool
	if large {
		triggered = psiSignificant
	} else {
		triggered = ksSignificant || psiSignificant
	}
	if !triggered {
		return nil, nil
	}

	severity := distributionSeverity(psi.Score, ks.PValue)
	metricValue := math.Max(psi.Score, 1-ks.PValue)
	threshold := math.Min(cfg.PSIThreshold, cfg.KSPValueThreshold)

	return &drift.DriftType{
		Kind:        drift.KindDistribution,
		Severity:    severity,
		MetricValue: metricValue,
		Threshold:   threshold,
		Description: "distribution shift detected via KS/PSI",
		Detail: drift.DistributionDetail{
			KSStatistic: ks.Statistic,
			KSPValue:    ks.PValue,
			PSI:         psi.Score,
		},
	}, nil
}

// distributionSeverity applies the cut-points from spec §4.4.1 ("critical if
// PSI>0.25 or p<0.001; high if PSI>0.15 or p<0.01; medium if PSI>0.10 or
// p<0.05; else low").
func distributionSeverity(psi, pValue float64) drift.Severity {
	switch {
	case psi > 0.25 || pValue < 0.001:
		return drift.SeverityCritical
	case psi > 0.15 || pValue < 0.01:
		return drift.SeverityHigh
	case psi > 0.10 || pValue < 0.05:
		return drift.SeverityMedium
	default:
		return drift.SeverityLow
	}
}

func numericValues(values []cell.Value) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v.IsNumeric() {
			out = append(out, v.AsFloat64())
		}
	}
	return out
}
