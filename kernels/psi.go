package kernels

import (
	"math"
	"sort"

	"driftwatch/domain/core"
)

const psiEpsilon = 1e-4

// PSIResult is the outcome of a Population Stability Index comparison.
type PSIResult struct {
	Score     float64
	Stability string
}

// PSI stability categories (spec §4.2 / Glossary).
const (
	StabilityStable      = "stable"
	StabilityMinor        = "minor"
	StabilityMajor        = "major"
	StabilitySignificant  = "significant"
)

// PSI computes the Population Stability Index between a baseline and a
// current numeric sample, binning by equal-count quantiles of the baseline.
func PSI(baseline, current []float64, bins int) (PSIResult, error) {
	if len(baseline) == 0 || len(current) == 0 {
		return PSIResult{}, core.NewInvalidInput("psi: empty input")
	}
	if bins <= 0 {
		bins = 10
	}

	edges := quantileEdges(baseline, bins)
	expectedCounts := binCounts(baseline, edges)
	actualCounts := binCounts(current, edges)

	nb := float64(len(baseline))
	nc := float64(len(current))

	score := 0.0
	for i := range expectedCounts {
		e := float64(expectedCounts[i])/nb + psiEpsilon
		a := float64(actualCounts[i])/nc + psiEpsilon
		score += (a - e) * math.Log(a/e)
	}

	return PSIResult{Score: score, Stability: stabilityCategory(score)}, nil
}

// FastPSI systematically subsamples both sides to a bounded size before
// computing PSI, trading exactness for sub-second latency on huge columns
// (spec §4.2 Fast PSI).
func FastPSI(baseline, current []float64, bins, maxSize int) (PSIResult, error) {
	if maxSize <= 0 {
		maxSize = 10_000
	}
	return PSI(systematicSubsample(baseline, maxSize), systematicSubsample(current, maxSize), bins)
}

func systematicSubsample(values []float64, maxSize int) []float64 {
	if len(values) <= maxSize {
		return values
	}
	step := float64(len(values)) / float64(maxSize)
	out := make([]float64, 0, maxSize)
	for i := 0; i < maxSize; i++ {
		idx := int(float64(i) * step)
		if idx >= len(values) {
			idx = len(values) - 1
		}
		out = append(out, values[idx])
	}
	return out
}

// quantileEdges returns bins+1 quantile boundaries (equal-count bins) over
// the baseline sample.
func quantileEdges(baseline []float64, bins int) []float64 {
	sorted := sortedCopy(baseline)
	edges := make([]float64, bins+1)
	edges[0] = math.Inf(-1)
	edges[bins] = math.Inf(1)
	n := len(sorted)
	for i := 1; i < bins; i++ {
		pos := float64(i) / float64(bins) * float64(n-1)
		lo := int(math.Floor(pos))
		hi := int(math.Ceil(pos))
		if hi >= n {
			hi = n - 1
		}
		frac := pos - float64(lo)
		edges[i] = sorted[lo]*(1-frac) + sorted[hi]*frac
	}
	return edges
}

// binCounts assigns each value to the bin whose (lo, hi] range contains it.
func binCounts(values []float64, edges []float64) []int {
	bins := len(edges) - 1
	counts := make([]int, bins)
	for _, v := range values {
		idx := sort.SearchFloat64s(edges[1:bins], v)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts
}

func stabilityCategory(score float64) string {
	abs := math.Abs(score)
	switch {
	case abs < 0.10:
		return StabilityStable
	case abs < 0.15:
		return StabilityMinor
	case abs < 0.25:
		return StabilityMajor
	default:
		return StabilitySignificant
	}
}
