// Package kernels implements the statistical primitives drift detectors are
// built on: KS two-sample, PSI, Chi-square, Wasserstein-1 and Anderson–Darling.
// Every kernel is a pure function of its inputs so evaluations stay
// deterministic and reproducible (spec §5 Determinism).
package kernels

import "sort"

// unionSupport returns the sorted, deduplicated union of two samples.
func unionSupport(x, y []float64) []float64 {
	seen := make(map[float64]struct{}, len(x)+len(y))
	support := make([]float64, 0, len(x)+len(y))
	for _, v := range x {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			support = append(support, v)
		}
	}
	for _, v := range y {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			support = append(support, v)
		}
	}
	sort.Float64s(support)
	return support
}

// ecdf evaluates the empirical CDF of sorted sample `s` at each point in
// `at`. `s` must already be sorted ascending.
func ecdf(sorted []float64, at []float64) []float64 {
	out := make([]float64, len(at))
	n := float64(len(sorted))
	if n == 0 {
		return out
	}
	for i, x := range at {
		idx := sort.SearchFloat64s(sorted, nextAfter(x))
		out[i] = float64(idx) / n
	}
	return out
}

// nextAfter nudges x up by a tiny epsilon so SearchFloat64s counts values
// equal to x as "≤ x" (sort.SearchFloat64s finds the first index >= target).
func nextAfter(x float64) float64 {
	return x + 1e-12*(1+absf(x))
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func sortedCopy(x []float64) []float64 {
	s := make([]float64, len(x))
	copy(s, x)
	sort.Float64s(s)
	return s
}
