package kernels

import (
	"sort"

	"driftwatch/domain/core"
)

// andersonDarlingCriticalValue5Pct is the documented 5% critical value for
// the two-sample Anderson–Darling statistic (spec §4.2: "a documented
// approximation"). Property tests should only rely on sign and monotonicity
// here, not on exact p-values (spec §9 Open Questions).
const andersonDarlingCriticalValue5Pct = 2.5

// ADResult is the outcome of a two-sample Anderson–Darling test.
type ADResult struct {
	Statistic     float64
	CriticalValue float64
	Significant   bool
}

// AndersonDarlingTwoSample computes the two-sample Anderson–Darling
// statistic over the combined ranked ordering of x and y.
func AndersonDarlingTwoSample(x, y []float64) (ADResult, error) {
	if len(x) == 0 || len(y) == 0 {
		return ADResult{}, core.NewInvalidInput("anderson-darling: empty input")
	}

	n1, n2 := len(x), len(y)
	N := n1 + n2

	combined := make([]float64, 0, N)
	combined = append(combined, x...)
	combined = append(combined, y...)
	sort.Float64s(combined)

	sortedX := sortedCopy(x)

	// m1 = number of group-1 observations <= combined[i]
	statistic := 0.0
	for i := 0; i < N-1; i++ {
		threshold := combined[i]
		m1 := sort.SearchFloat64s(sortedX, nextAfter(threshold))
		denom := float64(i+1) * float64(N-i-1)
		if denom == 0 {
			continue
		}
		num := float64(N)*float64(m1) - float64(i+1)*float64(n1)
		statistic += (num * num) / denom
	}
	statistic /= float64(n1) * float64(n2)

	return ADResult{
		Statistic:     statistic,
		CriticalValue: andersonDarlingCriticalValue5Pct,
		Significant:   statistic > andersonDarlingCriticalValue5Pct,
	}, nil
}
