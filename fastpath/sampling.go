package fastpath

import (
	"math/rand"

	"driftwatch/domain/cell"
)

// uniformFraction is the portion of the sampling budget spent on ~10%
// uniform random picks layered on top of the systematic stride, to
// preserve tail values a pure stride could skip entirely (spec §4.6
// "Intelligent sampling").
const uniformFraction = 0.10

// Sample produces a bounded working set of at most limit values from a
// column, via stratified systematic sampling with a random start,
// augmented with uniform random picks. It never exceeds limit and is
// deterministic for a fixed rng (spec §5 Determinism: "FastPath exposes a
// configurable RNG seed for reproducibility").
//
// Returns the sampled values and the compression ratio
// (len(sample)/len(values)).
func Sample(values []cell.Value, limit int, rng *rand.Rand) ([]cell.Value, float64) {
	n := len(values)
	if limit <= 0 || n <= limit {
		return values, 1.0
	}

	systematicBudget := int(float64(limit) * (1 - uniformFraction))
	uniformBudget := limit - systematicBudget

	step := float64(n) / float64(systematicBudget)
	start := 0
	if int(step) > 0 {
		start = rng.Intn(int(step))
	}

	seen := make(map[int]struct{}, limit)
	sample := make([]cell.Value, 0, limit)

	for i := 0; i < systematicBudget; i++ {
		idx := start + int(float64(i)*step)
		if idx >= n {
			idx = n - 1
		}
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		sample = append(sample, values[idx])
	}

	for i := 0; i < uniformBudget; i++ {
		idx := rng.Intn(n)
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		sample = append(sample, values[idx])
	}

	return sample, float64(len(sample)) / float64(n)
}
