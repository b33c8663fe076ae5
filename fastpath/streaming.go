package fastpath

import (
	"context"
	"math/rand"

	"driftwatch/domain/cell"
	"driftwatch/domain/core"
	"driftwatch/domain/drift"
	"driftwatch/fingerprint"
)

// Source is a lazy value sequence: each call returns the next value and
// whether the sequence has more values left. evaluate_stream (spec §4.6,
// §6) consumes a Source instead of a materialized slice so a caller can
// drive detection over data that never fits in memory at once.
type Source func() (cell.Value, bool)

// StreamResult is the outcome of consuming a Source: the bounded sample
// collected via reservoir sampling, and an early-exit drift type if a
// periodic quick-check found one before the source was exhausted.
type StreamResult struct {
	Sampled       []cell.Value
	EarlyExit     *drift.DriftType
	ItemsConsumed int
}

// checkpointInterval is how many consumed items elapse between periodic
// quick-checks against the accumulating reservoir (spec §4.6 "periodically
// runs quick-check; early-exits on critical").
const checkpointInterval = 1000

// Stream consumes source with reservoir sampling bounded at maxSize
// (Algorithm R, seeded by rng for determinism — spec §5), checkpointing a
// quick-check against baseline every checkpointInterval items. ctx is a
// cancellation point on every checkpoint; cancellation surfaces as
// core.ErrCancelled.
func Stream(ctx context.Context, source Source, baseline drift.Fingerprint, maxSize int, rng *rand.Rand) (StreamResult, error) {
	if maxSize <= 0 {
		maxSize = 50_000
	}

	reservoir := make([]cell.Value, 0, maxSize)
	consumed := 0

	for {
		v, ok := source()
		if !ok {
			break
		}
		consumed++

		if len(reservoir) < maxSize {
			reservoir = append(reservoir, v)
		} else {
			j := rng.Intn(consumed)
			if j < maxSize {
				reservoir[j] = v
			}
		}

		if consumed%checkpointInterval == 0 {
			select {
			case <-ctx.Done():
				return StreamResult{Sampled: reservoir, ItemsConsumed: consumed}, core.ErrCancelled
			default:
			}

			partial := fingerprint.Build(reservoir, 200, nil)
			if dt := QuickCheck(baseline, partial); dt != nil {
				return StreamResult{Sampled: reservoir, EarlyExit: dt, ItemsConsumed: consumed}, nil
			}
		}
	}

	return StreamResult{Sampled: reservoir, ItemsConsumed: consumed}, nil
}
