package fastpath

import (
	"context"

	"golang.org/x/sync/errgroup"

	"driftwatch/detectors"
	"driftwatch/domain/cell"
	"driftwatch/domain/core"
	"driftwatch/domain/drift"
)

// cheapDetectors are the four same-process-concurrent pre-checks run over
// the sampled view (spec §4.6 "Parallel pre-checks ... four cheap
// detectors run concurrently"). Confidence is excluded: it is derived from
// the other four and cannot run until they finish.
func cheapDetectors() []detectors.Detector {
	return []detectors.Detector{
		detectors.DistributionDetector{},
		detectors.FormatDetector{},
		detectors.UnitDetector{},
		detectors.JoinabilityDetector{},
	}
}

// ParallelPreChecks runs the four cheap detectors concurrently over a
// sampled column view. Results are advisory: they inform whether a full
// evaluation is warranted and never substitute for the authoritative
// DriftDetectors pass (spec §4.6). Each detector call is a cancellation
// point; ctx cancellation aborts the remaining pre-checks.
func ParallelPreChecks(ctx context.Context, anchor drift.Anchor, sampled []cell.Value, sampledFingerprint drift.Fingerprint, cfg drift.Config) ([]drift.DriftType, error) {
	group, ctx := errgroup.WithContext(ctx)
	results := make([]*drift.DriftType, len(cheapDetectors()))

	for i, det := range cheapDetectors() {
		i, det := i, det
		group.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if !det.Applicable(detectors.Input{Anchor: anchor, Fingerprint: sampledFingerprint}) {
				return nil
			}
			dt, err := det.Detect(detectors.Input{
				Anchor:      anchor,
				Current:     sampled,
				Fingerprint: sampledFingerprint,
				Config:      cfg,
			})
			if err != nil {
				if core.IsSkippable(err) {
					return nil
				}
				return err
			}
			results[i] = dt
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	out := make([]drift.DriftType, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}
