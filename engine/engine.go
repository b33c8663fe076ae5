// Package engine wires Fingerprint, StatKernels, PatternAnalyzer,
// DriftDetectors, Aggregator, FastPath and BatchRunner into the four
// abstract entry points from spec §6: evaluate, evaluate_fast,
// evaluate_stream and evaluate_batch.
package engine

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"driftwatch/aggregator"
	"driftwatch/batchrunner"
	"driftwatch/detectors"
	"driftwatch/domain/cell"
	"driftwatch/domain/core"
	"driftwatch/domain/drift"
	"driftwatch/fastpath"
	"driftwatch/fingerprint"
	"driftwatch/internal"
)

// Engine evaluates columns against anchors using a fixed Config (spec §9
// "Stateless detectors + owned config"). An Engine holds no mutable state
// and is safe for concurrent use by many callers (spec §5).
type Engine struct {
	config drift.Config
	logger *internal.Logger
}

// New builds an Engine with the given configuration, using the package
// default logger unless overridden with WithLogger.
func New(cfg drift.Config) *Engine {
	return &Engine{config: cfg, logger: internal.DefaultLogger}
}

// WithLogger returns a copy of e using the given logger.
func (e *Engine) WithLogger(logger *internal.Logger) *Engine {
	next := *e
	next.logger = logger
	return &next
}

// Evaluate is the authoritative evaluation path (spec §6 "evaluate").
// Detectors run in the fixed order from spec §4.4: distribution, format,
// unit, joinability, then confidence (which consumes the first four's
// output). A detector's IncompatibleSchema or InvalidInput error only
// skips that detector (spec §7); Timeout/Cancelled abort the whole
// evaluation; anything else (Internal) propagates to the caller.
func (e *Engine) Evaluate(ctx context.Context, anchor drift.Anchor, values []cell.Value, fp drift.Fingerprint) (drift.DriftReport, error) {
	var flagged []drift.DriftType

	for _, det := range detectors.FixedOrder() {
		if err := ctx.Err(); err != nil {
			return e.abortedReport(anchor, err), nil
		}

		in := detectors.Input{Anchor: anchor, Current: values, Fingerprint: fp, Config: e.config}
		if !det.Applicable(in) {
			e.logger.Debug("drift: detector %s not applicable, skipping", det.Kind())
			continue
		}

		dt, err := det.Detect(in)
		if err != nil {
			if core.IsSkippable(err) {
				e.logger.Debug("drift: detector %s skipped: %v", det.Kind(), err)
				continue
			}
			if core.IsInternal(err) {
				return drift.DriftReport{}, err
			}
			return drift.DriftReport{}, err
		}
		if dt != nil {
			flagged = append(flagged, *dt)
		}
	}

	if err := ctx.Err(); err != nil {
		return e.abortedReport(anchor, err), nil
	}

	confidenceDetector := detectors.ConfidenceDetector{}
	confidenceInput := detectors.Input{Anchor: anchor, Current: values, Fingerprint: fp, Config: e.config, Flagged: flagged}
	if confidenceDetector.Applicable(confidenceInput) {
		dt, err := confidenceDetector.Detect(confidenceInput)
		if err != nil {
			if !core.IsSkippable(err) {
				return drift.DriftReport{}, err
			}
		} else if dt != nil {
			flagged = append(flagged, *dt)
		}
	}

	return e.buildReport(anchor, fp, flagged, nil), nil
}

// buildReport aggregates a flagged-type list into a DriftReport (spec §4.5,
// §3).
func (e *Engine) buildReport(anchor drift.Anchor, fp drift.Fingerprint, flagged []drift.DriftType, perf *drift.PerformanceMetrics) drift.DriftReport {
	severity, confidence := aggregator.Aggregate(flagged)

	details := make(map[drift.Kind]drift.Detail, len(flagged))
	for _, dt := range flagged {
		details[dt.Kind] = dt.Detail
	}

	return drift.DriftReport{
		AnchorID:        anchor.AnchorID,
		ColumnName:      anchor.ColumnName,
		DriftDetected:   len(flagged) > 0,
		DriftTypes:      flagged,
		Severity:        severity,
		ConfidenceScore: confidence,
		Details:         details,
		Recommendations: aggregator.Recommendations(flagged, severity),
		Performance:     perf,
	}
}

// abortedReport converts a context error into the distinct Timeout/Cancelled
// report outcome from spec §7 ("aborted evaluations are a distinct state").
func (e *Engine) abortedReport(anchor drift.Anchor, ctxErr error) drift.DriftReport {
	reason := "cancelled"
	if errors.Is(ctxErr, context.DeadlineExceeded) {
		reason = "timeout"
	}
	e.logger.Warn("drift: evaluation for %s/%s aborted: %s", anchor.Dataset, anchor.ColumnName, reason)
	return drift.DriftReport{
		AnchorID:    anchor.AnchorID,
		ColumnName:  anchor.ColumnName,
		Aborted:     true,
		AbortReason: reason,
	}
}

// EvaluateFast is the reduced-cost evaluation path (spec §6 "evaluate_fast",
// §4.6 FastPath): a fingerprint-only quick-check first, then bounded
// sampling and the full detector pipeline over the sampled view.
func (e *Engine) EvaluateFast(ctx context.Context, anchor drift.Anchor, values []cell.Value, fp drift.Fingerprint) (drift.DriftReport, error) {
	start := time.Now()

	if dt := fastpath.QuickCheck(anchor.Fingerprint, fp); dt != nil {
		e.logger.Info("drift: fastpath quick-exit for %s/%s: %s", anchor.Dataset, anchor.ColumnName, dt.Description)
		report := e.buildReport(anchor, fp, []drift.DriftType{*dt}, fastpath.BuildMetrics(
			float64(time.Since(start).Microseconds())/1000.0, len(values), false, 1.0,
		))
		return report, nil
	}

	sampled := values
	compressionRatio := 1.0
	optimizationApplied := false
	if e.config.SampleSizeLimit > 0 && len(values) > e.config.SampleSizeLimit {
		rng := rand.New(rand.NewSource(e.config.RandSeed))
		sampled, compressionRatio = fastpath.Sample(values, e.config.SampleSizeLimit, rng)
		optimizationApplied = true
	}

	sampledFingerprint := fp
	if optimizationApplied {
		sampledFingerprint = fingerprint.Build(sampled, e.config.SampleValueLimit, anchor.Fingerprint.RegexPatterns)
	}

	report, err := e.Evaluate(ctx, anchor, sampled, sampledFingerprint)
	if err != nil {
		return drift.DriftReport{}, err
	}

	report.Performance = fastpath.BuildMetrics(
		float64(time.Since(start).Microseconds())/1000.0,
		len(sampled),
		optimizationApplied,
		compressionRatio,
	)
	return report, nil
}

// EvaluateStream is the streaming variant (spec §6 "evaluate_stream"): it
// reservoir-samples a lazy Source up to the sample size limit, early-exiting
// on a periodic quick-check, then runs the full pipeline over the
// accumulated sample.
func (e *Engine) EvaluateStream(ctx context.Context, anchor drift.Anchor, source fastpath.Source) (drift.DriftReport, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(e.config.RandSeed))

	result, err := fastpath.Stream(ctx, source, anchor.Fingerprint, e.config.SampleSizeLimit, rng)
	if err != nil {
		if core.IsCancelled(err) {
			return e.abortedReport(anchor, context.Canceled), nil
		}
		return drift.DriftReport{}, err
	}

	compressionRatio := 1.0
	if result.ItemsConsumed > 0 {
		compressionRatio = float64(len(result.Sampled)) / float64(result.ItemsConsumed)
	}

	if result.EarlyExit != nil {
		e.logger.Info("drift: stream early-exit for %s/%s after %d items", anchor.Dataset, anchor.ColumnName, result.ItemsConsumed)
		report := e.buildReport(anchor, fingerprint.Build(result.Sampled, e.config.SampleValueLimit, anchor.Fingerprint.RegexPatterns), []drift.DriftType{*result.EarlyExit}, fastpath.BuildMetrics(
			float64(time.Since(start).Microseconds())/1000.0, result.ItemsConsumed, true, compressionRatio,
		))
		return report, nil
	}

	fp := fingerprint.Build(result.Sampled, e.config.SampleValueLimit, anchor.Fingerprint.RegexPatterns)
	report, err := e.Evaluate(ctx, anchor, result.Sampled, fp)
	if err != nil {
		return drift.DriftReport{}, err
	}
	report.Performance = fastpath.BuildMetrics(
		float64(time.Since(start).Microseconds())/1000.0,
		result.ItemsConsumed,
		true,
		compressionRatio,
	)
	return report, nil
}

// EvaluateBatch dispatches many aligned (anchor, values, fingerprint)
// triples across a bounded worker pool (spec §6 "evaluate_batch", §4.7
// BatchRunner), preserving input order.
func (e *Engine) EvaluateBatch(ctx context.Context, jobs []batchrunner.Job) ([]drift.DriftReport, batchrunner.Metrics, error) {
	workers := e.config.MaxWorkers
	if workers <= 0 {
		workers = 1
	}
	reports, metrics, err := batchrunner.Run(ctx, jobs, batchrunner.Options{MaxWorkers: workers}, func(ctx context.Context, job batchrunner.Job) (drift.DriftReport, error) {
		return e.Evaluate(ctx, job.Anchor, job.Values, job.Fingerprint)
	})
	if err == nil {
		e.logger.Info("drift: batch of %d evaluations finished in %.2fms (%.1f/s)", metrics.TotalItems, metrics.ElapsedMs, metrics.ThroughputPerSec)
	}
	return reports, metrics, err
}
