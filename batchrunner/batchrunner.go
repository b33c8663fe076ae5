// Package batchrunner drives many independent column evaluations with a
// bounded worker pool (spec §4.7 C7, §5 Concurrency & Resource Model).
package batchrunner

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"driftwatch/domain/cell"
	"driftwatch/domain/drift"
)

// Job is one aligned (anchor, current_values, current_fingerprint) triple
// (spec §4.7 "Accepts aligned triples").
type Job struct {
	Anchor      drift.Anchor
	Values      []cell.Value
	Fingerprint drift.Fingerprint
}

// EvaluateFunc performs one evaluation. BatchRunner is agnostic to which
// evaluation path (full or FastPath) a caller wires in here.
type EvaluateFunc func(ctx context.Context, job Job) (drift.DriftReport, error)

// Options configures one batch dispatch.
type Options struct {
	// MaxWorkers bounds concurrent evaluations (spec §6 max_workers,
	// default cores-1). Values <= 0 fall back to 1.
	MaxWorkers int

	// ChunkSize groups consecutive jobs onto the same worker for cache
	// locality and GC friendliness (spec §4.7 "Optional chunking");
	// <= 1 processes one job per dispatch.
	ChunkSize int
}

// Metrics summarizes one batch dispatch's throughput (spec §4.7 "aggregate
// throughput metrics").
type Metrics struct {
	TotalItems       int
	ElapsedMs        float64
	ThroughputPerSec float64
}

// Run dispatches jobs across a semaphore-bounded worker pool, preserving
// input order in the returned reports (spec §5 "batch outputs are in input
// order"). Any error returned by an EvaluateFunc aborts the whole batch:
// Run returns that error and no reports, discarding partial results (spec
// §5 "partial results are discarded").
func Run(ctx context.Context, jobs []Job, opts Options, evaluate EvaluateFunc) ([]drift.DriftReport, Metrics, error) {
	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = 1
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = 1
	}

	start := time.Now()
	reports := make([]drift.DriftReport, len(jobs))
	sem := semaphore.NewWeighted(int64(opts.MaxWorkers))
	group, gctx := errgroup.WithContext(ctx)

	for chunkStart := 0; chunkStart < len(jobs); chunkStart += opts.ChunkSize {
		chunkStart := chunkStart
		chunkEnd := chunkStart + opts.ChunkSize
		if chunkEnd > len(jobs) {
			chunkEnd = len(jobs)
		}

		if err := sem.Acquire(gctx, 1); err != nil {
			return nil, Metrics{}, err
		}

		group.Go(func() error {
			defer sem.Release(1)
			for i := chunkStart; i < chunkEnd; i++ {
				report, err := evaluate(gctx, jobs[i])
				if err != nil {
					return err
				}
				reports[i] = report
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, Metrics{}, err
	}

	elapsed := time.Since(start)
	metrics := Metrics{
		TotalItems: len(jobs),
		ElapsedMs:  float64(elapsed.Microseconds()) / 1000.0,
	}
	if elapsed > 0 {
		metrics.ThroughputPerSec = float64(len(jobs)) / elapsed.Seconds()
	}

	return reports, metrics, nil
}
