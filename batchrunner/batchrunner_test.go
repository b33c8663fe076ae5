package batchrunner

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driftwatch/domain/drift"
)

func TestRunPreservesOrder(t *testing.T) {
	jobs := make([]Job, 20)
	for i := range jobs {
		jobs[i] = Job{Fingerprint: drift.Fingerprint{Cardinality: i}}
	}

	reports, metrics, err := Run(context.Background(), jobs, Options{MaxWorkers: 4}, func(ctx context.Context, job Job) (drift.DriftReport, error) {
		return drift.DriftReport{ColumnName: strconv.Itoa(job.Fingerprint.Cardinality)}, nil
	})
	require.NoError(t, err)
	require.Len(t, reports, 20)
	assert.Equal(t, 20, metrics.TotalItems)
	for i, r := range reports {
		assert.Equal(t, strconv.Itoa(i), r.ColumnName)
	}
}

func TestRunAbortsOnError(t *testing.T) {
	jobs := make([]Job, 5)
	var calls int32
	_, _, err := Run(context.Background(), jobs, Options{MaxWorkers: 2}, func(ctx context.Context, job Job) (drift.DriftReport, error) {
		atomic.AddInt32(&calls, 1)
		return drift.DriftReport{}, errors.New("boom")
	})
	assert.Error(t, err)
}

func TestRunRespectsChunking(t *testing.T) {
	jobs := make([]Job, 9)
	reports, _, err := Run(context.Background(), jobs, Options{MaxWorkers: 3, ChunkSize: 3}, func(ctx context.Context, job Job) (drift.DriftReport, error) {
		return drift.DriftReport{}, nil
	})
	require.NoError(t, err)
	assert.Len(t, reports, 9)
}
