package engine

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driftwatch/batchrunner"
	"driftwatch/domain/cell"
	"driftwatch/domain/drift"
	"driftwatch/fastpath"
)

func intColumn(values ...int) []cell.Value {
	out := make([]cell.Value, len(values))
	for i, v := range values {
		out[i] = cell.Integer(int64(v))
	}
	return out
}

func floatPtr(f float64) *float64 { return &f }

func TestEvaluateNoDriftWhenIdentical(t *testing.T) {
	e := New(drift.DefaultConfig())
	anchor := drift.Anchor{
		Fingerprint: drift.Fingerprint{Dtype: drift.DtypeInt, UniqueRatio: 1, Min: floatPtr(1), Max: floatPtr(10)},
	}
	fp := anchor.Fingerprint
	report, err := e.Evaluate(context.Background(), anchor, intColumn(1, 2, 3, 4, 5, 6, 7, 8, 9, 10), fp)
	require.NoError(t, err)
	assert.False(t, report.DriftDetected)
	assert.Empty(t, report.DriftTypes)
	assert.Equal(t, drift.SeverityLow, report.Severity)
}

func TestEvaluateIsIdempotent(t *testing.T) {
	e := New(drift.DefaultConfig())
	anchor := drift.Anchor{
		Fingerprint: drift.Fingerprint{Dtype: drift.DtypeFloat, Min: floatPtr(0), Max: floatPtr(100), UniqueRatio: 0.9},
	}
	fp := drift.Fingerprint{Dtype: drift.DtypeFloat, Min: floatPtr(0), Max: floatPtr(100000), UniqueRatio: 0.9}
	values := intColumn(1, 2, 3)

	r1, err := e.Evaluate(context.Background(), anchor, values, fp)
	require.NoError(t, err)
	r2, err := e.Evaluate(context.Background(), anchor, values, fp)
	require.NoError(t, err)
	assert.Equal(t, r1.Severity, r2.Severity)
	assert.Equal(t, r1.DriftDetected, r2.DriftDetected)
	assert.Equal(t, len(r1.DriftTypes), len(r2.DriftTypes))
}

// TestFastPathConservatism implements spec §8 testable property 6: if
// evaluate_fast returns critical via quick-check, evaluate on the same
// inputs also returns at least high. The fixture pairs a dtype change
// (triggers the quick-check) with a unique-ratio collapse (triggers the
// dtype-agnostic JoinabilityDetector), so the full pipeline is guaranteed
// to flag independently of quick-check.
func TestFastPathConservatism(t *testing.T) {
	e := New(drift.DefaultConfig())
	anchor := drift.Anchor{
		Dataset: "orders", ColumnName: "status",
		Fingerprint: drift.Fingerprint{Dtype: drift.DtypeText, UniqueRatio: 1.0},
	}
	values := intColumn(1, 2, 3, 4, 5)
	fp := drift.Fingerprint{Dtype: drift.DtypeFloat, Min: floatPtr(1), Max: floatPtr(5), UniqueRatio: 0.0}

	fastReport, err := e.EvaluateFast(context.Background(), anchor, values, fp)
	require.NoError(t, err)
	require.True(t, fastReport.DriftDetected)
	require.Equal(t, drift.SeverityCritical, fastReport.Severity)

	fullReport, err := e.Evaluate(context.Background(), anchor, values, fp)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, fullReport.Severity, drift.SeverityHigh)
}

func TestEvaluateBatchPreservesOrder(t *testing.T) {
	e := New(drift.DefaultConfig())
	jobs := make([]batchrunner.Job, 6)
	for i := range jobs {
		jobs[i] = batchrunner.Job{
			Anchor:      drift.Anchor{ColumnName: strconv.Itoa(i), Fingerprint: drift.Fingerprint{UniqueRatio: 0.9}},
			Fingerprint: drift.Fingerprint{UniqueRatio: 0.9},
		}
	}
	reports, metrics, err := e.EvaluateBatch(context.Background(), jobs)
	require.NoError(t, err)
	assert.Len(t, reports, 6)
	assert.Equal(t, 6, metrics.TotalItems)
	for i, r := range reports {
		assert.Equal(t, strconv.Itoa(i), r.ColumnName)
	}
}

func TestEvaluateStreamAccumulatesAndEvaluates(t *testing.T) {
	e := New(drift.DefaultConfig())
	anchor := drift.Anchor{Fingerprint: drift.Fingerprint{Dtype: drift.DtypeInt, UniqueRatio: 1}}

	i := 0
	source := fastpath.Source(func() (cell.Value, bool) {
		if i >= 200 {
			return cell.Value{}, false
		}
		i++
		return cell.Integer(int64(i)), true
	})

	report, err := e.EvaluateStream(context.Background(), anchor, source)
	require.NoError(t, err)
	require.NotNil(t, report.Performance)
	assert.Equal(t, 200, report.Performance.SamplesProcessed)
}

func TestEvaluateAbortsOnCancellation(t *testing.T) {
	e := New(drift.DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	anchor := drift.Anchor{Fingerprint: drift.Fingerprint{Dtype: drift.DtypeInt, Min: floatPtr(0), Max: floatPtr(10)}}
	report, err := e.Evaluate(ctx, anchor, intColumn(1, 2, 3), drift.Fingerprint{Dtype: drift.DtypeInt, Min: floatPtr(0), Max: floatPtr(10)})
	require.NoError(t, err)
	assert.True(t, report.Aborted)
	assert.Equal(t, "cancelled", report.AbortReason)
}
