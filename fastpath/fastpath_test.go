package fastpath

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driftwatch/domain/cell"
	"driftwatch/domain/drift"
)

// TestQuickExitOnDtypeChange implements spec §8 scenario S6.
func TestQuickExitOnDtypeChange(t *testing.T) {
	baseline := drift.Fingerprint{Dtype: drift.DtypeText}
	current := drift.Fingerprint{Dtype: drift.DtypeFloat}

	dt := QuickCheck(baseline, current)
	require.NotNil(t, dt)
	assert.Equal(t, drift.SeverityCritical, dt.Severity)
}

func TestQuickCheckNoDriftWhenStable(t *testing.T) {
	fp := drift.Fingerprint{Dtype: drift.DtypeInt, Cardinality: 100, NullRatio: 0.01}
	other := drift.Fingerprint{Dtype: drift.DtypeInt, Cardinality: 105, NullRatio: 0.02}
	assert.Nil(t, QuickCheck(fp, other))
}

func TestQuickCheckCardinalityCollapse(t *testing.T) {
	fp := drift.Fingerprint{Dtype: drift.DtypeInt, Cardinality: 1000}
	other := drift.Fingerprint{Dtype: drift.DtypeInt, Cardinality: 5}
	dt := QuickCheck(fp, other)
	require.NotNil(t, dt)
	assert.Equal(t, drift.SeverityCritical, dt.Severity)
}

func TestSampleNeverExceedsLimit(t *testing.T) {
	values := make([]cell.Value, 100_000)
	for i := range values {
		values[i] = cell.Integer(int64(i))
	}
	rng := rand.New(rand.NewSource(1))
	sample, ratio := Sample(values, 1000, rng)
	assert.LessOrEqual(t, len(sample), 1000)
	assert.InDelta(t, float64(len(sample))/100_000, ratio, 1e-9)
}

func TestSampleReturnsAllWhenUnderLimit(t *testing.T) {
	values := []cell.Value{cell.Integer(1), cell.Integer(2)}
	rng := rand.New(rand.NewSource(1))
	sample, ratio := Sample(values, 1000, rng)
	assert.Equal(t, 2, len(sample))
	assert.Equal(t, 1.0, ratio)
}

func TestStreamReservoirBoundedAndDeterministic(t *testing.T) {
	makeSource := func() Source {
		i := 0
		return func() (cell.Value, bool) {
			if i >= 5000 {
				return cell.Value{}, false
			}
			i++
			return cell.Integer(int64(i)), true
		}
	}

	baseline := drift.Fingerprint{Dtype: drift.DtypeInt}
	result1, err := Stream(context.Background(), makeSource(), baseline, 500, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	result2, err := Stream(context.Background(), makeSource(), baseline, 500, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.LessOrEqual(t, len(result1.Sampled), 500)
	assert.Equal(t, 5000, result1.ItemsConsumed)
	assert.Equal(t, result1.Sampled, result2.Sampled)
}
