package kernels

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKSTwoSampleIdenticalSamples(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	result, err := KSTwoSample(x, x, 0.05)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Statistic)
	assert.InDelta(t, 1.0, result.PValue, 1e-9)
}

func TestKSTwoSampleStatisticBounds(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{100, 200, 300, 400, 500}
	result, err := KSTwoSample(x, y, 0.05)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Statistic, 0.0)
	assert.LessOrEqual(t, result.Statistic, 1.0)
	assert.True(t, result.Significant)
}

func TestKSTwoSampleEmptyInput(t *testing.T) {
	_, err := KSTwoSample(nil, []float64{1}, 0.05)
	assert.Error(t, err)
}

func TestPSISameDistributionIsZero(t *testing.T) {
	baseline := make([]float64, 1000)
	for i := range baseline {
		baseline[i] = float64(i)
	}
	result, err := PSI(baseline, baseline, 10)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, result.Score, 1e-6)
	assert.Equal(t, StabilityStable, result.Stability)
}

func TestPSIShiftedDistributionIsPositive(t *testing.T) {
	baseline := make([]float64, 1000)
	shifted := make([]float64, 1000)
	for i := range baseline {
		baseline[i] = float64(i)
		shifted[i] = float64(i) + 5000
	}
	result, err := PSI(baseline, shifted, 10)
	require.NoError(t, err)
	assert.Greater(t, math.Abs(result.Score), 0.0)
}

func TestChiSquareRejectsMismatchedLengths(t *testing.T) {
	_, err := ChiSquare([]float64{1, 2}, []float64{1, 2, 3})
	assert.Error(t, err)
}

func TestChiSquareRejectsNonPositiveExpected(t *testing.T) {
	_, err := ChiSquare([]float64{1, 2}, []float64{1, 0})
	assert.Error(t, err)
}

func TestChiSquareDegreesOfFreedom(t *testing.T) {
	result, err := ChiSquare([]float64{10, 20, 30}, []float64{15, 15, 30})
	require.NoError(t, err)
	assert.Equal(t, 2, result.DF)
	assert.GreaterOrEqual(t, result.PValue, 0.0)
	assert.LessOrEqual(t, result.PValue, 1.0)
}

func TestWasserstein1IdenticalIsZero(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	dist, err := Wasserstein1(x, x)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, dist, 1e-9)
}

func TestWasserstein1TriangleInequality(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 3, 4, 5, 6}
	z := []float64{10, 11, 12, 13, 14}

	dxz, err := Wasserstein1(x, z)
	require.NoError(t, err)
	dxy, err := Wasserstein1(x, y)
	require.NoError(t, err)
	dyz, err := Wasserstein1(y, z)
	require.NoError(t, err)

	assert.LessOrEqual(t, dxz, dxy+dyz+1e-9)
}

func TestAndersonDarlingSignAndMonotonicity(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	closeY := []float64{1.1, 2.1, 3.1, 4.1, 5.1}
	farY := []float64{50, 51, 52, 53, 54}

	closeResult, err := AndersonDarlingTwoSample(x, closeY)
	require.NoError(t, err)
	farResult, err := AndersonDarlingTwoSample(x, farY)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, closeResult.Statistic, 0.0)
	assert.Greater(t, farResult.Statistic, closeResult.Statistic)
	assert.True(t, farResult.Significant)
}

func TestFastPSIBoundsSampleSize(t *testing.T) {
	baseline := make([]float64, 100_000)
	current := make([]float64, 100_000)
	for i := range baseline {
		baseline[i] = float64(i % 100)
		current[i] = float64(i % 100)
	}
	result, err := FastPSI(baseline, current, 10, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, result.Score, 1e-3)
}
