package detectors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driftwatch/domain/cell"
	"driftwatch/domain/drift"
)

func floatPtr(f float64) *float64 { return &f }

func intColumn(values ...int) []cell.Value {
	out := make([]cell.Value, len(values))
	for i, v := range values {
		out[i] = cell.Integer(int64(v))
	}
	return out
}

func textColumn(values ...string) []cell.Value {
	out := make([]cell.Value, len(values))
	for i, v := range values {
		out[i] = cell.Text(v)
	}
	return out
}

// TestDistributionClearShiftSmallBaseline implements spec §8 scenario S1.
func TestDistributionClearShiftSmallBaseline(t *testing.T) {
	baselineSamples := make([]string, 100)
	for i := 0; i < 100; i++ {
		baselineSamples[i] = fmt.Sprintf("%d", i+1)
	}
	anchor := drift.Anchor{
		Fingerprint: drift.Fingerprint{
			Dtype:        drift.DtypeInt,
			Cardinality:  100,
			UniqueRatio:  0.90,
			Min:          floatPtr(1),
			Max:          floatPtr(100),
			SampleValues: baselineSamples,
		},
	}
	current := make([]int, 200)
	for i := range current {
		current[i] = 500 + i
	}

	in := Input{
		Anchor:  anchor,
		Current: intColumn(current...),
		Fingerprint: drift.Fingerprint{
			Dtype:       drift.DtypeInt,
			Cardinality: 200,
			UniqueRatio: 0.95,
			Min:         floatPtr(500),
			Max:         floatPtr(699),
		},
		Config: drift.DefaultConfig(),
	}

	dt, err := DistributionDetector{}.Detect(in)
	require.NoError(t, err)
	require.NotNil(t, dt)
	assert.GreaterOrEqual(t, dt.Severity, drift.SeverityMedium)
}

// TestFormatShiftEmailsToDates implements spec §8 scenario S2.
func TestFormatShiftEmailsToDates(t *testing.T) {
	historical := []string{"a@x.io", "b@y.co", "c@z.net", "d@w.org", "e@v.edu"}
	current := []string{"2024-01-01", "2024-02-15", "2023-12-31", "2022-07-04", "2024-06-30"}

	in := Input{
		Anchor: drift.Anchor{Fingerprint: drift.Fingerprint{Dtype: drift.DtypeText, SampleValues: historical}},
		Fingerprint: drift.Fingerprint{
			Dtype:        drift.DtypeText,
			SampleValues: current,
		},
		Config: drift.DefaultConfig(),
	}

	dt, err := FormatDetector{}.Detect(in)
	require.NoError(t, err)
	require.NotNil(t, dt)
	detail := dt.Detail.(drift.FormatDetail)
	assert.Less(t, detail.Similarity, 0.80)
	assert.GreaterOrEqual(t, dt.Severity, drift.SeverityHigh)
}

// TestUnitChangeThousandX implements spec §8 scenario S3.
func TestUnitChangeThousandX(t *testing.T) {
	in := Input{
		Anchor: drift.Anchor{Fingerprint: drift.Fingerprint{
			Dtype: drift.DtypeFloat, Min: floatPtr(0), Max: floatPtr(100),
		}},
		Fingerprint: drift.Fingerprint{
			Dtype: drift.DtypeFloat, Min: floatPtr(0), Max: floatPtr(100000),
		},
		Config: drift.DefaultConfig(),
	}

	dt, err := UnitDetector{}.Detect(in)
	require.NoError(t, err)
	require.NotNil(t, dt)
	detail := dt.Detail.(drift.UnitDetail)
	assert.InDelta(t, 1000.0, detail.Scale, 1e-6)
	assert.Equal(t, drift.SeverityCritical, dt.Severity)
}

// TestJoinabilityDegradation implements spec §8 scenario S4.
func TestJoinabilityDegradation(t *testing.T) {
	in := Input{
		Anchor:      drift.Anchor{Fingerprint: drift.Fingerprint{UniqueRatio: 0.99}},
		Fingerprint: drift.Fingerprint{UniqueRatio: 0.40},
		Config:      drift.DefaultConfig(),
	}

	dt, err := JoinabilityDetector{}.Detect(in)
	require.NoError(t, err)
	require.NotNil(t, dt)
	assert.InDelta(t, 0.59, dt.MetricValue, 1e-9)
	assert.Equal(t, drift.SeverityCritical, dt.Severity)
}

// TestConfidenceDerivationNotFlagged implements spec §8 scenario S5.
func TestConfidenceDerivationNotFlagged(t *testing.T) {
	oldConf := 0.90
	in := Input{
		Anchor: drift.Anchor{Confidence: &oldConf},
		Config: drift.DefaultConfig(),
		Flagged: []drift.DriftType{
			{Kind: drift.KindDistribution, Severity: drift.SeverityHigh},
			{Kind: drift.KindFormat, Severity: drift.SeverityMedium},
		},
	}

	dt, err := ConfidenceDetector{}.Detect(in)
	require.NoError(t, err)
	assert.Nil(t, dt)
}

func TestConfidenceRequiresPriorConfidence(t *testing.T) {
	d := ConfidenceDetector{}
	in := Input{Anchor: drift.Anchor{}}
	assert.False(t, d.Applicable(in))
	_, err := d.Detect(in)
	assert.Error(t, err)
}

func TestDistributionSkippedOnNonNumeric(t *testing.T) {
	in := Input{
		Anchor:      drift.Anchor{Fingerprint: drift.Fingerprint{Dtype: drift.DtypeText}},
		Fingerprint: drift.Fingerprint{Dtype: drift.DtypeText},
		Current:     textColumn("a", "b"),
	}
	d := DistributionDetector{}
	assert.False(t, d.Applicable(in))
	_, err := d.Detect(in)
	assert.Error(t, err)
}

func TestUnitSkippedWhenRangeZero(t *testing.T) {
	in := Input{
		Anchor:      drift.Anchor{Fingerprint: drift.Fingerprint{Dtype: drift.DtypeFloat, Min: floatPtr(5), Max: floatPtr(5)}},
		Fingerprint: drift.Fingerprint{Dtype: drift.DtypeFloat, Min: floatPtr(5), Max: floatPtr(10)},
		Config:      drift.DefaultConfig(),
	}
	dt, err := UnitDetector{}.Detect(in)
	require.NoError(t, err)
	assert.Nil(t, dt)
}

func TestFixedOrderMatchesSpec(t *testing.T) {
	order := FixedOrder()
	require.Len(t, order, 4)
	assert.Equal(t, drift.KindDistribution, order[0].Kind())
	assert.Equal(t, drift.KindFormat, order[1].Kind())
	assert.Equal(t, drift.KindUnit, order[2].Kind())
	assert.Equal(t, drift.KindJoinability, order[3].Kind())
}
