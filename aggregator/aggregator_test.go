package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"driftwatch/domain/drift"
)

func TestAggregateEmptyIsLow(t *testing.T) {
	severity, confidence := Aggregate(nil)
	assert.Equal(t, drift.SeverityLow, severity)
	assert.InDelta(t, 0.5, confidence, 1e-9)
}

func TestAggregateSingleCriticalIsCritical(t *testing.T) {
	severity, _ := Aggregate([]drift.DriftType{{Kind: drift.KindUnit, Severity: drift.SeverityCritical}})
	assert.Equal(t, drift.SeverityCritical, severity)
}

func TestAggregateAllHighIsHigh(t *testing.T) {
	types := []drift.DriftType{
		{Kind: drift.KindDistribution, Severity: drift.SeverityHigh},
		{Kind: drift.KindFormat, Severity: drift.SeverityHigh},
		{Kind: drift.KindUnit, Severity: drift.SeverityHigh},
	}
	severity, _ := Aggregate(types)
	assert.Equal(t, drift.SeverityHigh, severity)
}

func TestConfidenceScoreClampsToFloor(t *testing.T) {
	types := []drift.DriftType{
		{Kind: drift.KindDistribution, Severity: drift.SeverityCritical},
		{Kind: drift.KindFormat, Severity: drift.SeverityCritical},
		{Kind: drift.KindUnit, Severity: drift.SeverityCritical},
		{Kind: drift.KindJoinability, Severity: drift.SeverityCritical},
		{Kind: drift.KindConfidence, Severity: drift.SeverityCritical},
	}
	_, confidence := Aggregate(types)
	assert.InDelta(t, 0.1, confidence, 1e-9)
}

func TestRecommendationsDeduplicatedAndOrdered(t *testing.T) {
	types := []drift.DriftType{
		{Kind: drift.KindFormat, Severity: drift.SeverityCritical},
		{Kind: drift.KindFormat, Severity: drift.SeverityHigh},
	}
	recs := Recommendations(types, drift.SeverityCritical)
	assert.Len(t, recs, 2)
	assert.Contains(t, recs[0], "format")
}
