package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarityIdenticalIsOne(t *testing.T) {
	a := New(nil)
	samples := []string{"a@x.io", "b@y.co", "c@z.net", "d@w.org", "e@v.edu"}
	matches := a.ExtractPatterns(samples)
	assert.InDelta(t, 1.0, Similarity(matches, matches), 1e-9)
}

func TestSimilarityEmptyBothIsOne(t *testing.T) {
	assert.Equal(t, 1.0, Similarity(nil, nil))
}

func TestSimilarityOneEmptyIsZero(t *testing.T) {
	a := New(nil)
	matches := a.ExtractPatterns([]string{"a@x.io", "b@y.co", "c@z.net", "d@w.org", "e@v.edu"})
	assert.Equal(t, 0.0, Similarity(matches, nil))
}

func TestAnalyzeFormatShiftEmailsToDates(t *testing.T) {
	a := New(nil)
	historical := []string{"a@x.io", "b@y.co", "c@z.net", "d@w.org", "e@v.edu"}
	current := []string{"2024-01-01", "2024-02-15", "2023-12-31", "2022-07-04", "2024-06-30"}

	result := a.Analyze(historical, current)
	assert.Less(t, result.Similarity, 0.80)
	assert.NotEqual(t, StabilityStable, result.Stability)
}

func TestAnalyzeStableWhenUnchanged(t *testing.T) {
	a := New(nil)
	samples := []string{"a@x.io", "b@y.co", "c@z.net", "d@w.org", "e@v.edu"}
	result := a.Analyze(samples, samples)
	assert.Equal(t, StabilityStable, result.Stability)
	assert.Empty(t, result.NewPatterns)
	assert.Empty(t, result.LostPatterns)
}

func TestFixedLengthPatternsRequireFewDistinctLengths(t *testing.T) {
	samples := []string{"ABC123", "DEF456", "GHI789", "JKL012"}
	matches := fixedLengthPatterns(samples)
	assert.NotEmpty(t, matches)
	assert.Equal(t, "LEN:6", matches[0].Pattern)
}

func TestCharacterClassTemplate(t *testing.T) {
	assert.Equal(t, "AAA-999", charClassTemplate("ABC-123"))
}
