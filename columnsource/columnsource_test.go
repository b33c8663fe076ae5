package columnsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driftwatch/domain/cell"
)

func TestExtractColumnFromArray(t *testing.T) {
	body := []byte(`[{"age": 30, "name": "a"}, {"age": 41, "name": "b"}, {"age": null, "name": "c"}]`)

	values, err := ExtractColumn(body, "@this", "age")
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, cell.Integer(30), values[0])
	assert.Equal(t, cell.Integer(41), values[1])
	assert.True(t, values[2].IsAbsent())
}

func TestExtractColumnFromNestedDataPath(t *testing.T) {
	body := []byte(`{"data": [{"score": 1.5}, {"score": 2.25}]}`)

	values, err := ExtractColumn(body, "data", "score")
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, cell.Float(1.5), values[0])
	assert.Equal(t, cell.Float(2.25), values[1])
}

func TestExtractColumnFromSingleObject(t *testing.T) {
	body := []byte(`{"status": "active"}`)

	values, err := ExtractColumn(body, "@this", "status")
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, cell.Text("active"), values[0])
}

func TestExtractColumnMissingDataPath(t *testing.T) {
	body := []byte(`{"other": []}`)

	_, err := ExtractColumn(body, "missing", "x")
	assert.Error(t, err)
}

func TestExtractColumnBooleanAndTimestamp(t *testing.T) {
	body := []byte(`[{"flag": true, "at": "2024-01-02T15:04:05Z"}]`)

	flags, err := ExtractColumn(body, "@this", "flag")
	require.NoError(t, err)
	assert.Equal(t, cell.Boolean(true), flags[0])

	timestamps, err := ExtractColumn(body, "@this", "at")
	require.NoError(t, err)
	assert.Equal(t, cell.TypeTimestamp, timestamps[0].Type)
}
