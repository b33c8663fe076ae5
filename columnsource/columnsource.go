// Package columnsource extracts one named column's values out of a slice
// of JSON records, the way the teacher's API reader pulls a data array out
// of a paginated payload. It is an input-shaping convenience for
// evaluate_batch and evaluate_stream callers, not part of the detection
// core: the core operates on []cell.Value regardless of where it came
// from.
package columnsource

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"driftwatch/domain/cell"
)

// ExtractColumn pulls one field out of every record in a JSON array (or a
// single JSON object, wrapped as a one-record array) found at dataPath,
// mirroring the teacher's gjson.GetBytes dispatch on array-vs-object
// payload shape.
func ExtractColumn(body []byte, dataPath, field string) ([]cell.Value, error) {
	if dataPath == "" {
		dataPath = "@this"
	}

	data := gjson.GetBytes(body, dataPath)
	if !data.Exists() {
		return nil, fmt.Errorf("columnsource: data path %q not found in payload", dataPath)
	}

	var records []gjson.Result
	switch {
	case data.IsArray():
		records = data.Array()
	case data.IsObject():
		records = []gjson.Result{data}
	default:
		return nil, fmt.Errorf("columnsource: data path %q is not an array or object", dataPath)
	}

	values := make([]cell.Value, 0, len(records))
	for _, record := range records {
		values = append(values, toCellValue(record.Get(field)))
	}
	return values, nil
}

// toCellValue maps one gjson field result onto the cell.Value shape the
// detection core expects, using gjson's own type discrimination rather
// than re-parsing the raw text.
func toCellValue(r gjson.Result) cell.Value {
	if !r.Exists() || r.Type == gjson.Null {
		return cell.Absent()
	}

	switch r.Type {
	case gjson.True, gjson.False:
		return cell.Boolean(r.Bool())
	case gjson.Number:
		f := r.Float()
		if f == float64(int64(f)) {
			return cell.Integer(int64(f))
		}
		return cell.Float(f)
	case gjson.String:
		if t, err := time.Parse(time.RFC3339, r.String()); err == nil {
			return cell.TimestampValue(t)
		}
		return cell.Text(r.String())
	default:
		return cell.Text(r.Raw)
	}
}
