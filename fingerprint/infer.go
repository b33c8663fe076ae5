// Package fingerprint derives, serializes and deserializes the compact
// column summary (spec §3 Fingerprint, §4.1 C1).
package fingerprint

import (
	"strconv"
	"strings"
	"time"

	"driftwatch/domain/drift"
)

// dtypeInferenceSampleLimit bounds dtype inference to the first 100
// non-absent cells (spec §4.1).
const dtypeInferenceSampleLimit = 100

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02T15:04:05",
	"01/02/2006",
	"2006/01/02",
}

var booleanLiterals = map[string]struct{}{
	"true": {}, "false": {}, "1": {}, "0": {}, "yes": {}, "no": {}, "y": {}, "n": {},
}

// InferDtype classifies a column from a bounded sample of its non-absent
// string representations, using the threshold rules from spec §4.1:
// ≥80% float → float; ≥80% integer → int; >80% boolean → bool; >80%
// ISO-8601/US date → datetime; otherwise text.
func InferDtype(samples []string) drift.Dtype {
	if len(samples) == 0 {
		return drift.DtypeUnknown
	}
	considered := samples
	if len(considered) > dtypeInferenceSampleLimit {
		considered = considered[:dtypeInferenceSampleLimit]
	}

	total := float64(len(considered))
	floatCount, intCount, boolCount, dateCount := 0, 0, 0, 0
	for _, s := range considered {
		if isInteger(s) {
			intCount++
			floatCount++
		} else if isFloat(s) {
			floatCount++
		}
		if isBooleanLiteral(s) {
			boolCount++
		}
		if isDate(s) {
			dateCount++
		}
	}

	if floatCount != 0 && float64(intCount)/total >= 0.80 {
		return drift.DtypeInt
	}
	if float64(floatCount)/total >= 0.80 {
		return drift.DtypeFloat
	}
	if float64(boolCount)/total > 0.80 {
		return drift.DtypeBool
	}
	if float64(dateCount)/total > 0.80 {
		return drift.DtypeDatetime
	}
	return drift.DtypeText
}

func isInteger(s string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil
}

func isFloat(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

func isBooleanLiteral(s string) bool {
	_, ok := booleanLiterals[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

func isDate(s string) bool {
	trimmed := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, trimmed); err == nil {
			return true
		}
	}
	return false
}
