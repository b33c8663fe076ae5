package fingerprint

import (
	"fmt"
	"strconv"
	"strings"

	"driftwatch/domain/core"
	"driftwatch/domain/drift"
)

// serializedFields is the fixed field order for the anchor serialization
// grammar (spec §6): "min, max, dtype, card, null_ratio, unique_ratio,
// optional patterns". Patterns is last precisely so its value, which may
// itself contain the legacy `|` delimiter, never needs escaping.
var serializedFields = []string{"min", "max", "dtype", "card", "null_ratio", "unique_ratio", "patterns"}

const (
	delimiterCurrent = ";"
	delimiterLegacy  = "|"
	nullLiteral      = "null"
)

// Serialize renders a Fingerprint as the delimited key=value string from
// spec §6, always using the current `;` delimiter. Numeric ratios print
// with three fractional digits; absent min/max print as the `null` literal;
// patterns render as a comma-separated list and are omitted entirely when
// empty.
func Serialize(f drift.Fingerprint) string {
	minStr := nullLiteral
	maxStr := nullLiteral
	switch {
	case f.Min != nil:
		minStr = formatNumeric(*f.Min)
		maxStr = formatNumeric(*f.Max)
	case f.MinText != nil:
		minStr = *f.MinText
		maxStr = *f.MaxText
	}

	parts := []string{
		"min=" + minStr,
		"max=" + maxStr,
		"dtype=" + string(f.Dtype),
		"card=" + strconv.Itoa(f.Cardinality),
		"null_ratio=" + formatRatio(f.NullRatio),
		"unique_ratio=" + formatRatio(f.UniqueRatio),
	}
	if len(f.RegexPatterns) > 0 {
		parts = append(parts, "patterns="+strings.Join(f.RegexPatterns, ","))
	}
	return strings.Join(parts, delimiterCurrent)
}

// Deserialize parses the anchor serialization grammar from spec §6. Both the
// current `;` delimiter and the legacy `|` delimiter are accepted; `;` is
// preferred whenever present in the input, so a patterns value containing
// `|` round-trips correctly (spec §6, §8 invariant 1).
func Deserialize(s string) (drift.Fingerprint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return drift.Fingerprint{}, core.NewInvalidInput("fingerprint: empty serialization")
	}

	delim := delimiterLegacy
	if strings.Contains(s, delimiterCurrent) {
		delim = delimiterCurrent
	}

	values, err := splitGrammar(s, delim)
	if err != nil {
		return drift.Fingerprint{}, err
	}

	raw, ok := values["dtype"]
	if !ok {
		return drift.Fingerprint{}, core.NewInvalidInput("fingerprint: missing dtype field")
	}
	f := drift.Fingerprint{Dtype: drift.Dtype(raw)}

	card, ok := values["card"]
	if !ok {
		return drift.Fingerprint{}, core.NewInvalidInput("fingerprint: missing card field")
	}
	cardinality, err := strconv.Atoi(card)
	if err != nil {
		return drift.Fingerprint{}, core.NewInvalidInput("fingerprint: malformed card field: " + card)
	}
	f.Cardinality = cardinality

	if f.NullRatio, err = parseRatio(values, "null_ratio"); err != nil {
		return drift.Fingerprint{}, err
	}
	if f.UniqueRatio, err = parseRatio(values, "unique_ratio"); err != nil {
		return drift.Fingerprint{}, err
	}

	if minRaw, present := values["min"]; present {
		maxRaw := values["max"]
		if f.Dtype.IsNumeric() {
			if minRaw != nullLiteral {
				if minVal, maxVal, err := parseNumericPair(minRaw, maxRaw); err == nil {
					f.Min, f.Max = &minVal, &maxVal
				} else {
					return drift.Fingerprint{}, err
				}
			}
		} else if minRaw != nullLiteral {
			minCopy, maxCopy := minRaw, maxRaw
			f.MinText, f.MaxText = &minCopy, &maxCopy
		}
	}

	if patterns, ok := values["patterns"]; ok && patterns != "" {
		f.RegexPatterns = strings.Split(patterns, ",")
	}

	return f, nil
}

// splitGrammar locates each known field's value inside s by finding the
// position of every `key=` marker and slicing up to the next marker found
// (or the end of the string), rather than blindly splitting on delim — this
// keeps a delimiter character embedded in the trailing patterns value from
// corrupting the parse (design note: "grammar-driven parser rather than
// ad-hoc split").
func splitGrammar(s, delim string) (map[string]string, error) {
	type occurrence struct {
		field string
		start int
		vstart int
	}
	var occurrences []occurrence
	for _, field := range serializedFields {
		marker := field + "="
		idx := strings.Index(s, marker)
		if idx < 0 {
			continue
		}
		// Guard against matching a substring of another field (e.g. "min"
		// inside some future field name); every field here is delimiter- or
		// string-start bounded.
		if idx > 0 {
			prevChar := s[idx-1 : idx]
			if prevChar != delim {
				continue
			}
		}
		occurrences = append(occurrences, occurrence{field: field, start: idx, vstart: idx + len(marker)})
	}
	if len(occurrences) == 0 {
		return nil, core.NewInvalidInput("fingerprint: no recognized fields in serialization")
	}

	values := make(map[string]string, len(occurrences))
	for i, occ := range occurrences {
		end := len(s)
		if i+1 < len(occurrences) {
			end = occurrences[i+1].start
			end -= len(delim)
			if end < occ.vstart {
				end = occ.vstart
			}
		}
		values[occ.field] = s[occ.vstart:end]
	}
	return values, nil
}

func parseRatio(values map[string]string, field string) (float64, error) {
	raw, ok := values[field]
	if !ok {
		return 0, core.NewInvalidInput("fingerprint: missing " + field + " field")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, core.NewInvalidInput("fingerprint: malformed " + field + " field: " + raw)
	}
	return v, nil
}

func parseNumericPair(minRaw, maxRaw string) (float64, float64, error) {
	minVal, err := strconv.ParseFloat(minRaw, 64)
	if err != nil {
		return 0, 0, core.NewInvalidInput("fingerprint: malformed min field: " + minRaw)
	}
	maxVal, err := strconv.ParseFloat(maxRaw, 64)
	if err != nil {
		return 0, 0, core.NewInvalidInput("fingerprint: malformed max field: " + maxRaw)
	}
	return minVal, maxVal, nil
}

func formatNumeric(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatRatio(r float64) string {
	return fmt.Sprintf("%.3f", r)
}
