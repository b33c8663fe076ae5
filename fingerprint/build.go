package fingerprint

import (
	"sort"
	"strconv"

	"driftwatch/domain/cell"
	"driftwatch/domain/drift"
	"driftwatch/patterns"
)

// Build derives a Fingerprint from a column of values (spec §4.1). Build is
// total: it never fails, and an empty column yields a Fingerprint with
// dtype unknown, cardinality=0, null_ratio=0, unique_ratio=0, both min/max
// absent, and empty samples and patterns (spec §4.1).
func Build(values []cell.Value, sampleLimit int, explicitPatterns []string) drift.Fingerprint {
	if sampleLimit <= 0 {
		sampleLimit = 200
	}

	total := len(values)
	if total == 0 {
		return drift.Fingerprint{Dtype: drift.DtypeUnknown}
	}

	var nonAbsent []cell.Value
	for _, v := range values {
		if !v.IsAbsent() {
			nonAbsent = append(nonAbsent, v)
		}
	}
	nullRatio := float64(total-len(nonAbsent)) / float64(total)

	seen := make(map[string]struct{}, len(nonAbsent))
	samples := make([]string, 0, sampleLimit)
	stringsForInference := make([]string, 0, len(nonAbsent))
	cardinality := 0
	for _, v := range nonAbsent {
		s := v.String()
		stringsForInference = append(stringsForInference, s)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		cardinality++
		if len(samples) < sampleLimit {
			samples = append(samples, s)
		}
	}
	uniqueRatio := 0.0
	if len(nonAbsent) > 0 {
		uniqueRatio = float64(cardinality) / float64(len(nonAbsent))
	}

	dtype := InferDtype(stringsForInference)

	var min, max *float64
	var minText, maxText *string
	if dtype.IsNumeric() {
		min, max = numericRange(nonAbsent)
	} else {
		minText, maxText = lexicographicRange(stringsForInference)
	}

	analyzer := patterns.New(explicitPatterns)
	matches := analyzer.ExtractPatterns(samples)
	regexPatterns := make([]string, 0, len(matches))
	for _, m := range matches {
		regexPatterns = append(regexPatterns, m.Pattern)
	}
	sort.Strings(regexPatterns)

	return drift.Fingerprint{
		Dtype:         dtype,
		Cardinality:   cardinality,
		NullRatio:     nullRatio,
		UniqueRatio:   uniqueRatio,
		Min:           min,
		Max:           max,
		MinText:       minText,
		MaxText:       maxText,
		SampleValues:  samples,
		RegexPatterns: regexPatterns,
	}
}

func numericRange(values []cell.Value) (*float64, *float64) {
	var min, max float64
	found := false
	for _, v := range values {
		if !v.IsNumeric() {
			continue
		}
		f := v.AsFloat64()
		if !found {
			min, max = f, f
			found = true
			continue
		}
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	if !found {
		return nil, nil
	}
	return &min, &max
}

func lexicographicRange(samples []string) (*string, *string) {
	if len(samples) == 0 {
		return nil, nil
	}
	min, max := samples[0], samples[0]
	for _, s := range samples[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return &min, &max
}

// ParseNumericSamples parses a Fingerprint's stringified sample values as
// floats, skipping any that do not parse. Detectors use this to rebuild a
// baseline numeric series from an Anchor's fingerprint (spec §4.4.1).
func ParseNumericSamples(samples []string) []float64 {
	out := make([]float64, 0, len(samples))
	for _, s := range samples {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			out = append(out, f)
		}
	}
	return out
}
