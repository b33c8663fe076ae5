package patterns

import "fmt"

// fixedLengthCoverageThreshold and maxDistinctLengths implement spec §4.3:
// "fixed-length patterns when distinct lengths ≤ 3, retained if ≥20% coverage".
const (
	maxDistinctLengths          = 3
	fixedLengthCoverageThreshold = 0.20
	charClassSampleLimit         = 20
	charClassCoverageThreshold   = 0.30
)

// fixedLengthPatterns reports a "LEN:<n>" pattern for each string length
// that covers at least fixedLengthCoverageThreshold of samples, but only
// when the column has few distinct lengths overall.
func fixedLengthPatterns(samples []string) []Match {
	counts := make(map[int]int)
	for _, s := range samples {
		counts[len(s)]++
	}
	if len(counts) > maxDistinctLengths {
		return nil
	}

	var out []Match
	total := float64(len(samples))
	for length, count := range counts {
		coverage := float64(count) / total
		if coverage >= fixedLengthCoverageThreshold {
			out = append(out, Match{Pattern: fmt.Sprintf("LEN:%d", length), Frequency: coverage})
		}
	}
	return out
}

// characterClassPatterns builds a per-character-class template for a
// bounded sample of values (≤20) and keeps templates covering at least
// charClassCoverageThreshold of the considered samples (spec §4.3).
func characterClassPatterns(samples []string) []Match {
	bounded := samples
	if len(bounded) > charClassSampleLimit {
		bounded = bounded[:charClassSampleLimit]
	}
	if len(bounded) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, s := range bounded {
		counts[charClassTemplate(s)]++
	}

	var out []Match
	total := float64(len(bounded))
	for template, count := range counts {
		coverage := float64(count) / total
		if coverage >= charClassCoverageThreshold {
			out = append(out, Match{Pattern: "TPL:" + template, Frequency: coverage})
		}
	}
	return out
}

// charClassTemplate maps each rune to a class marker: 9 for digits, A for
// uppercase letters, a for lowercase letters, and the rune itself otherwise.
func charClassTemplate(s string) string {
	runes := []rune(s)
	out := make([]rune, len(runes))
	for i, r := range runes {
		switch {
		case r >= '0' && r <= '9':
			out[i] = '9'
		case r >= 'A' && r <= 'Z':
			out[i] = 'A'
		case r >= 'a' && r <= 'z':
			out[i] = 'a'
		default:
			out[i] = r
		}
	}
	return string(out)
}
