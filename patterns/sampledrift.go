package patterns

import (
	"sort"
	"strings"
)

// affixCoverageThreshold implements "affixes kept if appear in ≥20% of
// samples" (spec §4.3).
const affixCoverageThreshold = 0.20

// maxCharSetDelta bounds character-set addition/removal reporting to 10
// items each (spec §4.3).
const maxCharSetDelta = 10

// SampleDrift captures sample-level format drift metrics independent of
// the named pattern comparison (spec §4.3).
type SampleDrift struct {
	FormatConsistency    float64
	LengthDistChange     float64
	CharsAdded           []string
	CharsRemoved         []string
	Structural           StructuralChange
}

// StructuralChange reports delimiter, casing and affix shifts between two
// sample sets.
type StructuralChange struct {
	DelimiterShift bool
	CasingShift    bool
	PrefixesLost   []string
	PrefixesGained []string
	SuffixesLost   []string
	SuffixesGained []string
}

func computeSampleDrift(historical, current []string) SampleDrift {
	return SampleDrift{
		FormatConsistency: formatConsistency(current),
		LengthDistChange:  lengthDistributionChange(historical, current),
		CharsAdded:        characterSetDelta(historical, current),
		CharsRemoved:      characterSetDelta(current, historical),
		Structural:        structuralChange(historical, current),
	}
}

// formatConsistency is 1 − distinct_templates/|samples| (spec §4.3): higher
// means the sample is more structurally uniform.
func formatConsistency(samples []string) float64 {
	if len(samples) == 0 {
		return 1.0
	}
	templates := make(map[string]struct{})
	for _, s := range samples {
		templates[charClassTemplate(s)] = struct{}{}
	}
	return 1 - float64(len(templates))/float64(len(samples))
}

func lengthDistributionChange(historical, current []string) float64 {
	mh := meanLength(historical)
	mc := meanLength(current)
	maxLen := mh
	if mc > maxLen {
		maxLen = mc
	}
	if maxLen == 0 {
		return 0
	}
	diff := mh - mc
	if diff < 0 {
		diff = -diff
	}
	return diff / maxLen
}

func meanLength(samples []string) float64 {
	if len(samples) == 0 {
		return 0
	}
	total := 0
	for _, s := range samples {
		total += len(s)
	}
	return float64(total) / float64(len(samples))
}

// characterSetDelta returns, bounded to maxCharSetDelta, the characters
// present in b's samples but absent from a's.
func characterSetDelta(a, b []string) []string {
	setA := charSet(a)
	setB := charSet(b)
	var delta []string
	for c := range setB {
		if _, ok := setA[c]; !ok {
			delta = append(delta, string(c))
		}
	}
	sort.Strings(delta)
	if len(delta) > maxCharSetDelta {
		delta = delta[:maxCharSetDelta]
	}
	return delta
}

func charSet(samples []string) map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, s := range samples {
		for _, r := range s {
			set[r] = struct{}{}
		}
	}
	return set
}

func structuralChange(historical, current []string) StructuralChange {
	hDelims := delimiterUsage(historical)
	cDelims := delimiterUsage(current)
	delimiterShift := !sameKeys(hDelims, cDelims)

	casingShift := dominantCasing(historical) != dominantCasing(current)

	hPrefixes := commonAffixes(historical, true)
	cPrefixes := commonAffixes(current, true)
	hSuffixes := commonAffixes(historical, false)
	cSuffixes := commonAffixes(current, false)

	return StructuralChange{
		DelimiterShift: delimiterShift,
		CasingShift:    casingShift,
		PrefixesLost:   setDiff(hPrefixes, cPrefixes),
		PrefixesGained: setDiff(cPrefixes, hPrefixes),
		SuffixesLost:   setDiff(hSuffixes, cSuffixes),
		SuffixesGained: setDiff(cSuffixes, hSuffixes),
	}
}

var candidateDelimiters = []string{"-", "_", ".", "/", ":", " ", ","}

func delimiterUsage(samples []string) map[string]struct{} {
	used := make(map[string]struct{})
	for _, s := range samples {
		for _, d := range candidateDelimiters {
			if strings.Contains(s, d) {
				used[d] = struct{}{}
			}
		}
	}
	return used
}

func sameKeys(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

// dominantCasing classifies a sample set as "upper", "lower", "mixed" or
// "none" based on the majority of alphabetic samples.
func dominantCasing(samples []string) string {
	upper, lower, mixed := 0, 0, 0
	for _, s := range samples {
		hasUpper := strings.ToLower(s) != s
		hasLower := strings.ToUpper(s) != s
		switch {
		case hasUpper && hasLower:
			mixed++
		case hasUpper:
			upper++
		case hasLower:
			lower++
		}
	}
	switch {
	case mixed >= upper && mixed >= lower && mixed > 0:
		return "mixed"
	case upper >= lower && upper > 0:
		return "upper"
	case lower > 0:
		return "lower"
	default:
		return "none"
	}
}

// commonAffixes finds single-character prefixes/suffixes appearing in at
// least affixCoverageThreshold of samples.
func commonAffixes(samples []string, prefix bool) []string {
	if len(samples) == 0 {
		return nil
	}
	counts := make(map[byte]int)
	for _, s := range samples {
		if s == "" {
			continue
		}
		var c byte
		if prefix {
			c = s[0]
		} else {
			c = s[len(s)-1]
		}
		counts[c]++
	}
	var out []string
	for c, count := range counts {
		if float64(count)/float64(len(samples)) >= affixCoverageThreshold {
			out = append(out, string(c))
		}
	}
	sort.Strings(out)
	return out
}

func setDiff(a, b []string) []string {
	bSet := make(map[string]struct{}, len(b))
	for _, v := range b {
		bSet[v] = struct{}{}
	}
	var diff []string
	for _, v := range a {
		if _, ok := bSet[v]; !ok {
			diff = append(diff, v)
		}
	}
	return diff
}
