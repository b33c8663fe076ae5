// Package patterns extracts and compares regex/structural patterns
// characteristic of a column's textual values (spec §4.3 PatternAnalyzer).
package patterns

import (
	"regexp"
	"sort"
)

// Match is one pattern (library, explicit or structural) together with the
// fraction of samples it matched.
type Match struct {
	Pattern   string
	Frequency float64
	Semantic  bool
	Explicit  bool
}

// Analyzer extracts and compares patterns against a fixed set of explicit
// patterns supplied at construction time (e.g. from a prior Anchor).
type Analyzer struct {
	explicit []*regexp.Regexp
	rawExplicit []string
}

// New builds an Analyzer that additionally tracks the given explicit
// patterns alongside the built-in semantic library.
func New(explicitPatterns []string) *Analyzer {
	a := &Analyzer{rawExplicit: explicitPatterns}
	for _, p := range explicitPatterns {
		if re, err := regexp.Compile(p); err == nil {
			a.explicit = append(a.explicit, re)
		}
	}
	return a
}

// ExtractPatterns computes match frequency for every explicit and library
// pattern against samples, plus structural (fixed-length and character-class)
// patterns, deduplicated by pattern string keeping the highest frequency
// (spec §4.3).
func (a *Analyzer) ExtractPatterns(samples []string) []Match {
	if len(samples) == 0 {
		return nil
	}

	byPattern := make(map[string]Match)

	for i, re := range a.explicit {
		freq := matchFrequency(re, samples)
		byPattern[a.rawExplicit[i]] = Match{Pattern: a.rawExplicit[i], Frequency: freq, Explicit: true}
	}

	for _, lib := range semanticLibrary {
		freq := matchFrequency(lib.regex, samples)
		if freq > lib.minFrequency {
			keepHigher(byPattern, Match{Pattern: lib.name, Frequency: freq, Semantic: true})
		}
	}

	for _, m := range fixedLengthPatterns(samples) {
		keepHigher(byPattern, m)
	}
	for _, m := range characterClassPatterns(samples) {
		keepHigher(byPattern, m)
	}

	out := make([]Match, 0, len(byPattern))
	for _, m := range byPattern {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pattern < out[j].Pattern })
	return out
}

func keepHigher(byPattern map[string]Match, m Match) {
	if existing, ok := byPattern[m.Pattern]; !ok || m.Frequency > existing.Frequency {
		byPattern[m.Pattern] = m
	}
}

func matchFrequency(re *regexp.Regexp, samples []string) float64 {
	matches := 0
	for _, s := range samples {
		if re.MatchString(s) {
			matches++
		}
	}
	return float64(matches) / float64(len(samples))
}

// Similarity computes the weighted frequency-overlap score between two
// pattern sets (spec §4.3): for each pattern present on either side, weight
// = max(freq_hist, freq_curr); shared patterns contribute
// (1 - |Δfreq|)·weight, patterns unique to either side contribute 0.
func Similarity(historical, current []Match) float64 {
	if len(historical) == 0 && len(current) == 0 {
		return 1.0
	}

	histFreq := make(map[string]float64, len(historical))
	for _, m := range historical {
		histFreq[m.Pattern] = m.Frequency
	}
	curFreq := make(map[string]float64, len(current))
	for _, m := range current {
		curFreq[m.Pattern] = m.Frequency
	}

	seen := make(map[string]struct{}, len(histFreq)+len(curFreq))
	for p := range histFreq {
		seen[p] = struct{}{}
	}
	for p := range curFreq {
		seen[p] = struct{}{}
	}

	totalWeight := 0.0
	totalContribution := 0.0
	for p := range seen {
		fh, inHist := histFreq[p]
		fc, inCur := curFreq[p]
		weight := fh
		if fc > weight {
			weight = fc
		}
		totalWeight += weight

		if inHist && inCur {
			delta := fh - fc
			if delta < 0 {
				delta = -delta
			}
			totalContribution += (1 - delta) * weight
		}
		// unique-to-current (and, symmetrically, unique-to-historical)
		// patterns contribute 0·weight.
	}

	if totalWeight == 0 {
		return 1.0
	}
	return totalContribution / totalWeight
}

// Four-level stability labels, shared with the format detector's severity
// map (spec §4.4.2).
const (
	StabilityStable       = "stable"
	StabilityMinorChange   = "minor_change"
	StabilityMajorChange   = "major_change"
	StabilityFormatShift   = "format_shift"
)

// Result is the outcome of comparing a historical and current sample set.
type Result struct {
	Similarity      float64
	NewPatterns     []string
	LostPatterns    []string
	ChangedPatterns []string
	SampleDrift     SampleDrift
	Stability       string
}

// changedPatternDeltaThreshold is the frequency-delta above which a
// pattern present on both sides is reported as "changed" rather than
// merely noisy (policy choice, spec leaves the exact cut unspecified).
const changedPatternDeltaThreshold = 0.20

// Analyze compares historical and current sample sets end to end.
func (a *Analyzer) Analyze(historical, current []string) Result {
	histMatches := a.ExtractPatterns(historical)
	curMatches := a.ExtractPatterns(current)

	similarity := Similarity(histMatches, curMatches)

	histFreq := make(map[string]float64, len(histMatches))
	for _, m := range histMatches {
		histFreq[m.Pattern] = m.Frequency
	}
	curFreq := make(map[string]float64, len(curMatches))
	for _, m := range curMatches {
		curFreq[m.Pattern] = m.Frequency
	}

	var newPatterns, lostPatterns, changedPatterns []string
	for p, fc := range curFreq {
		if fh, ok := histFreq[p]; ok {
			delta := fh - fc
			if delta < 0 {
				delta = -delta
			}
			if delta > changedPatternDeltaThreshold {
				changedPatterns = append(changedPatterns, p)
			}
		} else {
			newPatterns = append(newPatterns, p)
		}
	}
	for p := range histFreq {
		if _, ok := curFreq[p]; !ok {
			lostPatterns = append(lostPatterns, p)
		}
	}
	sort.Strings(newPatterns)
	sort.Strings(lostPatterns)
	sort.Strings(changedPatterns)

	sampleDrift := computeSampleDrift(historical, current)

	return Result{
		Similarity:      similarity,
		NewPatterns:     newPatterns,
		LostPatterns:    lostPatterns,
		ChangedPatterns: changedPatterns,
		SampleDrift:     sampleDrift,
		Stability:       classifyStability(similarity, len(newPatterns)+len(lostPatterns), sampleDrift.FormatConsistency, lostPatterns),
	}
}

// classifyStability derives the four-level stability label from similarity,
// churn (new+lost pattern count) and sample-level format consistency.
func classifyStability(similarity float64, churn int, formatConsistency float64, lost []string) string {
	hasSemanticLoss := false
	for _, p := range lost {
		if isSemanticName(p) {
			hasSemanticLoss = true
			break
		}
	}

	switch {
	case similarity >= 0.95 && churn == 0 && !hasSemanticLoss:
		return StabilityStable
	case similarity >= 0.80 && churn <= 2:
		return StabilityMinorChange
	case similarity >= 0.50 && formatConsistency >= 0.3:
		return StabilityMajorChange
	default:
		return StabilityFormatShift
	}
}
