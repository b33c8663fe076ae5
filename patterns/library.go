package patterns

import "regexp"

// semanticPattern is one well-known library pattern along with the
// minimum match frequency required to keep it (spec §4.3: "0.10 (0.05 for
// semantic-name style)").
type semanticPattern struct {
	name           string
	regex          *regexp.Regexp
	minFrequency   float64
}

// semanticLibrary is the fixed set of well-known patterns every
// PatternAnalyzer checks samples against, in addition to caller-supplied
// explicit patterns (spec §4.3).
var semanticLibrary = []semanticPattern{
	{"email", regexp.MustCompile(`^[\w.+-]+@[\w-]+\.[a-zA-Z]{2,}$`), 0.10},
	{"phone", regexp.MustCompile(`^\+?1?[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}$`), 0.10},
	{"uuid", regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`), 0.10},
	{"iso_date", regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), 0.10},
	{"us_date", regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`), 0.10},
	{"ssn", regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`), 0.10},
	{"card", regexp.MustCompile(`^\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}$`), 0.10},
	{"ip", regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`), 0.10},
	{"url", regexp.MustCompile(`^https?://[^\s]+$`), 0.10},
	{"numeric", regexp.MustCompile(`^-?\d+(\.\d+)?$`), 0.10},
	{"alpha", regexp.MustCompile(`^[a-zA-Z]+$`), 0.10},
	{"alphanumeric", regexp.MustCompile(`^[a-zA-Z0-9]+$`), 0.10},
	{"currency", regexp.MustCompile(`^[$€£¥]\s?-?\d+(\.\d{2})?$`), 0.10},
	{"percentage", regexp.MustCompile(`^-?\d+(\.\d+)?%$`), 0.10},
	{"postal_code", regexp.MustCompile(`^\d{5}(-\d{4})?$`), 0.10},
	// Semantic-name-style patterns: looser shapes, held to the lower 0.05
	// frequency floor because any single literal match is weaker evidence.
	{"name", regexp.MustCompile(`^[A-Z][a-z]+(\s[A-Z][a-z]+)+$`), 0.05},
	{"company", regexp.MustCompile(`^[A-Z][\w&.,' -]*\s(Inc|LLC|Ltd|Corp|Co)\.?$`), 0.05},
	{"address", regexp.MustCompile(`^\d+\s[\w\s.]+(St|Ave|Rd|Blvd|Ln|Dr)\.?$`), 0.05},
}

// isSemanticName reports whether a library pattern uses the looser
// 0.05-frequency floor, which feeds the format-detector severity elevation
// rule (spec §4.4.2: "Elevate one level if any lost pattern carried a known
// semantic label").
func isSemanticName(name string) bool {
	for _, p := range semanticLibrary {
		if p.name == name && p.minFrequency == 0.05 {
			return true
		}
	}
	return false
}

// IsSemanticPattern reports whether name is one of the looser,
// semantic-name-style library patterns (e.g. "name", "company", "address").
// The format detector uses this to decide whether a lost pattern should
// elevate severity by one level (spec §4.4.2).
func IsSemanticPattern(name string) bool { return isSemanticName(name) }
