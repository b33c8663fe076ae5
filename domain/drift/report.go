package drift

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
)

// RenderMarkdown renders a human-readable Markdown summary of the report:
// overall severity and confidence, one line per flagged drift type, and
// the advisory recommendations. It is a convenience for the CLI's
// --markdown output mode, not used anywhere in the detection core itself.
func (r DriftReport) RenderMarkdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Drift report: %s\n\n", r.ColumnName)

	if r.Aborted {
		fmt.Fprintf(&b, "**Aborted**: %s\n", r.AbortReason)
		return b.String()
	}

	fmt.Fprintf(&b, "**Severity**: %s  \n", r.Severity)
	fmt.Fprintf(&b, "**Confidence**: %.2f  \n", r.ConfidenceScore)
	fmt.Fprintf(&b, "**Drift detected**: %t\n\n", r.DriftDetected)

	if len(r.DriftTypes) > 0 {
		b.WriteString("## Flagged drift types\n\n")
		for _, dt := range r.DriftTypes {
			fmt.Fprintf(&b, "- **%s** (%s): %s — metric %.4f vs threshold %.4f\n",
				dt.Kind, dt.Severity, dt.Description, dt.MetricValue, dt.Threshold)
		}
		b.WriteString("\n")
	}

	if len(r.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}

	return b.String()
}

// RenderHTML renders the same summary as RenderMarkdown, converted to
// HTML via the teacher's markdown renderer.
func (r DriftReport) RenderHTML() string {
	return string(markdown.ToHTML([]byte(r.RenderMarkdown()), nil, nil))
}
