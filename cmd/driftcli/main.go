package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"driftwatch/domain/cell"
	"driftwatch/domain/core"
	"driftwatch/domain/drift"
	"driftwatch/engine"
	"driftwatch/fingerprint"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "driftcli",
		Short: "driftcli evaluates a column against a baseline anchor for drift",
	}

	rootCmd.AddCommand(
		newEvaluateCmd(),
		newFingerprintCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newEvaluateCmd() *cobra.Command {
	var anchorFingerprint string
	var valuesFile string
	var dataset, column string
	var markdownOut bool
	var fast bool

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a column's current values against a baseline fingerprint",
		Long: `Evaluate a column's current values against a baseline anchor fingerprint.

Example: driftcli evaluate --anchor-fingerprint "min=0;max=100;dtype=int;card=92;null_ratio=0.010;unique_ratio=0.920" --values values.txt --dataset orders --column amount`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd.Context(), anchorFingerprint, valuesFile, dataset, column, markdownOut, fast)
		},
	}

	cmd.Flags().StringVar(&anchorFingerprint, "anchor-fingerprint", "", "serialized baseline fingerprint (required)")
	cmd.Flags().StringVar(&valuesFile, "values", "", "path to a newline-delimited file of current column values (required)")
	cmd.Flags().StringVar(&dataset, "dataset", "", "dataset name, for the report")
	cmd.Flags().StringVar(&column, "column", "", "column name, for the report")
	cmd.Flags().BoolVar(&markdownOut, "markdown", false, "print the report as Markdown instead of JSON")
	cmd.Flags().BoolVar(&fast, "fast", false, "use the reduced-cost FastPath evaluation instead of the full pipeline")
	cmd.MarkFlagRequired("anchor-fingerprint")
	cmd.MarkFlagRequired("values")

	return cmd
}

func newFingerprintCmd() *cobra.Command {
	var valuesFile string
	var sampleLimit int

	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Build and serialize a baseline fingerprint from a column of values",
		Long: `Build a Fingerprint from a newline-delimited file of values and print its
serialized form, suitable for --anchor-fingerprint on a later evaluate call.

Example: driftcli fingerprint --values baseline.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFingerprint(valuesFile, sampleLimit)
		},
	}

	cmd.Flags().StringVar(&valuesFile, "values", "", "path to a newline-delimited file of baseline column values (required)")
	cmd.Flags().IntVar(&sampleLimit, "sample-limit", 200, "max sample values retained in the fingerprint")
	cmd.MarkFlagRequired("values")

	return cmd
}

func runEvaluate(ctx context.Context, anchorFingerprint, valuesFile, dataset, column string, markdownOut, fast bool) error {
	baseline, err := fingerprint.Deserialize(anchorFingerprint)
	if err != nil {
		return fmt.Errorf("driftcli: decode anchor fingerprint: %w", err)
	}

	raw, err := readLines(valuesFile)
	if err != nil {
		return fmt.Errorf("driftcli: read values file: %w", err)
	}
	values := toColumnValues(raw)

	cfg := drift.DefaultConfig()
	current := fingerprint.Build(values, cfg.SampleValueLimit, baseline.RegexPatterns)

	anchor := drift.Anchor{
		AnchorID:    core.NewAnchorID(),
		Dataset:     dataset,
		ColumnName:  column,
		Fingerprint: baseline,
		FirstSeen:   core.Now(),
		LastSeen:    core.Now(),
	}

	eng := engine.New(cfg)

	var report drift.DriftReport
	if fast {
		report, err = eng.EvaluateFast(ctx, anchor, values, current)
	} else {
		report, err = eng.Evaluate(ctx, anchor, values, current)
	}
	if err != nil {
		return fmt.Errorf("driftcli: evaluate: %w", err)
	}

	if markdownOut {
		fmt.Println(report.RenderMarkdown())
		return nil
	}

	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("driftcli: encode report: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

func runFingerprint(valuesFile string, sampleLimit int) error {
	raw, err := readLines(valuesFile)
	if err != nil {
		return fmt.Errorf("driftcli: read values file: %w", err)
	}
	values := toColumnValues(raw)

	fp := fingerprint.Build(values, sampleLimit, nil)
	fmt.Println(fingerprint.Serialize(fp))
	return nil
}

func readLines(path string) ([]string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lines []string
	start := 0
	for i, r := range contents {
		if r == '\n' {
			lines = append(lines, string(contents[start:i]))
			start = i + 1
		}
	}
	if start < len(contents) {
		lines = append(lines, string(contents[start:]))
	}
	return lines, nil
}

// toColumnValues coerces raw text lines into cell.Value, inferring the
// column's dtype first so every value is parsed consistently.
func toColumnValues(raw []string) []cell.Value {
	dtype := fingerprint.InferDtype(raw)
	values := make([]cell.Value, 0, len(raw))
	for _, line := range raw {
		values = append(values, coerce(line, dtype))
	}
	return values
}

func coerce(text string, dtype drift.Dtype) cell.Value {
	if text == "" {
		return cell.Absent()
	}

	switch dtype {
	case drift.DtypeInt:
		var i int64
		if _, err := fmt.Sscanf(text, "%d", &i); err == nil {
			return cell.Integer(i)
		}
	case drift.DtypeFloat:
		var f float64
		if _, err := fmt.Sscanf(text, "%g", &f); err == nil {
			return cell.Float(f)
		}
	case drift.DtypeBool:
		if text == "true" || text == "false" {
			return cell.Boolean(text == "true")
		}
	}
	return cell.Text(text)
}
