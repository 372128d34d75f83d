package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/revcheck/revcheck/pkg/eval"
	"github.com/revcheck/revcheck/pkg/report"
	"github.com/revcheck/revcheck/pkg/workflow"
)

// NewRunCmd creates the run command
func NewRunCmd() *cobra.Command {
	var outputFile string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run [eval-config-file]",
		Short: "Run a transcript evaluation",
		Long:  `Run a transcript evaluation using the specified eval configuration file.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := eval.FromFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to load eval config: %w", err)
			}

			runner, err := eval.NewRunner(spec)
			if err != nil {
				return fmt.Errorf("failed to create eval runner: %w", err)
			}

			display := newProgressDisplay(cmd.OutOrStdout(), verbose)

			results, err := runner.RunWithProgress(context.Background(), display.handleProgress)
			if err != nil {
				return fmt.Errorf("eval failed: %w", err)
			}

			out := outputFile
			if out == "" {
				out = spec.Config.OutputFile
			}
			if out == "" {
				out = fmt.Sprintf("revcheck-%s-out.csv", spec.Metadata.Name)
			}
			if !filepath.IsAbs(out) {
				out, err = filepath.Abs(out)
				if err != nil {
					return fmt.Errorf("failed to resolve output path: %w", err)
				}
			}

			if err := report.WriteFile(out, results); err != nil {
				return fmt.Errorf("failed to save results to file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nResults saved to: %s\n", out)

			stats := report.CalculateStats(out, results)
			printSummary(cmd.OutOrStdout(), stats)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Results CSV file (overrides the config's outputFile)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	return cmd
}

// progressDisplay renders runner progress events on the terminal.
type progressDisplay struct {
	out     io.Writer
	verbose bool
	green   *color.Color
	red     *color.Color
	cyan    *color.Color
	bold    *color.Color
}

func newProgressDisplay(out io.Writer, verbose bool) *progressDisplay {
	return &progressDisplay{
		out:     out,
		verbose: verbose,
		green:   color.New(color.FgGreen),
		red:     color.New(color.FgRed),
		cyan:    color.New(color.FgCyan),
		bold:    color.New(color.Bold),
	}
}

func (d *progressDisplay) handleProgress(event eval.ProgressEvent) {
	switch event.Type {
	case eval.EventEvalStart:
		_, _ = d.bold.Fprintf(d.out, "=== %s ===\n", event.Message)

	case eval.EventTranscriptStart:
		if d.verbose {
			_, _ = d.cyan.Fprintf(d.out, "→ %s\n", filepath.Base(event.Path))
		}

	case eval.EventTranscriptComplete:
		status := d.red
		label := "fail"
		if event.Result != nil && event.Result.Success {
			status = d.green
			label = "pass"
		}
		_, _ = status.Fprintf(d.out, "  [%d/%d] %s: %s\n", event.Index+1, event.Total, label, filepath.Base(event.Path))
		if d.verbose && event.Result != nil && event.Result.ErrorPattern != workflow.ErrNone {
			fmt.Fprintf(d.out, "        error pattern: %s\n", event.Result.ErrorPattern)
		}

	case eval.EventEvalComplete:
		_, _ = d.bold.Fprintf(d.out, "=== %s ===\n", event.Message)
	}
}

// printSummary prints aggregate totals and the per-variant breakdown.
func printSummary(out io.Writer, stats report.Stats) {
	bold := color.New(color.Bold)

	fmt.Fprintln(out)
	_, _ = bold.Fprintln(out, "=== Summary ===")
	fmt.Fprintf(out, "Transcripts: %d\n", stats.Total)
	fmt.Fprintf(out, "Succeeded:   %d (%.1f%%)\n", stats.Succeeded, stats.SuccessRate*100)

	if len(stats.ByVariant) > 0 {
		fmt.Fprintln(out)
		_, _ = bold.Fprintln(out, "By instructions variant:")
		for _, variant := range sortedVariantKeys(stats.ByVariant) {
			vs := stats.ByVariant[variant]
			fmt.Fprintf(out, "  %-22s %d/%d (%.1f%%)\n", variant, vs.Succeeded, vs.Total, vs.SuccessRate*100)
		}
	}

	if len(stats.ErrorPatterns) > 0 {
		fmt.Fprintln(out)
		_, _ = bold.Fprintln(out, "Error patterns:")
		for _, pattern := range sortedPatternKeys(stats.ErrorPatterns) {
			fmt.Fprintf(out, "  %-22s %d\n", pattern, stats.ErrorPatterns[pattern])
		}
	}
}

func sortedVariantKeys(m map[workflow.InstructionsVariant]report.VariantStats) []workflow.InstructionsVariant {
	keys := make([]workflow.InstructionsVariant, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func sortedPatternKeys(m map[workflow.ErrorPattern]int) []workflow.ErrorPattern {
	keys := make([]workflow.ErrorPattern, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
