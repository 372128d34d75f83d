package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/revcheck/revcheck/pkg/report"
	"github.com/revcheck/revcheck/pkg/workflow"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	var overallThreshold float64
	var guidedThreshold float64

	cmd := &cobra.Command{
		Use:   "verify <results-file>",
		Short: "Verify evaluation results meet thresholds",
		Long: `Verify that evaluation results meet minimum success rate thresholds.

Exits with code 0 if all thresholds are met, code 1 otherwise.
Use 'revcheck summary' to view detailed results.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := report.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to load results file: %w", err)
			}

			stats := report.CalculateStats(args[0], results)

			overallMet := stats.SuccessRate >= overallThreshold
			guided, hasGuided := stats.ByVariant[workflow.WithInstructions]
			// If no guided transcripts exist, skip the guided threshold check
			guidedMet := !hasGuided || guided.SuccessRate >= guidedThreshold
			passed := overallMet && guidedMet

			outputVerifyResults(cmd.OutOrStdout(), stats, overallThreshold, guidedThreshold, overallMet, guidedMet, passed)

			if !passed {
				// silent error (SilenceErrors: true), sets exit code 1
				return fmt.Errorf("thresholds not met")
			}

			return nil
		},
	}

	cmd.Flags().Float64Var(&overallThreshold, "overall", 0.0, "Minimum overall success rate (0.0-1.0)")
	cmd.Flags().Float64Var(&guidedThreshold, "with-instructions", 0.0, "Minimum success rate for with_instructions transcripts (0.0-1.0)")

	return cmd
}

func outputVerifyResults(out io.Writer, stats report.Stats, overallThreshold, guidedThreshold float64, overallMet, guidedMet, passed bool) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	bold := color.New(color.Bold)

	_, _ = bold.Fprintln(out, "=== Threshold Verification ===")
	fmt.Fprintln(out)

	if overallMet {
		_, _ = green.Fprintf(out, "Overall Success Rate:           %.2f%% >= %.2f%% ✓\n",
			stats.SuccessRate*100, overallThreshold*100)
	} else {
		_, _ = red.Fprintf(out, "Overall Success Rate:           %.2f%% < %.2f%% ✗\n",
			stats.SuccessRate*100, overallThreshold*100)
	}

	guided, hasGuided := stats.ByVariant[workflow.WithInstructions]
	if !hasGuided {
		fmt.Fprintln(out, "With-Instructions Success Rate: N/A (no guided transcripts)")
	} else if guidedMet {
		_, _ = green.Fprintf(out, "With-Instructions Success Rate: %.2f%% >= %.2f%% ✓\n",
			guided.SuccessRate*100, guidedThreshold*100)
	} else {
		_, _ = red.Fprintf(out, "With-Instructions Success Rate: %.2f%% < %.2f%% ✗\n",
			guided.SuccessRate*100, guidedThreshold*100)
	}

	fmt.Fprintln(out)
	if passed {
		_, _ = green.Fprintln(out, "Result: PASSED")
	} else {
		_, _ = red.Fprintln(out, "Result: FAILED")
	}
}
