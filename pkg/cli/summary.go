package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/revcheck/revcheck/pkg/report"
)

// NewSummaryCmd creates the summary command
func NewSummaryCmd() *cobra.Command {
	var taskFilter string
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "summary <results-file>",
		Short: "Summarize evaluation results from a CSV file",
		Long: `Compute aggregate totals, the per-instructions-variant success
breakdown, and error-pattern tallies from a results CSV.

Examples:
  revcheck summary revcheck-demo-review-out.csv
  revcheck summary --task pr_review --output json results.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := report.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to load results file: %w", err)
			}

			filtered := report.Filter(results, taskFilter)
			if len(filtered) == 0 {
				if taskFilter == "" {
					return errors.New("no results found in file")
				}
				return fmt.Errorf("no results matched filter %q", taskFilter)
			}

			stats := report.CalculateStats(args[0], filtered)

			switch outputFormat {
			case "json":
				data, err := json.MarshalIndent(stats, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal stats: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			case "text":
				printSummary(cmd.OutOrStdout(), stats)
			default:
				return fmt.Errorf("unknown output format %q (expected text or json)", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&taskFilter, "task", "", "Only include results whose task contains this value")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json)")

	return cmd
}
