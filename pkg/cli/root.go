// Package cli provides the revcheck commands for running transcript
// evaluations and inspecting their results.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root revcheck command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "revcheck",
		Short: "PR-review agent transcript evaluator",
		Long: `revcheck evaluates recorded agent chat transcripts against the expected
GitHub pull-request review workflows. It classifies each transcript's
tool-call sequence, tallies tool usage, flags known failure patterns, and
writes a CSV results file with an aggregate summary.`,
	}

	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewSummaryCmd())
	rootCmd.AddCommand(NewVerifyCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
