package cmd

import (
	"github.com/octoprofile/octoprofile/core"
	"github.com/octoprofile/octoprofile/internal/contract"
	"github.com/octoprofile/octoprofile/internal/gh"
	"github.com/spf13/cobra"
)

// reportCmd prints the console analysis instead of writing SVGs.
var reportCmd = &cobra.Command{
	Use:   "report <username>",
	Short: "Print a contribution analysis report to the console.",
	Long: `Fetch a user's contribution history and print the aggregated analysis
as a console report instead of rendering SVG cards.

Shows run totals, a ranked language table with weighted commit counts,
distribution bars, a yearly breakdown and the most active repositories.

Examples:
  # Full report for the default five-year window
  octoprofile report octocat

  # Narrow window without line count queries
  octoprofile report octocat --from 2024-01-01 --no-line-counts`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		fetcher := gh.NewClient(cfg.Token, gh.WithDelay(cfg.RequestDelay))
		if err := core.ExecuteReport(rootCtx, cfg, fetcher); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
	},
}
