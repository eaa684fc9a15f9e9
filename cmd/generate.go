package cmd

import (
	"github.com/octoprofile/octoprofile/core"
	"github.com/octoprofile/octoprofile/internal/contract"
	"github.com/octoprofile/octoprofile/internal/gh"
	"github.com/spf13/cobra"
)

// generateCmd runs the full pipeline and writes SVG cards.
var generateCmd = &cobra.Command{
	Use:   "generate <username>",
	Short: "Generate SVG profile cards for a GitHub user.",
	Long: `Fetch a user's contribution history and render it as SVG profile cards.

Commits are attributed to languages proportionally to each repository's
language byte share, so a repository that is 60% Go and 40% TypeScript
credits both languages for every commit instead of just the primary one.

Examples:
  # Both styles, both themes (four files)
  octoprofile generate octocat

  # One dark terminal card covering the last two years
  octoprofile generate octocat --style terminal --theme dark --years 2

  # Exclude forks and export the underlying numbers
  octoprofile generate octocat --exclude-forks --output report.json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		fetcher := gh.NewClient(cfg.Token, gh.WithDelay(cfg.RequestDelay))
		if err := core.ExecuteGenerate(rootCtx, cfg, fetcher); err != nil {
			contract.LogFatal("Cannot generate cards", err)
		}
	},
}
