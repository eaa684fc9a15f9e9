// Package cmd defines the command-line interface for octoprofile.
package cmd

import (
	"github.com/octoprofile/octoprofile/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("token", "", "GitHub API token (falls back to GITHUB_TOKEN)")
	rootCmd.PersistentFlags().Int("years", contract.DefaultYearsBack, "Number of years to look back from today")
	rootCmd.PersistentFlags().String("from", "", "Window start date in YYYY-MM-DD (overrides --years)")
	rootCmd.PersistentFlags().String("to", "", "Window end date in YYYY-MM-DD (defaults to today)")
	rootCmd.PersistentFlags().Bool("exclude-forks", false, "Drop forked repositories from the analysis")
	rootCmd.PersistentFlags().Bool("exclude-private", false, "Drop private repositories from the analysis")
	rootCmd.PersistentFlags().Int("min-commits", contract.DefaultMinCommits, "Minimum commits for a repository to count")
	rootCmd.PersistentFlags().Bool("no-line-counts", false, "Skip the per-repository line count queries")
	rootCmd.PersistentFlags().String("output", "", "Optional path to write the report as JSON")
	rootCmd.PersistentFlags().String("export-parquet", "", "Optional path to write per-language rows as Parquet")
	rootCmd.PersistentFlags().IntP("top-n", "n", contract.DefaultTopLanguages, "Number of languages to display")
	rootCmd.PersistentFlags().Int("delay", 0, "Delay between API requests in milliseconds (0 = default)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored console output (yes/no/true/false/1/0)")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of generateCmd to Viper
	generateCmd.Flags().StringP("style", "s", "both", "Card style: neofetch, terminal, both")
	generateCmd.Flags().StringP("theme", "t", "both", "Card theme: dark, light, both")
	generateCmd.Flags().StringP("out", "o", contract.DefaultOutBase, "Base name for output SVG files")
	if err := viper.BindPFlags(generateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding generate flags", err)
	}

	// Bind all flags of reportCmd to Viper
	reportCmd.Flags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	reportCmd.Flags().Bool("no-yearly", false, "Skip the yearly breakdown section")
	if err := viper.BindPFlags(reportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding report flags", err)
	}
}
