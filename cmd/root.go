package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/octoprofile/octoprofile/internal/contract"
	"github.com/octoprofile/octoprofile/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "octoprofile",
	Short:              "Generate SVG profile cards from GitHub contribution history.",
	Long:               `Octoprofile queries the GitHub GraphQL API for a user's contribution history and renders it as themed SVG profile cards.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in ENV variables if set.
func initConfig() {
	// Set environment variable prefix
	viper.SetEnvPrefix("OCTOPROFILE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// GITHUB_TOKEN is the conventional credential variable, so accept it
	// alongside the prefixed form.
	_ = viper.BindEnv("token", "OCTOPROFILE_TOKEN", "GITHUB_TOKEN")

	// Set defaults in Viper
	viper.SetDefault("years", contract.DefaultYearsBack)
	viper.SetDefault("min-commits", contract.DefaultMinCommits)
	viper.SetDefault("top-n", contract.DefaultTopLanguages)
	viper.SetDefault("style", string(schema.BothStyles))
	viper.SetDefault("theme", string(schema.BothThemes))
	viper.SetDefault("out", contract.DefaultOutBase)
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ *cobra.Command, args []string) error {
	// 1. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 2. Handle the positional username (which Viper doesn't do).
	if len(args) == 1 {
		input.Login = args[0]
	}

	// 3. Run all validation and complex parsing.
	// This function populates the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
