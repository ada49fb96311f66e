// Package handlers defines the CLI surface.
package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"autonews/internal/config"
)

var cfgFile string

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "autonews",
		Short: "Turn raw news feeds into an automotive intelligence report",
		Long: `Autonews - Automotive News Intelligence Pipeline

Filters a corpus of pre-extracted news articles down to automotive stories,
assigns each to one of eight fixed categories, groups duplicate coverage into
stories and writes a structured JSON report.

Examples:
  # Run the full pipeline over the default input directory
  autonews run

  # Run against a specific corpus and output path
  autonews run --input data/articles --output output/results.json

  # List the fixed categories
  autonews categories`,
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .autonews.yaml)")

	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewCategoriesCmd())

	cobra.OnInitialize(initConfig)

	return rootCmd
}

// initConfig reads the config file and environment variables.
func initConfig() {
	if _, err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load config: %v\n", err)
		// Don't exit - allow running with just environment variables
	}
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
