// =============================================================================
// Beer Review Extractor - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (beerparse)
//   ├── processCmd (beerparse process <input-file> <output-dir>)
//   ├── headersCmd (beerparse headers <input-file>)
//   └── versionCmd (beerparse version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/beer-review-extractor/internal/config"
	"github.com/ginjaninja78/beer-review-extractor/internal/converter"
)

// cfgFile holds the path to the configuration file.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "beerparse",
	Short: "Beer Review Extractor - Split a beer review dump into CSV tables",
	Long: `Beer Review Extractor reads a line-oriented review dump, one object per
line, and writes three CSV tables:

  beers.csv    one row per distinct beer, first occurrence wins
  reviews.csv  one row per review, in file order
  users.csv    one row per distinct reviewer

Line 0 of the dump declares the field names; every later line is a review.
A truncated trailing line ends parsing normally.

Example Usage:
  beerparse process ./beeradvocate.json ./out
  beerparse process ./beeradvocate.json ./out --workbook reviews.xlsx
  beerparse headers ./beeradvocate.json`,

	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultPath,
		"Path to the configuration file (optional)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// loadConfig loads the configuration named by --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// newLogger builds the logger for a command from the configuration.
func newLogger(cmd *cobra.Command, cfg *config.Config) (converter.Logger, error) {
	return converter.NewLogger(cmd.ErrOrStderr(), cfg.Logging.Level)
}
