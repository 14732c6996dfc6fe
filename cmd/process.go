// =============================================================================
// Beer Review Extractor - Process Command
// =============================================================================
//
// This file defines the 'process' command, which runs a full extraction.
//
// COMMAND USAGE:
//   beerparse process <input-file> <output-dir> [flags]
//
// FLAGS:
//   --workbook : Also write an .xlsx copy of the tables (file name)
//   --summary  : Also write a plain-text run summary
//   --cwd      : Write output into the working directory, not <output-dir>
//
// EXIT BEHAVIOUR:
//   - Wrong argument count     : usage is printed, exit status 1
//   - Input/output path invalid: message is printed, nothing is written,
//                                exit status 0
//   - Fatal parse error        : message names the line, nothing is written,
//                                exit status 1
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/beer-review-extractor/internal/converter"
	"github.com/ginjaninja78/beer-review-extractor/internal/validation"
)

// workbook is the file name of the optional .xlsx copy.
var workbook string

// summary enables the run summary file.
var summary bool

// writeToCWD sends output to the working directory.
var writeToCWD bool

// processCmd represents the 'process' command.
var processCmd = &cobra.Command{
	Use:   "process <input-file> <output-dir>",
	Short: "Extract beers, reviews and users from a review dump",
	Long: `The process command reads the review dump at <input-file> and writes
beers.csv, reviews.csv and users.csv into <output-dir>.

Parsing stops quietly at the first line that is too short to hold a full
review; everything before it is written. Any other unusable line aborts the
run and nothing is written.`,

	Args: cobra.ExactArgs(2),

	RunE: func(cmd *cobra.Command, args []string) error {
		// Arguments are fine by now; later failures are not usage errors.
		cmd.SilenceUsage = true
		return runProcess(cmd, args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(
		&workbook,
		"workbook",
		"",
		"Also write the tables to this .xlsx file in the output directory",
	)

	processCmd.Flags().BoolVar(
		&summary,
		"summary",
		false,
		"Also write a run summary file",
	)

	processCmd.Flags().BoolVar(
		&writeToCWD,
		"cwd",
		false,
		"Write output into the working directory instead of <output-dir>",
	)
}

// runProcess validates the paths and runs the converter.
func runProcess(cmd *cobra.Command, inputPath, outputDir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if workbook != "" {
		cfg.Output.Workbook = workbook
	}
	if summary {
		cfg.Output.Summary = true
	}
	if writeToCWD {
		cfg.Output.WriteToCWD = true
	}

	if err := validation.ValidatePaths(inputPath, outputDir); err != nil {
		if validation.IsInvalidPath(err) {
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", err)
			return nil
		}
		return err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	result := converter.New(inputPath, outputDir, cfg).WithLogger(logger).Run()
	if !result.Success {
		return result.Error
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Extraction Complete ===")
	fmt.Fprintf(out, "Lines read:      %d\n", result.Stats.LinesRead)
	fmt.Fprintf(out, "Reviews:         %d\n", result.Stats.ReviewsParsed)
	fmt.Fprintf(out, "Distinct beers:  %d\n", result.Stats.DistinctBeers)
	fmt.Fprintf(out, "Distinct users:  %d\n", result.Stats.DistinctUsers)
	if result.Stats.Truncated {
		fmt.Fprintf(out, "Stopped at line: %d\n", result.Stats.TruncatedAt)
	}
	fmt.Fprintf(out, "Time elapsed:    %s\n", result.Stats.ProcessingTime)
	for _, f := range result.OutputFiles {
		fmt.Fprintf(out, "  ✓ %s\n", f)
	}

	return nil
}
