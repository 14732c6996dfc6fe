package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/beer-review-extractor/internal/converter"
	"github.com/ginjaninja78/beer-review-extractor/internal/linereader"
	"github.com/ginjaninja78/beer-review-extractor/internal/lineparser"
	"github.com/ginjaninja78/beer-review-extractor/internal/validation"
)

// headersCmd represents the 'headers' command.
var headersCmd = &cobra.Command{
	Use:   "headers <input-file>",
	Short: "Print the CSV headers derived from a dump's first line",
	Long: `Derive the column names from line 0 of the dump and print the header rows
that process would write to beers.csv, reviews.csv and users.csv. Nothing is
written to disk.`,

	Args: cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runHeaders(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(headersCmd)
}

func runHeaders(cmd *cobra.Command, inputPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := validation.ValidateLayout(cfg.Layout); err != nil {
		return err
	}
	if err := validation.ValidateInputFile(inputPath); err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%v\n", err)
		return nil
	}

	lines, err := linereader.ReadLines(inputPath, cfg.Input)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return lineparser.ErrEmptyHeader
	}

	header, err := lineparser.DeriveHeader(lineparser.ExtractKeys(lines[0]))
	if err != nil {
		return err
	}

	boundary := cfg.Layout.ReviewStartIndex
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", cfg.Output.BeersFile, header.BeerColumns(boundary))
	fmt.Fprintf(out, "%s: %s\n", cfg.Output.ReviewsFile, header.ReviewColumns(boundary))
	fmt.Fprintf(out, "%s: %s\n", cfg.Output.UsersFile, converter.UsersHeader)

	return nil
}
