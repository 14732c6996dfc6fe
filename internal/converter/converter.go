// =============================================================================
// Beer Review Extractor - Converter Module
// =============================================================================
//
// This module contains the conversion pipeline for one review dump. It turns
// the dump into three CSV tables in a single sequential pass.
//
// CONVERSION PIPELINE:
//   1. Check the configured line layout
//   2. Read the whole input file into memory
//   3. Derive the column header from line 0
//   4. Parse lines 1..N in order, filling the beer, review and user tables
//   5. Write beers.csv, reviews.csv and users.csv
//   6. Optionally write the workbook copy and the run summary
//
// FAILURE BEHAVIOUR:
//   - A short line ends step 4 early; steps 5 and 6 still run.
//   - A fatal line, an empty header or an unreadable input aborts the run
//     before step 5. No output file is created or touched.
//
// =============================================================================

package converter

import (
	"fmt"
	"time"

	"github.com/ginjaninja78/beer-review-extractor/internal/config"
	"github.com/ginjaninja78/beer-review-extractor/internal/csvwriter"
	"github.com/ginjaninja78/beer-review-extractor/internal/linereader"
	"github.com/ginjaninja78/beer-review-extractor/internal/validation"
	"github.com/ginjaninja78/beer-review-extractor/internal/xlsxwriter"
	"github.com/ginjaninja78/beer-review-extractor/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of processing one input file.
type Result struct {
	// RunID identifies the run in logs and in the summary file.
	RunID string

	// FilePath is the path to the input file that was processed.
	FilePath string

	// OutputFiles are the paths of every file written, in write order.
	// Empty when parsing or staging the CSV tables failed; after a later
	// failure it lists the files that were completed before it.
	OutputFiles []string

	// Success indicates whether the processing was successful.
	Success bool

	// Error contains the error if processing failed.
	Error error

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// LinesRead is the number of input lines, header included.
	LinesRead int

	// ReviewsParsed is the number of rows written to the reviews table.
	ReviewsParsed int

	// DistinctBeers is the number of rows written to the beers table.
	DistinctBeers int

	// DistinctUsers is the number of rows written to the users table.
	DistinctUsers int

	// Truncated is set when parsing stopped at a short line.
	Truncated bool

	// TruncatedAt is the 0-based index of that line.
	TruncatedAt int

	// ProcessingTime is the time taken to process the file.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter handles the extraction of one review dump.
type Converter struct {
	inputPath string
	outputDir string
	cfg       *config.Config
	runID     string
	logger    Logger
}

// New creates a new Converter. outputDir is where the tables are written
// unless cfg.Output.WriteToCWD is set.
func New(inputPath, outputDir string, cfg *config.Config) *Converter {
	runID := utils.NewRunID()
	return &Converter{
		inputPath: inputPath,
		outputDir: outputDir,
		cfg:       cfg,
		runID:     runID,
		logger:    NopLogger(),
	}
}

// WithLogger sets the logger. Every entry carries the run ID.
func (c *Converter) WithLogger(logger Logger) *Converter {
	c.logger = logger.WithField("run_id", c.runID)
	return c
}

// RunID returns the identifier of this converter's run.
func (c *Converter) RunID() string {
	return c.runID
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline.
func (c *Converter) Run() Result {
	startTime := time.Now()
	result := Result{
		RunID:    c.runID,
		FilePath: c.inputPath,
	}

	fail := func(err error) Result {
		result.Error = err
		result.Stats.ProcessingTime = time.Since(startTime)
		c.logger.Error("%v", err)
		return result
	}

	if err := validation.ValidateLayout(c.cfg.Layout); err != nil {
		return fail(err)
	}

	// =========================================================================
	// STEP 1: READ INPUT
	// =========================================================================

	c.logger.Info("Opening data file: %s", c.inputPath)
	lines, err := linereader.ReadLines(c.inputPath, c.cfg.Input)
	if err != nil {
		return fail(fmt.Errorf("failed to read input: %w", err))
	}
	c.logger.Info("Read %d lines", len(lines))

	// =========================================================================
	// STEP 2: PARSE
	// =========================================================================

	c.logger.Info("Starting parsing")
	ext, err := Extract(lines, c.cfg.Layout, c.logger, c.cfg.ProgressInterval)
	if err != nil {
		return fail(fmt.Errorf("parsing aborted, no output written: %w", err))
	}
	c.logger.Info("Done parsing: %d reviews, %d beers, %d users",
		ext.Reviews.Len(), ext.Beers.Len(), ext.Users.Len())
	if ext.Truncated {
		c.logger.Warn("Stopped at short line %d; trailing data ignored", ext.TruncatedAt)
	}

	result.Stats.LinesRead = ext.LinesRead
	result.Stats.ReviewsParsed = ext.Reviews.Len()
	result.Stats.DistinctBeers = ext.Beers.Len()
	result.Stats.DistinctUsers = ext.Users.Len()
	result.Stats.Truncated = ext.Truncated
	result.Stats.TruncatedAt = ext.TruncatedAt

	// =========================================================================
	// STEP 3: WRITE OUTPUT
	// =========================================================================

	fm := utils.NewFileManager(c.outputDir, c.cfg.Output.WriteToCWD)
	targetDir, err := fm.TargetDir()
	if err != nil {
		return fail(err)
	}

	tables := ext.Tables(c.cfg.Output)
	for _, table := range tables {
		c.logger.Info("Writing %s", table.Name)
	}
	paths, err := csvwriter.WriteTables(targetDir, tables...)
	result.OutputFiles = append(result.OutputFiles, paths...)
	if err != nil {
		return fail(err)
	}

	if c.cfg.Output.Workbook != "" {
		workbookPath, err := fm.TargetPath(c.cfg.Output.Workbook)
		if err != nil {
			return fail(err)
		}
		c.logger.Info("Writing %s", c.cfg.Output.Workbook)
		if err := xlsxwriter.WriteWorkbook(workbookPath, tables...); err != nil {
			return fail(err)
		}
		result.OutputFiles = append(result.OutputFiles, workbookPath)
	}

	result.Stats.ProcessingTime = time.Since(startTime)

	if c.cfg.Output.Summary {
		summaryPath, err := utils.WriteSummaryLog(utils.RunSummary{
			RunID:         c.runID,
			InputFile:     c.inputPath,
			StartTime:     startTime,
			EndTime:       time.Now(),
			LinesRead:     result.Stats.LinesRead,
			ReviewsParsed: result.Stats.ReviewsParsed,
			DistinctBeers: result.Stats.DistinctBeers,
			DistinctUsers: result.Stats.DistinctUsers,
			Truncated:     result.Stats.Truncated,
			TruncatedAt:   result.Stats.TruncatedAt,
			OutputFiles:   result.OutputFiles,
		}, targetDir)
		if err != nil {
			return fail(err)
		}
		result.OutputFiles = append(result.OutputFiles, summaryPath)
	}

	result.Success = true
	return result
}
