// =============================================================================
// Beer Review Extractor - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the extractor:
//   - Resolving where output files go
//   - Run identification
//   - Run summary generation
//
// OUTPUT TARGET:
//   By default every output file is written into the output directory given
//   on the command line. With WriteToCWD set, files go to the process's
//   working directory instead and the output directory is only validated.
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager decides where the outputs of one run are written.
type FileManager struct {
	// OutputDir is the directory given on the command line.
	OutputDir string

	// WriteToCWD sends output to the working directory instead of OutputDir.
	WriteToCWD bool
}

// NewFileManager creates a FileManager for the given output directory.
func NewFileManager(outputDir string, writeToCWD bool) *FileManager {
	return &FileManager{
		OutputDir:  outputDir,
		WriteToCWD: writeToCWD,
	}
}

// TargetDir returns the directory output files are written to.
func (fm *FileManager) TargetDir() (string, error) {
	if fm.WriteToCWD {
		dir, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to resolve working directory: %w", err)
		}
		return dir, nil
	}
	return fm.OutputDir, nil
}

// TargetPath returns the full path of name inside TargetDir.
func (fm *FileManager) TargetPath(name string) (string, error) {
	dir, err := fm.TargetDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// =============================================================================
// RUN IDENTIFICATION
// =============================================================================

// NewRunID returns a random identifier for one extraction run. It is attached
// to every log line of the run and to the summary file.
func NewRunID() string {
	return uuid.New().String()
}

// =============================================================================
// RUN SUMMARY
// =============================================================================

// RunSummary contains summary information about an extraction run.
type RunSummary struct {
	RunID         string
	InputFile     string
	StartTime     time.Time
	EndTime       time.Time
	LinesRead     int
	ReviewsParsed int
	DistinctBeers int
	DistinctUsers int
	Truncated     bool
	TruncatedAt   int
	OutputFiles   []string
}

// SummaryFileName returns the summary file name for a run.
func SummaryFileName(runID string) string {
	return fmt.Sprintf("extraction_summary_%s.txt", runID)
}

// WriteSummaryLog writes a run summary into dir and returns its path.
func WriteSummaryLog(summary RunSummary, dir string) (string, error) {
	summaryPath := filepath.Join(dir, SummaryFileName(summary.RunID))

	file, err := os.Create(summaryPath)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)

	duration := summary.EndTime.Sub(summary.StartTime)
	fmt.Fprintf(writer, "Beer Review Extractor - Run Summary\n"+
		"================================================================================\n\n"+
		"Run Information:\n"+
		"  Run ID:         %s\n"+
		"  Input File:     %s\n"+
		"  Start Time:     %s\n"+
		"  End Time:       %s\n"+
		"  Duration:       %s\n\n"+
		"Statistics:\n"+
		"  Lines Read:       %d\n"+
		"  Reviews Parsed:   %d\n"+
		"  Distinct Beers:   %d\n"+
		"  Distinct Users:   %d\n",
		summary.RunID,
		summary.InputFile,
		summary.StartTime.Format("2006-01-02 15:04:05"),
		summary.EndTime.Format("2006-01-02 15:04:05"),
		duration.String(),
		summary.LinesRead,
		summary.ReviewsParsed,
		summary.DistinctBeers,
		summary.DistinctUsers)

	if summary.Truncated {
		fmt.Fprintf(writer, "  Stopped At Line:  %d (trailing data ignored)\n", summary.TruncatedAt)
	}

	if len(summary.OutputFiles) > 0 {
		writer.WriteString("\nOutput Files:\n")
		writer.WriteString("--------------------------------------------------------------------------------\n")
		for _, f := range summary.OutputFiles {
			fmt.Fprintf(writer, "  %s\n", f)
		}
	}

	writer.WriteString("================================================================================\n" +
		"End of Summary\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush summary file: %w", err)
	}

	return summaryPath, nil
}
