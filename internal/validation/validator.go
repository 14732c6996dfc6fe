// =============================================================================
// Beer Review Extractor - Validation
// =============================================================================
//
// This module checks everything that has to be right before a parse pass
// starts:
//   - the input path names a regular file
//   - the output path names a directory
//   - the configured layout is internally consistent
//
// None of these checks look at field values; the dump's values are never
// type-checked.
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ginjaninja78/beer-review-extractor/internal/config"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// Kind classifies a validation failure.
type Kind string

const (
	// InvalidPath means an input or output path is not usable.
	InvalidPath Kind = "invalid_path"

	// InvalidLayout means the configured indices contradict each other.
	InvalidLayout Kind = "invalid_layout"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	// Kind classifies the failure.
	Kind Kind

	// Field names what was checked, e.g. "input" or "layout.profile_name_index".
	Field string

	// Value is the offending value.
	Value string

	// Message is a human-readable explanation.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is not a valid %s: %s", e.Value, e.Field, e.Message)
}

// IsInvalidPath reports whether err is an InvalidPath validation error.
func IsInvalidPath(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Kind == InvalidPath
}

// =============================================================================
// PATH VALIDATION
// =============================================================================

// ValidateInputFile checks that path exists and is a regular file.
func ValidateInputFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &ValidationError{Kind: InvalidPath, Field: "file", Value: path, Message: describeStatError(err)}
	}
	if !info.Mode().IsRegular() {
		return &ValidationError{Kind: InvalidPath, Field: "file", Value: path, Message: "not a regular file"}
	}
	return nil
}

// ValidateOutputDir checks that path exists and is a directory.
func ValidateOutputDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &ValidationError{Kind: InvalidPath, Field: "directory", Value: path, Message: describeStatError(err)}
	}
	if !info.IsDir() {
		return &ValidationError{Kind: InvalidPath, Field: "directory", Value: path, Message: "not a directory"}
	}
	return nil
}

// ValidatePaths runs both path checks and returns the first failure.
func ValidatePaths(inputPath, outputDir string) error {
	if err := ValidateInputFile(inputPath); err != nil {
		return err
	}
	return ValidateOutputDir(outputDir)
}

func describeStatError(err error) string {
	if errors.Is(err, os.ErrNotExist) {
		return "does not exist"
	}
	return err.Error()
}

// =============================================================================
// LAYOUT VALIDATION
// =============================================================================

// ValidateLayout checks that the split boundary and indices describe a line
// the splitter can actually index:
//
//   0 <= beer_name_index < review_start_index <= profile_name_index
func ValidateLayout(layout config.Layout) error {
	var problems []string

	if layout.ReviewStartIndex < 1 {
		problems = append(problems, fmt.Sprintf("review_start_index must be at least 1, got %d", layout.ReviewStartIndex))
	}
	if layout.BeerNameIndex < 0 || layout.BeerNameIndex >= layout.ReviewStartIndex {
		problems = append(problems, fmt.Sprintf("beer_name_index %d must lie within the beer fields [0, %d)",
			layout.BeerNameIndex, layout.ReviewStartIndex))
	}
	if layout.ProfileNameIndex < layout.ReviewStartIndex {
		problems = append(problems, fmt.Sprintf("profile_name_index %d must not precede review_start_index %d",
			layout.ProfileNameIndex, layout.ReviewStartIndex))
	}

	if len(problems) == 0 {
		return nil
	}

	return &ValidationError{
		Kind:    InvalidLayout,
		Field:   "layout",
		Value:   fmt.Sprintf("%+v", layoutSummary(layout)),
		Message: strings.Join(problems, "; "),
	}
}

func layoutSummary(layout config.Layout) map[string]int {
	return map[string]int{
		"review_start_index": layout.ReviewStartIndex,
		"profile_name_index": layout.ProfileNameIndex,
		"beer_name_index":    layout.BeerNameIndex,
	}
}
