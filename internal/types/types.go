// =============================================================================
// Beer Review Extractor - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - lineparser
//   - accumulator
//   - csvwriter
//   - converter
//
// =============================================================================

package types

import "strings"

// =============================================================================
// FIELD TYPES
// =============================================================================

// FieldPair is a single key/value assignment extracted from a raw line.
// The position of a pair within its line is significant: it decides whether
// the pair is a beer attribute or a review attribute.
type FieldPair struct {
	// Key is the field name with its namespace stripped ("name", not "beer/name").
	Key string

	// Value is the textual content between the quotes.
	Value string
}

// Keys returns the keys of the given pairs, in order.
func Keys(pairs []FieldPair) []string {
	keys := make([]string, len(pairs))
	for i, p := range pairs {
		keys[i] = p.Key
	}
	return keys
}

// Values returns the values of the given pairs, in order.
func Values(pairs []FieldPair) []string {
	values := make([]string, len(pairs))
	for i, p := range pairs {
		values[i] = p.Value
	}
	return values
}

// =============================================================================
// HEADER
// =============================================================================

// ReviewBeerColumn is the leading column of the reviews table. It holds the
// beer name that links a review back to its beer row.
const ReviewBeerColumn = "BeerName"

// Header is the ordered list of capitalized column names derived from line 0.
// It is built once and never mutated afterwards.
type Header struct {
	// Names are the column names, e.g. "Name", "BeerId", "ProfileName".
	Names []string

	// Keys are the raw field names the columns were derived from. Data lines
	// are checked against these when key verification is enabled.
	Keys []string
}

// Len returns the number of columns.
func (h Header) Len() int {
	return len(h.Names)
}

// BeerColumns returns the beers table header row: the first boundary names
// joined with commas.
func (h Header) BeerColumns(boundary int) string {
	return strings.Join(h.Names[:min(boundary, len(h.Names))], ",")
}

// ReviewColumns returns the reviews table header row: "BeerName" followed by
// every name from boundary onward.
func (h Header) ReviewColumns(boundary int) string {
	cols := []string{ReviewBeerColumn}
	if boundary < len(h.Names) {
		cols = append(cols, h.Names[boundary:]...)
	}
	return strings.Join(cols, ",")
}

// =============================================================================
// RECORD
// =============================================================================

// Record is the result of splitting one data line.
type Record struct {
	// Line is the 0-based index of the source line.
	Line int

	// Beer holds the beer-attribute prefix.
	Beer []FieldPair

	// Review holds the beer name pair followed by every review attribute.
	Review []FieldPair

	// BeerName is the dedup key for the beers table.
	BeerName string

	// Username is the reviewer's profile name.
	Username string
}
