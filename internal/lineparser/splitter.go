// =============================================================================
// Beer Review Extractor - Record Splitter
// =============================================================================
//
// The splitter turns the ordered pairs of one data line into a Record. It
// knows nothing about field meaning; it only counts positions:
//
//   index:  0     1..4              5 ............ 11 ...
//           name  beer attributes   review attributes (11 = profile name)
//           |<--- beer prefix --->|<----------- review suffix ---------->|
//
// Every call ends in exactly one of three outcomes:
//   - Parsed    : the line produced a Record
//   - Truncated : the line is too short; it and every later line are
//                 trailing garbage and the pass should stop normally
//   - Fatal     : the line is unusable mid-file; the pass must abort
//
// =============================================================================

package lineparser

import (
	"fmt"

	"github.com/ginjaninja78/beer-review-extractor/internal/config"
	"github.com/ginjaninja78/beer-review-extractor/internal/types"
)

// OutcomeKind tags the result of splitting one line.
type OutcomeKind int

const (
	// Parsed means Outcome.Record is valid.
	Parsed OutcomeKind = iota

	// Truncated means the line has fewer pairs than the layout needs.
	Truncated

	// Fatal means Outcome.Err describes why the pass must abort.
	Fatal
)

// String returns the outcome name for logs.
func (k OutcomeKind) String() string {
	switch k {
	case Parsed:
		return "parsed"
	case Truncated:
		return "truncated"
	case Fatal:
		return "fatal"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the tagged result of Splitter.Split.
type Outcome struct {
	Kind   OutcomeKind
	Record types.Record
	Err    *LineError
}

// Splitter splits data lines according to a layout.
type Splitter struct {
	layout config.Layout
	header types.Header
}

// NewSplitter creates a Splitter. The header is only consulted when the
// layout asks for key verification.
func NewSplitter(layout config.Layout, header types.Header) *Splitter {
	return &Splitter{
		layout: layout,
		header: header,
	}
}

// Split partitions the pairs of data line lineNo into beer and review parts.
func (s *Splitter) Split(lineNo int, pairs []types.FieldPair) Outcome {
	if len(pairs) < s.layout.MinPairs() {
		return Outcome{Kind: Truncated}
	}

	if s.layout.ShouldVerifyKeys() {
		if err := s.verifyKeys(pairs); err != nil {
			return Outcome{Kind: Fatal, Err: &LineError{Line: lineNo, Cause: err}}
		}
	}

	boundary := s.layout.ReviewStartIndex
	beer := pairs[:boundary:boundary]
	name := beer[s.layout.BeerNameIndex]

	review := make([]types.FieldPair, 0, 1+len(pairs)-boundary)
	review = append(review, name)
	review = append(review, pairs[boundary:]...)

	return Outcome{
		Kind: Parsed,
		Record: types.Record{
			Line:     lineNo,
			Beer:     beer,
			Review:   review,
			BeerName: name.Value,
			Username: pairs[s.layout.ProfileNameIndex].Value,
		},
	}
}

// verifyKeys checks that the pairs line up with the keys declared on line 0:
// same count, same order. Otherwise the header and the rows would disagree
// on column positions.
func (s *Splitter) verifyKeys(pairs []types.FieldPair) error {
	keys := s.header.Keys
	if len(pairs) != len(keys) {
		return fmt.Errorf("%w: %d fields, header declares %d", ErrKeyMismatch, len(pairs), len(keys))
	}

	for i, p := range pairs {
		if p.Key != keys[i] {
			return fmt.Errorf("%w: field %d is %q, header declares %q", ErrKeyMismatch, i, p.Key, keys[i])
		}
	}

	return nil
}
