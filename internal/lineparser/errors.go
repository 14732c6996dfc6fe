package lineparser

import (
	"errors"
	"fmt"
)

// ErrEmptyHeader is returned when line 0 declares no fields.
var ErrEmptyHeader = errors.New("header line declares no fields")

// ErrKeyMismatch is the cause of a LineError when a data line's keys do not
// line up with the keys declared on line 0.
var ErrKeyMismatch = errors.New("field keys do not match header")

// LineError is a fatal failure tied to one input line. The whole pass is
// abandoned when one occurs.
type LineError struct {
	// Line is the 0-based index of the offending line.
	Line int

	// Cause is the underlying failure.
	Cause error
}

// Error implements the error interface.
func (e *LineError) Error() string {
	return fmt.Sprintf("error while parsing line %d: %v", e.Line, e.Cause)
}

// Unwrap returns the cause so errors.Is can see through a LineError.
func (e *LineError) Unwrap() error {
	return e.Cause
}
