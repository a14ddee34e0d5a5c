package data

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a document lacks a key the loaders depend on.
	ErrMissingField = errors.New("missing field")
	// ErrMalformedKey is returned when a PK or SK has no second "#" segment.
	ErrMalformedKey = errors.New("malformed key")
	// ErrInvalidUTF8 is returned for input that is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("invalid utf-8")
)

// LineError reports a failure on one line of a line-delimited export.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
