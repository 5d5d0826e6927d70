package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedImage is returned when image syntax lacks display text or a destination.
	ErrMalformedImage = errors.New("malformed image")

	// ErrUnsupportedAtLineLevel is returned by ParseLine for fence lines.
	// Fenced blocks span several lines and are only handled by Parse.
	ErrUnsupportedAtLineLevel = errors.New("code fence cannot be parsed as a single line")
)

// ParseError reports the document line a parse failure happened on.
type ParseError struct {
	Line int // 1-based
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
