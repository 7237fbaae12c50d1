package parser

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when no parser handles a MIME type.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ParseError reports that one document could not be turned into triples.
// It is fatal for that document only.
type ParseError struct {
	Filename string
	Format   string
	Err      error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("parse %s: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("parse %s as %s: %v", e.Filename, e.Format, e.Err)
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is or wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
