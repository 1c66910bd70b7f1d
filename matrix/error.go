package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound reports that the matrix source could not be opened.
	ErrSourceNotFound = errors.New("matrix: source not found")

	// ErrInputFormat matches every *FormatError.
	ErrInputFormat = errors.New("matrix: bad input format")

	// ErrTruncated is the cause of a FormatError for a stream that ends
	// before all size×size values have been read.
	ErrTruncated = errors.New("unexpected end of matrix data")
)

// A FormatError reports malformed matrix input.
type FormatError struct {
	Line int   // 1-based line of the offending input
	Err  error // underlying cause
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("matrix: line %d: %v", e.Line, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInputFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrInputFormat
}
