package delim

import (
	"errors"
	"fmt"
)

// Result discriminates the outcome of a single tokenizer call.
//
// A Result is only meaningful when the accompanying error is nil.
type Result int

const (
	// ResultEOF indicates that no characters could be read: the stream is
	// exhausted and the output parameter was left untouched.
	ResultEOF Result = iota
	// ResultRow indicates that a row (or field group) was written to the
	// output parameter.
	ResultRow
	// ResultSkipped indicates that the active policy suppressed the row or
	// field group. The output parameter is untouched and the stream remains
	// positioned after the suppressed data.
	ResultSkipped
)

// ResultGroup is the field tokenizer's name for ResultRow.
const ResultGroup = ResultRow

// String returns the string representation of Result.
func (r Result) String() string {
	switch r {
	case ResultEOF:
		return "eof"
	case ResultRow:
		return "row"
	case ResultSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Common tokenization errors.
var (
	// ErrInvalidArgument indicates a caller requested a non-positive field count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyField indicates a field contained zero characters.
	ErrEmptyField = errors.New("empty field")

	// ErrMissingFields indicates fewer fields were read than required.
	ErrMissingFields = errors.New("missing fields")

	// ErrUnexpectedFields indicates more fields were read than allowed.
	ErrUnexpectedFields = errors.New("unexpected fields")
)

// FieldCountError reports a violated field-count bound.
// It wraps either ErrMissingFields or ErrUnexpectedFields.
type FieldCountError struct {
	// Got is the number of fields detected when the violation was raised.
	Got int
	// Want is the violated bound: the minimum or requested count for
	// ErrMissingFields, the maximum for ErrUnexpectedFields.
	Want int
	// Err is the underlying sentinel error.
	Err error
}

// Error returns a formatted message describing the violated bound.
func (e *FieldCountError) Error() string {
	if errors.Is(e.Err, ErrUnexpectedFields) {
		return fmt.Sprintf("too many field(s) in input row: expected no more than %d fields", e.Want)
	}
	return fmt.Sprintf("missing field(s) in input data; detected only %d out of %d fields", e.Got, e.Want)
}

// Unwrap returns the underlying sentinel error.
func (e *FieldCountError) Unwrap() error {
	return e.Err
}

// EmptyFieldError reports a zero-length field between two delimiters, or
// between the start of the read and the first delimiter or terminator.
// It wraps ErrEmptyField.
type EmptyFieldError struct {
	// Index is the 1-based position of the offending field.
	Index int
}

// Error returns a formatted message naming the offending field index.
func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("empty field at index %d: no data between delimiters or terminator", e.Index)
}

// Unwrap returns ErrEmptyField.
func (e *EmptyFieldError) Unwrap() error {
	return ErrEmptyField
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "delim: invalid " + e.Field + ": " + e.Message
}
