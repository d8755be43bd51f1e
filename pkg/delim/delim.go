// Package delim tokenizes streams of delimiter-separated rows and fields.
//
// The package implements two closely related incremental tokenizers that
// share one data model, algorithm shape and failure policy:
//
//   - RowTokenizer parses one full row per call, splitting on a single
//     configured delimiter byte and enforcing minimum/maximum field-count
//     policy for the whole row.
//   - FieldTokenizer parses a requested number of fields per call, with
//     configurable delimiter, terminator and masked byte sets, exact-count
//     policy, and unconditional rejection of empty fields.
//
// Both read one byte at a time from a caller-owned stream and never consume
// past the point where they stopped. Each call either writes a complete
// row/group into the caller's output slice, suppresses it under the active
// policy, or fails — the output is never partially written. Per-field
// Transformers may be registered by 1-based field index and are applied in
// commit order.
//
// # Streaming
//
// RowScanner and FieldScanner wrap the tokenizers in a Scan/Err loop:
//
//	scanner := delim.NewRowScanner(reader, delim.DefaultRowOptions())
//	for scanner.Scan() {
//	    fmt.Println(scanner.Row())
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
//
// # Concurrency
//
// Tokenizers hold no per-row state and may be shared across streams, but
// the stream's read cursor is shared mutable state: calls against the same
// stream must be serialized by the caller. Configuration is copied at
// construction and cannot race with in-flight calls.
package delim

import (
	"io"
	"strings"
)

// Parse tokenizes a complete input string into rows using the default
// options (tab-delimited, unbounded field counts).
//
// Example:
//
//	rows, err := delim.Parse("name\tage\nAlice\t30")
//	// rows[0] == []string{"name", "age"}
func Parse(input string) ([][]string, error) {
	return ParseWithOptions(input, DefaultRowOptions())
}

// ParseWithOptions tokenizes a complete input string into rows with custom
// options. Rows suppressed by policy are omitted from the result.
func ParseWithOptions(input string, opts RowOptions) ([][]string, error) {
	return ParseReaderWithOptions(strings.NewReader(input), opts)
}

// ParseReader tokenizes everything readable from r into rows using the
// default options. For row-at-a-time processing of large inputs, use
// RowScanner instead.
func ParseReader(r io.Reader) ([][]string, error) {
	return ParseReaderWithOptions(r, DefaultRowOptions())
}

// ParseReaderWithOptions tokenizes everything readable from r into rows
// with custom options. Rows suppressed by policy are omitted from the
// result.
func ParseReaderWithOptions(r io.Reader, opts RowOptions) ([][]string, error) {
	scanner := NewRowScanner(r, opts)
	var rows [][]string
	for scanner.Scan() {
		row := scanner.Row()
		rows = append(rows, append([]string(nil), row...))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
