package delim

import (
	"bufio"
	"io"
)

// RowScanner provides a streaming interface for reading delimited rows one
// at a time. It drives a RowTokenizer in a loop, transparently skipping
// rows the policy suppresses, and stops at stream exhaustion or the first
// error.
//
// Example usage:
//
//	file, _ := os.Open("data.tsv")
//	defer file.Close()
//
//	scanner := delim.NewRowScanner(file, delim.DefaultRowOptions())
//	for scanner.Scan() {
//	    row := scanner.Row()
//	    fmt.Println(row)
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type RowScanner struct {
	tok     *RowTokenizer
	r       io.ByteReader
	row     []string
	skipped int
	err     error
	done    bool
}

// NewRowScanner creates a RowScanner reading from r with the given options.
// The reader is buffered internally unless it already implements
// io.ByteReader.
func NewRowScanner(r io.Reader, opts RowOptions) *RowScanner {
	return &RowScanner{
		tok: NewRowTokenizer(opts),
		r:   byteReader(r),
	}
}

// Scan advances the scanner to the next accepted row.
// It returns false when the stream is exhausted or an error occurs.
// After Scan returns false, Err reports the error, if any.
func (s *RowScanner) Scan() bool {
	if s.done {
		return false
	}
	for {
		res, err := s.tok.ParseRow(s.r, &s.row)
		if err != nil {
			s.err = err
			s.done = true
			return false
		}
		switch res {
		case ResultRow:
			return true
		case ResultSkipped:
			s.skipped++
		case ResultEOF:
			s.done = true
			return false
		}
	}
}

// Row returns the most recently scanned row.
// It should only be called after Scan returns true. The slice is replaced
// wholesale on the next successful Scan.
func (s *RowScanner) Row() []string {
	return s.row
}

// Skipped returns the number of rows suppressed by policy so far.
func (s *RowScanner) Skipped() int {
	return s.skipped
}

// Err returns the error, if any, that was encountered during scanning.
// It returns nil at normal end of stream.
func (s *RowScanner) Err() error {
	return s.err
}

// FieldScanner provides a streaming interface for reading fixed-size field
// groups one at a time, driving a FieldTokenizer with the same requested
// count on every call.
type FieldScanner struct {
	tok     *FieldTokenizer
	r       io.ByteReader
	n       int
	fields  []string
	skipped int
	err     error
	done    bool
}

// NewFieldScanner creates a FieldScanner that reads groups of n fields
// from r with the given options. The reader is buffered internally unless
// it already implements io.ByteReader.
func NewFieldScanner(r io.Reader, opts FieldOptions, n int) *FieldScanner {
	return &FieldScanner{
		tok: NewFieldTokenizer(opts),
		r:   byteReader(r),
		n:   n,
	}
}

// Scan advances the scanner to the next delivered field group.
// It returns false when the stream is exhausted or an error occurs.
func (s *FieldScanner) Scan() bool {
	if s.done {
		return false
	}
	for {
		res, err := s.tok.ParseFields(s.r, &s.fields, s.n)
		if err != nil {
			s.err = err
			s.done = true
			return false
		}
		switch res {
		case ResultGroup:
			return true
		case ResultSkipped:
			s.skipped++
		case ResultEOF:
			s.done = true
			return false
		}
	}
}

// Fields returns the most recently scanned field group.
// It should only be called after Scan returns true.
func (s *FieldScanner) Fields() []string {
	return s.fields
}

// Skipped returns the number of groups suppressed by policy so far.
func (s *FieldScanner) Skipped() int {
	return s.skipped
}

// Err returns the error, if any, that was encountered during scanning.
func (s *FieldScanner) Err() error {
	return s.err
}

// byteReader adapts r for single-byte reads without double buffering.
func byteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}
