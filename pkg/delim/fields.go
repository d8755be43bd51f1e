package delim

import (
	"errors"
	"fmt"
	"io"
)

// FieldTokenizer reads a requested number of fields from an input stream.
//
// Unlike RowTokenizer, the delimiter, terminator and masked characters are
// each configurable byte sets, the field count is requested per call rather
// than bounded by configuration, and empty fields are always an error.
//
// The tokenizer stops at the boundary it hit: either the delimiter that
// completed the requested count or the first terminator byte. It never
// consumes past that point, so successive calls walk the stream in
// requested-count steps (contrast with RowTokenizer, which discards the
// remainder of an overfull row).
//
// A FieldTokenizer holds no state between calls; the same serialization
// rules as RowTokenizer apply to the stream.
type FieldTokenizer struct {
	opts        FieldOptions
	delimiters  byteSet
	terminators byteSet
	masked      byteSet
}

// NewFieldTokenizer creates a field tokenizer from an options value.
// The options, including the transform map, are copied.
func NewFieldTokenizer(opts FieldOptions) *FieldTokenizer {
	opts.Transforms = opts.Transforms.clone()
	return &FieldTokenizer{
		opts:        opts,
		delimiters:  makeByteSet(opts.Delimiters),
		terminators: makeByteSet(opts.Terminators),
		masked:      makeByteSet(opts.Masked),
	}
}

// Options returns a copy of the tokenizer's configuration.
func (t *FieldTokenizer) Options() FieldOptions {
	opts := t.opts
	opts.Transforms = opts.Transforms.clone()
	return opts
}

// ParseFields reads up to n fields from r and, if the read satisfies the
// configured policy, replaces *fields wholesale with them.
//
// n must be positive; otherwise an error wrapping ErrInvalidArgument is
// returned before any stream interaction. A terminator byte ends the read
// immediately. A delimiter byte commits the accumulated field, and reading
// stops once n fields are committed. Masked bytes are consumed and
// dropped. A committed field with zero characters yields an
// EmptyFieldError, including for the final commit at loop end.
//
// On any returned error, and on ResultSkipped, *fields is untouched and r
// is positioned exactly where reading stopped. A call that reads zero
// bytes returns ResultEOF without evaluating policy. Read errors other
// than io.EOF are returned as-is.
func (t *FieldTokenizer) ParseFields(r io.ByteReader, fields *[]string, n int) (Result, error) {
	if n < 1 {
		return ResultEOF, fmt.Errorf("%w: requested field count must be positive, got %d", ErrInvalidArgument, n)
	}
	var (
		tmp   []string
		field []byte
		count int
		read  bool
	)
loop:
	for {
		c, err := r.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return ResultEOF, err
			}
			break
		}
		read = true
		switch {
		case t.terminators[c]:
			break loop
		case t.delimiters[c]:
			count++
			if err := t.commit(&field, &tmp, count); err != nil {
				return ResultEOF, err
			}
			if count == n {
				break loop
			}
		case t.masked[c]:
			// consumed, not data
		default:
			field = append(field, c)
		}
	}
	if !read {
		return ResultEOF, nil
	}

	// Final commit for the field whose end was a terminator or stream
	// exhaustion rather than a delimiter.
	if count < n {
		count++
		if err := t.commit(&field, &tmp, count); err != nil {
			return ResultEOF, err
		}
	}
	if count < n && t.opts.EnforceFieldNumber {
		return ResultEOF, &FieldCountError{Got: count, Want: n, Err: ErrMissingFields}
	}
	if count == n || !t.opts.IgnoreUnderfullData {
		*fields = tmp
		return ResultGroup, nil
	}
	return ResultSkipped, nil
}

// commit finalizes the accumulated field under index and resets the
// accumulator. Empty fields are rejected unconditionally.
func (t *FieldTokenizer) commit(field *[]byte, fields *[]string, index int) error {
	if len(*field) == 0 {
		return &EmptyFieldError{Index: index}
	}
	s, err := t.opts.Transforms.apply(index, string(*field))
	if err != nil {
		return err
	}
	*fields = append(*fields, s)
	*field = (*field)[:0]
	return nil
}
