package delim

import (
	"errors"
	"io"
)

// RowTokenizer splits an input stream into rows of delimiter-separated
// fields, one row per call.
//
// A row ends when a newline byte is read or the stream is exhausted. The
// tokenizer reads one byte at a time and never buffers past the point where
// it stopped, so a single reader can be handed to successive calls (or to
// other consumers) without losing data. Pass a *bufio.Reader when the
// underlying source is an unbuffered io.Reader.
//
// When a row exceeds a positive MaxFields bound, the tokenizer keeps
// consuming and discarding the remainder of the row so the stream always
// lands on a row boundary (contrast with FieldTokenizer, which stops at the
// boundary it hit).
//
// A RowTokenizer holds no per-row state between calls and is safe to reuse
// across many streams, but calls against the same stream must be
// serialized: the stream's read cursor is shared mutable state.
type RowTokenizer struct {
	opts RowOptions
}

// NewRowTokenizer creates a row tokenizer from an options value.
// The options, including the transform map, are copied.
func NewRowTokenizer(opts RowOptions) *RowTokenizer {
	opts.Transforms = opts.Transforms.clone()
	return &RowTokenizer{opts: opts}
}

// Options returns a copy of the tokenizer's configuration.
func (t *RowTokenizer) Options() RowOptions {
	opts := t.opts
	opts.Transforms = opts.Transforms.clone()
	return opts
}

// ParseRow reads one row from r and, if the row passes the configured
// field-count policy, replaces *row wholesale with its fields.
//
// Each time the delimiter is read the accumulated field is committed: the
// transformer registered for its 1-based index (if any) is applied and the
// result appended to a temporary row. The MaxFields bound is checked at
// every delimiter and again at row end; MinFields only at row end. On any
// returned error, and on ResultSkipped, *row is untouched and r is
// positioned exactly where reading stopped.
//
// A call that reads zero bytes returns ResultEOF without evaluating policy,
// so looping over an exhausted stream is harmless under any configuration.
// Read errors other than io.EOF are returned as-is; io.EOF is treated as
// end of the final row.
func (t *RowTokenizer) ParseRow(r io.ByteReader, row *[]string) (Result, error) {
	var (
		tmp   []string
		field []byte
		count = 1
		read  bool
	)
	for {
		c, err := r.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return ResultEOF, err
			}
			break
		}
		read = true
		if c == '\n' {
			break
		}
		if c == t.opts.Delimiter {
			if err := t.commit(&field, &tmp, count); err != nil {
				return ResultEOF, err
			}
			count++
			if overfilled(t.opts.MaxFields, count) && t.opts.EnforceMaxFields {
				return ResultEOF, &FieldCountError{Got: count, Want: t.opts.MaxFields, Err: ErrUnexpectedFields}
			}
			continue
		}
		if !overfilled(t.opts.MaxFields, count) {
			field = append(field, c)
		}
	}
	if !read {
		return ResultEOF, nil
	}

	// Row-end policy: the last field has not been committed yet, so count
	// includes it.
	if count < t.opts.MinFields && t.opts.EnforceMinFields {
		return ResultEOF, &FieldCountError{Got: count, Want: t.opts.MinFields, Err: ErrMissingFields}
	}
	if overfilled(t.opts.MaxFields, count) && t.opts.EnforceMaxFields {
		return ResultEOF, &FieldCountError{Got: count, Want: t.opts.MaxFields, Err: ErrUnexpectedFields}
	}
	if (overfilled(t.opts.MaxFields, count) && t.opts.IgnoreOverfullRow) ||
		(count < t.opts.MinFields && t.opts.IgnoreUnderfullRow) {
		return ResultSkipped, nil
	}
	if err := t.commit(&field, &tmp, count); err != nil {
		return ResultEOF, err
	}
	*row = tmp
	return ResultRow, nil
}

// commit finalizes the accumulated field under index, provided the row
// still has capacity for it, and resets the accumulator.
func (t *RowTokenizer) commit(field *[]byte, row *[]string, index int) error {
	if overfilled(t.opts.MaxFields, index) {
		return nil
	}
	s, err := t.opts.Transforms.apply(index, string(*field))
	if err != nil {
		return err
	}
	*row = append(*row, s)
	*field = (*field)[:0]
	return nil
}

// overfilled reports whether index exceeds a positive max bound.
func overfilled(maxFields, index int) bool {
	return maxFields > 0 && index > maxFields
}
