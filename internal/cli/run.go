package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/delimtok/delimtok/pkg/delim"
)

// runRows tokenizes r row by row and writes accepted rows to w, joined by
// the configured delimiter. Suppressed rows are logged when warnOnSkip is
// set.
func runRows(r io.Reader, w io.Writer, opts delim.RowOptions, warnOnSkip bool, log *logrus.Logger) error {
	br := buffered(r)
	bw := bufio.NewWriter(w)
	tok := delim.NewRowTokenizer(opts)

	var row []string
	rowNum := 0
	for {
		rowNum++
		res, err := tok.ParseRow(br, &row)
		if err != nil {
			return fmt.Errorf("row %d: %w", rowNum, err)
		}
		if res == delim.ResultEOF {
			break
		}
		if res == delim.ResultSkipped {
			if warnOnSkip {
				log.Warnf("row %d suppressed by field-count policy", rowNum)
			}
			continue
		}
		if err := writeFields(bw, row, opts.Delimiter); err != nil {
			return fmt.Errorf("cannot write row %d: %w", rowNum, err)
		}
	}
	return bw.Flush()
}

// runFields extracts groups of n fields from r and writes each group to w
// as one delimiter-joined line.
func runFields(r io.Reader, w io.Writer, opts delim.FieldOptions, n int, warnOnSkip bool, log *logrus.Logger) error {
	br := buffered(r)
	bw := bufio.NewWriter(w)
	tok := delim.NewFieldTokenizer(opts)

	var fields []string
	groupNum := 0
	for {
		groupNum++
		res, err := tok.ParseFields(br, &fields, n)
		if err != nil {
			return fmt.Errorf("group %d: %w", groupNum, err)
		}
		if res == delim.ResultEOF {
			break
		}
		if res == delim.ResultSkipped {
			if warnOnSkip {
				log.Warnf("group %d suppressed by field-count policy", groupNum)
			}
			continue
		}
		if err := writeFields(bw, fields, opts.Delimiters[0]); err != nil {
			return fmt.Errorf("cannot write group %d: %w", groupNum, err)
		}
	}
	return bw.Flush()
}

func writeFields(bw *bufio.Writer, fields []string, delimiter byte) error {
	for i, f := range fields {
		if i > 0 {
			if err := bw.WriteByte(delimiter); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(f); err != nil {
			return err
		}
	}
	return bw.WriteByte('\n')
}

// buffered wraps r for single-byte reads unless it already is buffered.
func buffered(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// sniffDelimiter peeks at the head of r to detect the delimiter without
// consuming anything. The returned reader must replace r for further
// reads.
func sniffDelimiter(r io.Reader) (*bufio.Reader, byte) {
	br := buffered(r)
	sample, _ := br.Peek(4096)
	return br, delim.NewSniffer(string(sample)).DetectDelimiter()
}
