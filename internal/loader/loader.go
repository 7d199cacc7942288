// Package loader reads and writes matrices in delimited text form.
//
// The format is one matrix row per line, elements separated by a
// delimiter (comma by default), with an optional single header line.
// Saving and reloading reproduces values exactly: elements are written
// with strconv's shortest round-trip formatting.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jupiter-num/jupiter/internal/num"
)

type options struct {
	delimiter rune
	header    bool
}

// Option configures loading and saving.
type Option func(*options)

// WithDelimiter sets the element delimiter. The default is ','.
func WithDelimiter(r rune) Option {
	return func(o *options) { o.delimiter = r }
}

// WithHeader marks the first line as a header: skipped on load,
// emitted on save.
func WithHeader() Option {
	return func(o *options) { o.header = true }
}

func buildOptions(opts []Option) options {
	o := options{delimiter: ','}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Load reads a matrix from a delimited text file.
// A parse failure returns a *num.FormatError naming the offending line;
// no partial matrix is returned.
func Load(path string, b num.Backend, opts ...Option) (*num.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f, b, opts...)
}

// Read reads a matrix in delimited text form from r.
func Read(r io.Reader, b num.Backend, opts ...Option) (*num.Dense, error) {
	o := buildOptions(opts)

	var rows [][]float64
	cols := 0
	line := 0
	skipHeader := o.header

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if skipHeader {
			skipHeader = false
			continue
		}

		fields := splitFields(text, o.delimiter)
		if cols == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, &num.FormatError{
				Line: line,
				Msg:  fmt.Sprintf("expected %d columns, found %d", cols, len(fields)),
			}
		}

		row := make([]float64, len(fields))
		for j, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &num.FormatError{
					Line: line,
					Msg:  fmt.Sprintf("invalid number %q", field),
					Err:  err,
				}
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, &num.FormatError{Line: line, Msg: "no matrix rows found"}
	}

	m, err := num.FromRows(rows, b)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	return m, nil
}

// Save writes a matrix to a delimited text file, creating or truncating
// the target.
func Save(path string, m *num.Dense, opts ...Option) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("loader: create %s: %w", path, err)
	}
	if err := Write(f, m, opts...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("loader: close %s: %w", path, err)
	}
	return nil
}

// Write writes m in delimited text form to w.
func Write(w io.Writer, m *num.Dense, opts ...Option) error {
	o := buildOptions(opts)
	bw := bufio.NewWriter(w)
	delim := string(o.delimiter)

	if o.header {
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				bw.WriteString(delim)
			}
			fmt.Fprintf(bw, "c%d", j+1)
		}
		bw.WriteByte('\n')
	}

	data := m.Data()
	cols := m.Cols()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				bw.WriteString(delim)
			}
			bw.WriteString(strconv.FormatFloat(data[i*cols+j], 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("loader: write: %w", err)
	}
	return nil
}

// splitFields splits a line on the delimiter. Whitespace delimiters
// collapse runs, so space- and tab-separated files need no exact
// spacing.
func splitFields(line string, delim rune) []string {
	if delim == ' ' || delim == '\t' {
		return strings.Fields(line)
	}
	fields := strings.Split(line, string(delim))
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}
