// Copyright 2026 Jupiter Numerics. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loader reads and writes matrices as delimited text.
//
// Each input line is one matrix row; ragged rows and unparseable
// fields are reported as *num.FormatError carrying the 1-based line
// number. Matrices written by Save round-trip exactly through Load.
package loader

import (
	"io"

	"github.com/jupiter-num/jupiter/internal/loader"
	"github.com/jupiter-num/jupiter/num"
)

// Option configures reading and writing.
type Option = loader.Option

// WithDelimiter sets the field delimiter. The default is a comma;
// space and tab delimiters also accept runs of whitespace between
// fields on input.
func WithDelimiter(r rune) Option { return loader.WithDelimiter(r) }

// WithHeader skips the first line on input, and writes a generated
// column header on output.
func WithHeader() Option { return loader.WithHeader() }

// Load reads a matrix from a delimited text file.
func Load(path string, b num.Backend, opts ...Option) (*num.Dense, error) {
	return loader.Load(path, b, opts...)
}

// Read reads a matrix from r.
func Read(r io.Reader, b num.Backend, opts ...Option) (*num.Dense, error) {
	return loader.Read(r, b, opts...)
}

// Save writes a matrix to a delimited text file.
func Save(path string, m *num.Dense, opts ...Option) error {
	return loader.Save(path, m, opts...)
}

// Write writes a matrix to w.
func Write(w io.Writer, m *num.Dense, opts ...Option) error {
	return loader.Write(w, m, opts...)
}
