// Copyright 2026 Jupiter Numerics. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package num provides the public API for the dense matrix engine.
//
// A Dense is an m×n real matrix over a flat row-major buffer; vectors
// and scalars are 1×n, n×1 and 1×1 matrices. Arithmetic dispatches
// through a Backend chosen at construction time:
//
//	eng := engine.New()
//	a := num.Zeros(3, 4, eng)
//	b := num.Ones(4, 2, eng)
//	c := a.MatMul(b)
package num

import (
	"math/rand"

	"github.com/jupiter-num/jupiter/internal/num"
)

// Dense is a dense m×n real matrix backed by a flat row-major buffer.
type Dense = num.Dense

// Backend is the interface every compute backend implements.
type Backend = num.Backend

// DimensionError reports incompatible operand dimensions.
type DimensionError = num.DimensionError

// FormatError reports a malformed line in delimited matrix input.
type FormatError = num.FormatError

// Sentinel errors surfaced by decompositions and solvers.
var (
	ErrSingular      = num.ErrSingular
	ErrRankDeficient = num.ErrRankDeficient
	ErrNoConvergence = num.ErrNoConvergence
)

// LUFactors holds an LU decomposition with partial pivoting.
type LUFactors = num.LUFactors

// QRFactors holds a Householder QR decomposition.
type QRFactors = num.QRFactors

// EigenFactors holds an eigenvalue decomposition.
type EigenFactors = num.EigenFactors

// LUDecompose computes the LU decomposition of a square matrix.
func LUDecompose(a *Dense) (*LUFactors, error) { return num.LUDecompose(a) }

// QRDecompose computes the QR decomposition of an m×n matrix, m >= n.
func QRDecompose(a *Dense) (*QRFactors, error) { return num.QRDecompose(a) }

// EigenDecompose computes the eigenvalue decomposition of a square
// matrix.
func EigenDecompose(a *Dense) (*EigenFactors, error) { return num.EigenDecompose(a) }

// Zeros creates a rows×cols matrix filled with zeros.
func Zeros(rows, cols int, b Backend) *Dense { return num.Zeros(rows, cols, b) }

// Ones creates a rows×cols matrix filled with ones.
func Ones(rows, cols int, b Backend) *Dense { return num.Ones(rows, cols, b) }

// Full creates a rows×cols matrix filled with value.
func Full(rows, cols int, value float64, b Backend) *Dense {
	return num.Full(rows, cols, value, b)
}

// Eye creates the n×n identity matrix.
func Eye(n int, b Backend) *Dense { return num.Eye(n, b) }

// FromSlice creates a matrix from a flat row-major slice and an
// explicit row dimension.
func FromSlice(data []float64, rows int, b Backend) (*Dense, error) {
	return num.FromSlice(data, rows, b)
}

// FromRows creates a matrix from a 2D slice.
func FromRows(rows [][]float64, b Backend) (*Dense, error) {
	return num.FromRows(rows, b)
}

// NewVector creates an n×1 column vector.
func NewVector(data []float64, b Backend) *Dense { return num.NewVector(data, b) }

// NewRowVector creates a 1×n row vector.
func NewRowVector(data []float64, b Backend) *Dense { return num.NewRowVector(data, b) }

// NewScalar creates a 1×1 matrix holding value.
func NewScalar(value float64, b Backend) *Dense { return num.NewScalar(value, b) }

// Rand creates a matrix with uniform values in [0, 1) drawn from rng.
func Rand(rows, cols int, rng *rand.Rand, b Backend) *Dense {
	return num.Rand(rows, cols, rng, b)
}

// Randn creates a matrix with standard normal values drawn from rng.
func Randn(rows, cols int, rng *rand.Rand, b Backend) *Dense {
	return num.Randn(rows, cols, rng, b)
}
