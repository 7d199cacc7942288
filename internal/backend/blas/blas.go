// Package blas implements the accelerated GEMM path on top of gonum's
// BLAS implementation. It is the default accelerator: always available,
// and callable per row partition so the multithreaded and accelerated
// strategies can combine.
package blas

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Accelerator delegates inner-product loops to gonum BLAS.
type Accelerator struct{}

// New creates a new BLAS accelerator.
func New() *Accelerator {
	return &Accelerator{}
}

// Name returns the accelerator name.
func (acc *Accelerator) Name() string {
	return "blas"
}

// Gemm computes C = A·B for row-major buffers: A is m×k, B is k×n and C
// is m×n. C is fully overwritten.
func (acc *Accelerator) Gemm(m, k, n int, a, b, c []float64) error {
	if len(a) < m*k || len(b) < k*n || len(c) < m*n {
		return fmt.Errorf("blas: buffer too short for %dx%d · %dx%d", m, k, k, n)
	}

	am := blas64.General{Rows: m, Cols: k, Stride: k, Data: a}
	bm := blas64.General{Rows: k, Cols: n, Stride: n, Data: b}
	cm := blas64.General{Rows: m, Cols: n, Stride: n, Data: c}
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, am, bm, 0, cm)
	return nil
}
