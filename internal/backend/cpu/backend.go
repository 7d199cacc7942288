// Package cpu implements the sequential reference backend.
// Every other execution strategy is verified against it.
package cpu

import (
	"github.com/jupiter-num/jupiter/internal/num"
)

// Backend implements matrix operations with plain sequential loops.
type Backend struct{}

// New creates a new sequential CPU backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend name.
func (c *Backend) Name() string {
	return "cpu"
}

// Add performs elementwise addition with broadcasting.
func (c *Backend) Add(a, b *num.Dense) *num.Dense {
	return elementWise("add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs elementwise subtraction with broadcasting.
func (c *Backend) Sub(a, b *num.Dense) *num.Dense {
	return elementWise("sub", a, b, func(x, y float64) float64 { return x - y })
}

// MulElem performs elementwise multiplication with broadcasting.
func (c *Backend) MulElem(a, b *num.Dense) *num.Dense {
	return elementWise("mulelem", a, b, func(x, y float64) float64 { return x * y })
}

// DivElem performs elementwise division with broadcasting.
func (c *Backend) DivElem(a, b *num.Dense) *num.Dense {
	return elementWise("divelem", a, b, func(x, y float64) float64 { return x / y })
}

// MatMul computes the matrix product a·b.
// Panics with a *num.DimensionError unless a.Cols() == b.Rows().
func (c *Backend) MatMul(a, b *num.Dense) *num.Dense {
	m, k, n := CheckMatMul(a, b)
	out := num.NewDense(m, n)
	GemmRows(out.Data(), a.Data(), b.Data(), k, n, 0, m)
	return out
}

// Forward computes the fused linear transform a·w + bias.
func (c *Backend) Forward(a, w, bias *num.Dense) *num.Dense {
	m, k, n := CheckForward(a, w, bias)
	out := num.NewDense(m, n)
	ForwardRows(out.Data(), a.Data(), w.Data(), bias.Data(), k, n, bias.Rows(), bias.Cols(), 0, m)
	return out
}

// Transpose returns a new matrix with rows and columns swapped.
func (c *Backend) Transpose(a *num.Dense) *num.Dense {
	rows, cols := a.Rows(), a.Cols()
	out := num.NewDense(cols, rows)
	src, dst := a.Data(), out.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = src[i*cols+j]
		}
	}
	return out
}

// Scale multiplies every element by alpha.
func (c *Backend) Scale(a *num.Dense, alpha float64) *num.Dense {
	out := num.NewDense(a.Rows(), a.Cols())
	src, dst := a.Data(), out.Data()
	for i, v := range src {
		dst[i] = v * alpha
	}
	return out
}

// AddScalar adds alpha to every element.
func (c *Backend) AddScalar(a *num.Dense, alpha float64) *num.Dense {
	out := num.NewDense(a.Rows(), a.Cols())
	src, dst := a.Data(), out.Data()
	for i, v := range src {
		dst[i] = v + alpha
	}
	return out
}

// elementWise applies op with broadcasting. Equal shapes take the
// vectorized fast path; broadcast operands go through index mapping.
func elementWise(op string, a, b *num.Dense, f func(float64, float64) float64) *num.Dense {
	rows, cols, broadcast, err := num.BroadcastDims(op, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	if err != nil {
		panic(err)
	}

	out := num.NewDense(rows, cols)
	ad, bd, dst := a.Data(), b.Data(), out.Data()

	if !broadcast {
		for i := range dst {
			dst[i] = f(ad[i], bd[i])
		}
		return out
	}

	ElementWiseRows(dst, ad, bd, cols, a.Rows(), a.Cols(), b.Rows(), b.Cols(), 0, rows, f)
	return out
}
