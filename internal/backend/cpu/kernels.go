package cpu

import (
	"github.com/jupiter-num/jupiter/internal/num"
)

// Row-ranged kernels. The dispatcher partitions output rows across
// workers and each partition writes a disjoint slice of the output
// buffer, so the kernels need no synchronization of their own.

// CheckMatMul validates matmul operand dimensions and returns (m, k, n).
// Panics with a *num.DimensionError on mismatch.
func CheckMatMul(a, b *num.Dense) (m, k, n int) {
	if a.Cols() != b.Rows() {
		panic(num.NewDimensionError("matmul", a.Cols(), b.Cols(), b.Rows(), b.Cols()))
	}
	return a.Rows(), a.Cols(), b.Cols()
}

// CheckForward validates forward operand dimensions and returns
// (m, k, n). The bias must broadcast to the m×n product shape.
func CheckForward(a, w, bias *num.Dense) (m, k, n int) {
	m, k, n = CheckMatMul(a, w)
	br, bc, _, err := num.BroadcastDims("forward", m, n, bias.Rows(), bias.Cols())
	if err != nil || br != m || bc != n {
		panic(num.NewDimensionError("forward", m, n, bias.Rows(), bias.Cols()))
	}
	return m, k, n
}

// GemmRows computes rows [start, end) of C = A·B.
// C is m×n, A is m×k, B is k×n, all row-major.
func GemmRows(c, a, b []float64, k, n, start, end int) {
	for i := start; i < end; i++ {
		crow := c[i*n : (i+1)*n]
		for j := range crow {
			crow[j] = 0
		}
		arow := a[i*k : (i+1)*k]
		for kk, av := range arow {
			if av == 0 {
				continue
			}
			brow := b[kk*n : (kk+1)*n]
			for j, bv := range brow {
				crow[j] += av * bv
			}
		}
	}
}

// ForwardRows computes rows [start, end) of C = A·W + bias, with the
// bias broadcast from its br×bc shape.
func ForwardRows(c, a, w, bias []float64, k, n, br, bc, start, end int) {
	GemmRows(c, a, w, k, n, start, end)
	for i := start; i < end; i++ {
		bi := i
		if br == 1 {
			bi = 0
		}
		crow := c[i*n : (i+1)*n]
		if bc == 1 {
			bv := bias[bi*bc]
			for j := range crow {
				crow[j] += bv
			}
			continue
		}
		brow := bias[bi*bc : bi*bc+n]
		for j := range crow {
			crow[j] += brow[j]
		}
	}
}

// ElementWiseRows applies f over rows [start, end) of the output, with
// both operands broadcast from their own shapes.
func ElementWiseRows(dst, ad, bd []float64, cols, arows, acols, brows, bcols, start, end int, f func(float64, float64) float64) {
	for i := start; i < end; i++ {
		ai := i
		if arows == 1 {
			ai = 0
		}
		bi := i
		if brows == 1 {
			bi = 0
		}
		drow := dst[i*cols : (i+1)*cols]
		for j := range drow {
			aj := j
			if acols == 1 {
				aj = 0
			}
			bj := j
			if bcols == 1 {
				bj = 0
			}
			drow[j] = f(ad[ai*acols+aj], bd[bi*bcols+bj])
		}
	}
}
