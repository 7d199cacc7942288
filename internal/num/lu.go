package num

import "math"

// LUFactors holds an LU decomposition with partial pivoting:
// P·A = L·U with L unit lower triangular and U upper triangular.
// The factorization is computed once at construction and never mutated.
type LUFactors struct {
	lu   *Dense
	piv  []int
	sign int
	b    Backend
}

// LUDecompose computes the LU decomposition of a square matrix using
// Gaussian elimination with partial pivoting. A singular input is not an
// error: the factorization completes, the determinant is zero and Solve
// reports ErrSingular.
func LUDecompose(a *Dense) (*LUFactors, error) {
	if !a.IsSquare() {
		return nil, NewDimensionError("lu", a.rows, a.rows, a.rows, a.cols)
	}

	n := a.rows
	lu := a.Clone()
	buf := lu.data

	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}
	sign := 1

	for k := 0; k < n; k++ {
		// Pivot on the largest remaining entry in column k.
		p := k
		maxAbs := math.Abs(buf[k*n+k])
		for i := k + 1; i < n; i++ {
			if v := math.Abs(buf[i*n+k]); v > maxAbs {
				maxAbs = v
				p = i
			}
		}
		if p != k {
			for j := 0; j < n; j++ {
				buf[k*n+j], buf[p*n+j] = buf[p*n+j], buf[k*n+j]
			}
			piv[k], piv[p] = piv[p], piv[k]
			sign = -sign
		}

		pivot := buf[k*n+k]
		if pivot == 0 {
			// Singular to working precision; nothing to eliminate below.
			continue
		}
		// Rank-1 update of the trailing submatrix.
		for i := k + 1; i < n; i++ {
			buf[i*n+k] /= pivot
			lik := buf[i*n+k]
			if lik == 0 {
				continue
			}
			rowi := i*n + k + 1
			rowk := k*n + k + 1
			for j := k + 1; j < n; j++ {
				buf[rowi] -= lik * buf[rowk]
				rowi++
				rowk++
			}
		}
	}

	return &LUFactors{lu: lu, piv: piv, sign: sign, b: a.backend}, nil
}

// IsSingular reports whether the factorization has a zero pivot within
// a tolerance scaled by the matrix magnitude.
func (f *LUFactors) IsSingular() bool {
	n := f.lu.rows
	tol := f.singularTol()
	for j := 0; j < n; j++ {
		if math.Abs(f.lu.data[j*n+j]) <= tol {
			return true
		}
	}
	return false
}

// singularTol scales machine epsilon by the dimension and the largest
// factor magnitude, so big well-conditioned matrices are not flagged.
func (f *LUFactors) singularTol() float64 {
	maxAbs := 0.0
	for _, v := range f.lu.data {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	eps := math.Nextafter(1, 2) - 1
	return float64(f.lu.rows) * eps * maxAbs
}

// L returns the unit lower triangular factor.
func (f *LUFactors) L() *Dense {
	n := f.lu.rows
	l := NewDense(n, n)
	l.backend = f.b
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			l.data[i*n+j] = f.lu.data[i*n+j]
		}
		l.data[i*n+i] = 1
	}
	return l
}

// U returns the upper triangular factor.
func (f *LUFactors) U() *Dense {
	n := f.lu.rows
	u := NewDense(n, n)
	u.backend = f.b
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			u.data[i*n+j] = f.lu.data[i*n+j]
		}
	}
	return u
}

// Pivot returns a copy of the row pivot permutation: row i of P·A is row
// Pivot()[i] of A.
func (f *LUFactors) Pivot() []int {
	p := make([]int, len(f.piv))
	copy(p, f.piv)
	return p
}

// Det returns the determinant. Singular matrices yield 0.
func (f *LUFactors) Det() float64 {
	n := f.lu.rows
	if f.IsSingular() {
		return 0
	}
	det := float64(f.sign)
	for i := 0; i < n; i++ {
		det *= f.lu.data[i*n+i]
	}
	return det
}

// Solve solves A·X = B for X. B may carry multiple right-hand sides as
// columns. Returns ErrSingular when the factorization is singular and a
// *DimensionError when B has the wrong row count.
func (f *LUFactors) Solve(bm *Dense) (*Dense, error) {
	n := f.lu.rows
	if bm.rows != n {
		return nil, NewDimensionError("lu solve", n, bm.cols, bm.rows, bm.cols)
	}
	if f.IsSingular() {
		return nil, ErrSingular
	}

	m := bm.cols
	x := NewDense(n, m)
	x.backend = f.b
	// Apply the pivot permutation to B.
	for i := 0; i < n; i++ {
		copy(x.data[i*m:(i+1)*m], bm.data[f.piv[i]*m:(f.piv[i]+1)*m])
	}
	// Forward substitution: L·Y = P·B.
	for i := 0; i < n; i++ {
		for k := 0; k < i; k++ {
			lik := f.lu.data[i*n+k]
			if lik == 0 {
				continue
			}
			for j := 0; j < m; j++ {
				x.data[i*m+j] -= lik * x.data[k*m+j]
			}
		}
	}
	// Back substitution: U·X = Y.
	for i := n - 1; i >= 0; i-- {
		for k := i + 1; k < n; k++ {
			uik := f.lu.data[i*n+k]
			if uik == 0 {
				continue
			}
			for j := 0; j < m; j++ {
				x.data[i*m+j] -= uik * x.data[k*m+j]
			}
		}
		d := f.lu.data[i*n+i]
		for j := 0; j < m; j++ {
			x.data[i*m+j] /= d
		}
	}
	return x, nil
}

// Inverse returns A⁻¹ by solving against the identity.
// Returns ErrSingular for singular input.
func (f *LUFactors) Inverse() (*Dense, error) {
	n := f.lu.rows
	eye := Eye(n, f.b)
	return f.Solve(eye)
}
