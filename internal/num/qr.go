package num

import "math"

// QRFactors holds a QR decomposition computed with Householder
// reflections: A = Q·R with Q having orthonormal columns and R upper
// triangular. Immutable after construction.
type QRFactors struct {
	qr    *Dense
	rdiag []float64
	b     Backend
}

// QRDecompose computes the QR decomposition of an m×n matrix with
// m >= n. Wider-than-tall input is a dimension error; rank deficiency is
// detected lazily by IsFullRank and Solve.
func QRDecompose(a *Dense) (*QRFactors, error) {
	if a.rows < a.cols {
		return nil, NewDimensionError("qr", a.cols, a.cols, a.rows, a.cols)
	}

	m, n := a.rows, a.cols
	qr := a.Clone()
	buf := qr.data
	rdiag := make([]float64, n)

	for k := 0; k < n; k++ {
		// 2-norm of the k-th column below the diagonal, with scaling
		// against overflow.
		nrm := 0.0
		for i := k; i < m; i++ {
			nrm = math.Hypot(nrm, buf[i*n+k])
		}
		if nrm != 0 {
			if buf[k*n+k] < 0 {
				nrm = -nrm
			}
			// Form the Householder vector in place.
			for i := k; i < m; i++ {
				buf[i*n+k] /= nrm
			}
			buf[k*n+k]++

			// Apply the reflection to the remaining columns.
			for j := k + 1; j < n; j++ {
				s := 0.0
				for i := k; i < m; i++ {
					s += buf[i*n+k] * buf[i*n+j]
				}
				s = -s / buf[k*n+k]
				for i := k; i < m; i++ {
					buf[i*n+j] += s * buf[i*n+k]
				}
			}
		}
		rdiag[k] = -nrm
	}

	return &QRFactors{qr: qr, rdiag: rdiag, b: a.backend}, nil
}

// IsFullRank reports whether every diagonal entry of R exceeds a
// tolerance scaled by the matrix magnitude.
func (f *QRFactors) IsFullRank() bool {
	tol := f.rankTol()
	for _, d := range f.rdiag {
		if math.Abs(d) <= tol {
			return false
		}
	}
	return true
}

func (f *QRFactors) rankTol() float64 {
	maxAbs := 0.0
	for _, d := range f.rdiag {
		if a := math.Abs(d); a > maxAbs {
			maxAbs = a
		}
	}
	eps := math.Nextafter(1, 2) - 1
	return float64(f.qr.rows) * eps * maxAbs
}

// Q returns the economy-size orthogonal factor (m×n, orthonormal
// columns), accumulated from the stored Householder vectors.
func (f *QRFactors) Q() *Dense {
	m, n := f.qr.rows, f.qr.cols
	q := NewDense(m, n)
	q.backend = f.b
	buf := f.qr.data

	for k := n - 1; k >= 0; k-- {
		for i := 0; i < m; i++ {
			q.data[i*n+k] = 0
		}
		q.data[k*n+k] = 1
		for j := k; j < n; j++ {
			if buf[k*n+k] == 0 {
				continue
			}
			s := 0.0
			for i := k; i < m; i++ {
				s += buf[i*n+k] * q.data[i*n+j]
			}
			s = -s / buf[k*n+k]
			for i := k; i < m; i++ {
				q.data[i*n+j] += s * buf[i*n+k]
			}
		}
	}
	return q
}

// R returns the n×n upper triangular factor.
func (f *QRFactors) R() *Dense {
	n := f.qr.cols
	r := NewDense(n, n)
	r.backend = f.b
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if i == j {
				r.data[i*n+j] = f.rdiag[i]
			} else {
				r.data[i*n+j] = f.qr.data[i*n+j]
			}
		}
	}
	return r
}

// Solve computes the least-squares solution of A·X = B, minimizing
// ‖A·X − B‖₂ column by column. Returns ErrRankDeficient when A has
// linearly dependent columns and a *DimensionError when B has the wrong
// row count.
func (f *QRFactors) Solve(bm *Dense) (*Dense, error) {
	m, n := f.qr.rows, f.qr.cols
	if bm.rows != m {
		return nil, NewDimensionError("qr solve", m, bm.cols, bm.rows, bm.cols)
	}
	if !f.IsFullRank() {
		return nil, ErrRankDeficient
	}

	nx := bm.cols
	y := bm.Clone()
	buf := f.qr.data

	// Apply Qᵗ to B using the stored Householder vectors.
	for k := 0; k < n; k++ {
		for j := 0; j < nx; j++ {
			s := 0.0
			for i := k; i < m; i++ {
				s += buf[i*n+k] * y.data[i*nx+j]
			}
			s = -s / buf[k*n+k]
			for i := k; i < m; i++ {
				y.data[i*nx+j] += s * buf[i*n+k]
			}
		}
	}
	// Back substitution against R.
	for k := n - 1; k >= 0; k-- {
		for j := 0; j < nx; j++ {
			y.data[k*nx+j] /= f.rdiag[k]
		}
		for i := 0; i < k; i++ {
			rik := buf[i*n+k]
			if rik == 0 {
				continue
			}
			for j := 0; j < nx; j++ {
				y.data[i*nx+j] -= y.data[k*nx+j] * rik
			}
		}
	}

	// First n rows hold the solution.
	x := NewDense(n, nx)
	x.backend = f.b
	copy(x.data, y.data[:n*nx])
	return x, nil
}
