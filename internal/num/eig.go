package num

import "math"

// maxEigenIter bounds the implicit QL/QR iteration per eigenvalue.
// Exceeding it aborts with ErrNoConvergence and partial results.
// A variable so tests can lower the bound.
var maxEigenIter = 50

var macheps = math.Pow(2, -52)

// EigenFactors holds an eigenvalue decomposition of a real square
// matrix. Symmetric input is reduced to tridiagonal form by Householder
// similarity transforms and diagonalized with the implicit-shift QL
// iteration; non-symmetric input is reduced to Hessenberg form and
// processed with the implicit double-shift QR iteration, so eigenvalues
// may come in complex conjugate pairs.
type EigenFactors struct {
	n         int
	d, e      []float64 // Real and imaginary eigenvalue parts.
	v         *Dense    // Eigenvector matrix (columns).
	symmetric bool
	converged bool
	b         Backend
}

// EigenDecompose computes the eigenvalue decomposition of a square
// matrix. Non-square input returns a *DimensionError. When the bounded
// iteration fails to converge the partial factors are returned together
// with ErrNoConvergence; callers must treat the result as incomplete.
func EigenDecompose(a *Dense) (*EigenFactors, error) {
	if !a.IsSquare() {
		return nil, NewDimensionError("eigen", a.rows, a.rows, a.rows, a.cols)
	}

	n := a.rows
	f := &EigenFactors{
		n:         n,
		d:         make([]float64, n),
		e:         make([]float64, n),
		converged: true,
		b:         a.backend,
	}

	f.symmetric = isSymmetric(a)
	if f.symmetric {
		f.v = a.Clone()
		f.tred2()
		f.tql2()
	} else {
		f.v = NewDense(n, n)
		f.v.backend = a.backend
		h := a.Clone()
		ort := make([]float64, n)
		f.orthes(h, ort)
		f.hqr2(h)
	}

	if !f.converged {
		return f, ErrNoConvergence
	}
	return f, nil
}

func isSymmetric(a *Dense) bool {
	n := a.rows
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if a.data[i*n+j] != a.data[j*n+i] {
				return false
			}
		}
	}
	return true
}

// IsSymmetric reports whether the symmetric reduction path was taken.
func (f *EigenFactors) IsSymmetric() bool { return f.symmetric }

// IsConverged reports whether the iteration converged within its bound.
func (f *EigenFactors) IsConverged() bool { return f.converged }

// Values returns copies of the real and imaginary eigenvalue parts.
// For symmetric input the imaginary parts are all zero.
func (f *EigenFactors) Values() (re, im []float64) {
	re = make([]float64, f.n)
	im = make([]float64, f.n)
	copy(re, f.d)
	copy(im, f.e)
	return re, im
}

// Vectors returns the eigenvector matrix; eigenvectors are columns
// matching the order of Values. Only meaningful when IsConverged holds.
func (f *EigenFactors) Vectors() *Dense {
	return f.v.Clone()
}

// tred2 reduces the symmetric matrix held in v to tridiagonal form by
// Householder similarity transformations, accumulating the transforms
// in v. Diagonal ends in d, subdiagonal in e.
func (f *EigenFactors) tred2() {
	n := f.n
	v := f.v.data
	d, e := f.d, f.e

	for j := 0; j < n; j++ {
		d[j] = v[(n-1)*n+j]
	}

	for i := n - 1; i > 0; i-- {
		scale := 0.0
		h := 0.0
		for k := 0; k < i; k++ {
			scale += math.Abs(d[k])
		}
		if scale == 0 {
			e[i] = d[i-1]
			for j := 0; j < i; j++ {
				d[j] = v[(i-1)*n+j]
				v[i*n+j] = 0
				v[j*n+i] = 0
			}
		} else {
			// Generate the Householder vector.
			for k := 0; k < i; k++ {
				d[k] /= scale
				h += d[k] * d[k]
			}
			fv := d[i-1]
			g := math.Sqrt(h)
			if fv > 0 {
				g = -g
			}
			e[i] = scale * g
			h -= fv * g
			d[i-1] = fv - g
			for j := 0; j < i; j++ {
				e[j] = 0
			}

			// Apply the similarity transformation to the remaining rows.
			for j := 0; j < i; j++ {
				fv = d[j]
				v[j*n+i] = fv
				g = e[j] + v[j*n+j]*fv
				for k := j + 1; k <= i-1; k++ {
					g += v[k*n+j] * d[k]
					e[k] += v[k*n+j] * fv
				}
				e[j] = g
			}
			fv = 0
			for j := 0; j < i; j++ {
				e[j] /= h
				fv += e[j] * d[j]
			}
			hh := fv / (h + h)
			for j := 0; j < i; j++ {
				e[j] -= hh * d[j]
			}
			for j := 0; j < i; j++ {
				fv = d[j]
				g = e[j]
				for k := j; k <= i-1; k++ {
					v[k*n+j] -= fv*e[k] + g*d[k]
				}
				d[j] = v[(i-1)*n+j]
				v[i*n+j] = 0
			}
		}
		d[i] = h
	}

	// Accumulate transformations.
	for i := 0; i < n-1; i++ {
		v[(n-1)*n+i] = v[i*n+i]
		v[i*n+i] = 1
		h := d[i+1]
		if h != 0 {
			for k := 0; k <= i; k++ {
				d[k] = v[k*n+i+1] / h
			}
			for j := 0; j <= i; j++ {
				g := 0.0
				for k := 0; k <= i; k++ {
					g += v[k*n+i+1] * v[k*n+j]
				}
				for k := 0; k <= i; k++ {
					v[k*n+j] -= g * d[k]
				}
			}
		}
		for k := 0; k <= i; k++ {
			v[k*n+i+1] = 0
		}
	}
	for j := 0; j < n; j++ {
		d[j] = v[(n-1)*n+j]
		v[(n-1)*n+j] = 0
	}
	v[(n-1)*n+n-1] = 1
	e[0] = 0
}

// tql2 diagonalizes the tridiagonal matrix in d/e with the implicit
// shift QL iteration, accumulating eigenvectors in v. Eigenvalues end
// sorted ascending.
func (f *EigenFactors) tql2() {
	n := f.n
	v := f.v.data
	d, e := f.d, f.e

	for i := 1; i < n; i++ {
		e[i-1] = e[i]
	}
	e[n-1] = 0

	shift := 0.0
	tst1 := 0.0
	for l := 0; l < n; l++ {
		tst1 = math.Max(tst1, math.Abs(d[l])+math.Abs(e[l]))
		m := l
		for m < n {
			if math.Abs(e[m]) <= macheps*tst1 {
				break
			}
			m++
		}

		if m > l {
			for iter := 0; ; iter++ {
				if iter >= maxEigenIter {
					f.converged = false
					return
				}

				// Compute the implicit shift.
				g := d[l]
				p := (d[l+1] - g) / (2 * e[l])
				r := math.Hypot(p, 1)
				if p < 0 {
					r = -r
				}
				d[l] = e[l] / (p + r)
				d[l+1] = e[l] * (p + r)
				dl1 := d[l+1]
				h := g - d[l]
				for i := l + 2; i < n; i++ {
					d[i] -= h
				}
				shift += h

				// Implicit QL transformation.
				p = d[m]
				c := 1.0
				c2, c3 := c, c
				el1 := e[l+1]
				s := 0.0
				s2 := 0.0
				for i := m - 1; i >= l; i-- {
					c3 = c2
					c2 = c
					s2 = s
					g = c * e[i]
					h = c * p
					r = math.Hypot(p, e[i])
					e[i+1] = s * r
					s = e[i] / r
					c = p / r
					p = c*d[i] - s*g
					d[i+1] = h + s*(c*g+s*d[i])

					for k := 0; k < n; k++ {
						h = v[k*n+i+1]
						v[k*n+i+1] = s*v[k*n+i] + c*h
						v[k*n+i] = c*v[k*n+i] - s*h
					}
				}
				p = -s * s2 * c3 * el1 * e[l] / dl1
				e[l] = s * p
				d[l] = c * p

				if math.Abs(e[l]) <= macheps*tst1 {
					break
				}
			}
		}
		d[l] += shift
		e[l] = 0
	}

	// Sort eigenvalues and corresponding vectors ascending.
	for i := 0; i < n-1; i++ {
		k := i
		p := d[i]
		for j := i + 1; j < n; j++ {
			if d[j] < p {
				k = j
				p = d[j]
			}
		}
		if k != i {
			d[k] = d[i]
			d[i] = p
			for j := 0; j < n; j++ {
				v[j*n+i], v[j*n+k] = v[j*n+k], v[j*n+i]
			}
		}
	}
}

// orthes reduces the general matrix h to upper Hessenberg form by
// orthogonal similarity transformations, accumulating them in v.
func (f *EigenFactors) orthes(hm *Dense, ort []float64) {
	n := f.n
	h := hm.data
	v := f.v.data
	low := 0
	high := n - 1

	for m := low + 1; m <= high-1; m++ {
		scale := 0.0
		for i := m; i <= high; i++ {
			scale += math.Abs(h[i*n+m-1])
		}
		if scale == 0 {
			continue
		}

		// Householder vector for column m-1.
		hs := 0.0
		for i := high; i >= m; i-- {
			ort[i] = h[i*n+m-1] / scale
			hs += ort[i] * ort[i]
		}
		g := math.Sqrt(hs)
		if ort[m] > 0 {
			g = -g
		}
		hs -= ort[m] * g
		ort[m] -= g

		// Apply Householder similarity: H = (I-uu'/h) H (I-uu'/h).
		for j := m; j < n; j++ {
			fv := 0.0
			for i := high; i >= m; i-- {
				fv += ort[i] * h[i*n+j]
			}
			fv /= hs
			for i := m; i <= high; i++ {
				h[i*n+j] -= fv * ort[i]
			}
		}
		for i := 0; i <= high; i++ {
			fv := 0.0
			for j := high; j >= m; j-- {
				fv += ort[j] * h[i*n+j]
			}
			fv /= hs
			for j := m; j <= high; j++ {
				h[i*n+j] -= fv * ort[j]
			}
		}
		ort[m] *= scale
		h[m*n+m-1] = scale * g
	}

	// Accumulate transformations.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				v[i*n+j] = 1
			} else {
				v[i*n+j] = 0
			}
		}
	}
	for m := high - 1; m >= low+1; m-- {
		if h[m*n+m-1] == 0 {
			continue
		}
		for i := m + 1; i <= high; i++ {
			ort[i] = h[i*n+m-1]
		}
		for j := m; j <= high; j++ {
			g := 0.0
			for i := m; i <= high; i++ {
				g += ort[i] * v[i*n+j]
			}
			// Double division avoids possible underflow.
			g = (g / ort[m]) / h[m*n+m-1]
			for i := m; i <= high; i++ {
				v[i*n+j] += g * ort[i]
			}
		}
	}
}

// cdiv performs complex scalar division (xr+xi·i)/(yr+yi·i).
func cdiv(xr, xi, yr, yi float64) (float64, float64) {
	if math.Abs(yr) > math.Abs(yi) {
		r := yi / yr
		d := yr + r*yi
		return (xr + r*xi) / d, (xi - r*xr) / d
	}
	r := yr / yi
	d := yi + r*yr
	return (r*xr + xi) / d, (r*xi - xr) / d
}

// hqr2 reduces the Hessenberg matrix to real Schur form with the
// implicit double-shift QR iteration, then back-substitutes for the
// eigenvectors. On iteration overflow the remaining diagonal entries
// are taken as eigenvalue estimates and the factors are flagged
// non-converged; eigenvector back-substitution is skipped.
func (f *EigenFactors) hqr2(hm *Dense) {
	nn := f.n
	h := hm.data
	v := f.v.data
	d, e := f.d, f.e

	n := nn - 1
	low := 0
	high := nn - 1
	exshift := 0.0
	var p, q, r, s, z, w, x, y float64

	// Compute matrix norm.
	norm := 0.0
	for i := 0; i < nn; i++ {
		for j := max(i-1, 0); j < nn; j++ {
			norm += math.Abs(h[i*nn+j])
		}
	}

	iter := 0
	for n >= low {
		// Look for a single small subdiagonal element.
		l := n
		for l > low {
			s = math.Abs(h[(l-1)*nn+l-1]) + math.Abs(h[l*nn+l])
			if s == 0 {
				s = norm
			}
			if math.Abs(h[l*nn+l-1]) < macheps*s {
				break
			}
			l--
		}

		switch {
		case l == n:
			// One root found.
			h[n*nn+n] += exshift
			d[n] = h[n*nn+n]
			e[n] = 0
			n--
			iter = 0

		case l == n-1:
			// Two roots found.
			w = h[n*nn+n-1] * h[(n-1)*nn+n]
			p = (h[(n-1)*nn+n-1] - h[n*nn+n]) / 2
			q = p*p + w
			z = math.Sqrt(math.Abs(q))
			h[n*nn+n] += exshift
			h[(n-1)*nn+n-1] += exshift
			x = h[n*nn+n]

			if q >= 0 {
				// Real pair.
				if p >= 0 {
					z = p + z
				} else {
					z = p - z
				}
				d[n-1] = x + z
				d[n] = d[n-1]
				if z != 0 {
					d[n] = x - w/z
				}
				e[n-1] = 0
				e[n] = 0
				x = h[n*nn+n-1]
				s = math.Abs(x) + math.Abs(z)
				p = x / s
				q = z / s
				r = math.Sqrt(p*p + q*q)
				p /= r
				q /= r

				for j := n - 1; j < nn; j++ {
					z = h[(n-1)*nn+j]
					h[(n-1)*nn+j] = q*z + p*h[n*nn+j]
					h[n*nn+j] = q*h[n*nn+j] - p*z
				}
				for i := 0; i <= n; i++ {
					z = h[i*nn+n-1]
					h[i*nn+n-1] = q*z + p*h[i*nn+n]
					h[i*nn+n] = q*h[i*nn+n] - p*z
				}
				for i := low; i <= high; i++ {
					z = v[i*nn+n-1]
					v[i*nn+n-1] = q*z + p*v[i*nn+n]
					v[i*nn+n] = q*v[i*nn+n] - p*z
				}
			} else {
				// Complex pair.
				d[n-1] = x + p
				d[n] = x + p
				e[n-1] = z
				e[n] = -z
			}
			n -= 2
			iter = 0

		default:
			// No convergence yet; form shift.
			x = h[n*nn+n]
			y = 0
			w = 0
			if l < n {
				y = h[(n-1)*nn+n-1]
				w = h[n*nn+n-1] * h[(n-1)*nn+n]
			}

			// Wilkinson's original ad hoc shift.
			if iter == 10 || iter == 20 {
				exshift += x
				for i := low; i <= n; i++ {
					h[i*nn+i] -= x
				}
				s = math.Abs(h[n*nn+n-1]) + math.Abs(h[(n-1)*nn+n-2])
				x = 0.75 * s
				y = x
				w = -0.4375 * s * s
			}

			// MATLAB's new ad hoc shift.
			if iter == 30 {
				s = (y - x) / 2
				s = s*s + w
				if s > 0 {
					s = math.Sqrt(s)
					if y < x {
						s = -s
					}
					s = x - w/((y-x)/2+s)
					for i := low; i <= n; i++ {
						h[i*nn+i] -= s
					}
					exshift += s
					x = 0.964
					y = x
					w = x
				}
			}

			iter++
			if iter >= maxEigenIter {
				// Bail with the diagonal as eigenvalue estimates for the
				// still-active block.
				for i := low; i <= n; i++ {
					d[i] = h[i*nn+i] + exshift
					e[i] = 0
				}
				f.converged = false
				return
			}

			// Look for two consecutive small sub-diagonal elements.
			m := n - 2
			for m >= l {
				z = h[m*nn+m]
				r = x - z
				s = y - z
				p = (r*s-w)/h[(m+1)*nn+m] + h[m*nn+m+1]
				q = h[(m+1)*nn+m+1] - z - r - s
				r = h[(m+2)*nn+m+1]
				s = math.Abs(p) + math.Abs(q) + math.Abs(r)
				p /= s
				q /= s
				r /= s
				if m == l {
					break
				}
				if math.Abs(h[m*nn+m-1])*(math.Abs(q)+math.Abs(r)) <
					macheps*(math.Abs(p)*(math.Abs(h[(m-1)*nn+m-1])+math.Abs(z)+math.Abs(h[(m+1)*nn+m+1]))) {
					break
				}
				m--
			}
			for i := m + 2; i <= n; i++ {
				h[i*nn+i-2] = 0
				if i > m+2 {
					h[i*nn+i-3] = 0
				}
			}

			// Double QR step on rows l..n and columns m..n.
			for k := m; k <= n-1; k++ {
				notlast := k != n-1
				if k != m {
					p = h[k*nn+k-1]
					q = h[(k+1)*nn+k-1]
					if notlast {
						r = h[(k+2)*nn+k-1]
					} else {
						r = 0
					}
					x = math.Abs(p) + math.Abs(q) + math.Abs(r)
					if x == 0 {
						continue
					}
					p /= x
					q /= x
					r /= x
				}

				s = math.Sqrt(p*p + q*q + r*r)
				if p < 0 {
					s = -s
				}
				if s == 0 {
					continue
				}
				if k != m {
					h[k*nn+k-1] = -s * x
				} else if l != m {
					h[k*nn+k-1] = -h[k*nn+k-1]
				}
				p += s
				x = p / s
				y = q / s
				z = r / s
				q /= p
				r /= p

				// Row modification.
				for j := k; j < nn; j++ {
					p = h[k*nn+j] + q*h[(k+1)*nn+j]
					if notlast {
						p += r * h[(k+2)*nn+j]
						h[(k+2)*nn+j] -= p * z
					}
					h[k*nn+j] -= p * x
					h[(k+1)*nn+j] -= p * y
				}
				// Column modification.
				for i := 0; i <= min(n, k+3); i++ {
					p = x*h[i*nn+k] + y*h[i*nn+k+1]
					if notlast {
						p += z * h[i*nn+k+2]
						h[i*nn+k+2] -= p * r
					}
					h[i*nn+k] -= p
					h[i*nn+k+1] -= p * q
				}
				// Accumulate transformations.
				for i := low; i <= high; i++ {
					p = x*v[i*nn+k] + y*v[i*nn+k+1]
					if notlast {
						p += z * v[i*nn+k+2]
						v[i*nn+k+2] -= p * r
					}
					v[i*nn+k] -= p
					v[i*nn+k+1] -= p * q
				}
			}
		}
	}

	// Backsubstitute to find vectors of the upper triangular form.
	if norm == 0 {
		return
	}
	for n = nn - 1; n >= 0; n-- {
		p = d[n]
		q = e[n]

		if q == 0 {
			// Real eigenvector.
			l := n
			h[n*nn+n] = 1
			for i := n - 1; i >= 0; i-- {
				w = h[i*nn+i] - p
				r = 0
				for j := l; j <= n; j++ {
					r += h[i*nn+j] * h[j*nn+n]
				}
				if e[i] < 0 {
					z = w
					s = r
					continue
				}
				l = i
				if e[i] == 0 {
					if w != 0 {
						h[i*nn+n] = -r / w
					} else {
						h[i*nn+n] = -r / (macheps * norm)
					}
				} else {
					// Solve the 2x2 real block.
					x = h[i*nn+i+1]
					y = h[(i+1)*nn+i]
					q = (d[i]-p)*(d[i]-p) + e[i]*e[i]
					t := (x*s - z*r) / q
					h[i*nn+n] = t
					if math.Abs(x) > math.Abs(z) {
						h[(i+1)*nn+n] = (-r - w*t) / x
					} else {
						h[(i+1)*nn+n] = (-s - y*t) / z
					}
				}
				// Overflow control.
				t := math.Abs(h[i*nn+n])
				if (macheps*t)*t > 1 {
					for j := i; j <= n; j++ {
						h[j*nn+n] /= t
					}
				}
			}
		} else if q < 0 {
			// Complex eigenvector (stored as real/imag column pair).
			l := n - 1
			if math.Abs(h[n*nn+n-1]) > math.Abs(h[(n-1)*nn+n]) {
				h[(n-1)*nn+n-1] = q / h[n*nn+n-1]
				h[(n-1)*nn+n] = -(h[n*nn+n] - p) / h[n*nn+n-1]
			} else {
				re, im := cdiv(0, -h[(n-1)*nn+n], h[(n-1)*nn+n-1]-p, q)
				h[(n-1)*nn+n-1] = re
				h[(n-1)*nn+n] = im
			}
			h[n*nn+n-1] = 0
			h[n*nn+n] = 1
			for i := n - 2; i >= 0; i-- {
				ra := 0.0
				sa := 0.0
				for j := l; j <= n; j++ {
					ra += h[i*nn+j] * h[j*nn+n-1]
					sa += h[i*nn+j] * h[j*nn+n]
				}
				w = h[i*nn+i] - p
				if e[i] < 0 {
					z = w
					r = ra
					s = sa
					continue
				}
				l = i
				if e[i] == 0 {
					re, im := cdiv(-ra, -sa, w, q)
					h[i*nn+n-1] = re
					h[i*nn+n] = im
				} else {
					// Solve the complex 2x2 block.
					x = h[i*nn+i+1]
					y = h[(i+1)*nn+i]
					vr := (d[i]-p)*(d[i]-p) + e[i]*e[i] - q*q
					vi := (d[i] - p) * 2 * q
					if vr == 0 && vi == 0 {
						vr = macheps * norm * (math.Abs(w) + math.Abs(q) + math.Abs(x) + math.Abs(y) + math.Abs(z))
					}
					re, im := cdiv(x*r-z*ra+q*sa, x*s-z*sa-q*ra, vr, vi)
					h[i*nn+n-1] = re
					h[i*nn+n] = im
					if math.Abs(x) > math.Abs(z)+math.Abs(q) {
						h[(i+1)*nn+n-1] = (-ra - w*h[i*nn+n-1] + q*h[i*nn+n]) / x
						h[(i+1)*nn+n] = (-sa - w*h[i*nn+n] - q*h[i*nn+n-1]) / x
					} else {
						re, im = cdiv(-r-y*h[i*nn+n-1], -s-y*h[i*nn+n], z, q)
						h[(i+1)*nn+n-1] = re
						h[(i+1)*nn+n] = im
					}
				}
				// Overflow control.
				t := math.Max(math.Abs(h[i*nn+n-1]), math.Abs(h[i*nn+n]))
				if (macheps*t)*t > 1 {
					for j := i; j <= n; j++ {
						h[j*nn+n-1] /= t
						h[j*nn+n] /= t
					}
				}
			}
		}
	}

	// Back transformation to get eigenvectors of the original matrix.
	for j := nn - 1; j >= low; j-- {
		for i := low; i <= high; i++ {
			z = 0
			for k := low; k <= min(j, high); k++ {
				z += v[i*nn+k] * h[k*nn+j]
			}
			v[i*nn+j] = z
		}
	}
}
