package num

// Arithmetic methods delegate to the matrix's backend and bind the
// result to the same backend. All of them return new matrices; the
// receiver is never modified.

// Add performs elementwise addition with broadcasting.
//
// Example:
//
//	row := num.Ones(1, 5, eng)
//	m := num.Ones(3, 5, eng)
//	sum := m.Add(row) // row broadcast across all three rows
func (d *Dense) Add(other *Dense) *Dense {
	return d.bind(d.be().Add(d, other))
}

// Sub performs elementwise subtraction with broadcasting.
func (d *Dense) Sub(other *Dense) *Dense {
	return d.bind(d.be().Sub(d, other))
}

// MulElem performs elementwise multiplication with broadcasting.
func (d *Dense) MulElem(other *Dense) *Dense {
	return d.bind(d.be().MulElem(d, other))
}

// DivElem performs elementwise division with broadcasting.
func (d *Dense) DivElem(other *Dense) *Dense {
	return d.bind(d.be().DivElem(d, other))
}

// MatMul computes the matrix product d·other.
// Panics with a *DimensionError unless d.Cols() == other.Rows().
func (d *Dense) MatMul(other *Dense) *Dense {
	return d.bind(d.be().MatMul(d, other))
}

// Forward computes the fused linear transform d·w + bias.
// bias may be a full matrix or a broadcastable row vector.
func (d *Dense) Forward(w, bias *Dense) *Dense {
	return d.bind(d.be().Forward(d, w, bias))
}

// Scale multiplies every element by alpha.
func (d *Dense) Scale(alpha float64) *Dense {
	return d.bind(d.be().Scale(d, alpha))
}

// AddScalar adds alpha to every element.
func (d *Dense) AddScalar(alpha float64) *Dense {
	return d.bind(d.be().AddScalar(d, alpha))
}

// T returns the transpose as a new matrix. The receiver is unchanged;
// transposing twice reproduces the original values.
func (d *Dense) T() *Dense {
	return d.bind(d.be().Transpose(d))
}

func (d *Dense) bind(res *Dense) *Dense {
	res.backend = d.backend
	return res
}

// be returns the attached backend. Arithmetic on an unbound matrix
// panics with a descriptive message instead of a nil dereference.
func (d *Dense) be() Backend {
	if d.backend == nil {
		panic("num: matrix has no backend; construct with one or rebind with Using")
	}
	return d.backend
}
