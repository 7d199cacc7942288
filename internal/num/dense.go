package num

import (
	"fmt"
	"math"
)

// Dense is a dense m×n real matrix backed by a flat row-major buffer.
// Vectors are n×1 or 1×n matrices and scalars are 1×1 matrices; there is
// no separate vector or scalar type.
//
// A Dense carries the compute backend its arithmetic dispatches to.
// Construction helpers in creation.go take the backend explicitly:
//
//	eng := engine.New()
//	a := num.Zeros(3, 4, eng)
//	b := num.Ones(3, 4, eng)
//	c := a.Add(b)
type Dense struct {
	rows, cols int
	data       []float64
	backend    Backend
}

// NewDense allocates a zeroed rows×cols matrix with no backend attached.
// It is the low-level constructor used by backend implementations; most
// callers want the helpers in creation.go instead.
func NewDense(rows, cols int) *Dense {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("num: invalid dimensions %dx%d (must be > 0)", rows, cols))
	}
	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// Using returns a view of the matrix bound to the given backend.
// The buffer is shared; only the backend handle differs.
func (d *Dense) Using(b Backend) *Dense {
	return &Dense{rows: d.rows, cols: d.cols, data: d.data, backend: b}
}

// Backend returns the compute backend the matrix dispatches to.
func (d *Dense) Backend() Backend {
	return d.backend
}

// Rows returns the row dimension.
func (d *Dense) Rows() int { return d.rows }

// Cols returns the column dimension.
func (d *Dense) Cols() int { return d.cols }

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int { return d.rows * d.cols }

// Data returns the backing slice in row-major order.
// Modifications to the returned slice modify the matrix.
func (d *Dense) Data() []float64 { return d.data }

// IsScalar reports whether the matrix is 1×1.
func (d *Dense) IsScalar() bool { return d.rows == 1 && d.cols == 1 }

// IsVector reports whether the matrix is a single row or column.
func (d *Dense) IsVector() bool { return d.rows == 1 || d.cols == 1 }

// IsSquare reports whether the matrix is square.
func (d *Dense) IsSquare() bool { return d.rows == d.cols }

// At returns the element at row i, column j.
// Panics if the indices are out of bounds.
func (d *Dense) At(i, j int) float64 {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic(fmt.Sprintf("num: index (%d,%d) out of bounds for %dx%d matrix", i, j, d.rows, d.cols))
	}
	return d.data[i*d.cols+j]
}

// Set sets the element at row i, column j.
// Panics if the indices are out of bounds.
func (d *Dense) Set(i, j int, v float64) {
	if i < 0 || i >= d.rows || j < 0 || j >= d.cols {
		panic(fmt.Sprintf("num: index (%d,%d) out of bounds for %dx%d matrix", i, j, d.rows, d.cols))
	}
	d.data[i*d.cols+j] = v
}

// Item returns the value of a 1×1 matrix.
// Panics if the matrix is not a scalar.
func (d *Dense) Item() float64 {
	if !d.IsScalar() {
		panic(fmt.Sprintf("num: Item() only works for 1x1 matrices, got %dx%d", d.rows, d.cols))
	}
	return d.data[0]
}

// Row returns a copy of row i.
func (d *Dense) Row(i int) []float64 {
	if i < 0 || i >= d.rows {
		panic(fmt.Sprintf("num: row %d out of bounds for %dx%d matrix", i, d.rows, d.cols))
	}
	out := make([]float64, d.cols)
	copy(out, d.data[i*d.cols:(i+1)*d.cols])
	return out
}

// Col returns a copy of column j.
func (d *Dense) Col(j int) []float64 {
	if j < 0 || j >= d.cols {
		panic(fmt.Sprintf("num: column %d out of bounds for %dx%d matrix", j, d.rows, d.cols))
	}
	out := make([]float64, d.rows)
	for i := 0; i < d.rows; i++ {
		out[i] = d.data[i*d.cols+j]
	}
	return out
}

// Clone creates a deep copy of the matrix.
// The copy shares nothing with the original.
func (d *Dense) Clone() *Dense {
	data := make([]float64, len(d.data))
	copy(data, d.data)
	return &Dense{rows: d.rows, cols: d.cols, data: data, backend: d.backend}
}

// SameDims reports whether both matrices have identical dimensions.
func (d *Dense) SameDims(other *Dense) bool {
	return d.rows == other.rows && d.cols == other.cols
}

// Equal reports exact elementwise equality.
func (d *Dense) Equal(other *Dense) bool {
	return d.EqualApprox(other, 0)
}

// EqualApprox reports elementwise equality within tol.
// NaN elements compare unequal.
func (d *Dense) EqualApprox(other *Dense, tol float64) bool {
	if !d.SameDims(other) {
		return false
	}
	for i, v := range d.data {
		// Negated form so NaN fails the comparison.
		if !(math.Abs(v-other.data[i]) <= tol) {
			return false
		}
	}
	return true
}

// String returns a human-readable description of the matrix.
func (d *Dense) String() string {
	name := "unbound"
	if d.backend != nil {
		name = d.backend.Name()
	}
	return fmt.Sprintf("Dense[%dx%d] via %s", d.rows, d.cols, name)
}
