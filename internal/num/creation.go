package num

import (
	"fmt"
	"math/rand"
)

// Zeros creates a rows×cols matrix filled with zeros.
//
// Example:
//
//	eng := engine.New()
//	a := num.Zeros(3, 4, eng)
func Zeros(rows, cols int, b Backend) *Dense {
	d := NewDense(rows, cols)
	d.backend = b
	return d
}

// Ones creates a rows×cols matrix filled with ones.
func Ones(rows, cols int, b Backend) *Dense {
	d := Zeros(rows, cols, b)
	for i := range d.data {
		d.data[i] = 1
	}
	return d
}

// Full creates a rows×cols matrix filled with value.
func Full(rows, cols int, value float64, b Backend) *Dense {
	d := Zeros(rows, cols, b)
	for i := range d.data {
		d.data[i] = value
	}
	return d
}

// Eye creates the n×n identity matrix.
func Eye(n int, b Backend) *Dense {
	d := Zeros(n, n, b)
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}
	return d
}

// FromSlice creates a matrix from a flat row-major slice and an explicit
// row dimension. The slice is copied; its length must divide evenly into
// rows.
func FromSlice(data []float64, rows int, b Backend) (*Dense, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("num: invalid row dimension %d", rows)
	}
	if len(data) == 0 || len(data)%rows != 0 {
		return nil, fmt.Errorf("num: %d elements do not divide into %d rows", len(data), rows)
	}
	d := Zeros(rows, len(data)/rows, b)
	copy(d.data, data)
	return d, nil
}

// FromRows creates a matrix from a 2D slice. Every row must have the
// same length. The data is copied.
func FromRows(rows [][]float64, b Backend) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("num: empty input")
	}
	cols := len(rows[0])
	d := Zeros(len(rows), cols, b)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("num: ragged input: row %d has %d elements, expected %d", i, len(row), cols)
		}
		copy(d.data[i*cols:], row)
	}
	return d, nil
}

// NewVector creates an n×1 column vector from data. The data is copied.
func NewVector(data []float64, b Backend) *Dense {
	d := Zeros(len(data), 1, b)
	copy(d.data, data)
	return d
}

// NewRowVector creates a 1×n row vector from data. The data is copied.
func NewRowVector(data []float64, b Backend) *Dense {
	d := Zeros(1, len(data), b)
	copy(d.data, data)
	return d
}

// NewScalar creates a 1×1 matrix holding value.
func NewScalar(value float64, b Backend) *Dense {
	d := Zeros(1, 1, b)
	d.data[0] = value
	return d
}

// Rand creates a rows×cols matrix with values uniformly distributed in
// [0, 1) drawn from rng. math/rand is intentional: reproducible test
// fixtures matter more than cryptographic quality here.
func Rand(rows, cols int, rng *rand.Rand, b Backend) *Dense {
	d := Zeros(rows, cols, b)
	for i := range d.data {
		d.data[i] = rng.Float64()
	}
	return d
}

// Randn creates a rows×cols matrix with values drawn from the standard
// normal distribution.
func Randn(rows, cols int, rng *rand.Rand, b Backend) *Dense {
	d := Zeros(rows, cols, b)
	for i := range d.data {
		d.data[i] = rng.NormFloat64()
	}
	return d
}
