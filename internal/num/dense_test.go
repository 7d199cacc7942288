package num

import (
	"math"
	"testing"
)

// Test helpers

func assertApprox(t *testing.T, expected, actual, tol float64, msg string) {
	t.Helper()
	if math.Abs(expected-actual) > tol {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func assertDims(t *testing.T, m *Dense, rows, cols int, msg string) {
	t.Helper()
	if m.Rows() != rows || m.Cols() != cols {
		t.Errorf("%s: expected %dx%d, got %dx%d", msg, rows, cols, m.Rows(), m.Cols())
	}
}

func assertPanics(t *testing.T, msg string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", msg)
		}
	}()
	f()
}

func mustFromRows(t *testing.T, rows [][]float64, b Backend) *Dense {
	t.Helper()
	m, err := FromRows(rows, b)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return m
}

// Dense Tests

func TestNewDense(t *testing.T) {
	m := NewDense(2, 3)
	assertDims(t, m, 2, 3, "NewDense")
	if m.NumElements() != 6 {
		t.Errorf("NumElements: expected 6, got %d", m.NumElements())
	}
	for i, v := range m.Data() {
		if v != 0 {
			t.Errorf("Data[%d]: expected 0, got %v", i, v)
		}
	}
	if m.Backend() != nil {
		t.Error("NewDense should not attach a backend")
	}
}

func TestNewDenseInvalidDims(t *testing.T) {
	assertPanics(t, "zero rows", func() { NewDense(0, 3) })
	assertPanics(t, "negative cols", func() { NewDense(2, -1) })
}

func TestDenseAtSet(t *testing.T) {
	m := NewDense(2, 3)
	m.Set(1, 2, 7.5)
	assertApprox(t, 7.5, m.At(1, 2), 0, "At(1,2)")
	assertApprox(t, 0, m.At(0, 0), 0, "At(0,0)")

	assertPanics(t, "At out of bounds", func() { m.At(2, 0) })
	assertPanics(t, "Set out of bounds", func() { m.Set(0, 3, 1) })
	assertPanics(t, "negative index", func() { m.At(-1, 0) })
}

func TestDensePredicates(t *testing.T) {
	tests := []struct {
		rows, cols               int
		scalar, vector, square   bool
	}{
		{1, 1, true, true, true},
		{1, 4, false, true, false},
		{4, 1, false, true, false},
		{3, 3, false, false, true},
		{2, 3, false, false, false},
	}
	for _, tt := range tests {
		m := NewDense(tt.rows, tt.cols)
		if m.IsScalar() != tt.scalar {
			t.Errorf("%dx%d IsScalar = %v", tt.rows, tt.cols, m.IsScalar())
		}
		if m.IsVector() != tt.vector {
			t.Errorf("%dx%d IsVector = %v", tt.rows, tt.cols, m.IsVector())
		}
		if m.IsSquare() != tt.square {
			t.Errorf("%dx%d IsSquare = %v", tt.rows, tt.cols, m.IsSquare())
		}
	}
}

func TestDenseItem(t *testing.T) {
	s := NewScalar(42, nil)
	assertApprox(t, 42, s.Item(), 0, "Item")

	assertPanics(t, "Item on non-scalar", func() { NewDense(2, 2).Item() })
}

func TestDenseRowCol(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	}, nil)

	row := m.Row(1)
	for i, want := range []float64{4, 5, 6} {
		assertApprox(t, want, row[i], 0, "Row(1)")
	}
	col := m.Col(2)
	for i, want := range []float64{3, 6} {
		assertApprox(t, want, col[i], 0, "Col(2)")
	}

	// Returned slices are copies.
	row[0] = 99
	assertApprox(t, 4, m.At(1, 0), 0, "Row copy isolation")

	assertPanics(t, "Row out of bounds", func() { m.Row(2) })
	assertPanics(t, "Col out of bounds", func() { m.Col(3) })
}

func TestDenseClone(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}}, nil)
	c := m.Clone()

	c.Set(0, 0, 99)
	assertApprox(t, 1, m.At(0, 0), 0, "Clone shares no storage")
	if !m.SameDims(c) {
		t.Error("Clone dims differ")
	}
}

func TestDenseUsingSharesBuffer(t *testing.T) {
	b := NewMockBackend()
	m := NewDense(2, 2)
	bound := m.Using(b)

	bound.Set(0, 0, 5)
	assertApprox(t, 5, m.At(0, 0), 0, "Using shares buffer")
	if bound.Backend() != b {
		t.Error("Using did not attach backend")
	}
	if m.Backend() != nil {
		t.Error("Using modified receiver backend")
	}
}

func TestDenseEqual(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}}, nil)
	b := mustFromRows(t, [][]float64{{1, 2}, {3, 4}}, nil)
	c := mustFromRows(t, [][]float64{{1, 2}, {3, 4.001}}, nil)
	d := NewDense(2, 3)

	if !a.Equal(b) {
		t.Error("identical matrices compare unequal")
	}
	if a.Equal(c) {
		t.Error("different matrices compare equal")
	}
	if a.Equal(d) {
		t.Error("different dims compare equal")
	}
	if !a.EqualApprox(c, 0.01) {
		t.Error("EqualApprox within tol fails")
	}
	if a.EqualApprox(c, 1e-6) {
		t.Error("EqualApprox outside tol succeeds")
	}
}

func TestDenseEqualApproxNaN(t *testing.T) {
	a := NewDense(1, 1)
	b := NewDense(1, 1)
	a.Set(0, 0, math.NaN())
	b.Set(0, 0, math.NaN())
	if a.EqualApprox(b, 1) {
		t.Error("NaN elements should compare unequal")
	}
	b.Set(0, 0, 0)
	if a.EqualApprox(b, 1) {
		t.Error("NaN should compare unequal to a finite value")
	}
}

func TestDenseString(t *testing.T) {
	m := NewDense(2, 3)
	if got := m.String(); got != "Dense[2x3] via unbound" {
		t.Errorf("String() = %q", got)
	}
	bound := m.Using(NewMockBackend())
	if got := bound.String(); got != "Dense[2x3] via mock" {
		t.Errorf("String() = %q", got)
	}
}
