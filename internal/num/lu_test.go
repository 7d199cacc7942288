package num

import (
	"errors"
	"math"
	"testing"
)

func reconstructLU(t *testing.T, f *LUFactors) *Dense {
	t.Helper()
	b := NewMockBackend()
	return f.L().Using(b).MatMul(f.U().Using(b))
}

func TestLUDecompose(t *testing.T) {
	b := NewMockBackend()
	a := mustFromRows(t, [][]float64{
		{8, 1, 6},
		{3, 5, 7},
		{4, 9, 2},
	}, b)

	f, err := LUDecompose(a)
	if err != nil {
		t.Fatalf("LUDecompose: %v", err)
	}

	// L·U reproduces the pivoted rows of A.
	lu := reconstructLU(t, f)
	piv := f.Pivot()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assertApprox(t, a.At(piv[i], j), lu.At(i, j), 1e-12, "L·U vs P·A")
		}
	}

	// L unit lower triangular, U upper triangular.
	l, u := f.L(), f.U()
	for i := 0; i < 3; i++ {
		assertApprox(t, 1, l.At(i, i), 0, "L diagonal")
		for j := i + 1; j < 3; j++ {
			assertApprox(t, 0, l.At(i, j), 0, "L above diagonal")
		}
		for j := 0; j < i; j++ {
			assertApprox(t, 0, u.At(i, j), 0, "U below diagonal")
		}
	}

	if f.IsSingular() {
		t.Error("nonsingular matrix flagged singular")
	}
	assertApprox(t, -360, f.Det(), 1e-9, "Det")

	// Input untouched by the factorization.
	assertApprox(t, 8, a.At(0, 0), 0, "LUDecompose mutated input")
}

func TestLUDecomposeNonSquare(t *testing.T) {
	_, err := LUDecompose(Zeros(2, 3, nil))
	var de *DimensionError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DimensionError, got %v", err)
	}
}

func TestLUSolve(t *testing.T) {
	b := NewMockBackend()
	a := mustFromRows(t, [][]float64{
		{2, 1, 1},
		{1, 3, 2},
		{1, 0, 0},
	}, b)
	rhs := NewVector([]float64{4, 5, 6}, b)

	f, err := LUDecompose(a)
	if err != nil {
		t.Fatalf("LUDecompose: %v", err)
	}
	x, err := f.Solve(rhs)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	// Residual A·x − b is tiny.
	res := a.MatMul(x).Sub(rhs)
	for _, v := range res.Data() {
		if math.Abs(v) > 1e-10 {
			t.Errorf("residual %v too large", v)
		}
	}
}

func TestLUSolveMultiRHS(t *testing.T) {
	b := NewMockBackend()
	a := mustFromRows(t, [][]float64{{4, 3}, {6, 3}}, b)
	rhs := mustFromRows(t, [][]float64{{1, 0}, {0, 1}}, b)

	f, err := LUDecompose(a)
	if err != nil {
		t.Fatalf("LUDecompose: %v", err)
	}
	x, err := f.Solve(rhs)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	assertDims(t, x, 2, 2, "multi-RHS solution")

	// A·X = I, so X is the inverse.
	prod := a.MatMul(x)
	if !prod.EqualApprox(Eye(2, b), 1e-12) {
		t.Errorf("A·X = %v, want identity", prod.Data())
	}
}

func TestLUSolveWrongRows(t *testing.T) {
	f, err := LUDecompose(Eye(3, nil))
	if err != nil {
		t.Fatalf("LUDecompose: %v", err)
	}
	_, err = f.Solve(Zeros(2, 1, nil))
	var de *DimensionError
	if !errors.As(err, &de) {
		t.Fatalf("expected *DimensionError, got %v", err)
	}
}

func TestLUSingular(t *testing.T) {
	b := NewMockBackend()
	// Second row is twice the first.
	a := mustFromRows(t, [][]float64{
		{1, 2, 3},
		{2, 4, 6},
		{7, 8, 9},
	}, b)

	f, err := LUDecompose(a)
	if err != nil {
		t.Fatalf("LUDecompose should complete for singular input: %v", err)
	}
	if !f.IsSingular() {
		t.Error("singular matrix not flagged")
	}
	assertApprox(t, 0, f.Det(), 0, "singular Det")

	if _, err := f.Solve(NewVector([]float64{1, 2, 3}, b)); !errors.Is(err, ErrSingular) {
		t.Errorf("Solve error = %v, want ErrSingular", err)
	}
	if _, err := f.Inverse(); !errors.Is(err, ErrSingular) {
		t.Errorf("Inverse error = %v, want ErrSingular", err)
	}
}

func TestLUInverse(t *testing.T) {
	b := NewMockBackend()
	a := mustFromRows(t, [][]float64{{4, 7}, {2, 6}}, b)

	f, err := LUDecompose(a)
	if err != nil {
		t.Fatalf("LUDecompose: %v", err)
	}
	inv, err := f.Inverse()
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}

	if !a.MatMul(inv).EqualApprox(Eye(2, b), 1e-12) {
		t.Error("A·A⁻¹ != I")
	}
	if !inv.MatMul(a).EqualApprox(Eye(2, b), 1e-12) {
		t.Error("A⁻¹·A != I")
	}
}

func TestLUDetIdentity(t *testing.T) {
	f, err := LUDecompose(Eye(4, nil))
	if err != nil {
		t.Fatalf("LUDecompose: %v", err)
	}
	assertApprox(t, 1, f.Det(), 0, "det(I)")
}

func TestLUDetSwapSign(t *testing.T) {
	// Row-swapped identity has determinant −1.
	a := mustFromRows(t, [][]float64{{0, 1}, {1, 0}}, nil)
	f, err := LUDecompose(a)
	if err != nil {
		t.Fatalf("LUDecompose: %v", err)
	}
	assertApprox(t, -1, f.Det(), 0, "det of permutation")
}
