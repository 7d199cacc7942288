package cpu

import (
	"math/rand"
	"testing"

	"github.com/jupiter-num/jupiter/internal/num"
)

// The cpu backend is verified against the naive mock backend on
// randomized inputs. Results must agree exactly: both paths perform
// the same float64 operations in the same order.

func randomPair(t *testing.T, rows, cols int, seed int64) (a, b *num.Dense) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a = num.Rand(rows, cols, rng, nil)
	b = num.Rand(rows, cols, rng, nil)
	return a, b
}

func TestBackendName(t *testing.T) {
	if got := New().Name(); got != "cpu" {
		t.Errorf("Name() = %q, want %q", got, "cpu")
	}
}

func TestBackendAgainstMock(t *testing.T) {
	c := New()
	m := num.NewMockBackend()

	ops := []struct {
		name string
		cpu  func(a, b *num.Dense) *num.Dense
		mock func(a, b *num.Dense) *num.Dense
	}{
		{"add", c.Add, m.Add},
		{"sub", c.Sub, m.Sub},
		{"mulelem", c.MulElem, m.MulElem},
		{"divelem", c.DivElem, m.DivElem},
	}

	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			a, b := randomPair(t, 7, 5, 42)
			got := op.cpu(a, b)
			want := op.mock(a, b)
			if !got.Equal(want) {
				t.Errorf("%s differs from mock", op.name)
			}
		})
	}
}

func TestBackendBroadcastAgainstMock(t *testing.T) {
	c := New()
	m := num.NewMockBackend()
	rng := rand.New(rand.NewSource(7))

	a := num.Rand(6, 4, rng, nil)
	operands := []*num.Dense{
		num.Rand(1, 4, rng, nil), // row vector
		num.Rand(6, 1, rng, nil), // column vector
		num.Rand(1, 1, rng, nil), // scalar
	}
	for _, b := range operands {
		got := c.Add(a, b)
		want := m.Add(a, b)
		if !got.Equal(want) {
			t.Errorf("broadcast add %dx%d differs from mock", b.Rows(), b.Cols())
		}
	}
}

func TestBackendMatMulAgainstMock(t *testing.T) {
	c := New()
	m := num.NewMockBackend()
	rng := rand.New(rand.NewSource(3))

	a := num.Rand(8, 6, rng, nil)
	b := num.Rand(6, 9, rng, nil)

	got := c.MatMul(a, b)
	want := m.MatMul(a, b)
	if !got.Equal(want) {
		t.Error("MatMul differs from mock")
	}
}

func TestBackendMatMulSparseRows(t *testing.T) {
	// Zero entries in A take the skip path in GemmRows; the result must
	// still match the naive product.
	c := New()
	m := num.NewMockBackend()

	a, err := num.FromRows([][]float64{
		{0, 0, 0},
		{1, 0, 2},
		{0, 3, 0},
	}, nil)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	b := num.Rand(3, 4, rand.New(rand.NewSource(5)), nil)

	if !c.MatMul(a, b).Equal(m.MatMul(a, b)) {
		t.Error("sparse MatMul differs from mock")
	}
}

func TestBackendMatMulDimensionPanic(t *testing.T) {
	c := New()
	a := num.Zeros(2, 3, nil)
	b := num.Zeros(2, 3, nil)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if _, ok := r.(*num.DimensionError); !ok {
			t.Fatalf("panic value %T, want *num.DimensionError", r)
		}
	}()
	c.MatMul(a, b)
}

func TestBackendForward(t *testing.T) {
	c := New()
	m := num.NewMockBackend()
	rng := rand.New(rand.NewSource(11))

	a := num.Rand(5, 3, rng, nil)
	w := num.Rand(3, 4, rng, nil)

	// Full bias and row-vector bias.
	for _, bias := range []*num.Dense{
		num.Rand(5, 4, rng, nil),
		num.Rand(1, 4, rng, nil),
	} {
		got := c.Forward(a, w, bias)
		want := m.Forward(a, w, bias)
		if !got.Equal(want) {
			t.Errorf("Forward with %dx%d bias differs from mock", bias.Rows(), bias.Cols())
		}
	}
}

func TestBackendForwardBadBias(t *testing.T) {
	c := New()
	a := num.Zeros(5, 3, nil)
	w := num.Zeros(3, 4, nil)
	bias := num.Zeros(2, 4, nil) // cannot broadcast to 5x4

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	c.Forward(a, w, bias)
}

func TestBackendTransposeScale(t *testing.T) {
	c := New()
	a, err := num.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}}, nil)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	tr := c.Transpose(a)
	if tr.Rows() != 3 || tr.Cols() != 2 {
		t.Fatalf("Transpose dims = %dx%d", tr.Rows(), tr.Cols())
	}
	if tr.At(0, 1) != 4 || tr.At(2, 0) != 3 {
		t.Error("Transpose elements wrong")
	}

	sc := c.Scale(a, 3)
	if sc.At(1, 2) != 18 {
		t.Errorf("Scale: got %v", sc.At(1, 2))
	}
	sh := c.AddScalar(a, 0.5)
	if sh.At(0, 0) != 1.5 {
		t.Errorf("AddScalar: got %v", sh.At(0, 0))
	}
}

func TestGemmRowsPartial(t *testing.T) {
	// Computing the rows in two ranges must equal one full pass.
	rng := rand.New(rand.NewSource(9))
	a := num.Rand(6, 4, rng, nil)
	b := num.Rand(4, 5, rng, nil)

	full := make([]float64, 6*5)
	GemmRows(full, a.Data(), b.Data(), 4, 5, 0, 6)

	split := make([]float64, 6*5)
	GemmRows(split, a.Data(), b.Data(), 4, 5, 0, 3)
	GemmRows(split, a.Data(), b.Data(), 4, 5, 3, 6)

	for i := range full {
		if full[i] != split[i] {
			t.Fatalf("split computation differs at %d", i)
		}
	}
}
