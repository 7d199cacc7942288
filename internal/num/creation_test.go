package num

import (
	"math"
	"math/rand"
	"testing"
)

func TestZerosOnesFull(t *testing.T) {
	z := Zeros(2, 3, nil)
	assertDims(t, z, 2, 3, "Zeros")
	for _, v := range z.Data() {
		if v != 0 {
			t.Fatalf("Zeros: got %v", v)
		}
	}

	o := Ones(3, 2, nil)
	for _, v := range o.Data() {
		if v != 1 {
			t.Fatalf("Ones: got %v", v)
		}
	}

	f := Full(2, 2, 3.5, nil)
	for _, v := range f.Data() {
		if v != 3.5 {
			t.Fatalf("Full: got %v", v)
		}
	}
}

func TestEye(t *testing.T) {
	e := Eye(3, nil)
	assertDims(t, e, 3, 3, "Eye")
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assertApprox(t, want, e.At(i, j), 0, "Eye element")
		}
	}
}

func TestFromSlice(t *testing.T) {
	m, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, nil)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	assertDims(t, m, 2, 3, "FromSlice")
	assertApprox(t, 6, m.At(1, 2), 0, "FromSlice element")

	if _, err := FromSlice([]float64{1, 2, 3}, 2, nil); err == nil {
		t.Error("expected error for indivisible length")
	}
	if _, err := FromSlice(nil, 1, nil); err == nil {
		t.Error("expected error for empty data")
	}
	if _, err := FromSlice([]float64{1}, 0, nil); err == nil {
		t.Error("expected error for zero rows")
	}
}

func TestFromSliceCopies(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	m, err := FromSlice(src, 2, nil)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	src[0] = 99
	assertApprox(t, 1, m.At(0, 0), 0, "FromSlice copy isolation")
}

func TestFromRows(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, nil)
	assertDims(t, m, 3, 2, "FromRows")
	assertApprox(t, 5, m.At(2, 0), 0, "FromRows element")

	if _, err := FromRows([][]float64{{1, 2}, {3}}, nil); err == nil {
		t.Error("expected error for ragged input")
	}
	if _, err := FromRows(nil, nil); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestVectorConstructors(t *testing.T) {
	v := NewVector([]float64{1, 2, 3}, nil)
	assertDims(t, v, 3, 1, "NewVector")
	if !v.IsVector() {
		t.Error("NewVector result not a vector")
	}

	r := NewRowVector([]float64{1, 2, 3}, nil)
	assertDims(t, r, 1, 3, "NewRowVector")

	s := NewScalar(7, nil)
	assertDims(t, s, 1, 1, "NewScalar")
	assertApprox(t, 7, s.Item(), 0, "NewScalar value")
}

func TestRand(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := Rand(4, 5, rng, nil)
	assertDims(t, m, 4, 5, "Rand")
	for _, v := range m.Data() {
		if v < 0 || v >= 1 {
			t.Fatalf("Rand value %v outside [0,1)", v)
		}
	}

	// Same seed reproduces the same matrix.
	again := Rand(4, 5, rand.New(rand.NewSource(1)), nil)
	if !m.Equal(again) {
		t.Error("Rand not reproducible from seed")
	}
}

func TestRandn(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := Randn(50, 50, rng, nil)
	sum := 0.0
	for _, v := range m.Data() {
		sum += v
	}
	mean := sum / float64(m.NumElements())
	if math.Abs(mean) > 0.1 {
		t.Errorf("Randn mean %v too far from 0", mean)
	}
}
