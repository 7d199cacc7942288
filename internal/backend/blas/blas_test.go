package blas

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jupiter-num/jupiter/internal/backend/cpu"
)

func TestGemmMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m, k, n := 7, 5, 9

	a := make([]float64, m*k)
	b := make([]float64, k*n)
	for i := range a {
		a[i] = rng.NormFloat64()
	}
	for i := range b {
		b[i] = rng.NormFloat64()
	}

	got := make([]float64, m*n)
	if err := New().Gemm(m, k, n, a, b, got); err != nil {
		t.Fatalf("Gemm: %v", err)
	}

	want := make([]float64, m*n)
	cpu.GemmRows(want, a, b, k, n, 0, m)

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("element %d: %v vs %v", i, got[i], want[i])
		}
	}
}

func TestGemmOverwritesOutput(t *testing.T) {
	a := []float64{1, 0, 0, 1}
	b := []float64{2, 3, 4, 5}
	c := []float64{99, 99, 99, 99}

	if err := New().Gemm(2, 2, 2, a, b, c); err != nil {
		t.Fatalf("Gemm: %v", err)
	}
	for i, want := range b {
		if c[i] != want {
			t.Errorf("element %d: got %v, want %v", i, c[i], want)
		}
	}
}

func TestGemmShortBuffer(t *testing.T) {
	if err := New().Gemm(2, 2, 2, make([]float64, 3), make([]float64, 4), make([]float64, 4)); err == nil {
		t.Error("expected error for short A buffer")
	}
	if err := New().Gemm(2, 2, 2, make([]float64, 4), make([]float64, 4), make([]float64, 3)); err == nil {
		t.Error("expected error for short C buffer")
	}
}

func TestName(t *testing.T) {
	if got := New().Name(); got != "blas" {
		t.Errorf("Name() = %q", got)
	}
}
