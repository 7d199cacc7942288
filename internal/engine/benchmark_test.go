package engine

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/jupiter-num/jupiter/internal/backend/blas"
	"github.com/jupiter-num/jupiter/internal/num"
)

func benchMatrices(n int) (*num.Dense, *num.Dense) {
	rng := rand.New(rand.NewSource(1))
	return num.Rand(n, n, rng, nil), num.Rand(n, n, rng, nil)
}

func BenchmarkMatMulStrategies(b *testing.B) {
	for _, n := range []int{32, 128, 512} {
		a, m := benchMatrices(n)

		seq := New()
		b.Run(fmt.Sprintf("sequential/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = seq.MatMul(a, m)
			}
		})

		par := New(WithMinWork(0))
		par.Parallelize()
		b.Run(fmt.Sprintf("parallel/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = par.MatMul(a, m)
			}
		})

		acc := New(WithMinWork(0), WithAccelerator(blas.New()))
		acc.EnableAcceleration()
		b.Run(fmt.Sprintf("blas/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = acc.MatMul(a, m)
			}
		})

		both := New(WithMinWork(0), WithAccelerator(blas.New()))
		both.Parallelize()
		both.EnableAcceleration()
		b.Run(fmt.Sprintf("parallel+blas/%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = both.MatMul(a, m)
			}
		})
	}
}

func BenchmarkForwardStrategies(b *testing.B) {
	const n = 256
	rng := rand.New(rand.NewSource(2))
	a := num.Rand(n, n, rng, nil)
	w := num.Rand(n, n, rng, nil)
	bias := num.Rand(1, n, rng, nil)

	seq := New()
	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = seq.Forward(a, w, bias)
		}
	})

	par := New(WithMinWork(0))
	par.Parallelize()
	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = par.Forward(a, w, bias)
		}
	})
}

func BenchmarkElementwiseAdd(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	a := num.Rand(512, 512, rng, nil)
	c := num.Rand(512, 512, rng, nil)

	seq := New()
	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = seq.Add(a, c)
		}
	})

	par := New(WithMinWork(0))
	par.Parallelize()
	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = par.Add(a, c)
		}
	})
}
