// Package stats provides aggregate numeric helpers over matrices.
package stats

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/jupiter-num/jupiter/internal/num"
)

// Sum returns the sum of all elements.
func Sum(a *num.Dense) float64 {
	return floats.Sum(a.Data())
}

// Mean returns the arithmetic mean of all elements.
func Mean(a *num.Dense) float64 {
	return stat.Mean(a.Data(), nil)
}

// Min returns the smallest element.
func Min(a *num.Dense) float64 {
	return floats.Min(a.Data())
}

// Max returns the largest element.
func Max(a *num.Dense) float64 {
	return floats.Max(a.Data())
}

// Variance returns the unbiased sample variance of all elements.
func Variance(a *num.Dense) float64 {
	return stat.Variance(a.Data(), nil)
}

// StdDev returns the unbiased sample standard deviation of all elements.
func StdDev(a *num.Dense) float64 {
	return stat.StdDev(a.Data(), nil)
}

// Dot returns the inner product of two vectors of equal element count.
// Panics with a *num.DimensionError on mismatch.
func Dot(a, b *num.Dense) float64 {
	if a.NumElements() != b.NumElements() || !a.IsVector() || !b.IsVector() {
		panic(num.NewDimensionError("dot", a.Rows(), a.Cols(), b.Rows(), b.Cols()))
	}
	return floats.Dot(a.Data(), b.Data())
}

// Norm1 returns the matrix 1-norm: the maximum absolute column sum.
func Norm1(a *num.Dense) float64 {
	rows, cols := a.Rows(), a.Cols()
	data := a.Data()
	maxSum := 0.0
	for j := 0; j < cols; j++ {
		sum := 0.0
		for i := 0; i < rows; i++ {
			v := data[i*cols+j]
			if v < 0 {
				v = -v
			}
			sum += v
		}
		if sum > maxSum {
			maxSum = sum
		}
	}
	return maxSum
}

// NormInf returns the matrix infinity-norm: the maximum absolute row sum.
func NormInf(a *num.Dense) float64 {
	rows, cols := a.Rows(), a.Cols()
	data := a.Data()
	maxSum := 0.0
	for i := 0; i < rows; i++ {
		sum := 0.0
		for _, v := range data[i*cols : (i+1)*cols] {
			if v < 0 {
				v = -v
			}
			sum += v
		}
		if sum > maxSum {
			maxSum = sum
		}
	}
	return maxSum
}

// NormFro returns the Frobenius norm.
func NormFro(a *num.Dense) float64 {
	return floats.Norm(a.Data(), 2)
}
