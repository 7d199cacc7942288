// Copyright 2026 Jupiter Numerics. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stats provides summary statistics and norms over matrices.
package stats

import (
	"github.com/jupiter-num/jupiter/internal/stats"
	"github.com/jupiter-num/jupiter/num"
)

// Sum returns the sum of all elements.
func Sum(a *num.Dense) float64 { return stats.Sum(a) }

// Mean returns the arithmetic mean of all elements.
func Mean(a *num.Dense) float64 { return stats.Mean(a) }

// Min returns the smallest element.
func Min(a *num.Dense) float64 { return stats.Min(a) }

// Max returns the largest element.
func Max(a *num.Dense) float64 { return stats.Max(a) }

// Variance returns the unbiased sample variance of all elements.
func Variance(a *num.Dense) float64 { return stats.Variance(a) }

// StdDev returns the unbiased sample standard deviation.
func StdDev(a *num.Dense) float64 { return stats.StdDev(a) }

// Dot returns the dot product of two vectors of equal length. It
// panics with a *num.DimensionError when either operand is not a
// vector or the lengths differ.
func Dot(a, b *num.Dense) float64 { return stats.Dot(a, b) }

// Norm1 returns the maximum absolute column sum.
func Norm1(a *num.Dense) float64 { return stats.Norm1(a) }

// NormInf returns the maximum absolute row sum.
func NormInf(a *num.Dense) float64 { return stats.NormInf(a) }

// NormFro returns the Frobenius norm.
func NormFro(a *num.Dense) float64 { return stats.NormFro(a) }
