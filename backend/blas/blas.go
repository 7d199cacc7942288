// Copyright 2026 Jupiter Numerics. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package blas

import (
	internalblas "github.com/jupiter-num/jupiter/internal/backend/blas"
)

// Accelerator offloads matrix multiplication to gonum's BLAS
// implementation. It is available on every platform.
type Accelerator = internalblas.Accelerator

// New creates a new BLAS accelerator.
//
// Example:
//
//	eng := engine.New(engine.WithAccelerator(blas.New()))
//	eng.EnableAcceleration()
func New() *Accelerator {
	return internalblas.New()
}
