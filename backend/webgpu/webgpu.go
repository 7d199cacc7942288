// Copyright 2026 Jupiter Numerics. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package webgpu

import (
	internalwebgpu "github.com/jupiter-num/jupiter/internal/backend/webgpu"
)

// Accelerator offloads matrix multiplication to the GPU through
// WebGPU compute shaders. The GPU path runs in single precision;
// results agree with the CPU backend to float32 tolerance.
type Accelerator = internalwebgpu.Accelerator

// New creates a new WebGPU accelerator. It returns an error when no
// compatible GPU or native wgpu library is available, in which case
// the caller should keep the engine on the CPU path.
//
// Example:
//
//	acc, err := webgpu.New()
//	if err != nil {
//	    log.Printf("gpu unavailable, staying on cpu: %v", err)
//	    return
//	}
//	defer acc.Release()
//	eng := engine.New(engine.WithAccelerator(acc))
//	eng.EnableAcceleration()
func New() (*Accelerator, error) {
	return internalwebgpu.New()
}
