// Copyright 2026 Jupiter Numerics. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go sequential backend.
//
// # Overview
//
// This package implements the baseline compute backend:
//   - Pure Go implementation (no CGO)
//   - Float64 throughout
//   - NumPy-style broadcasting for elementwise operations
//   - Deterministic: the execution engine's parallel and accelerated
//     strategies are verified against it
//
// # Basic Usage
//
//	import (
//	    "github.com/jupiter-num/jupiter/backend/cpu"
//	    "github.com/jupiter-num/jupiter/num"
//	)
//
//	func main() {
//	    b := cpu.New()
//
//	    x := num.Zeros(2, 3, b)
//	    y := num.Ones(2, 3, b)
//	    z := x.Add(y)
//	    _ = z
//	}
//
// For multithreaded or accelerated execution, see the engine package.
//
// # Thread Safety
//
// The backend holds no mutable state; it is safe for concurrent use as
// long as distinct operations work on distinct output matrices.
package cpu
