// Copyright 2026 Jupiter Numerics. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/jupiter-num/jupiter/internal/backend/cpu"
	"github.com/jupiter-num/jupiter/num"
)

// Backend is the sequential pure-Go compute backend.
//
// It is the reference implementation the execution engine falls back
// to, and the baseline every other backend is tested against.
type Backend = internalcpu.Backend

// Compile-time check that Backend implements num.Backend.
var _ num.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/jupiter-num/jupiter/backend/cpu"
//	    "github.com/jupiter-num/jupiter/num"
//	)
//
//	func main() {
//	    b := cpu.New()
//	    x := num.Zeros(2, 3, b)
//	}
func New() *Backend {
	return internalcpu.New()
}
