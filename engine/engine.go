// Copyright 2026 Jupiter Numerics. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine provides the execution-strategy backend.
//
// An Engine dispatches each operation to a sequential loop, a chunked
// multithreaded path, or an attached accelerator, depending on the
// flags set on the instance and the amount of work the operands carry.
package engine

import (
	"github.com/jupiter-num/jupiter/internal/engine"
)

// Engine is a num.Backend that selects an execution strategy per call.
type Engine = engine.Engine

// Accelerator offloads matrix multiplication to an external library
// or device.
type Accelerator = engine.Accelerator

// Option configures an Engine.
type Option = engine.Option

// New creates an Engine with the given options. With no options the
// engine runs every operation sequentially.
func New(opts ...Option) *Engine { return engine.New(opts...) }

// WithWorkers sets the number of worker goroutines used by the
// multithreaded path.
func WithWorkers(n int) Option { return engine.WithWorkers(n) }

// WithMinWork sets the element-count threshold below which operations
// stay sequential regardless of the flags.
func WithMinWork(n int) Option { return engine.WithMinWork(n) }

// WithAccelerator attaches an accelerator to the engine.
func WithAccelerator(acc Accelerator) Option { return engine.WithAccelerator(acc) }
