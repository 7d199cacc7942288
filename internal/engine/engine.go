// Package engine implements the execution-strategy dispatcher.
//
// An Engine is a num.Backend that picks between three mutually
// compatible execution axes per operation:
//
//   - sequential: always available, the baseline every other strategy
//     is verified against
//   - multithreaded: row-partitioned worker fan-out, enabled with
//     Parallelize/Unparallelize
//   - accelerated: GEMM delegated to an external compute path (BLAS or
//     WebGPU), enabled with EnableAcceleration/DisableAcceleration
//
// Below a work threshold the sequential path always wins, whatever the
// flags say; dispatch overhead would dominate. Multithreaded and
// accelerated combine: each worker hands its row partition to the
// accelerator. Accelerator failure falls back silently to the
// sequential kernel for the affected partition.
package engine

import (
	"fmt"

	"github.com/jupiter-num/jupiter/internal/backend/cpu"
	"github.com/jupiter-num/jupiter/internal/num"
	"github.com/jupiter-num/jupiter/internal/parallel"
)

// Accelerator is an external compute path for the GEMM inner loop.
// Implementations: internal/backend/blas (gonum), internal/backend/webgpu.
type Accelerator interface {
	// Gemm computes C = A·B for row-major buffers (A m×k, B k×n, C m×n),
	// fully overwriting C.
	Gemm(m, k, n int, a, b, c []float64) error
	// Name identifies the accelerator.
	Name() string
}

// defaultMinWork is the scalar-multiply count below which dispatch
// always stays sequential. Chosen so a 16x16x16 product never pays
// goroutine or accelerator overhead.
const defaultMinWork = 4096

// Engine dispatches matrix operations across execution strategies.
//
// The execution-mode flags are read concurrently by operations but are
// not internally locked; callers must not toggle them while operations
// are in flight.
type Engine struct {
	seq *cpu.Backend
	cfg parallel.Config
	acc Accelerator

	parallelOn    bool
	acceleratedOn bool
	minWork       int
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets the worker-pool size for the multithreaded strategy.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.cfg.NumWorkers = n
		}
	}
}

// WithMinWork sets the work threshold (scalar multiplies for GEMM,
// elements for elementwise operations) below which execution is always
// sequential.
func WithMinWork(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.minWork = n
		}
	}
}

// WithAccelerator sets the accelerator used by the accelerated
// strategy. Passing nil leaves acceleration unavailable.
func WithAccelerator(acc Accelerator) Option {
	return func(e *Engine) {
		e.acc = acc
	}
}

// New creates an Engine with both optional strategies switched off.
// Callers opt in with Parallelize and EnableAcceleration.
func New(opts ...Option) *Engine {
	e := &Engine{
		seq:     cpu.New(),
		cfg:     parallel.DefaultConfig(),
		minWork: defaultMinWork,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parallelize enables the multithreaded strategy.
func (e *Engine) Parallelize() { e.parallelOn = true }

// Unparallelize disables the multithreaded strategy.
func (e *Engine) Unparallelize() { e.parallelOn = false }

// EnableAcceleration enables the accelerated strategy. A nil
// accelerator leaves the flag set but dispatch falls through to the
// remaining strategies.
func (e *Engine) EnableAcceleration() { e.acceleratedOn = true }

// DisableAcceleration disables the accelerated strategy.
func (e *Engine) DisableAcceleration() { e.acceleratedOn = false }

// Accelerator returns the configured accelerator, or nil.
func (e *Engine) Accelerator() Accelerator { return e.acc }

// Name returns the backend name including the active axes.
func (e *Engine) Name() string {
	name := "engine[cpu"
	if e.parallelOn {
		name += "+parallel"
	}
	if e.acceleratedOn && e.acc != nil {
		name += "+" + e.acc.Name()
	}
	return name + "]"
}

// MatMul computes a·b with the selected strategy.
func (e *Engine) MatMul(a, b *num.Dense) *num.Dense {
	m, k, n := cpu.CheckMatMul(a, b)
	out := num.NewDense(m, n)
	e.gemm(out.Data(), a.Data(), b.Data(), m, k, n)
	return out
}

// Forward computes the fused a·w + bias with the selected strategy.
func (e *Engine) Forward(a, w, bias *num.Dense) *num.Dense {
	m, k, n := cpu.CheckForward(a, w, bias)
	out := num.NewDense(m, n)
	br, bc := bias.Rows(), bias.Cols()

	work := m * k * n
	useAcc := e.useAccelerator(work)
	e.dispatchRows(m, work, func(start, end int) {
		e.gemmChunk(out.Data(), a.Data(), w.Data(), k, n, start, end, useAcc)
		biasRows(out.Data(), bias.Data(), n, br, bc, start, end)
	})
	return out
}

// Add performs elementwise addition with broadcasting.
func (e *Engine) Add(a, b *num.Dense) *num.Dense {
	return e.binOp("add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs elementwise subtraction with broadcasting.
func (e *Engine) Sub(a, b *num.Dense) *num.Dense {
	return e.binOp("sub", a, b, func(x, y float64) float64 { return x - y })
}

// MulElem performs elementwise multiplication with broadcasting.
func (e *Engine) MulElem(a, b *num.Dense) *num.Dense {
	return e.binOp("mulelem", a, b, func(x, y float64) float64 { return x * y })
}

// DivElem performs elementwise division with broadcasting.
func (e *Engine) DivElem(a, b *num.Dense) *num.Dense {
	return e.binOp("divelem", a, b, func(x, y float64) float64 { return x / y })
}

// Transpose returns a new matrix with rows and columns swapped.
func (e *Engine) Transpose(a *num.Dense) *num.Dense {
	return e.seq.Transpose(a)
}

// Scale multiplies every element by alpha.
func (e *Engine) Scale(a *num.Dense, alpha float64) *num.Dense {
	return e.seq.Scale(a, alpha)
}

// AddScalar adds alpha to every element.
func (e *Engine) AddScalar(a *num.Dense, alpha float64) *num.Dense {
	return e.seq.AddScalar(a, alpha)
}

// gemm runs C = A·B through the selected strategy.
func (e *Engine) gemm(c, a, b []float64, m, k, n int) {
	work := m * k * n
	useAcc := e.useAccelerator(work)
	e.dispatchRows(m, work, func(start, end int) {
		e.gemmChunk(c, a, b, k, n, start, end, useAcc)
	})
}

// useAccelerator decides the accelerated axis for one operation. Like
// the multithreaded axis, it only engages above the work threshold.
func (e *Engine) useAccelerator(work int) bool {
	return e.acceleratedOn && e.acc != nil && work >= e.minWork
}

// gemmChunk computes rows [start, end) of C = A·B, delegating to the
// accelerator when useAcc is set. Accelerator failure falls back
// silently to the sequential kernel.
func (e *Engine) gemmChunk(c, a, b []float64, k, n, start, end int, useAcc bool) {
	if useAcc {
		rows := end - start
		if err := e.acc.Gemm(rows, k, n, a[start*k:end*k], b, c[start*n:end*n]); err == nil {
			return
		}
	}
	cpu.GemmRows(c, a, b, k, n, start, end)
}

// dispatchRows partitions output rows across workers when the
// multithreaded axis is active and the work is above the threshold.
// Partitions write disjoint row slices; the only synchronization point
// is the join before returning.
func (e *Engine) dispatchRows(rows, work int, f func(start, end int)) {
	if work < e.minWork || !e.parallelOn {
		f(0, rows)
		return
	}
	cfg := e.cfg
	cfg.Enabled = true
	cfg.MinChunkSize = 1
	parallel.ForChunks(rows, f, cfg)
}

func (e *Engine) binOp(op string, a, b *num.Dense, f func(float64, float64) float64) *num.Dense {
	rows, cols, _, err := num.BroadcastDims(op, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	if err != nil {
		panic(err)
	}
	out := num.NewDense(rows, cols)
	e.dispatchRows(rows, rows*cols, func(start, end int) {
		cpu.ElementWiseRows(out.Data(), a.Data(), b.Data(), cols,
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), start, end, f)
	})
	return out
}

// biasRows adds the broadcast bias to rows [start, end) of C.
func biasRows(c, bias []float64, n, br, bc, start, end int) {
	for i := start; i < end; i++ {
		bi := i
		if br == 1 {
			bi = 0
		}
		crow := c[i*n : (i+1)*n]
		if bc == 1 {
			bv := bias[bi*bc]
			for j := range crow {
				crow[j] += bv
			}
			continue
		}
		brow := bias[bi*bc : bi*bc+n]
		for j := range crow {
			crow[j] += brow[j]
		}
	}
}

var _ num.Backend = (*Engine)(nil)

// String implements fmt.Stringer for debug output.
func (e *Engine) String() string {
	return fmt.Sprintf("%s workers=%d minWork=%d", e.Name(), e.cfg.NumWorkers, e.minWork)
}
