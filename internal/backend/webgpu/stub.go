//go:build !windows

// Package webgpu implements the GPU accelerator on top of go-webgpu's
// zero-CGO WebGPU bindings. On platforms where the bindings are not
// built, New reports unavailability and callers fall back to the
// sequential path.
package webgpu

import "fmt"

// Accelerator stub for platforms without the WebGPU bindings.
type Accelerator struct{}

// New reports that WebGPU is unavailable on this platform.
func New() (*Accelerator, error) {
	return nil, fmt.Errorf("webgpu: not available on this platform")
}

// Name returns the accelerator name.
func (acc *Accelerator) Name() string {
	return "webgpu"
}

// Release does nothing.
func (acc *Accelerator) Release() {}

// Gemm always fails; the dispatcher falls back to the sequential path.
func (acc *Accelerator) Gemm(m, k, n int, a, b, c []float64) error {
	return fmt.Errorf("webgpu: not available on this platform")
}
