//go:build windows

// Package webgpu implements the GPU accelerator on top of go-webgpu's
// zero-CGO WebGPU bindings. GPU compute is float32; results agree with
// the sequential path within single-precision tolerance.
package webgpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
)

// Accelerator delegates GEMM to a WebGPU compute shader.
type Accelerator struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	// Shader and pipeline cache.
	shaders   map[string]*wgpu.ShaderModule
	pipelines map[string]*wgpu.ComputePipeline
	mu        sync.RWMutex
}

// New creates a new WebGPU accelerator.
// Returns an error if WebGPU is not available or initialization fails;
// callers fall back to the sequential path.
func New() (acc *Accelerator, err error) {
	// Recover from panic if the wgpu native library is not found.
	defer func() {
		if r := recover(); r != nil {
			acc = nil
			err = fmt.Errorf("webgpu: native library not available: %v", r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request adapter: %w", adapterErr)
	}

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to request device: %w", deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("webgpu: failed to get queue")
	}

	return &Accelerator{
		instance:  instance,
		adapter:   adapter,
		device:    device,
		queue:     queue,
		shaders:   make(map[string]*wgpu.ShaderModule),
		pipelines: make(map[string]*wgpu.ComputePipeline),
	}, nil
}

// Name returns the accelerator name.
func (acc *Accelerator) Name() string {
	return "webgpu"
}

// Release releases all WebGPU resources.
// Must be called when the accelerator is no longer needed.
func (acc *Accelerator) Release() {
	acc.mu.Lock()
	defer acc.mu.Unlock()

	for _, p := range acc.pipelines {
		p.Release()
	}
	for _, s := range acc.shaders {
		s.Release()
	}
	acc.pipelines = nil
	acc.shaders = nil

	if acc.queue != nil {
		acc.queue.Release()
	}
	if acc.device != nil {
		acc.device.Release()
	}
	if acc.adapter != nil {
		acc.adapter.Release()
	}
	if acc.instance != nil {
		acc.instance.Release()
	}
}

// Gemm computes C = A·B on the GPU for row-major float64 buffers.
// Buffers are converted to float32 for the shader and back on readback.
func (acc *Accelerator) Gemm(m, k, n int, a, b, c []float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("webgpu: gemm failed: %v", r)
		}
	}()

	shader := acc.compileShader("matmul", matmulShader)
	pipeline := acc.getOrCreatePipeline("matmul", shader)

	bufferA := acc.createBuffer(toFloat32Bytes(a[:m*k]), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferA.Release()

	bufferB := acc.createBuffer(toFloat32Bytes(b[:k*n]), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferB.Release()

	resultSize := uint64(m * n * 4)
	bufferC := acc.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:  resultSize,
	})
	defer bufferC.Release()

	// Uniform params: M, K, N as u32, padded to 16 bytes.
	params := make([]byte, 16)
	binary.LittleEndian.PutUint32(params[0:4], uint32(m))
	binary.LittleEndian.PutUint32(params[4:8], uint32(k))
	binary.LittleEndian.PutUint32(params[8:12], uint32(n))
	bufferParams := acc.createUniformBuffer(params)
	defer bufferParams.Release()

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := acc.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferA, 0, uint64(m*k*4)),
		wgpu.BufferBindingEntry(1, bufferB, 0, uint64(k*n*4)),
		wgpu.BufferBindingEntry(2, bufferC, 0, resultSize),
		wgpu.BufferBindingEntry(3, bufferParams, 0, 16),
	})
	defer bindGroup.Release()

	encoder := acc.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)
	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)

	// 16x16 threads per workgroup over the output tile grid.
	workgroupsX := uint32(math.Ceil(float64(n) / 16.0))
	workgroupsY := uint32(math.Ceil(float64(m) / 16.0))
	computePass.DispatchWorkgroups(workgroupsX, workgroupsY, 1)
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	acc.queue.Submit(cmdBuffer)

	resultData, err := acc.readBuffer(bufferC, resultSize)
	if err != nil {
		return err
	}

	fromFloat32Bytes(c[:m*n], resultData)
	return nil
}

// compileShader compiles WGSL shader code into a ShaderModule.
// Results are cached.
func (acc *Accelerator) compileShader(name, code string) *wgpu.ShaderModule {
	acc.mu.RLock()
	if shader, exists := acc.shaders[name]; exists {
		acc.mu.RUnlock()
		return shader
	}
	acc.mu.RUnlock()

	shader := acc.device.CreateShaderModuleWGSL(code)

	acc.mu.Lock()
	acc.shaders[name] = shader
	acc.mu.Unlock()

	return shader
}

// getOrCreatePipeline returns a cached ComputePipeline or creates one.
func (acc *Accelerator) getOrCreatePipeline(name string, shader *wgpu.ShaderModule) *wgpu.ComputePipeline {
	acc.mu.RLock()
	if pipeline, exists := acc.pipelines[name]; exists {
		acc.mu.RUnlock()
		return pipeline
	}
	acc.mu.RUnlock()

	pipeline := acc.device.CreateComputePipelineSimple(nil, shader, "main")

	acc.mu.Lock()
	acc.pipelines[name] = pipeline
	acc.mu.Unlock()

	return pipeline
}

// createBuffer creates a GPU buffer and uploads initial data.
func (acc *Accelerator) createBuffer(data []byte, usage wgpu.BufferUsage) *wgpu.Buffer {
	size := uint64(len(data))
	buffer := acc.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, size)
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	copy(mappedSlice, data)
	buffer.Unmap()

	return buffer
}

// createUniformBuffer creates a uniform buffer with 16-byte alignment.
func (acc *Accelerator) createUniformBuffer(data []byte) *wgpu.Buffer {
	size := uint64(len(data))
	alignedSize := (size + 15) &^ 15

	buffer := acc.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:             alignedSize,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, alignedSize)
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), alignedSize)
	copy(mappedSlice, data)
	buffer.Unmap()

	return buffer
}

// readBuffer reads data back from a GPU buffer through a staging buffer.
func (acc *Accelerator) readBuffer(srcBuffer *wgpu.Buffer, size uint64) ([]byte, error) {
	stagingBuffer := acc.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer stagingBuffer.Release()

	encoder := acc.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(srcBuffer, 0, stagingBuffer, 0, size)
	cmdBuffer := encoder.Finish(nil)
	acc.queue.Submit(cmdBuffer)

	err := stagingBuffer.MapAsync(acc.device, wgpu.MapModeRead, 0, size)
	if err != nil {
		return nil, fmt.Errorf("webgpu: failed to map staging buffer: %w", err)
	}

	mappedPtr := stagingBuffer.GetMappedRange(0, size)
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	result := make([]byte, size)
	copy(result, mappedSlice)
	stagingBuffer.Unmap()

	return result, nil
}

func toFloat32Bytes(src []float64) []byte {
	out := make([]byte, len(src)*4)
	for i, v := range src {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(float32(v)))
	}
	return out
}

func fromFloat32Bytes(dst []float64, src []byte) {
	for i := range dst {
		dst[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:])))
	}
}
