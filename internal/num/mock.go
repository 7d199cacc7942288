package num

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a naive single-threaded backend for testing.
// Every operation is implemented in the most direct way possible so
// optimized backends can be verified against it.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string { return "mock" }

// Add performs elementwise addition with broadcasting.
func (m *MockBackend) Add(a, b *Dense) *Dense {
	return m.elementWise("add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs elementwise subtraction with broadcasting.
func (m *MockBackend) Sub(a, b *Dense) *Dense {
	return m.elementWise("sub", a, b, func(x, y float64) float64 { return x - y })
}

// MulElem performs elementwise multiplication with broadcasting.
func (m *MockBackend) MulElem(a, b *Dense) *Dense {
	return m.elementWise("mulelem", a, b, func(x, y float64) float64 { return x * y })
}

// DivElem performs elementwise division with broadcasting.
func (m *MockBackend) DivElem(a, b *Dense) *Dense {
	return m.elementWise("divelem", a, b, func(x, y float64) float64 { return x / y })
}

// MatMul performs naive triple-loop matrix multiplication.
func (m *MockBackend) MatMul(a, b *Dense) *Dense {
	if a.cols != b.rows {
		panic(NewDimensionError("matmul", a.cols, b.cols, b.rows, b.cols))
	}
	out := NewDense(a.rows, b.cols)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			sum := 0.0
			for k := 0; k < a.cols; k++ {
				sum += a.data[i*a.cols+k] * b.data[k*b.cols+j]
			}
			out.data[i*b.cols+j] = sum
		}
	}
	return out
}

// Forward computes a·w + bias via MatMul and Add.
func (m *MockBackend) Forward(a, w, bias *Dense) *Dense {
	return m.Add(m.MatMul(a, w), bias)
}

// Transpose returns a new matrix with rows and columns swapped.
func (m *MockBackend) Transpose(a *Dense) *Dense {
	out := NewDense(a.cols, a.rows)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.data[j*a.rows+i] = a.data[i*a.cols+j]
		}
	}
	return out
}

// Scale multiplies every element by alpha.
func (m *MockBackend) Scale(a *Dense, alpha float64) *Dense {
	out := NewDense(a.rows, a.cols)
	for i, v := range a.data {
		out.data[i] = v * alpha
	}
	return out
}

// AddScalar adds alpha to every element.
func (m *MockBackend) AddScalar(a *Dense, alpha float64) *Dense {
	out := NewDense(a.rows, a.cols)
	for i, v := range a.data {
		out.data[i] = v + alpha
	}
	return out
}

func (m *MockBackend) elementWise(op string, a, b *Dense, f func(float64, float64) float64) *Dense {
	rows, cols, _, err := BroadcastDims(op, a.rows, a.cols, b.rows, b.cols)
	if err != nil {
		panic(err)
	}
	out := NewDense(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av := a.data[broadcastIndex(i, j, a.rows, a.cols)]
			bv := b.data[broadcastIndex(i, j, b.rows, b.cols)]
			out.data[i*cols+j] = f(av, bv)
		}
	}
	return out
}
