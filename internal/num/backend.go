package num

// Backend defines the interface every compute backend must implement.
// Backends handle the actual computation for matrix operations.
//
// Implementations:
//   - internal/backend/cpu: sequential reference kernels
//   - internal/engine: strategy dispatcher combining sequential,
//     multithreaded and accelerated execution
//
// All implementations must produce numerically identical results within
// floating-point tolerance for the same inputs.
type Backend interface {
	// Elementwise binary operations with broadcasting.
	Add(a, b *Dense) *Dense     // Elementwise addition.
	Sub(a, b *Dense) *Dense     // Elementwise subtraction.
	MulElem(a, b *Dense) *Dense // Elementwise multiplication.
	DivElem(a, b *Dense) *Dense // Elementwise division.

	// Matrix operations.
	MatMul(a, b *Dense) *Dense           // Matrix product, a.Cols() == b.Rows().
	Forward(a, w, bias *Dense) *Dense    // Fused a·w + bias.
	Transpose(a *Dense) *Dense           // New matrix with rows and columns swapped.

	// Scalar operations.
	Scale(a *Dense, alpha float64) *Dense     // Multiply every element by alpha.
	AddScalar(a *Dense, alpha float64) *Dense // Add alpha to every element.

	// Metadata.
	Name() string // Backend name (e.g. "cpu", "engine[cpu+blas]").
}
