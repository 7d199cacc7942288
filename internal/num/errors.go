package num

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by decompositions and solvers.
// Match with errors.Is.
var (
	// ErrSingular is returned when a solve is requested from an LU
	// factorization of a singular matrix.
	ErrSingular = errors.New("num: matrix is singular")

	// ErrRankDeficient is returned when a least-squares solve is requested
	// from a QR factorization with linearly dependent columns.
	ErrRankDeficient = errors.New("num: matrix is rank deficient")

	// ErrNoConvergence is returned when the eigenvalue iteration exceeds
	// its iteration bound. Partial results remain available.
	ErrNoConvergence = errors.New("num: eigenvalue iteration did not converge")
)

// DimensionError reports incompatible operand dimensions.
// Arithmetic kernels panic with a *DimensionError; decomposition
// constructors return it.
type DimensionError struct {
	Op       string // Operation that failed, e.g. "matmul".
	Expected string // Expected dimensions, e.g. "3x4".
	Found    string // Dimensions actually supplied.
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("num: %s: dimension mismatch: expected %s, found %s", e.Op, e.Expected, e.Found)
}

// NewDimensionError builds a DimensionError from operand dimensions.
func NewDimensionError(op string, expRows, expCols, gotRows, gotCols int) *DimensionError {
	return &DimensionError{
		Op:       op,
		Expected: fmt.Sprintf("%dx%d", expRows, expCols),
		Found:    fmt.Sprintf("%dx%d", gotRows, gotCols),
	}
}

// FormatError reports a malformed line in delimited matrix input.
type FormatError struct {
	Line int    // 1-based line number of the offending input line.
	Msg  string // Description of the failure.
	Err  error  // Underlying cause, if any.
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("num: line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("num: line %d: %s", e.Line, e.Msg)
}

func (e *FormatError) Unwrap() error { return e.Err }
