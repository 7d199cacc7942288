package num

// BroadcastDims resolves the output dimensions for an elementwise
// operation between an ar×ac and a br×bc operand.
//
// Rules (checked per axis):
//   - equal dimensions are compatible
//   - a dimension of 1 broadcasts against any size
//
// A 1×1 scalar therefore broadcasts everywhere, a 1×n row vector
// broadcasts across the rows of an m×n matrix and an m×1 column vector
// across its columns.
//
// Returns the output dimensions, whether broadcasting is needed, and a
// *DimensionError when the operands are incompatible.
func BroadcastDims(op string, ar, ac, br, bc int) (rows, cols int, broadcast bool, err error) {
	rows, ok := broadcastAxis(ar, br)
	if !ok {
		return 0, 0, false, NewDimensionError(op, ar, ac, br, bc)
	}
	cols, ok = broadcastAxis(ac, bc)
	if !ok {
		return 0, 0, false, NewDimensionError(op, ar, ac, br, bc)
	}
	broadcast = ar != br || ac != bc
	return rows, cols, broadcast, nil
}

func broadcastAxis(a, b int) (int, bool) {
	switch {
	case a == b:
		return a, true
	case a == 1:
		return b, true
	case b == 1:
		return a, true
	default:
		return 0, false
	}
}

// broadcastIndex maps an output coordinate back into a (possibly
// broadcast) operand's buffer. Singleton axes pin to index 0.
func broadcastIndex(i, j, rows, cols int) int {
	if rows == 1 {
		i = 0
	}
	if cols == 1 {
		j = 0
	}
	return i*cols + j
}
