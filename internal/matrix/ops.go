package matrix

import "fmt"

// Operation names accepted by Apply.
const (
	OpAddition       = "addition"
	OpSubtraction    = "subtraction"
	OpMultiplication = "multiplication"
)

// Operations lists the supported operation names in menu order.
func Operations() []string {
	return []string{OpAddition, OpSubtraction, OpMultiplication}
}

// Apply dispatches an operation by name. Unknown names fail with
// ErrInvalidOperation.
func Apply(op string, a, b *Matrix) (*Matrix, error) {
	switch op {
	case OpAddition:
		return a.Add(b)
	case OpSubtraction:
		return a.Subtract(b)
	case OpMultiplication:
		return a.Multiply(b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidOperation, op)
	}
}

// Add returns a new matrix holding the entrywise sum. Both operands
// must have the same shape; neither is mutated.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if !m.sameShape(other) {
		return nil, fmt.Errorf("%w: addition requires equal shapes, got %dx%d and %dx%d",
			ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	return m.combine(other, 1), nil
}

// Subtract returns a new matrix holding the entrywise difference.
// Both operands must have the same shape; neither is mutated.
func (m *Matrix) Subtract(other *Matrix) (*Matrix, error) {
	if !m.sameShape(other) {
		return nil, fmt.Errorf("%w: subtraction requires equal shapes, got %dx%d and %dx%d",
			ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	return m.combine(other, -1), nil
}

// combine copies m's entries into a fresh matrix, then folds other's
// entries in with the given sign. The result support is the union of
// both operands' stored positions.
func (m *Matrix) combine(other *Matrix, sign int) *Matrix {
	result := New(m.rows, m.cols)
	for _, k := range m.order {
		result.put(k.row, k.col, m.entries[k])
	}
	for _, k := range other.order {
		result.put(k.row, k.col, result.Get(k.row, k.col)+sign*other.entries[k])
	}
	return result
}

// Multiply returns the matrix product m x other. m's column count must
// equal other's row count; the result is m.Rows() x other.Cols().
//
// For each stored m[i][k], every column j of other is scanned and
// v*other[k][j] accumulated into the result when non-zero. Cost is
// proportional to Len() times other's column count, which is fine for
// the file sizes this tool handles.
func (m *Matrix) Multiply(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("%w: multiplication requires %d columns to match %d rows",
			ErrDimensionMismatch, m.cols, other.rows)
	}

	result := New(m.rows, other.cols)
	for _, k := range m.order {
		v := m.entries[k]
		for j := 0; j < other.cols; j++ {
			if w := other.Get(k.col, j); w != 0 {
				result.put(k.row, j, result.Get(k.row, j)+v*w)
			}
		}
	}
	return result, nil
}
