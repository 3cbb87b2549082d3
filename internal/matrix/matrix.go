package matrix

import (
	"fmt"
)

// key identifies a single entry position.
type key struct {
	row, col int
}

// Matrix is a sparse integer matrix. Only explicitly set entries are
// stored; every other position reads as zero. Dimensions grow to cover
// any entry set past the current bounds.
//
// An explicitly set zero is kept like any other value. That wastes a
// map slot and a line of output, but it keeps save/load behaviour
// faithful to the input files.
type Matrix struct {
	rows, cols int
	entries    map[key]int
	// order preserves insertion order for serialization; map range
	// order is randomised and would make output unstable.
	order []key
}

// New creates an empty matrix with the given dimensions.
func New(rows, cols int) *Matrix {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Matrix{
		rows:    rows,
		cols:    cols,
		entries: make(map[key]int),
	}
}

// Rows returns the logical row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the logical column count.
func (m *Matrix) Cols() int { return m.cols }

// Len returns the number of stored entries.
func (m *Matrix) Len() int { return len(m.entries) }

// Get returns the value stored at (row, col), or 0 if none is set.
// Any non-negative indices are valid; there is no bounds check.
func (m *Matrix) Get(row, col int) int {
	return m.entries[key{row, col}]
}

// Set stores value at (row, col), overwriting any previous value.
// Indices past the current bounds expand the matrix to fit
// (rows becomes row+1, likewise for columns). Negative indices are
// rejected with ErrInvalidIndex.
func (m *Matrix) Set(row, col, value int) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("%w: (%d, %d)", ErrInvalidIndex, row, col)
	}
	m.put(row, col, value)
	return nil
}

// put stores an entry without index validation. Callers must pass
// non-negative indices.
func (m *Matrix) put(row, col, value int) {
	if row >= m.rows {
		m.rows = row + 1
	}
	if col >= m.cols {
		m.cols = col + 1
	}

	k := key{row, col}
	if _, exists := m.entries[k]; !exists {
		m.order = append(m.order, k)
	}
	m.entries[k] = value
}

// Entry is a stored (row, col, value) triple.
type Entry struct {
	Row, Col, Value int
}

// Entries returns the stored entries in insertion order.
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, Entry{Row: k.row, Col: k.col, Value: m.entries[k]})
	}
	return out
}

// sameShape reports whether both matrices have identical dimensions.
func (m *Matrix) sameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}
