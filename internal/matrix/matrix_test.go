package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ClampsNegativeDimensions(t *testing.T) {
	m := New(-3, -1)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
	assert.Equal(t, 0, m.Len())
}

func TestGet_UnsetPositionReturnsZero(t *testing.T) {
	m := New(3, 3)
	require.NoError(t, m.Set(1, 1, 7))

	assert.Equal(t, 7, m.Get(1, 1))
	assert.Equal(t, 0, m.Get(0, 0))
	assert.Equal(t, 0, m.Get(2, 2))
	// Positions past the bounds read as zero as well
	assert.Equal(t, 0, m.Get(100, 100))
}

func TestSet_OverwritesExistingValue(t *testing.T) {
	m := New(2, 2)
	require.NoError(t, m.Set(0, 1, 5))
	require.NoError(t, m.Set(0, 1, -9))

	assert.Equal(t, -9, m.Get(0, 1))
	assert.Equal(t, 1, m.Len())
}

func TestSet_ExpandsDimensions(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		wantRows int
		wantCols int
	}{
		{name: "within bounds", row: 1, col: 1, wantRows: 2, wantCols: 2},
		{name: "row past bounds", row: 5, col: 0, wantRows: 6, wantCols: 2},
		{name: "col past bounds", row: 0, col: 9, wantRows: 2, wantCols: 10},
		{name: "both past bounds", row: 4, col: 7, wantRows: 5, wantCols: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(2, 2)
			require.NoError(t, m.Set(tt.row, tt.col, 1))
			assert.Equal(t, tt.wantRows, m.Rows())
			assert.Equal(t, tt.wantCols, m.Cols())
		})
	}
}

func TestSet_RejectsNegativeIndices(t *testing.T) {
	m := New(2, 2)

	err := m.Set(-1, 0, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	err = m.Set(0, -2, 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidIndex)

	// Nothing stored, bounds untouched
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
}

func TestSet_ExplicitZeroIsStored(t *testing.T) {
	m := New(2, 2)
	require.NoError(t, m.Set(0, 0, 0))

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 0, m.Get(0, 0))
}

func TestEntries_PreservesInsertionOrder(t *testing.T) {
	m := New(3, 3)
	require.NoError(t, m.Set(2, 0, 1))
	require.NoError(t, m.Set(0, 2, 2))
	require.NoError(t, m.Set(1, 1, 3))
	// Overwriting must not change the position in the order
	require.NoError(t, m.Set(2, 0, 4))

	entries := m.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Row: 2, Col: 0, Value: 4}, entries[0])
	assert.Equal(t, Entry{Row: 0, Col: 2, Value: 2}, entries[1])
	assert.Equal(t, Entry{Row: 1, Col: 1, Value: 3}, entries[2])
}
