package matrix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildMatrix constructs a matrix from entry triples.
func buildMatrix(t *testing.T, rows, cols int, entries ...[3]int) *Matrix {
	t.Helper()
	m := New(rows, cols)
	for _, e := range entries {
		require.NoError(t, m.Set(e[0], e[1], e[2]))
	}
	return m
}

func TestAdd_PointwiseSum(t *testing.T) {
	a := buildMatrix(t, 2, 2, [3]int{0, 0, 1}, [3]int{1, 1, 2})
	b := buildMatrix(t, 2, 2, [3]int{0, 0, 3}, [3]int{0, 1, 4})

	sum, err := a.Add(b)
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Rows())
	assert.Equal(t, 2, sum.Cols())
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			assert.Equal(t, a.Get(r, c)+b.Get(r, c), sum.Get(r, c), "position (%d,%d)", r, c)
		}
	}
}

func TestAdd_DoesNotMutateOperands(t *testing.T) {
	a := buildMatrix(t, 2, 2, [3]int{0, 0, 1})
	b := buildMatrix(t, 2, 2, [3]int{0, 0, 2})

	_, err := a.Add(b)
	require.NoError(t, err)

	assert.Equal(t, 1, a.Get(0, 0))
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, b.Get(0, 0))
	assert.Equal(t, 1, b.Len())
}

func TestAdd_ShapeMismatch(t *testing.T) {
	a := New(2, 3)
	b := New(3, 2)

	_, err := a.Add(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestSubtract_RoundTripsWithAdd(t *testing.T) {
	a := buildMatrix(t, 3, 3, [3]int{0, 0, 5}, [3]int{1, 2, -7}, [3]int{2, 1, 3})
	b := buildMatrix(t, 3, 3, [3]int{0, 0, -2}, [3]int{1, 2, 4}, [3]int{2, 2, 9})

	sum, err := a.Add(b)
	require.NoError(t, err)
	back, err := sum.Subtract(b)
	require.NoError(t, err)

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.Equal(t, a.Get(r, c), back.Get(r, c), "position (%d,%d)", r, c)
		}
	}
}

func TestSubtract_ShapeMismatch(t *testing.T) {
	a := New(1, 4)
	b := New(1, 5)

	_, err := a.Subtract(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestMultiply_WorkedExample(t *testing.T) {
	// [1 2] x [3; 4] = [11]
	a := buildMatrix(t, 1, 2, [3]int{0, 0, 1}, [3]int{0, 1, 2})
	b := buildMatrix(t, 2, 1, [3]int{0, 0, 3}, [3]int{1, 0, 4})

	product, err := a.Multiply(b)
	require.NoError(t, err)

	assert.Equal(t, 1, product.Rows())
	assert.Equal(t, 1, product.Cols())
	assert.Equal(t, 11, product.Get(0, 0))
}

func TestMultiply_DimensionMismatch(t *testing.T) {
	a := New(2, 3)
	b := New(4, 2)

	_, err := a.Multiply(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestMultiply_ZeroSizedOperands(t *testing.T) {
	a := New(0, 3)
	b := New(3, 2)

	product, err := a.Multiply(b)
	require.NoError(t, err)
	assert.Equal(t, 0, product.Rows())
	assert.Equal(t, 2, product.Cols())
	assert.Equal(t, 0, product.Len())
}

// randomMatrix fills a matrix with a sparse scatter of small values.
func randomMatrix(t *testing.T, rng *rand.Rand, rows, cols int) *Matrix {
	t.Helper()
	m := New(rows, cols)
	for i := 0; i < rows*cols/2; i++ {
		require.NoError(t, m.Set(rng.Intn(rows), rng.Intn(cols), rng.Intn(21)-10))
	}
	return m
}

func TestMultiply_DistributesOverAdd(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		a := randomMatrix(t, rng, 4, 5)
		b := randomMatrix(t, rng, 4, 5)
		c := randomMatrix(t, rng, 5, 3)

		sum, err := a.Add(b)
		require.NoError(t, err)
		left, err := sum.Multiply(c)
		require.NoError(t, err)

		ac, err := a.Multiply(c)
		require.NoError(t, err)
		bc, err := b.Multiply(c)
		require.NoError(t, err)
		right, err := ac.Add(bc)
		require.NoError(t, err)

		require.Equal(t, left.Rows(), right.Rows())
		require.Equal(t, left.Cols(), right.Cols())
		for r := 0; r < left.Rows(); r++ {
			for col := 0; col < left.Cols(); col++ {
				require.Equal(t, left.Get(r, col), right.Get(r, col),
					"trial %d, position (%d,%d)", trial, r, col)
			}
		}
	}
}

func TestApply_DispatchesByName(t *testing.T) {
	a := buildMatrix(t, 2, 2, [3]int{0, 0, 2})
	b := buildMatrix(t, 2, 2, [3]int{0, 0, 3})

	tests := []struct {
		op   string
		want int
	}{
		{op: OpAddition, want: 5},
		{op: OpSubtraction, want: -1},
		{op: OpMultiplication, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			result, err := Apply(tt.op, a, b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Get(0, 0))
		})
	}
}

func TestApply_UnknownOperation(t *testing.T) {
	a := New(1, 1)
	b := New(1, 1)

	_, err := Apply("division", a, b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOperation)
	assert.Contains(t, err.Error(), "division")
}

func TestExplicitZero_ParticipatesInArithmetic(t *testing.T) {
	a := buildMatrix(t, 2, 2, [3]int{0, 0, 0}, [3]int{1, 1, 5})
	b := buildMatrix(t, 2, 2, [3]int{0, 0, 4})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Get(0, 0))
	assert.Equal(t, 5, sum.Get(1, 1))
	// Both stored positions survive into the result support
	assert.Equal(t, 2, sum.Len())
}
