package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewAndIdentity checks zero-init and the identity diagonal.
func TestNewAndIdentity(t *testing.T) {
	m := matrix.New(2, 3)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	assert.Equal(t, 0.0, m.At(1, 2), "fresh matrix is zero-filled")

	id := matrix.Identity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.Equal(t, want, id.At(i, j))
		}
	}
}

// TestSetAtRoundTrip verifies element access at the corners and center.
func TestSetAtRoundTrip(t *testing.T) {
	m := matrix.New(3, 3)
	m.Set(0, 0, 1.5)
	m.Set(1, 1, -2.5)
	m.Set(2, 0, 7)

	assert.Equal(t, 1.5, m.At(0, 0))
	assert.Equal(t, -2.5, m.At(1, 1))
	assert.Equal(t, 7.0, m.At(2, 0))
	assert.Equal(t, 0.0, m.At(0, 2), "untouched cells stay zero")
}

// TestClone_Independent verifies Clone yields distinct storage.
func TestClone_Independent(t *testing.T) {
	m := matrix.New(2, 2)
	m.Set(0, 1, 3)

	c := m.Clone()
	c.Set(0, 1, 9)

	assert.Equal(t, 3.0, m.At(0, 1), "mutating the clone must not affect the original")
	assert.Equal(t, 9.0, c.At(0, 1))
}

// TestMulVec checks m·v against a hand computation.
func TestMulVec(t *testing.T) {
	m := matrix.New(2, 3)
	// [1 2 3; 4 5 6]
	vals := [][]float64{{1, 2, 3}, {4, 5, 6}}
	for i, row := range vals {
		for j, v := range row {
			m.Set(i, j, v)
		}
	}

	got := m.MulVec([]float64{1, 0, -1})
	assert.Equal(t, []float64{-2, -2}, got)
}

// TestVecMul checks vᵀ·m and its agreement with MulVec on a symmetric matrix.
func TestVecMul(t *testing.T) {
	m := matrix.New(2, 2)
	m.Set(0, 0, 2)
	m.Set(0, 1, 1)
	m.Set(1, 0, 1)
	m.Set(1, 1, 3)

	v := []float64{1, 2}
	assert.Equal(t, m.MulVec(v), m.VecMul(v), "symmetric matrix: vᵀM == Mv")
}

// TestPanics confirms fail-fast behavior on bad shapes and indices.
func TestPanics(t *testing.T) {
	assert.Panics(t, func() { matrix.New(0, 3) })
	assert.Panics(t, func() { matrix.New(2, -1) })

	m := matrix.New(2, 2)
	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.Set(0, 2, 1) })
	assert.Panics(t, func() { m.MulVec([]float64{1}) })
	assert.Panics(t, func() { m.VecMul([]float64{1, 2, 3}) })
}
