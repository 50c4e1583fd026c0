// Package matrix_test contains unit tests for the Dense table.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qroute/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewSquare(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewSquareZeroed verifies shape and zero initialization.
func TestNewSquareZeroed(t *testing.T) {
	m, err := matrix.NewSquare(3)
	require.NoError(t, err)
	require.True(t, m.IsSquare())

	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)

	for i := 0; i < r; i++ {
		row, err := m.Row(i)
		require.NoError(t, err)
		require.Equal(t, []float64{0, 0, 0}, row)
	}
}

// TestAtSetOutOfBounds ensures At(), Set() and Add() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Add(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite validates the finite-only write policy.
func TestSetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	require.NoError(t, m.Set(0, 0, math.MaxFloat64))
	require.ErrorIs(t, m.Add(0, 0, math.MaxFloat64), matrix.ErrNaNInf)

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, math.MaxFloat64, v) // failed Add leaves the cell untouched
}

// TestSetGetAdd validates Set() followed by At() and in-place Add().
func TestSetGetAdd(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.5))
	require.NoError(t, m.Add(1, 2, 0.25))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.75, val)
}

// TestFromRows covers the literal constructor and its validation.
func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]float64{
		{0, 1},
		{2, 3},
	})
	require.NoError(t, err)
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestFromRowsCopies ensures the literal is not aliased.
func TestFromRowsCopies(t *testing.T) {
	src := [][]float64{{1, 2}}
	m, err := matrix.FromRows(src)
	require.NoError(t, err)

	src[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestRowArgMaxFirstMaximum checks the lowest-index tie rule.
func TestRowArgMaxFirstMaximum(t *testing.T) {
	m, err := matrix.FromRows([][]float64{
		{0, 0, 0, 0},
		{1, 5, 3, 5},
		{-2, -1, -1, -3},
	})
	require.NoError(t, err)

	j, err := m.RowArgMax(0)
	require.NoError(t, err)
	require.Equal(t, 0, j) // all-zero row → first column

	j, err = m.RowArgMax(1)
	require.NoError(t, err)
	require.Equal(t, 1, j)

	j, err = m.RowArgMax(2)
	require.NoError(t, err)
	require.Equal(t, 1, j)

	mx, err := m.RowMax(1)
	require.NoError(t, err)
	require.Equal(t, 5.0, mx)

	_, err = m.RowArgMax(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRowArgMaxAmong checks the restricted argmax.
func TestRowArgMaxAmong(t *testing.T) {
	m, err := matrix.FromRows([][]float64{
		{9, 2, 4, 4},
	})
	require.NoError(t, err)

	j, err := m.RowArgMaxAmong(0, []int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 2, j)

	_, err = m.RowArgMaxAmong(0, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = m.RowArgMaxAmong(0, []int{1, 4})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRowPositive lists strictly positive columns in ascending order.
func TestRowPositive(t *testing.T) {
	m, err := matrix.FromRows([][]float64{
		{0, 1, 0, 1000},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)

	cols, err := m.RowPositive(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, cols)

	cols, err = m.RowPositive(1)
	require.NoError(t, err)
	require.Empty(t, cols)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.0))

	clone := m.Clone()
	require.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 0, 3.0))
	require.False(t, m.Equal(clone))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)
}

// TestEqualShapes covers nil and shape mismatches.
func TestEqualShapes(t *testing.T) {
	a, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewDense(3, 2)
	require.NoError(t, err)

	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))
}

// TestString renders rows deterministically.
func TestString(t *testing.T) {
	m, err := matrix.FromRows([][]float64{{1, 0.5}, {0, 2}})
	require.NoError(t, err)
	require.Equal(t, "[1, 0.5]\n[0, 2]\n", m.String())
}
