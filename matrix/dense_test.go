// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvrank/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 3}, {0, 0}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "shape %dx%d", tc.r, tc.c)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
}

func TestDense_SetRejectsNaNInf(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.Equal(t, 0.0, MustAt(t, m, 0, 0), "rejected write must not land")
}

func TestNewDenseFromRows(t *testing.T) {
	src := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	m, err := matrix.NewDenseFromRows(src)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, 4.0, MustAt(t, m, 1, 1))

	// The input is copied.
	src[0][0] = 100
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestNewDenseFromRows_Errors(t *testing.T) {
	_, err := matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3, math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	require.Contains(t, err.Error(), "(1,1)")
}

func TestDense_RowAndClone(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	row[0] = -1
	require.Equal(t, 3.0, MustAt(t, m, 1, 0), "Row returns a copy")

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0), "Clone is independent")
}

func TestDense_String(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2.5, -3, 0})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
