// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rref/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	m := mustDense(t, [][]float64{{1}})
	require.NoError(t, matrix.ValidateNotNil(m))
}

func TestValidateRowIndex(t *testing.T) {
	m := mustDense(t, [][]float64{{1}, {2}})
	require.NoError(t, matrix.ValidateRowIndex(m, 0))
	require.NoError(t, matrix.ValidateRowIndex(m, 1))
	require.ErrorIs(t, matrix.ValidateRowIndex(m, -1), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateRowIndex(m, 2), matrix.ErrOutOfRange)
}

func TestValidateSameRows(t *testing.T) {
	a := mustDense(t, [][]float64{{1}, {2}})
	b := mustDense(t, [][]float64{{3, 4}, {5, 6}})
	c := mustDense(t, [][]float64{{7}})

	require.NoError(t, matrix.ValidateSameRows(a, b))
	require.ErrorIs(t, matrix.ValidateSameRows(a, c), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameRows(nil, b), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSameRows(a, nil), matrix.ErrNilMatrix)
}

func TestValidateSameCols(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}})
	b := mustDense(t, [][]float64{{3, 4}, {5, 6}})
	c := mustDense(t, [][]float64{{7}})

	require.NoError(t, matrix.ValidateSameCols(a, b))
	require.ErrorIs(t, matrix.ValidateSameCols(a, c), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameCols(nil, b), matrix.ErrNilMatrix)
}

func TestValidateSquare(t *testing.T) {
	sq := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	rect := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)

	require.NoError(t, matrix.ValidateSquareNonNil(sq))
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(rect), matrix.ErrNonSquare)
}
