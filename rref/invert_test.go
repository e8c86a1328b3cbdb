// SPDX-License-Identifier: MIT
package rref_test

import (
	"testing"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/rref"
	"github.com/katalvlaran/rref/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invertQuiet runs Invert into a buffer sink with snapshots off.
func invertQuiet(t *testing.T, rows [][]float64) (*rref.Result, *trace.Buffer) {
	t.Helper()
	var buf trace.Buffer
	res, err := rref.Invert(mustDense(t, rows),
		rref.WithSink(&buf), rref.WithSnapshots(false))
	require.NoError(t, err)
	return res, &buf
}

func TestInvert_2x2(t *testing.T) {
	res, _ := invertQuiet(t, [][]float64{{4, 7}, {2, 6}})

	require.Equal(t, 2, res.Reduced.Rows())
	require.Equal(t, 2, res.Reduced.Cols())
	assert.Equal(t, rref.UniqueSolution, res.Meta.Consistency)
	assert.InDelta(t, 10, res.Meta.Determinant, 1e-9)

	want := [][]float64{{0.6, -0.7}, {-0.2, 0.4}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			got, err := res.Reduced.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want[i][j], got, 1e-9)
		}
	}
}

func TestInvert_IdentityIsFixedPoint(t *testing.T) {
	eye, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	res, err := rref.Invert(eye, rref.WithSink(trace.NewCounter(0)))
	require.NoError(t, err)
	assert.Equal(t, eye.Data(), res.Reduced.Data())
}

func TestInvert_Involution(t *testing.T) {
	// Inverting the inverse recovers the original within tolerance.
	orig := [][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}}

	first, _ := invertQuiet(t, orig)
	var buf trace.Buffer
	second, err := rref.Invert(first.Reduced, rref.WithSink(&buf), rref.WithSnapshots(false))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			got, err := second.Reduced.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, orig[i][j], got, rref.DefaultTolerance)
		}
	}
}

func TestInvert_ProductWithInverseIsIdentity(t *testing.T) {
	rows := [][]float64{{1, 2, 0}, {0, 1, 1}, {2, 0, 1}}
	res, _ := invertQuiet(t, rows)

	// Multiply by hand; the product must be the identity within tolerance.
	inv := res.Reduced
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				v, err := inv.At(k, j)
				require.NoError(t, err)
				sum += rows[i][k] * v
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, sum, rref.DefaultTolerance)
		}
	}
}

func TestInvert_NonSquare(t *testing.T) {
	var buf trace.Buffer
	_, err := rref.Invert(mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}),
		rref.WithSink(&buf))
	require.ErrorIs(t, err, rref.ErrNonSquare)

	// One diagnostic line and nothing else: the reduction never started.
	assert.Equal(t, "Error: The input matrix is not square, and thus cannot be inverted.\n", buf.String())
}

func TestInvert_RankDeficient(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {2, 4}})
	pristine := m.Clone()

	var buf trace.Buffer
	_, err := rref.Invert(m, rref.WithSink(&buf))
	require.ErrorIs(t, err, rref.ErrRankDeficient)

	// The gate fails silently except for the diagnostic, and the input is
	// left untouched: the probe worked on a throwaway copy.
	assert.Equal(t, "Error: The input matrix is rank deficient, and thus cannot be inverted.\n", buf.String())
	assert.Equal(t, pristine.Data(), m.Data())
}

func TestInvert_SingularDeterminant(t *testing.T) {
	// Entries above tolerance keep full rank, but the determinant lands
	// within tolerance of zero.
	m := mustDense(t, [][]float64{{1e-4, 0}, {0, 1e-4}})

	var buf trace.Buffer
	_, err := rref.Invert(m, rref.WithSink(&buf))
	require.ErrorIs(t, err, rref.ErrSingular)
	assert.Equal(t, "Error: The input matrix has determinant 0, and thus cannot be inverted.\n", buf.String())
}

func TestInvert_NilInput(t *testing.T) {
	_, err := rref.Invert(nil, rref.WithSink(trace.NewCounter(0)))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInvert_InputNotMutatedOnSuccess(t *testing.T) {
	m := mustDense(t, [][]float64{{4, 7}, {2, 6}})
	pristine := m.Clone()

	_, err := rref.Invert(m, rref.WithSink(trace.NewCounter(0)))
	require.NoError(t, err)
	assert.Equal(t, pristine.Data(), m.Data())
}
