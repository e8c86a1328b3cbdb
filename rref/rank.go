// SPDX-License-Identifier: MIT
// Package rref: rank computation and Rouché–Capelli classification.
//
// Row rank is counted as the number of rows that are not all-zero under
// the numeric tolerance — valid on reduced buffers, where elimination has
// already exposed linear dependence as zero rows. Column rank is computed
// symmetrically for the inversion eligibility gate; the elimination path
// itself relies only on row rank (row rank and column rank are equal for
// any matrix — relied upon, not reproven here).

package rref

import (
	"math"

	"github.com/katalvlaran/rref/matrix"
)

// RowIsZero reports whether every entry of row r has absolute value ≤ eps.
// The tolerance absorbs the floating-point residue elimination leaves in
// place of exact zeros.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrOutOfRange.
// Complexity: Time O(c), Space O(1).
func RowIsZero(m *matrix.Dense, r int, eps float64) (bool, error) {
	// Validate receiver and row index
	if err := matrix.ValidateNotNil(m); err != nil {
		return false, err
	}
	if err := matrix.ValidateRowIndex(m, r); err != nil {
		return false, err
	}

	return rowIsZeroPrefix(m, r, m.Cols(), eps), nil
}

// rowIsZeroPrefix reports whether the first width entries of row r are all
// within eps of zero. Callers guarantee bounds.
func rowIsZeroPrefix(m *matrix.Dense, r, width int, eps float64) bool {
	data, cols := m.Data(), m.Cols()
	base := r * cols // row offset into the flat slice
	for col := 0; col < width; col++ {
		if math.Abs(data[base+col]) > eps {
			return false
		}
	}

	return true
}

// RowRank returns the row rank of m: the count of rows that are not
// all-zero under eps, capped by the column count (the limiting dimension).
//
// Errors: matrix.ErrNilMatrix.
// Complexity: Time O(r*c), Space O(1).
func RowRank(m *matrix.Dense, eps float64) (int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, err
	}

	return rankPrefix(m, m.Cols(), eps), nil
}

// ColRank returns the column rank analogue: the count of columns that are
// not all-zero under eps, capped by the row count. Meaningful on reduced
// buffers; used by the inversion eligibility gate.
//
// Errors: matrix.ErrNilMatrix.
// Complexity: Time O(r*c), Space O(1).
func ColRank(m *matrix.Dense, eps float64) (int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, err
	}

	data, rows, cols := m.Data(), m.Rows(), m.Cols()
	var col, row, rank int // loop iterators and running count
	for col = 0; col < cols; col++ {
		for row = 0; row < rows; row++ {
			if math.Abs(data[row*cols+col]) > eps {
				rank++
				break
			}
		}
	}
	// The rank of any matrix is bounded by its limiting dimension.
	if rank > rows {
		rank = rows
	}

	return rank, nil
}

// rankPrefix counts rows whose first width entries are not all-zero under
// eps, capped at width. Callers guarantee width ≤ m.Cols().
func rankPrefix(m *matrix.Dense, width int, eps float64) int {
	var row, rank int // loop iterator and running count
	for row = 0; row < m.Rows(); row++ {
		if !rowIsZeroPrefix(m, row, width, eps) {
			rank++
		}
	}
	// Cap by the limiting dimension: more non-zero rows than columns means
	// residue was counted, not independent rows.
	if rank > width {
		rank = width
	}

	return rank
}

// Classify applies the Rouché–Capelli criterion to the ranks of the
// coefficient block and the full augmented buffer.
//
// Implementation:
//   - Stage 1: reject impossible rank relationships (augmented rank above
//     the row count, coefficient rank above the augmented rank) — these
//     indicate an upstream invariant violation, not a property of the input.
//   - Stage 2: compare ranks: lower coefficient rank ⇒ Inconsistent;
//     shared rank covering every unknown ⇒ UniqueSolution; below ⇒
//     InfiniteSolutions. A tall consistent system (more equations than
//     unknowns) is unique once the rank reaches the unknown count; a wide
//     system can never be unique since its rank is capped by the row count.
//
// Inputs:
//   - coeffRank: row rank of the coefficient block.
//   - augmentedRank: row rank of the full augmented buffer.
//   - rows: number of rows in the system.
//   - unknowns: number of coefficient columns.
//
// Returns:
//   - Consistency: the classification.
//
// Errors:
//   - ErrRankInvariant on an impossible rank relationship.
//
// Complexity: O(1).
func Classify(coeffRank, augmentedRank, rows, unknowns int) (Consistency, error) {
	// Appending columns can only preserve or raise row rank, and no rank
	// exceeds the row count; anything else is a corrupted input.
	if augmentedRank > rows || coeffRank > augmentedRank {
		return Unknown, ErrRankInvariant
	}
	if coeffRank < augmentedRank {
		return Inconsistent, nil
	}
	if augmentedRank == unknowns {
		return UniqueSolution, nil
	}

	return InfiniteSolutions, nil
}
