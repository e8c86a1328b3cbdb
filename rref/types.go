// SPDX-License-Identifier: MIT
// Package rref: result types for elimination runs.

package rref

import "github.com/katalvlaran/rref/matrix"

// Consistency classifies an augmented system after elimination, following
// the Rouché–Capelli criterion.
//
//   - Inconsistent      — rank(A) < rank(A|b): no solution exists.
//   - UniqueSolution    — rank(A) == rank(A|b) == unknown count.
//   - InfiniteSolutions — rank(A) == rank(A|b) < unknown count.
//
// The zero value Unknown marks metadata that has not been through a
// classification pass yet.
type Consistency int

const (
	// Unknown is the pre-classification state of fresh metadata.
	Unknown Consistency = iota

	// Inconsistent: no solution exists.
	Inconsistent

	// UniqueSolution: exactly one solution exists.
	UniqueSolution

	// InfiniteSolutions: the solution space has at least one free variable.
	InfiniteSolutions
)

// String returns a short human-readable label. Complexity: O(1).
func (c Consistency) String() string {
	switch c {
	case Inconsistent:
		return "inconsistent"
	case UniqueSolution:
		return "unique solution"
	case InfiniteSolutions:
		return "infinite solutions"
	default:
		return "unknown"
	}
}

// Metadata is the per-run record filled by a reduction: the coefficient
// block's shape plus the computed rank, consistency and determinant.
// Computed fields are write-once per elimination run; Rows/Cols describe
// the coefficient block at construction time and never change.
type Metadata struct {
	// Rows and Cols are the coefficient block dimensions.
	Rows, Cols int

	// Rank is the row rank of the coefficient block after reduction.
	Rank int

	// AugmentedRank is the row rank of the full augmented buffer.
	AugmentedRank int

	// Consistency is the Rouché–Capelli classification.
	Consistency Consistency

	// Determinant is diagonalProduct / denominator * signMultiplier.
	// Only populated when the system classified as consistent; it is the
	// determinant of the coefficient block when that block is square.
	Determinant float64
}

// Result bundles the reduced buffer with its metadata.
//
// For Reduce, Reduced is the full augmented buffer in reduced row-echelon
// form and AugmentCols demarcates where the coefficient block ends.
// For Invert, Reduced is the extracted inverse and AugmentCols equals its
// column count.
type Result struct {
	Reduced     *matrix.Dense
	AugmentCols int
	Meta        Metadata
}

// AugmentBlock returns a copy of the rightmost AugmentCols columns of the
// reduced buffer — the solution column(s) after Reduce.
//
// Errors: matrix.ErrNilMatrix when the result holds no buffer.
// Complexity: O(rows * augmentCols).
func (r *Result) AugmentBlock() (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(r.Reduced); err != nil {
		return nil, err
	}

	rows, cols := r.Reduced.Rows(), r.Reduced.Cols()
	start := cols - r.AugmentCols // first augment column
	out, err := matrix.NewDense(rows, r.AugmentCols)
	if err != nil {
		return nil, err
	}

	// Copy the augment slice of each row; reads go through the flat view.
	src, dst := r.Reduced.Data(), out.Data()
	var i int // loop iterator
	for i = 0; i < rows; i++ {
		copy(dst[i*r.AugmentCols:(i+1)*r.AugmentCols], src[i*cols+start:(i+1)*cols])
	}

	return out, nil
}
