// SPDX-License-Identifier: MIT
// Package matrix: stacking constructors. HStack assembles the augmented
// system the elimination engine works on; VStack is its vertical sibling.

package matrix

// HStack returns the horizontal concatenation C = [A | B].
// Row i of C is A's row i followed by B's row i; inputs are not mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(a), ValidateNotNil(b), ValidateSameRows(a, b).
//   - Stage 2: Allocate Dense(a.Rows, a.Cols+b.Cols) and splice each row
//     with two flat copies.
//
// Inputs:
//   - a: left block (r × ca).
//   - b: right block (r × cb), same row count as a.
//
// Returns:
//   - *Dense: newly allocated (r × ca+cb) concatenation.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (row count differs).
//
// Complexity:
//   - Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func HStack(a, b *Dense) (*Dense, error) {
	// Validate both operands and matching row counts
	if err := ValidateSameRows(a, b); err != nil {
		return nil, stackErrorf(opHStack, err)
	}

	// Allocate the combined Dense
	rows, ca, cb := a.r, a.c, b.c
	res, err := NewDense(rows, ca+cb)
	if err != nil {
		return nil, stackErrorf(opHStack, err)
	}

	// Splice each row: a's row then b's row, flat copies only
	var i, base int // loop iterator and destination row offset
	for i = 0; i < rows; i++ {
		base = i * (ca + cb)
		copy(res.data[base:base+ca], a.data[i*ca:(i+1)*ca])
		copy(res.data[base+ca:base+ca+cb], b.data[i*cb:(i+1)*cb])
	}

	return res, nil
}

// VStack returns the vertical concatenation C = [A; B].
// Rows of A come first, then rows of B; inputs are not mutated.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (column count differs).
//
// Complexity:
//   - Time O((ra+rb)*c), Space O((ra+rb)*c).
func VStack(a, b *Dense) (*Dense, error) {
	// Validate both operands and matching column counts
	if err := ValidateSameCols(a, b); err != nil {
		return nil, stackErrorf(opVStack, err)
	}

	// Allocate the combined Dense
	res, err := NewDense(a.r+b.r, a.c)
	if err != nil {
		return nil, stackErrorf(opVStack, err)
	}

	// Two block copies: storage is row-major, so rows are already contiguous
	copy(res.data[:len(a.data)], a.data)
	copy(res.data[len(a.data):], b.data)

	return res, nil
}
