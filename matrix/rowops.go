// SPDX-License-Identifier: MIT
// Package matrix: elementary row operations. These four primitives are the
// only code path that writes matrix entries during elimination; keeping
// mutation funneled through them preserves the row-rank invariants the
// classifier depends on.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opScaleRow     = "ScaleRow"
	opAddScaledRow = "AddScaledRow"
	opSubScaledRow = "SubScaledRow"
	opSwapRows     = "SwapRows"
	opHStack       = "HStack"
	opVStack       = "VStack"
)

// stackErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func stackErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateRowArg bounds-checks a row index for the row-op facades.
// Returns ErrNilMatrix or ErrOutOfRange wrapped with the operation tag.
func validateRowArg(tag string, m *Dense, row int) error {
	if err := ValidateNotNil(m); err != nil {
		return stackErrorf(tag, err)
	}
	if err := ValidateRowIndex(m, row); err != nil {
		return stackErrorf(tag, err)
	}

	return nil
}

// ScaleRow multiplies every entry of row r by the scalar k, in place.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(c), Space O(1).
func ScaleRow(m *Dense, r int, k float64) error {
	// Validate receiver and row index
	if err := validateRowArg(opScaleRow, m, r); err != nil {
		return err
	}

	// Scale the row with flat indexing
	base := r * m.c // row offset into the flat slice
	for col := 0; col < m.c; col++ {
		m.data[base+col] *= k
	}

	return nil
}

// AddScaledRow performs target += k * source, in place.
// target and source may be equal; the update is then equivalent to scaling.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(c), Space O(1).
func AddScaledRow(m *Dense, target, source int, k float64) error {
	// Validate receiver and both row indices
	if err := validateRowArg(opAddScaledRow, m, target); err != nil {
		return err
	}
	if err := ValidateRowIndex(m, source); err != nil {
		return stackErrorf(opAddScaledRow, err)
	}

	// Accumulate with flat indexing
	baseT, baseS := target*m.c, source*m.c // row offsets
	for col := 0; col < m.c; col++ {
		m.data[baseT+col] += k * m.data[baseS+col]
	}

	return nil
}

// SubScaledRow performs target -= k * source, in place.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(c), Space O(1).
func SubScaledRow(m *Dense, target, source int, k float64) error {
	// Validate receiver and both row indices
	if err := validateRowArg(opSubScaledRow, m, target); err != nil {
		return err
	}
	if err := ValidateRowIndex(m, source); err != nil {
		return stackErrorf(opSubScaledRow, err)
	}

	// Subtract with flat indexing
	baseT, baseS := target*m.c, source*m.c // row offsets
	for col := 0; col < m.c; col++ {
		m.data[baseT+col] -= k * m.data[baseS+col]
	}

	return nil
}

// SwapRows exchanges the full contents of rows a and b, in place.
// The exchange is element-wise on the backing slice; no scratch buffer is
// needed, so there is no cap on the supported column count.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: Time O(c), Space O(1).
func SwapRows(m *Dense, a, b int) error {
	// Validate receiver and both row indices
	if err := validateRowArg(opSwapRows, m, a); err != nil {
		return err
	}
	if err := ValidateRowIndex(m, b); err != nil {
		return stackErrorf(opSwapRows, err)
	}
	// Swapping a row with itself is a no-op
	if a == b {
		return nil
	}

	// Element-wise exchange with flat indexing
	baseA, baseB := a*m.c, b*m.c // row offsets
	for col := 0; col < m.c; col++ {
		m.data[baseA+col], m.data[baseB+col] = m.data[baseB+col], m.data[baseA+col]
	}

	return nil
}
