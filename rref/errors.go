// SPDX-License-Identifier: MIT
// Package rref: sentinel error set. All operations return these sentinels
// (optionally wrapped with an operation tag) and tests check them via
// errors.Is. No operation panics on user-triggered error conditions.

package rref

import "errors"

var (
	// ErrNoAugment indicates that a reduction was requested without an
	// augment block (augmentCols < 1) or with an augment spanning the whole
	// buffer (no coefficient columns left).
	ErrNoAugment = errors.New("rref: augment must cover at least one and not all columns")

	// ErrNonSquare signals that inversion was requested for a non-square matrix.
	ErrNonSquare = errors.New("rref: matrix is not square, cannot invert")

	// ErrSingular is returned when inversion meets a (numerically) zero
	// determinant. The input matrix is left untouched.
	ErrSingular = errors.New("rref: singular matrix, determinant is 0")

	// ErrRankDeficient is returned when inversion meets a matrix whose rank
	// is below its dimension. The input matrix is left untouched.
	ErrRankDeficient = errors.New("rref: rank-deficient matrix")

	// ErrRankInvariant reports an impossible rank relationship
	// (augmented rank above the row count, or coefficient rank above the
	// augmented rank). It indicates an upstream invariant violation, not a
	// property of the input system.
	ErrRankInvariant = errors.New("rref: unexpected rank relationship")
)
