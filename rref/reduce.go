// SPDX-License-Identifier: MIT
// Package rref: the Gauss-Jordan elimination engine.
//
// The run is two phases over one augmented buffer. The forward phase walks
// the main diagonal and clears everything below each pivot, deferring a row
// swap until a usable row appears when the pivot reads exactly zero. The
// backward phase walks the diagonal in reverse, scales each surviving pivot
// to 1 and clears everything above it. Every elementary operation is
// narrated into the configured sink, then the reduced buffer is classified
// and, when consistent, the determinant bookkeeping is reported.

package rref

import (
	"math"

	"github.com/katalvlaran/rref/matrix"
)

// state carries the determinant bookkeeping across the forward phase.
// diagProduct accumulates the pivot of every column, sign flips on each row
// swap, and denominator stays 1: pivot normalization happens after the
// product is complete, so no scale factor ever divides into it. The field
// is kept so the reported determinant identity reads in full.
type state struct {
	diagProduct float64
	denominator float64
	sign        int
}

// forward brings the buffer to row-echelon form, clearing below each pivot.
// Zero-pivot columns set a per-column pending-swap flag; the first row below
// with a non-zero entry in the pivot column is swapped up, refreshing the
// pivot and flipping the sign multiplier. Elimination factors are emitted
// non-negative: a negative entry below the pivot becomes an ADD step with
// the negated factor, anything else a SUB step.
func forward(m *matrix.Dense, pivotCount int, st *state, t *tracer) error {
	data, rows, cols := m.Data(), m.Rows(), m.Cols()
	var (
		i, r          int     // pivot column and working row
		pivot, below  float64 // cached pivot and the entry beneath it
		factor        float64 // elimination scalar, emitted non-negative
		pendingSwap   bool    // zero pivot awaiting a usable row below
	)
	for i = 0; i < pivotCount; i++ {
		pivot = data[i*cols+i]
		// Exact comparison: a structurally missing pivot, not residue.
		pendingSwap = pivot == 0
		for r = i + 1; r < rows; r++ {
			below = data[r*cols+i]
			if below != 0 {
				if pendingSwap {
					t.swapEntry(r, i)
					if err := matrix.SwapRows(m, r, i); err != nil {
						return err
					}
					pendingSwap = false
					pivot = data[i*cols+i]
					t.pivotEntry(pivot)
					st.sign = -st.sign
				} else if below < 0 {
					factor = -(below / pivot)
					t.forwardStep('+', r, i, factor)
					if err := matrix.AddScaledRow(m, r, i, factor); err != nil {
						return err
					}
				} else {
					factor = below / pivot
					t.forwardStep('-', r, i, factor)
					if err := matrix.SubScaledRow(m, r, i, factor); err != nil {
						return err
					}
				}
			}
			// Snapshot after every row step, changed or not.
			t.snapshot(m)
		}
		st.diagProduct *= pivot
	}

	return nil
}

// backward finishes the reduction: each pivot within tolerance of zero is
// skipped (its column keeps a free variable), every other pivot is scaled
// to 1 and the entries above it are cleared.
func backward(m *matrix.Dense, pivotCount int, eps float64, t *tracer) error {
	data, cols := m.Data(), m.Cols()
	var (
		i, r          int     // pivot column and working row
		pivot, above  float64 // cached pivot and the entry above it
		recip, factor float64 // normalization and elimination scalars
	)
	for i = pivotCount - 1; i >= 0; i-- {
		pivot = data[i*cols+i]
		if math.Abs(pivot) <= eps {
			continue
		}
		if pivot != 1 {
			recip = 1 / pivot
			t.scaleEntry(i, recip)
			if err := matrix.ScaleRow(m, i, recip); err != nil {
				return err
			}
			t.snapshot(m)
			// Re-read: scaling leaves the pivot at 1 up to rounding.
			pivot = data[i*cols+i]
		}
		for r = i - 1; r >= 0; r-- {
			above = data[r*cols+i]
			if above != 0 {
				factor = above / pivot
				t.factorEntry(above, pivot, factor)
				t.backwardStep(r, i, factor)
				if err := matrix.SubScaledRow(m, r, i, factor); err != nil {
					return err
				}
			}
			t.snapshot(m)
		}
	}

	return nil
}

// ReduceInPlace runs Gauss-Jordan elimination on aug, an augmented buffer
// whose rightmost augmentCols columns are the augment block. The buffer is
// reduced in place; the returned Metadata records ranks, the Rouché-Capelli
// classification and, when the system is consistent, the determinant of the
// coefficient block.
//
// Implementation:
//   - Stage 1: validate the buffer and the augment split.
//   - Stage 2: forward phase to row-echelon form, accumulating the diagonal
//     product and the swap sign.
//   - Stage 3: backward phase to reduced row-echelon form.
//   - Stage 4: rank both blocks, classify, and emit the verdict; when the
//     system is consistent, compute and report the determinant.
//
// Inputs:
//   - aug: augmented buffer (rows × cols), mutated in place.
//   - augmentCols: width of the augment block; must leave at least one
//     coefficient column.
//   - opts: WithTolerance, WithSink, WithSnapshots.
//
// Returns:
//   - Metadata: shape, ranks, classification, determinant.
//
// Errors:
//   - matrix.ErrNilMatrix (nil buffer).
//   - ErrNoAugment (augmentCols < 1 or no coefficient columns left).
//   - ErrRankInvariant (impossible rank relationship after reduction).
//
// Complexity: Time O(r² * c), Space O(1) beyond the trace.
func ReduceInPlace(aug *matrix.Dense, augmentCols int, opts ...Option) (Metadata, error) {
	// Validate the buffer and the augment split
	if err := matrix.ValidateNotNil(aug); err != nil {
		return Metadata{}, err
	}
	rows, cols := aug.Rows(), aug.Cols()
	if augmentCols < 1 || cols-augmentCols < 1 {
		return Metadata{}, ErrNoAugment
	}

	// Resolve options and set up trace emission
	o := gatherOptions(opts...)
	t := newTracer(o)

	// The diagonal ends at the limiting dimension of the coefficient block
	coeffCols := cols - augmentCols
	pivotCount := min(rows, coeffCols)

	st := state{diagProduct: 1, denominator: 1, sign: 1}
	if err := forward(aug, pivotCount, &st, t); err != nil {
		return Metadata{}, err
	}

	t.text(msgPhaseShift)
	if err := backward(aug, pivotCount, o.eps, t); err != nil {
		return Metadata{}, err
	}

	// Rank both blocks on the reduced buffer and classify
	meta := Metadata{
		Rows:          rows,
		Cols:          coeffCols,
		Rank:          rankPrefix(aug, coeffCols, o.eps),
		AugmentedRank: rankPrefix(aug, cols, o.eps),
	}
	verdict, err := Classify(meta.Rank, meta.AugmentedRank, rows, coeffCols)
	if err != nil {
		t.text(msgRankBroken)
		return meta, err
	}
	meta.Consistency = verdict
	t.classification(verdict)

	// The determinant is only meaningful (and only reported) when the
	// system is consistent.
	if verdict != Inconsistent {
		meta.Determinant = st.diagProduct / st.denominator * float64(st.sign)
		t.summary(st.diagProduct, st.denominator, st.sign, meta.Determinant)
	}

	return meta, nil
}

// Reduce assembles [coeff | augment] and reduces the copy, leaving both
// inputs untouched. The returned Result carries the reduced buffer, the
// augment width and the run metadata; Result.AugmentBlock extracts the
// solution column(s).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (from stacking).
//   - ErrRankInvariant (from classification).
//
// Complexity: Time O(r² * c), Space O(r * c) for the working copy.
func Reduce(coeff, augment *matrix.Dense, opts ...Option) (*Result, error) {
	// Splice the working buffer; inputs stay pristine
	aug, err := matrix.HStack(coeff, augment)
	if err != nil {
		return nil, err
	}

	meta, err := ReduceInPlace(aug, augment.Cols(), opts...)
	if err != nil {
		return nil, err
	}

	return &Result{Reduced: aug, AugmentCols: augment.Cols(), Meta: meta}, nil
}
