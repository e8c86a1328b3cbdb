// SPDX-License-Identifier: MIT
// Package rref: matrix inversion via Gauss-Jordan on [M | I].
//
// Inversion is a gated two-pass run. A silent probe pass over a throwaway
// copy establishes eligibility (square, full rank, non-zero determinant)
// without emitting a single trace fragment; only an eligible matrix gets
// the real traced run. Ineligible inputs produce one diagnostic line on
// the configured sink, a sentinel error, and no mutation anywhere.

package rref

import (
	"errors"
	"math"

	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/trace"
)

// augmentIdentity returns the fresh working buffer [m | I].
func augmentIdentity(m *matrix.Dense, n int) (*matrix.Dense, error) {
	eye, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, err
	}

	return matrix.HStack(m, eye)
}

// coefficientBlock copies the leftmost n columns of the reduced buffer,
// the mirror of Result.AugmentBlock.
func coefficientBlock(m *matrix.Dense, n int) (*matrix.Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	out, err := matrix.NewDense(rows, n)
	if err != nil {
		return nil, err
	}

	src, dst := m.Data(), out.Data()
	var i int // loop iterator
	for i = 0; i < rows; i++ {
		copy(dst[i*n:(i+1)*n], src[i*cols:i*cols+n])
	}

	return out, nil
}

// Invert computes the inverse of a square matrix by reducing [m | I] to
// [I | m⁻¹]. The input is never mutated.
//
// Implementation:
//   - Stage 1: validate (non-nil, square); reject with a diagnostic line
//     and ErrNonSquare otherwise.
//   - Stage 2: probe — reduce a throwaway [m | I] with a count-only sink
//     and snapshots off, then gate on the probe's metadata: rank below the
//     dimension ⇒ ErrRankDeficient, determinant within tolerance of zero ⇒
//     ErrSingular. The gate fails before any trace of the reduction reaches
//     the configured sink.
//   - Stage 3: reduce a fresh [m | I] with the caller's options and extract
//     the right block as the inverse.
//
// Inputs:
//   - m: square matrix (n × n).
//   - opts: WithTolerance, WithSink, WithSnapshots.
//
// Returns:
//   - *Result: Reduced holds the n × n inverse, AugmentCols equals n, and
//     Meta carries the traced run's ranks and determinant.
//
// Errors:
//   - matrix.ErrNilMatrix (nil input).
//   - ErrNonSquare, ErrRankDeficient, ErrSingular (eligibility gate).
//   - ErrRankInvariant (impossible rank relationship after reduction).
//
// Complexity: Time O(n³), Space O(n²) for the working copies.
func Invert(m *matrix.Dense, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	t := newTracer(o)

	// Validate the input shape before touching any buffer. Only the
	// non-square case gets a diagnostic line; a nil matrix is a caller bug.
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		if errors.Is(err, matrix.ErrNonSquare) {
			t.text(msgNotSquare)
			return nil, ErrNonSquare
		}
		return nil, err
	}
	n := m.Rows()

	// Probe pass: same tolerance, muted sink, no snapshots. The caller's
	// options go first so the muting overrides always win.
	probe, err := augmentIdentity(m, n)
	if err != nil {
		return nil, err
	}
	probeOpts := append(append([]Option{}, opts...),
		WithSink(trace.NewCounter(0)),
		WithSnapshots(false),
	)
	probeMeta, err := ReduceInPlace(probe, n, probeOpts...)
	if err != nil {
		return nil, err
	}

	// Eligibility gate on the probe's metadata. Row and column rank agree
	// for any matrix; the probe verifies the column side rather than
	// assuming it. Rank deficiency and a zero determinant are the same
	// condition for a square matrix: the rank gates fire first, so the
	// determinant diagnostic is reserved for full-rank inputs whose
	// determinant falls within tolerance of zero.
	if probeMeta.Rank < n {
		t.text(msgRankDeficient)
		return nil, ErrRankDeficient
	}
	reducedCoeff, err := coefficientBlock(probe, n)
	if err != nil {
		return nil, err
	}
	colRank, err := ColRank(reducedCoeff, o.eps)
	if err != nil {
		return nil, err
	}
	if colRank < n {
		t.text(msgRankDeficient)
		return nil, ErrRankDeficient
	}
	if math.Abs(probeMeta.Determinant) <= o.eps {
		t.text(msgSingular)
		return nil, ErrSingular
	}

	// Real run on a fresh buffer, traced through the caller's sink
	work, err := augmentIdentity(m, n)
	if err != nil {
		return nil, err
	}
	meta, err := ReduceInPlace(work, n, opts...)
	if err != nil {
		return nil, err
	}

	// The inverse is the right block of [I | m⁻¹]
	res := &Result{Reduced: work, AugmentCols: n, Meta: meta}
	inv, err := res.AugmentBlock()
	if err != nil {
		return nil, err
	}

	return &Result{Reduced: inv, AugmentCols: n, Meta: meta}, nil
}
