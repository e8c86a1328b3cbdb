// Package rref implements Gauss-Jordan elimination with a step-by-step
// operation trace: forward elimination to row-echelon form, backward
// elimination to reduced row-echelon form, Rouché–Capelli consistency
// classification, determinant recovery, and square-matrix inversion.
//
// 🚀 What is Gauss-Jordan reduction?
//
//	Elimination rewrites an augmented system [A | b] with elementary row
//	operations until the coefficient block is in reduced row-echelon form.
//	The surviving diagonal then exposes the solution, the rank of A, and
//	(through the pivot product and swap signs) the determinant. It's the
//	workhorse behind:
//	  • Solving small linear systems and reading off solution counts
//	  • Matrix inversion via the [A | I] augmentation
//	  • Classroom verification — every step is narrated into the trace
//
// ✨ Key features:
//   - deferred partial pivoting: swaps happen only when a zero pivot
//     requires one (simple and readable, not numerically optimal)
//   - sign and pivot-product tracking for the determinant
//   - rank/consistency classification with a numeric tolerance
//   - full-matrix snapshots after every step for step-by-step display
//     (disable via WithSnapshots(false) for counting passes)
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/rref/matrix"
//	    "github.com/katalvlaran/rref/rref"
//	    "github.com/katalvlaran/rref/trace"
//	)
//
//	A, _ := matrix.NewDenseFromRows([][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{8}, {-11}, {-3}})
//
//	var buf trace.Buffer
//	res, err := rref.Reduce(A, b, rref.WithSink(&buf))
//	// res.Meta.Consistency == rref.UniqueSolution
//	// res.Reduced holds [I | x] with x ≈ (2, 3, -1)
//
// Performance:
//
//   - Time:   O(rows² · cols) row operations
//   - Memory: O(rows · cols) for the augmented working buffer
//
// See example_test.go for complete walkthroughs.
package rref
