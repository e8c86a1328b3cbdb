// Package rref is a small, pure-Go toolkit for step-by-step Gauss-Jordan
// elimination: reduce an augmented linear system to reduced row-echelon
// form, classify it via the Rouché–Capelli criterion, recover the
// determinant, and invert square matrices — while narrating every
// elementary row operation into a pluggable text sink.
//
// 🚀 What is rref?
//
//	A pedagogy-first linear algebra engine that shows its work:
//		• Dense matrices: flat row-major float64 storage, stacking, identity
//		• Row operations: scale, add-scaled, subtract-scaled, swap
//		• Elimination: forward (echelon) + backward (reduced echelon) phases
//		• Classification: rank, consistency, solution count
//		• Determinant: diagonal product with swap-sign tracking
//		• Inversion: [M | I] augmentation with precondition gating
//		• Trace: human-readable operation log, buffered, streamed or counted
//
// ✨ Why choose rref?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed loop orders, no hidden randomness
//   - Pure Go – no cgo, no hidden deps
//   - Inspectable – every row operation lands in the trace, in order
//
// Everything is organized under three subpackages:
//
//	matrix/ — Dense storage, hstack/vstack/identity and in-place row ops
//	trace/  — append-only text sinks (buffer, stream, count-only, bounded)
//	rref/   — the elimination engine, rank classifier and inversion wrapper
//
// Quick example:
//
//	A, _ := matrix.NewDenseFromRows([][]float64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{8}, {-11}, {-3}})
//	var buf trace.Buffer
//	res, err := rref.Reduce(A, b, rref.WithSink(&buf))
//	// res.Meta.Consistency == rref.UniqueSolution, solution ≈ [2 3 -1]
//
//	go get github.com/katalvlaran/rref
package rref
