// Package matrix provides the dense storage layer for row-reduction:
// a flat, row-major float64 matrix plus the elementary row operations
// that elimination is built from.
//
// The package provides:
//
//   - Dense: contiguous row-major storage with O(1) element access,
//     deep Clone, and a debug-friendly Stringer.
//   - Constructors: NewDense (zeros), NewDenseFromRows (copy-in),
//     NewIdentity (1.0 diagonal).
//   - Stacking: HStack / VStack build composite views without mutating
//     their inputs; HStack is how augmented systems are assembled.
//   - Row operations: ScaleRow, AddScaledRow, SubScaledRow, SwapRows —
//     in place, zero-indexed, and the ONLY code path that writes matrix
//     entries during elimination.
//
// Matrices are best for dense and small systems where O(r·c) memory and
// O(c) per row operation are acceptable.
//
// See the examples in this package and rref for usage patterns.
package matrix
