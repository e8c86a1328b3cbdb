// SPDX-License-Identifier: MIT
// Package matrix: Dense is the concrete, row-major storage used by the
// elimination engine. Elements live in a flat slice for performance and
// cache friendliness; rows*cols == len(data) at all times.

package matrix

import (
	"fmt"
	"strings"
)

// IdentityDiagonal is the value placed on the diagonal of identity matrices.
const IdentityDiagonal = 1.0

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFromRows creates a Dense matrix by copying the given row slices.
// Stage 1 (Validate): at least one row, equal row lengths, cols > 0.
// Stage 2 (Execute): copy each row into the flat backing slice.
// Errors: ErrInvalidDimensions (empty input), ErrRaggedRows (uneven rows).
// Complexity: O(r*c) time and memory.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])

	// Validate rectangularity before any allocation
	var i int // loop iterator
	for i = 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, ErrRaggedRows
		}
	}

	// Allocate and copy row by row
	m := &Dense{r: len(rows), c: cols, data: make([]float64, len(rows)*cols)}
	for i = 0; i < len(rows); i++ {
		copy(m.data[i*cols:(i+1)*cols], rows[i])
	}

	return m, nil
}

// NewIdentity creates the n×n identity matrix: 1.0 on the diagonal, 0.0 elsewhere.
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n²) time and memory.
func NewIdentity(n int) (*Dense, error) {
	// Delegate shape validation and zero-fill to NewDense
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	// Set the diagonal: I[i,i] = 1
	for i := 0; i < n; i++ {
		m.data[i*n+i] = IdentityDiagonal
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Data exposes the flat row-major backing slice for read-only flat indexing
// (element (i,j) lives at i*Cols()+j). The slice aliases internal storage:
// callers must NOT write through it — all mutation goes through the row
// operations in this package.
// Complexity: O(1).
func (m *Dense) Data() []float64 {
	return m.data
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Stage 1 (Execute): build per-row strings.
// Stage 2 (Finalize): return concatenated representation.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int // loop iterators
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[') // open row
		for j = 0; j < m.c; j++ { // iterate over columns
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ") // separate values with comma
			}
		}
		sb.WriteString("]\n") // close row
	}

	return sb.String()
}
