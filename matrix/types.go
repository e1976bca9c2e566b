// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Kernels accept Matrix and take a flat-slice fast path when the concrete
// value is *Dense; any other implementation goes through At.
package matrix

// Matrix is a rectangular float64 table addressed as (row, column).
// In a decision table rows are alternatives and columns are criteria.
//
// Implementations must keep Rows and Cols fixed for the lifetime of the value.
type Matrix interface {
	// Rows is the number of rows (alternatives).
	Rows() int

	// Cols is the number of columns (criteria).
	Cols() int

	// At reads cell (i, j); ErrOutOfRange when either index is outside the shape.
	At(i, j int) (float64, error)

	// Set writes cell (i, j); same bounds rule as At.
	Set(i, j int, v float64) error

	// Clone copies every cell into a new, independent matrix.
	Clone() Matrix
}
