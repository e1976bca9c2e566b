// SPDX-License-Identifier: MIT

// Package matrix offers a small dense float64 matrix and the column-oriented
// kernels used by multi-criteria ranking.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with bounds-checked accessors and a strict
//     finite-value policy (NaN/±Inf are rejected on ingestion and Set).
//   - Column kernels: ColumnNormsL2, ScaleColumns, ColumnMinMax.
//   - Row kernels: RowDistancesL2 (Euclidean distance of every row to a
//     reference vector).
//   - Centralized validators (ValidateNotNil, ValidateVecLen, ValidateFinite).
//
// Every kernel allocates its result; inputs are never mutated. Loop orders are
// fixed (i→j), so results are bitwise reproducible for identical inputs.
//
//	x, _ := matrix.NewDenseFromRows([][]float64{{3, 4}, {4, 3}})
//	norms, _ := matrix.ColumnNormsL2(x) // [5 5]
package matrix
