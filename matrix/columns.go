// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column-oriented kernels for decision matrices: per-column L2 norms,
//     per-column scaling, per-column extrema, and per-row Euclidean distance
//     to a reference vector.
//
// Exposed API:
//   - ColumnNormsL2(X)      -> norms            // ‖X[:,j]‖₂ for every j
//   - NormalizeColumnsL2(X) -> (Y, norms)       // unit L2 columns (degenerate columns stay zero)
//   - ScaleColumns(X, f)    -> Y                // Y[i,j] = X[i,j]·f[j]
//   - ColumnMinMax(X)       -> (mins, maxs)     // extrema of every column
//   - RowDistancesL2(X, v)  -> d                // d[i] = ‖X[i,:] − v‖₂
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops.
//   - Dense fast-paths operate on the row-major flat buffer; other Matrix
//     implementations fall back to At with full error propagation.
//   - Norms and distances accumulate with math.Hypot, so large finite inputs
//     never overflow to +Inf through an intermediate square.
//
// Hints:
//   - Degenerate columns (norm == 0) are reported, not repaired: callers decide
//     whether a zero column is an error in their domain.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opColumnNormsL2      = "ColumnNormsL2"
	opNormalizeColumnsL2 = "NormalizeColumnsL2"
	opScaleColumns       = "ScaleColumns"
	opColumnMinMax       = "ColumnMinMax"
	opRowDistancesL2     = "RowDistancesL2"
)

// ColumnNormsL2 returns the Euclidean norm of every column of X.
// Implementation:
//   - Stage 1: validate X is non-nil.
//   - Stage 2: accumulate norms[j] = hypot(norms[j], X[i,j]) row by row.
//
// Returns:
//   - []float64 of length Cols(X); an all-zero column yields 0.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors on the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnNormsL2(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnNormsL2, err)
	}

	r, c := X.Rows(), X.Cols()
	norms := make([]float64, c)
	var i, j int

	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				norms[j] = math.Hypot(norms[j], d.data[base+j])
			}
		}

		return norms, nil
	}

	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opColumnNormsL2, err)
			}
			norms[j] = math.Hypot(norms[j], v)
		}
	}

	return norms, nil
}

// NormalizeColumnsL2 scales each column to L2-norm == 1 when possible and
// returns Y together with the per-column norms.
// Implementation:
//   - Stage 1: norms via ColumnNormsL2.
//   - Stage 2: Y[i,j] = X[i,j] / norms[j]; a column with norm 0 stays zero.
//
// Behavior highlights:
//   - Division (not multiplication by 1/norm) keeps |Y[i,j]| <= 1 even for
//     subnormal norms, so the result is always finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Hints: inspect the returned norms for zeros if a degenerate column must be rejected.
func NormalizeColumnsL2(X Matrix) (*Dense, []float64, error) {
	norms, err := ColumnNormsL2(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumnsL2, err)
	}

	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumnsL2, err)
	}

	var i, j int
	var v float64
	src, fast := X.(*Dense)
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			if norms[j] == 0 {
				continue // degenerate column: leave zeros
			}
			if fast {
				v = src.data[base+j]
			} else if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opNormalizeColumnsL2, err)
			}
			out.data[base+j] = v / norms[j]
		}
	}

	return out, norms, nil
}

// ScaleColumns returns a new matrix Y with Y[i,j] = X[i,j] * f[j].
// Implementation:
//   - Stage 1: ValidateColumnVec(X, f) (nil, length, finite factors).
//   - Stage 2: allocate Y and multiply in i→j order.
//   - Stage 3: reject products that overflow to ±Inf.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Hints:
//   - Use f[j] = w[j] for criterion weighting; prefer NormalizeColumnsL2 over f[j] = 1/norm[j].
func ScaleColumns(X Matrix, f []float64) (*Dense, error) {
	if err := ValidateColumnVec(X, f); err != nil {
		return nil, matrixErrorf(opScaleColumns, err)
	}

	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScaleColumns, err)
	}

	var i, j int
	var v float64
	src, fast := X.(*Dense)
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			if fast {
				v = src.data[base+j]
			} else if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opScaleColumns, err)
			}
			v *= f[j]
			if err = checkFinite(v); err != nil {
				return nil, matrixErrorf(opScaleColumns, denseErrorf(ctxSet, i, j, err))
			}
			out.data[base+j] = v
		}
	}

	return out, nil
}

// ColumnMinMax returns the minimum and maximum of every column.
// Complexity: Time O(r*c), Space O(c).
func ColumnMinMax(X Matrix) (mins, maxs []float64, err error) {
	if err = ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opColumnMinMax, err)
	}

	r, c := X.Rows(), X.Cols()
	mins = make([]float64, c)
	maxs = make([]float64, c)
	var i, j int
	var v float64
	d, fast := X.(*Dense)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if fast {
				v = d.data[i*c+j]
			} else if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opColumnMinMax, err)
			}
			// First row seeds both extrema.
			if i == 0 || v < mins[j] {
				mins[j] = v
			}
			if i == 0 || v > maxs[j] {
				maxs[j] = v
			}
		}
	}

	return mins, maxs, nil
}

// RowDistancesL2 returns d[i] = ‖X[i,:] − v‖₂ for every row i.
// Implementation:
//   - Stage 1: ValidateColumnVec(X, v).
//   - Stage 2: per row, accumulate hypot over the differences in j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowDistancesL2(X Matrix, v []float64) ([]float64, error) {
	if err := ValidateColumnVec(X, v); err != nil {
		return nil, matrixErrorf(opRowDistancesL2, err)
	}

	r, c := X.Rows(), X.Cols()
	dist := make([]float64, r)
	var i, j int
	var x float64
	var err error
	d, fast := X.(*Dense)
	for i = 0; i < r; i++ {
		acc := 0.0
		for j = 0; j < c; j++ {
			if fast {
				x = d.data[i*c+j]
			} else if x, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opRowDistancesL2, err)
			}
			acc = math.Hypot(acc, x-v[j])
		}
		dist[i] = acc
	}

	return dist, nil
}
