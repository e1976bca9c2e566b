// SPDX-License-Identifier: MIT

package topsis

import "github.com/katalvlaran/lvrank/matrix"

const (
	opNormalize    = "Normalize"
	opApplyWeights = "ApplyWeights"
)

// Normalize divides every criterion column by its Euclidean norm, putting
// heterogeneous units on one dimensionless scale. It returns the normalized
// matrix and the column norms.
//
// criteria is the count fixed by Validate; x must have exactly that many
// columns and only finite cells (matrix.ErrNaNInf otherwise). A column whose
// norm is zero (all values zero) is rejected with ErrDegenerateColumn instead
// of producing NaN.
func Normalize(x matrix.Matrix, criteria int) (*matrix.Dense, []float64, error) {
	if err := matrix.ValidateFinite(x); err != nil {
		return nil, nil, topsisErrorf(opNormalize, err)
	}
	if x.Cols() != criteria {
		return nil, nil, topsisErrorf(opNormalize, matrix.ErrDimensionMismatch)
	}

	out, norms, err := matrix.NormalizeColumnsL2(x)
	if err != nil {
		return nil, nil, topsisErrorf(opNormalize, err)
	}
	for j, n := range norms {
		if n == 0 {
			return nil, nil, newValidationError(opNormalize, ErrDegenerateColumn, -1, j, "")
		}
	}

	return out, norms, nil
}

// ApplyWeights multiplies every normalized column by its weight.
func ApplyWeights(n matrix.Matrix, w WeightVector) (*matrix.Dense, error) {
	out, err := matrix.ScaleColumns(n, w)
	if err != nil {
		return nil, topsisErrorf(opApplyWeights, err)
	}

	return out, nil
}
