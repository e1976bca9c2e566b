// SPDX-License-Identifier: MIT

package topsis

import (
	"strconv"

	"github.com/katalvlaran/lvrank/matrix"
)

const opIdealSolutions = "IdealSolutions"

// IdealSolutions derives the ideal-best and ideal-worst profiles from the
// weighted matrix v. For a Benefit column best is the column maximum and
// worst the minimum; for a Cost column the two are swapped. The data itself
// is never transformed to express direction.
func IdealSolutions(v matrix.Matrix, imp ImpactVector) (Ideal, error) {
	mins, maxs, err := matrix.ColumnMinMax(v)
	if err != nil {
		return Ideal{}, topsisErrorf(opIdealSolutions, err)
	}
	if len(imp) != len(mins) {
		return Ideal{}, newValidationError(opIdealSolutions, ErrImpactCount, -1, -1,
			"got "+strconv.Itoa(len(imp))+", want "+strconv.Itoa(len(mins)))
	}

	ideal := Ideal{Best: make([]float64, len(imp)), Worst: make([]float64, len(imp))}
	for j, m := range imp {
		switch m {
		case Benefit:
			ideal.Best[j], ideal.Worst[j] = maxs[j], mins[j]
		case Cost:
			ideal.Best[j], ideal.Worst[j] = mins[j], maxs[j]
		default:
			return Ideal{}, newValidationError(opIdealSolutions, ErrUnknownImpact, -1, j, "marker "+strconv.Itoa(int(m)))
		}
	}

	return ideal, nil
}
