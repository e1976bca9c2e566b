// SPDX-License-Identifier: MIT

package topsis

import "github.com/katalvlaran/lvrank/matrix"

const (
	opSeparations = "Separations"
	opCloseness   = "Closeness"
)

// halfScore is the DegenerateHalf closeness: equidistant from both ideals.
const halfScore = 0.5

// Separations computes, for every alternative, the Euclidean distance of its
// weighted row to the ideal-best profile (S+) and to the ideal-worst
// profile (S-).
func Separations(v matrix.Matrix, ideal Ideal) (Separation, error) {
	best, err := matrix.RowDistancesL2(v, ideal.Best)
	if err != nil {
		return Separation{}, topsisErrorf(opSeparations, err)
	}
	worst, err := matrix.RowDistancesL2(v, ideal.Worst)
	if err != nil {
		return Separation{}, topsisErrorf(opSeparations, err)
	}

	return Separation{Best: best, Worst: worst}, nil
}

// Closeness turns separations into scores P = S- / (S+ + S-).
//
// Every score lies in [0,1]: 1 coincides with the ideal best, 0 with the
// ideal worst. When S+ = S- = 0 the ratio is 0/0 and policy decides:
// DegenerateReject returns *ComputationPolicyError for the first such row,
// DegenerateZero scores it 0 and DegenerateHalf scores it 0.5.
func Closeness(sep Separation, policy DegeneratePolicy) ([]float64, error) {
	if len(sep.Best) != len(sep.Worst) {
		return nil, topsisErrorf(opCloseness, ErrLengthMismatch)
	}

	scores := make([]float64, len(sep.Best))
	for i := range scores {
		sum := sep.Best[i] + sep.Worst[i]
		if sum > 0 {
			// fl(S+ + S-) >= S- for S+ >= 0, so the ratio never exceeds 1.
			scores[i] = sep.Worst[i] / sum
			continue
		}
		switch policy {
		case DegenerateZero:
			scores[i] = 0
		case DegenerateHalf:
			scores[i] = halfScore
		default:
			return nil, &ComputationPolicyError{Row: i}
		}
	}

	return scores, nil
}
