// SPDX-License-Identifier: MIT

package topsis

import (
	"math"
	"sort"
	"strconv"
)

const opRank = "Rank"

// Rank assigns ordinal ranks by descending score. ranks[i] is the rank of
// the alternative at input index i.
//
// Exactly equal scores keep their input order (stable sort on the original
// index), so the result is always a permutation of 1..N: no gaps, no
// duplicates. NaN or ±Inf scores are rejected because they have no order.
func Rank(scores []float64) ([]int, error) {
	for i, s := range scores {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return nil, newValidationError(opRank, ErrNonFinite, i, -1, strconv.FormatFloat(s, 'g', -1, 64))
		}
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	ranks := make([]int, len(scores))
	for pos, idx := range order {
		ranks[idx] = pos + 1
	}

	return ranks, nil
}
