// SPDX-License-Identifier: MIT

package topsis

import (
	"math"
	"strconv"

	"github.com/katalvlaran/lvrank/matrix"
)

const opValidate = "Validate"

// minimum table shape; TOPSIS is meaningless below it.
const (
	minAlternatives = 2
	minCriteria     = 2
)

// Problem is a validated decision problem. It owns private copies of the
// input, so later mutation of the caller's slices cannot reach it. The
// criterion count is fixed here and every later stage is checked against it.
type Problem struct {
	criteria int
	columns  []string
	ids      []string
	values   *matrix.Dense
	weights  WeightVector
	impacts  ImpactVector
}

// Criteria returns the criterion count fixed at validation.
func (p *Problem) Criteria() int { return p.criteria }

// Alternatives returns the number of rows.
func (p *Problem) Alternatives() int { return len(p.ids) }

// IDs returns a copy of the alternative identifiers in input order.
func (p *Problem) IDs() []string { return append([]string(nil), p.ids...) }

// Values returns a copy of the decision matrix values.
func (p *Problem) Values() matrix.Matrix { return p.values.Clone() }

// Weights returns a copy of the weight vector.
func (p *Problem) Weights() WeightVector { return append(WeightVector(nil), p.weights...) }

// Impacts returns a copy of the impact vector.
func (p *Problem) Impacts() ImpactVector { return append(ImpactVector(nil), p.impacts...) }

// Validate checks dm, w and imp before any computation.
//
// Rule order (first violation wins):
//  1. at least two alternatives;
//  2. at least two criteria (taken from the first row);
//  3. every row has that many values; column names, if given, match in
//     count, are unique and avoid ScoreColumn and RankColumn;
//  4. len(w) and len(imp) equal the criterion count;
//  5. every cell is finite;
//  6. every weight is positive and finite;
//  7. every impact is Benefit or Cost.
//
// Counts are therefore always checked before any value is inspected.
func Validate(dm DecisionMatrix, w WeightVector, imp ImpactVector) (*Problem, error) {
	n := len(dm.Rows)
	if n < minAlternatives {
		return nil, newValidationError(opValidate, ErrTooFewAlternatives, -1, -1, "got "+strconv.Itoa(n))
	}

	criteria := len(dm.Rows[0].Values)
	if criteria < minCriteria {
		return nil, newValidationError(opValidate, ErrTooFewCriteria, -1, -1, "got "+strconv.Itoa(criteria))
	}
	for i := range dm.Rows {
		if got := len(dm.Rows[i].Values); got != criteria {
			return nil, newValidationError(opValidate, ErrRaggedRow, i, -1,
				"got "+strconv.Itoa(got)+", want "+strconv.Itoa(criteria))
		}
	}
	if len(dm.Columns) != 0 && len(dm.Columns) != criteria+1 {
		return nil, newValidationError(opValidate, ErrHeaderCount, -1, -1,
			"got "+strconv.Itoa(len(dm.Columns))+" names, want "+strconv.Itoa(criteria+1))
	}
	if err := checkColumnNames(opValidate, dm.Columns); err != nil {
		return nil, err
	}
	if len(w) != criteria {
		return nil, newValidationError(opValidate, ErrWeightCount, -1, -1,
			"got "+strconv.Itoa(len(w))+", want "+strconv.Itoa(criteria))
	}
	if len(imp) != criteria {
		return nil, newValidationError(opValidate, ErrImpactCount, -1, -1,
			"got "+strconv.Itoa(len(imp))+", want "+strconv.Itoa(criteria))
	}

	for i := range dm.Rows {
		for j, v := range dm.Rows[i].Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, newValidationError(opValidate, ErrNonFinite, i, j, strconv.FormatFloat(v, 'g', -1, 64))
			}
		}
	}
	for j, v := range w {
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, newValidationError(opValidate, ErrNonPositiveWeight, -1, j, strconv.FormatFloat(v, 'g', -1, 64))
		}
	}
	for j, m := range imp {
		if !m.valid() {
			return nil, newValidationError(opValidate, ErrUnknownImpact, -1, j, "marker "+strconv.Itoa(int(m)))
		}
	}

	rows := make([][]float64, n)
	ids := make([]string, n)
	for i := range dm.Rows {
		rows[i] = dm.Rows[i].Values
		ids[i] = dm.Rows[i].ID
	}
	values, err := matrix.NewDenseFromRows(rows) // copies; cannot fail after the checks above
	if err != nil {
		return nil, topsisErrorf(opValidate, err)
	}

	return &Problem{
		criteria: criteria,
		columns:  append([]string(nil), dm.Columns...),
		ids:      ids,
		values:   values,
		weights:  append(WeightVector(nil), w...),
		impacts:  append(ImpactVector(nil), imp...),
	}, nil
}
