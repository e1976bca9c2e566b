// SPDX-License-Identifier: MIT

package topsis

import (
	"slices"
	"strconv"
)

// Column names appended to the original columns on export.
const (
	ScoreColumn = "Topsis Score"
	RankColumn  = "Rank"
)

// Default names used when DecisionMatrix.Columns is empty.
const (
	defaultIDColumn      = "Alternative"
	defaultCriterionStem = "C"
)

const opFormat = "Format"

// floatFormat renders plain decimals ("250", "0.8095...") on export.
const floatFormat byte = 'f'

// Alternative is one original row with its closeness score and rank.
type Alternative struct {
	Index  int       `json:"index"` // zero-based position in the input
	ID     string    `json:"id"`
	Values []float64 `json:"values"`
	Score  float64   `json:"score"`
	Rank   int       `json:"rank"`
}

// Result is the only artifact the core exposes: alternatives in input order,
// each carrying its original columns plus Score and Rank.
type Result struct {
	Columns      []string      `json:"columns"` // id column name, then criterion names
	Alternatives []Alternative `json:"alternatives"`
	Ideal        Ideal         `json:"ideal"`
}

// Format attaches scores and ranks to the original rows of dm, keeping input
// order. Columns default to "Alternative", "C1".."Cn" when dm has none.
func Format(dm DecisionMatrix, scores []float64, ranks []int) (*Result, error) {
	n := len(dm.Rows)
	if len(scores) != n || len(ranks) != n {
		return nil, topsisErrorf(opFormat, ErrLengthMismatch)
	}
	if len(dm.Columns) > 0 && n > 0 && len(dm.Columns) != len(dm.Rows[0].Values)+1 {
		return nil, newValidationError(opFormat, ErrHeaderCount, -1, -1, "")
	}
	if err := checkColumnNames(opFormat, dm.Columns); err != nil {
		return nil, err
	}

	res := &Result{
		Columns:      columnNames(dm),
		Alternatives: make([]Alternative, n),
	}
	for i, row := range dm.Rows {
		res.Alternatives[i] = Alternative{
			Index:  i,
			ID:     row.ID,
			Values: append([]float64(nil), row.Values...),
			Score:  scores[i],
			Rank:   ranks[i],
		}
	}

	return res, nil
}

// checkColumnNames rejects names that would collide in Table: repeats and
// the two computed export columns. Column positions count criteria, so the
// identifier column reports -1.
func checkColumnNames(op string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for k, name := range names {
		if name == ScoreColumn || name == RankColumn {
			return newValidationError(op, ErrReservedColumn, -1, k-1, strconv.Quote(name))
		}
		if _, dup := seen[name]; dup {
			return newValidationError(op, ErrDuplicateColumn, -1, k-1, strconv.Quote(name))
		}
		seen[name] = struct{}{}
	}

	return nil
}

func columnNames(dm DecisionMatrix) []string {
	if len(dm.Columns) > 0 {
		return append([]string(nil), dm.Columns...)
	}
	criteria := 0
	if len(dm.Rows) > 0 {
		criteria = len(dm.Rows[0].Values)
	}
	names := make([]string, 0, criteria+1)
	names = append(names, defaultIDColumn)
	for j := 1; j <= criteria; j++ {
		names = append(names, defaultCriterionStem+strconv.Itoa(j))
	}

	return names
}

// ByRank returns a copy of the alternatives ordered by rank (best first).
func (r *Result) ByRank() []Alternative {
	out := slices.Clone(r.Alternatives)
	slices.SortFunc(out, func(a, b Alternative) int { return a.Rank - b.Rank })

	return out
}

// Header returns the export header: original columns, then Score and Rank.
func (r *Result) Header() []string {
	h := make([]string, 0, len(r.Columns)+2)
	h = append(h, r.Columns...)

	return append(h, ScoreColumn, RankColumn)
}

// Records renders every alternative as text cells in input order, matching
// Header. Numbers use the shortest representation that round-trips.
func (r *Result) Records() [][]string {
	out := make([][]string, len(r.Alternatives))
	for i, a := range r.Alternatives {
		rec := make([]string, 0, len(a.Values)+3)
		rec = append(rec, a.ID)
		for _, v := range a.Values {
			rec = append(rec, strconv.FormatFloat(v, floatFormat, -1, 64))
		}
		rec = append(rec,
			strconv.FormatFloat(a.Score, floatFormat, -1, 64),
			strconv.Itoa(a.Rank),
		)
		out[i] = rec
	}

	return out
}

// Table renders the alternatives as header-keyed records for JSON display.
// Validate and Format keep column names unique and apart from ScoreColumn
// and RankColumn, so every header cell gets its own key.
func (r *Result) Table() []map[string]any {
	header := r.Header()
	out := make([]map[string]any, len(r.Alternatives))
	for i, a := range r.Alternatives {
		rec := make(map[string]any, len(header))
		if len(r.Columns) > 0 {
			rec[header[0]] = a.ID
		}
		for j, v := range a.Values {
			if j+1 < len(r.Columns) {
				rec[header[j+1]] = v
			}
		}
		rec[ScoreColumn] = a.Score
		rec[RankColumn] = a.Rank
		out[i] = rec
	}

	return out
}
