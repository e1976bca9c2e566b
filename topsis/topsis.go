// SPDX-License-Identifier: MIT

package topsis

import (
	"context"
	"errors"
	"log/slog"
)

const opEvaluate = "Evaluate"

// Evaluate runs the whole chain on one decision problem:
// Validate → Normalize → ApplyWeights → IdealSolutions → Separations →
// Closeness → Rank → Format.
//
// It is pure and synchronous: every intermediate value is allocated per call
// and nothing outlives it except the returned *Result, so concurrent calls
// need no coordination.
func Evaluate(dm DecisionMatrix, w WeightVector, imp ImpactVector, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	p, err := Validate(dm, w, imp)
	if err != nil {
		return nil, err
	}

	return p.evaluate(o)
}

// Evaluate runs the chain on an already validated problem. The result rows
// come from the copies taken by Validate.
func (p *Problem) Evaluate(opts ...Option) (*Result, error) {
	return p.evaluate(gatherOptions(opts...))
}

// table rebuilds the validated input from the problem's private copies.
func (p *Problem) table() (DecisionMatrix, error) {
	dm := DecisionMatrix{Columns: p.columns, Rows: make([]Row, len(p.ids))}
	for i, id := range p.ids {
		vals, err := p.values.Row(i)
		if err != nil {
			return DecisionMatrix{}, topsisErrorf(opEvaluate, err)
		}
		dm.Rows[i] = Row{ID: id, Values: vals}
	}

	return dm, nil
}

func (p *Problem) evaluate(o Options) (*Result, error) {
	ctx := context.Background()
	log := o.logger.With(
		slog.Int("alternatives", p.Alternatives()),
		slog.Int("criteria", p.criteria),
	)

	normalized, norms, err := Normalize(p.values, p.criteria)
	if err != nil {
		return nil, err
	}
	log.DebugContext(ctx, "normalized", slog.Any("norms", norms))

	weighted, err := ApplyWeights(normalized, p.weights)
	if err != nil {
		return nil, err
	}
	if log.Enabled(ctx, slog.LevelDebug) {
		log.DebugContext(ctx, "weighted", slog.String("matrix", weighted.String()))
	}

	ideal, err := IdealSolutions(weighted, p.impacts)
	if err != nil {
		return nil, err
	}
	log.DebugContext(ctx, "ideal profiles", slog.Any("best", ideal.Best), slog.Any("worst", ideal.Worst))

	sep, err := Separations(weighted, ideal)
	if err != nil {
		return nil, err
	}
	log.DebugContext(ctx, "separations", slog.Any("s_plus", sep.Best), slog.Any("s_minus", sep.Worst))

	scores, err := Closeness(sep, o.policy)
	if err != nil {
		var pe *ComputationPolicyError
		if errors.As(err, &pe) {
			pe.ID = p.ids[pe.Row]
		}
		return nil, err
	}

	ranks, err := Rank(scores)
	if err != nil {
		return nil, err
	}
	log.DebugContext(ctx, "ranked", slog.Any("scores", scores), slog.Any("ranks", ranks))

	dm, err := p.table()
	if err != nil {
		return nil, err
	}
	res, err := Format(dm, scores, ranks)
	if err != nil {
		return nil, err
	}
	res.Ideal = ideal

	return res, nil
}
