// SPDX-License-Identifier: MIT

package topsis

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Input bundles one decision problem for EvaluateAll.
type Input struct {
	Matrix  DecisionMatrix
	Weights WeightVector
	Impacts ImpactVector
}

// EvaluateAll evaluates independent problems concurrently, at most
// WithConcurrency of them at a time. results[i] belongs to inputs[i].
//
// The first failure cancels problems that have not started yet and is
// returned tagged with its input index. ctx is only consulted between
// problems; a single evaluation is never interrupted.
func EvaluateAll(ctx context.Context, inputs []Input, opts ...Option) ([]*Result, error) {
	o := gatherOptions(opts...)
	results := make([]*Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := Validate(inputs[i].Matrix, inputs[i].Weights, inputs[i].Impacts)
			if err != nil {
				return fmt.Errorf("topsis: input %d: %w", i, err)
			}
			res, err := p.evaluate(o)
			if err != nil {
				return fmt.Errorf("topsis: input %d: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
