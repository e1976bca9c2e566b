// SPDX-License-Identifier: MIT

package topsis_test

import (
	"context"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/katalvlaran/lvrank/topsis"
	"github.com/stretchr/testify/require"
)

func TestEvaluateAll_MatchesEvaluate(t *testing.T) {
	defer leaktest.CheckTimeout(t, 2*time.Second)()

	dm, w, imp := laptops()
	swapped := append(topsis.ImpactVector(nil), imp...)
	swapped[0] = topsis.Cost

	inputs := make([]topsis.Input, 0, 16)
	for i := 0; i < 16; i++ {
		in := topsis.Input{Matrix: dm, Weights: w, Impacts: imp}
		if i%2 == 1 {
			in.Impacts = swapped
		}
		inputs = append(inputs, in)
	}

	results, err := topsis.EvaluateAll(context.Background(), inputs, topsis.WithConcurrency(3))
	require.NoError(t, err)
	require.Len(t, results, len(inputs))

	for i, in := range inputs {
		want, err := topsis.Evaluate(in.Matrix, in.Weights, in.Impacts)
		require.NoError(t, err)
		require.Equal(t, want, results[i], "input %d", i)
	}
}

func TestEvaluateAll_FirstErrorTaggedWithIndex(t *testing.T) {
	defer leaktest.CheckTimeout(t, 2*time.Second)()

	dm, w, imp := laptops()
	inputs := []topsis.Input{
		{Matrix: dm, Weights: w, Impacts: imp},
		{Matrix: dm, Weights: w[:2], Impacts: imp},
		{Matrix: dm, Weights: w, Impacts: imp},
	}

	results, err := topsis.EvaluateAll(context.Background(), inputs, topsis.WithConcurrency(1))
	require.Nil(t, results)
	require.ErrorIs(t, err, topsis.ErrWeightCount)
	require.ErrorContains(t, err, "input 1")
}

func TestEvaluateAll_CanceledContext(t *testing.T) {
	defer leaktest.CheckTimeout(t, 2*time.Second)()

	dm, w, imp := laptops()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := topsis.EvaluateAll(ctx, []topsis.Input{{Matrix: dm, Weights: w, Impacts: imp}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestEvaluateAll_Empty(t *testing.T) {
	results, err := topsis.EvaluateAll(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, results)
}
