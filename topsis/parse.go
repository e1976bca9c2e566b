// SPDX-License-Identifier: MIT

package topsis

import (
	"math"
	"strconv"
	"strings"
)

const (
	opParseWeights = "ParseWeights"
	opParseImpacts = "ParseImpacts"
	opParseImpact  = "ParseImpact"
	opParseValues  = "ParseValues"
)

// ParseImpact maps the boundary token "+" to Benefit and "-" to Cost.
// Surrounding whitespace is ignored.
func ParseImpact(tok string) (Impact, error) {
	switch strings.TrimSpace(tok) {
	case "+":
		return Benefit, nil
	case "-":
		return Cost, nil
	default:
		return 0, newValidationError(opParseImpact, ErrUnknownImpact, -1, -1, strconv.Quote(tok))
	}
}

// ParseImpacts parses a comma-separated list such as "+,+,-,+".
// When n > 0 the list must contain exactly n markers.
func ParseImpacts(s string, n int) (ImpactVector, error) {
	toks := strings.Split(s, ",")
	if n > 0 && len(toks) != n {
		return nil, newValidationError(opParseImpacts, ErrImpactCount, -1, -1,
			"got "+strconv.Itoa(len(toks))+", want "+strconv.Itoa(n))
	}

	out := make(ImpactVector, len(toks))
	for j, tok := range toks {
		imp, err := ParseImpact(tok)
		if err != nil {
			return nil, newValidationError(opParseImpacts, ErrUnknownImpact, -1, j, strconv.Quote(tok))
		}
		out[j] = imp
	}

	return out, nil
}

// ParseWeights parses a comma-separated list such as "1,1,2,0.5".
// Every token must be a positive finite number. When n > 0 the list must
// contain exactly n weights.
func ParseWeights(s string, n int) (WeightVector, error) {
	toks := strings.Split(s, ",")
	out := make(WeightVector, len(toks))
	for j, tok := range toks {
		w, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil {
			return nil, newValidationError(opParseWeights, ErrNonNumeric, -1, j, strconv.Quote(tok))
		}
		if !(w > 0) || math.IsInf(w, 0) {
			return nil, newValidationError(opParseWeights, ErrNonPositiveWeight, -1, j, strconv.Quote(tok))
		}
		out[j] = w
	}
	if n > 0 && len(out) != n {
		return nil, newValidationError(opParseWeights, ErrWeightCount, -1, -1,
			"got "+strconv.Itoa(len(out))+", want "+strconv.Itoa(n))
	}

	return out, nil
}

// ParseValues converts the textual criterion cells of one alternative.
// row is the zero-based alternative index used in error positions.
// "NaN" and "Inf" parse as numbers but are rejected as ErrNonFinite.
func ParseValues(cells []string, row int) ([]float64, error) {
	out := make([]float64, len(cells))
	for j, cell := range cells {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, newValidationError(opParseValues, ErrNonNumeric, row, j, strconv.Quote(cell))
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, newValidationError(opParseValues, ErrNonFinite, row, j, strconv.Quote(cell))
		}
		out[j] = v
	}

	return out, nil
}
