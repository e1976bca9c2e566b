// SPDX-License-Identifier: MIT

package topsis

// Impact is the preference direction of a criterion.
// The zero value is deliberately invalid so unset markers fail validation.
type Impact int8

const (
	// Benefit: higher values are better ("+").
	Benefit Impact = iota + 1
	// Cost: lower values are better ("-").
	Cost
)

// String renders the boundary token: "+" for Benefit, "-" for Cost.
func (i Impact) String() string {
	switch i {
	case Benefit:
		return "+"
	case Cost:
		return "-"
	default:
		return "?"
	}
}

// valid reports whether i is Benefit or Cost.
func (i Impact) valid() bool { return i == Benefit || i == Cost }

// WeightVector holds one positive weight per criterion. Weights are used as
// given; they are not required to sum to 1.
type WeightVector []float64

// ImpactVector holds one direction marker per criterion.
type ImpactVector []Impact

// Row is one alternative: an opaque identifier plus its criterion values.
type Row struct {
	ID     string
	Values []float64
}

// DecisionMatrix is the raw input table.
//
// Columns is optional; when set it names the identifier column followed by
// one name per criterion, and is carried through to the result header.
type DecisionMatrix struct {
	Columns []string
	Rows    []Row
}

// Ideal is the direction-aware ideal-best / ideal-worst profile pair.
type Ideal struct {
	Best  []float64 `json:"best"`
	Worst []float64 `json:"worst"`
}

// Separation holds each alternative's Euclidean distance to the ideal-best
// profile (Best, S+) and to the ideal-worst profile (Worst, S-).
type Separation struct {
	Best  []float64
	Worst []float64
}
