// SPDX-License-Identifier: MIT
// Package topsis: error taxonomy.
//
// Two classes of failure leave the core:
//   - *ValidationError: shape/type/count violations and degenerate columns.
//     It unwraps to ErrValidation AND to the specific rule sentinel, so callers
//     can match either the class or the exact rule with errors.Is.
//   - *ComputationPolicyError: the S+ = S- = 0 degeneracy under the reject policy.
//     It unwraps to ErrDegenerateScore.
//
// Nothing here is retried: the pipeline is pure, a retry reproduces the error.

package topsis

import (
	"errors"
	"fmt"
	"strings"
)

const errPrefix = "topsis: "

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("topsis: invalid input")

// Validation rules. Each *ValidationError carries exactly one of these.
var (
	// ErrTooFewAlternatives: fewer than two rows.
	ErrTooFewAlternatives = errors.New("topsis: at least two alternatives are required")

	// ErrTooFewCriteria: fewer than two criterion columns.
	ErrTooFewCriteria = errors.New("topsis: at least two criteria are required")

	// ErrRaggedRow: a row's criterion count differs from the matrix criterion count.
	ErrRaggedRow = errors.New("topsis: row criterion count differs from the matrix")

	// ErrHeaderCount: column names given but not one id column plus one per criterion.
	ErrHeaderCount = errors.New("topsis: column names do not match criterion count")

	// ErrWeightCount: len(weights) != criterion count.
	ErrWeightCount = errors.New("topsis: number of weights does not match criterion count")

	// ErrImpactCount: len(impacts) != criterion count.
	ErrImpactCount = errors.New("topsis: number of impacts does not match criterion count")

	// ErrNonNumeric: a textual cell or weight could not be parsed as a number.
	ErrNonNumeric = errors.New("topsis: value is not numeric")

	// ErrNonFinite: NaN or ±Inf in a criterion cell or score.
	ErrNonFinite = errors.New("topsis: value is not finite")

	// ErrNonPositiveWeight: a weight is zero, negative, NaN or ±Inf.
	ErrNonPositiveWeight = errors.New("topsis: weights must be positive finite numbers")

	// ErrUnknownImpact: an impact marker other than + (benefit) or - (cost).
	ErrUnknownImpact = errors.New("topsis: impacts must be either + or -")

	// ErrDuplicateColumn: the same column name appears twice.
	ErrDuplicateColumn = errors.New("topsis: column names must be unique")

	// ErrReservedColumn: a column is named like a computed export column.
	ErrReservedColumn = errors.New("topsis: column name is reserved for the result")

	// ErrDegenerateColumn: a criterion column whose Euclidean norm is zero.
	ErrDegenerateColumn = errors.New("topsis: degenerate criterion column (all values are zero)")
)

// ErrDegenerateScore marks an alternative whose distance to both ideal
// profiles is zero, so the closeness ratio is 0/0.
var ErrDegenerateScore = errors.New("topsis: closeness undefined (zero distance to both ideals)")

// ErrLengthMismatch reports stage outputs that disagree on the number of
// alternatives (e.g. scores and ranks passed to Format by hand).
var ErrLengthMismatch = errors.New("topsis: stage output length does not match alternative count")

// ValidationError names the violated rule and, when known, where it happened.
// Row and Column are zero-based (alternative index, criterion index) and -1
// when the rule is not tied to a position. Messages print them one-based.
type ValidationError struct {
	Op     string // stage that detected the violation, e.g. "Validate", "ParseWeights"
	Rule   error  // one of the rule sentinels above
	Row    int
	Column int
	Detail string // offending token or value, free-form
}

// newValidationError builds a *ValidationError; pass -1 for unknown positions.
func newValidationError(op string, rule error, row, col int, detail string) *ValidationError {
	return &ValidationError{Op: op, Rule: rule, Row: row, Column: col, Detail: detail}
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(errPrefix)
	sb.WriteString(e.Op)
	switch {
	case e.Row >= 0 && e.Column >= 0:
		fmt.Fprintf(&sb, " (row %d, criterion %d)", e.Row+1, e.Column+1)
	case e.Row >= 0:
		fmt.Fprintf(&sb, " (row %d)", e.Row+1)
	case e.Column >= 0:
		fmt.Fprintf(&sb, " (criterion %d)", e.Column+1)
	}
	sb.WriteString(": ")
	sb.WriteString(strings.TrimPrefix(e.Rule.Error(), errPrefix))
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}

	return sb.String()
}

// Unwrap exposes both the rule and the ErrValidation class.
func (e *ValidationError) Unwrap() []error { return []error{e.Rule, ErrValidation} }

// ComputationPolicyError is returned under DegenerateReject when an
// alternative coincides with both ideal profiles.
type ComputationPolicyError struct {
	Row int    // zero-based alternative index
	ID  string // alternative identifier, empty if unknown
}

func (e *ComputationPolicyError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("topsis: alternative %q (row %d): %s",
			e.ID, e.Row+1, strings.TrimPrefix(ErrDegenerateScore.Error(), errPrefix))
	}

	return fmt.Sprintf("topsis: row %d: %s", e.Row+1, strings.TrimPrefix(ErrDegenerateScore.Error(), errPrefix))
}

func (e *ComputationPolicyError) Unwrap() error { return ErrDegenerateScore }

// topsisErrorf tags a non-validation error with the failing stage.
func topsisErrorf(op string, err error) error {
	return fmt.Errorf("topsis: %s: %w", op, err)
}
