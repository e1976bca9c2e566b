// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/length/finite checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers still match with errors.Is.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Values).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFiniteVec ensures every element of x is finite.
// The index of the first offending element is part of the message.
// Complexity: O(n).
func ValidateFiniteVec(x []float64) error {
	for i, v := range x {
		if err := checkFinite(v); err != nil {
			return validatorErrorf(fmt.Sprintf("ValidateFiniteVec[%d]", i), err)
		}
	}

	return nil
}

// ValidateFinite scans m in i→j order and fails on the first NaN/±Inf.
// Dense values are finite by construction, so only foreign implementations
// pay for the scan.
// Complexity: O(r*c) for non-Dense, O(1) for *Dense.
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	if _, ok := m.(*Dense); ok {
		return nil
	}

	r, c := m.Rows(), m.Cols()
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if err = checkFinite(v); err != nil {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), err)
			}
		}
	}

	return nil
}

// ValidateColumnVec is the composite used by column kernels:
// NotNil(m) → len(x)==Cols(m) → finite(x).
func ValidateColumnVec(m Matrix, x []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateColumnVec", err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return validatorErrorf("ValidateColumnVec", err)
	}
	if err := ValidateFiniteVec(x); err != nil {
		return validatorErrorf("ValidateColumnVec", err)
	}

	return nil
}
