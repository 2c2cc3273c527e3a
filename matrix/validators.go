// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/value-domain checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    still match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateAugmented ensures m is non-nil and carries at least the
// right-hand side column, i.e. it has the shape n×(vars+1).
// Complexity: O(1).
func ValidateAugmented(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Cols() < 1 {
		return validatorErrorf("ValidateAugmented", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinary checks that every entry in the first cols columns of m is
// exactly 0 or 1. The remaining columns (e.g. the augmented target) are not
// inspected.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (cols > m.Cols()), ErrNonBinary.
// Complexity: O(r*cols).
func ValidateBinary(m *Dense, cols int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if cols < 0 || cols > m.c {
		return validatorErrorf("ValidateBinary", ErrDimensionMismatch)
	}
	var (
		i, j int
		v    = m.data
	)
	for i = 0; i < m.r; i++ {
		for j = 0; j < cols; j++ {
			x := &v[i*m.c+j]
			if !x.IsInt() {
				return validatorErrorf("ValidateBinary", ErrNonBinary)
			}
			if s := x.Num(); !(s.Sign() == 0 || (s.IsInt64() && s.Int64() == 1)) {
				return validatorErrorf("ValidateBinary", ErrNonBinary)
			}
		}
	}

	return nil
}

// ValidateNonNegativeInts ensures every element of v is >= 0.
// Complexity: O(len(v)).
func ValidateNonNegativeInts(v []int) error {
	for _, x := range v {
		if x < 0 {
			return validatorErrorf("ValidateNonNegativeInts", ErrNegativeValue)
		}
	}

	return nil
}
