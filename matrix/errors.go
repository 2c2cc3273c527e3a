// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// these sentinels with an operation tag via matrixErrorf; callers still match
// them with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> value-domain violations.

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrDimensionMismatch indicates incompatible dimensions, e.g. a ragged
	// input grid or an augmented matrix without a right-hand side column.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonBinary signals a coefficient outside {0,1} where a 0/1 block is required.
	ErrNonBinary = errors.New("matrix: coefficient is not 0 or 1")

	// ErrNegativeValue signals a negative entry where only non-negative
	// integers are allowed (target vectors).
	ErrNegativeValue = errors.New("matrix: negative value")
)
