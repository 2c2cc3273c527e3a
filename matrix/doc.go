// Package matrix offers exact dense matrices and the Gauss–Jordan kernel used
// by the press solver.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of big.Rat cells with bounds-checked At/Set.
//   - Reduce, which brings an augmented system [A | b] into reduced
//     row-echelon form and reports pivot rows, free columns and
//     inconsistency.
//   - Validators for the value domains the solver relies on (0/1
//     coefficient blocks, non-negative targets).
//
// No floating point is used anywhere: integrality and zero tests are exact,
// so results do not drift with coefficient magnitude or elimination length.
package matrix
