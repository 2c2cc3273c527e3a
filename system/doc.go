// Package system builds the 0/1 linear system behind a press puzzle.
//
// A puzzle instance is a list of buttons, each covering a set of positions,
// and a target vector with one non-negative integer per position. Build turns
// that into a LinearSystem: an n×m coverage matrix A (row = position,
// column = button, A[i][j] = 1 iff button j covers position i) together with
// the target b. The solver then looks for non-negative integer x with A·x = b.
//
// Contracts:
//   - Position indices must lie in [0, n); targets must be >= 0.
//   - A button that covers nothing is legal; it becomes an all-zero column and
//     is kept so column indices match button indices.
//   - Row order equals target order and is never permuted.
//
// Verify re-checks a candidate press vector against the original system with
// plain integer arithmetic; the solver runs it on every answer it reports.
package system
