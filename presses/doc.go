// Package presses finds the minimum number of button presses that drive a
// press puzzle exactly onto its target.
//
// Given a coverage system A·x = b (see package system), Solve looks for a
// non-negative integer vector x minimising sum(x). It combines three
// strategies, chosen per instance after an exact Gauss–Jordan reduction:
//
//   - Unique: no free columns. The single rational solution is read off the
//     RREF and accepted iff it is integral and non-negative.
//   - Enumerate: at most EnumerationBudget free columns. Free variables range
//     over [0, FreeBounds] and pivot variables are back-substituted exactly;
//     partial tuples are cut as soon as a pivot row is unsatisfiable or the
//     owed total cannot beat the incumbent.
//   - BranchAndBound: many free columns. Depth-first search over the original
//     buttons with an admissible lower bound (ShareBound by default).
//
// Every strategy is exhaustive, so Optimal is a proof, not an estimate. A
// step limit (WithStepLimit), a wall-clock limit (WithTimeLimit) or context
// cancellation turns an unfinished search into BudgetExceeded; the best
// solution found so far is still reported and flagged with Found.
//
// Every press vector that leaves Solve has been re-verified against the
// original system; a mismatch yields ErrInvariantViolation instead of an
// answer.
//
// Example:
//
//	res, err := presses.SolveButtons(ctx,
//		[][]int{{0, 1}, {1, 2}},
//		[]int{2, 3, 1},
//	)
//	// res.Status == presses.Optimal, res.Sum == 3, res.Presses == [2 1]
package presses
