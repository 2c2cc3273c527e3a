// Package minpress finds the fewest button presses that drive a counter
// puzzle exactly onto its target.
//
// Every button adds 1 to a fixed set of positions; the target says how high
// each position must end up. The question is the minimum total number of
// presses, or a proof that no combination works. Under the hood this is a
// non-negative integer solution of A·x = b with a 0/1 matrix A that
// minimises sum(x), solved exactly (no floating point anywhere).
//
// Layout:
//
//	matrix/       - exact big.Rat dense matrices and Gauss–Jordan reduction
//	system/       - button lists to the 0/1 system A | b, plus exact verification
//	presses/      - the solver: unique point, free-variable enumeration,
//	                branch-and-bound, budgets and re-verification
//	puzzle/       - the line format: (0,1) (1,2) {2,3,1}
//	batch/        - concurrent, order-preserving runs over many lines
//	cmd/minpress/ - command-line front end (text or JSON report)
//
// Quick start:
//
//	res, err := presses.SolveButtons(ctx, [][]int{{0, 1}, {1, 2}}, []int{2, 3, 1})
//	// res.Status == presses.Optimal, res.Sum == 3
//
//	go run ./cmd/minpress -input task.txt
package minpress
