package presses_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/minpress/presses"
)

// ExampleSolveButtons solves a three-position puzzle with two buttons.
func ExampleSolveButtons() {
	res, err := presses.SolveButtons(context.Background(),
		[][]int{{0, 1}, {1, 2}}, // button 0 covers positions 0,1; button 1 covers 1,2
		[]int{2, 3, 1},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status, res.Sum, res.Presses, res.Strategy)

	// Output:
	// optimal 3 [2 1] unique
}

// ExampleSolveButtons_infeasible shows a position no button can reach.
func ExampleSolveButtons_infeasible() {
	res, _ := presses.SolveButtons(context.Background(), [][]int{{0}}, []int{3, 5})
	fmt.Println(res)

	// Output:
	// infeasible
}

// ExampleWithStepLimit caps the search; the greedy seed is kept as best-so-far.
func ExampleWithStepLimit() {
	buttons := [][]int{{0}, {0}, {0}, {0}, {0}, {0}, {0}, {0}}
	res, _ := presses.SolveButtons(context.Background(), buttons, []int{9}, presses.WithStepLimit(1))
	fmt.Println(res, res.Found)

	// Output:
	// budget-exceeded(best=9) true
}
