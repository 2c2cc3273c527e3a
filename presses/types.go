package presses

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the solver.
var (
	// ErrNilSystem indicates that a nil *system.LinearSystem was passed to Solve.
	ErrNilSystem = errors.New("presses: system is nil")

	// ErrInvalidOptions indicates an Options value that violates its documented ranges.
	ErrInvalidOptions = errors.New("presses: invalid options")

	// ErrInvariantViolation indicates that a candidate answer failed exact
	// re-verification against the original system, or that the reduction
	// broke its pivot invariants. It signals a defect and is returned instead
	// of a possibly wrong result.
	ErrInvariantViolation = errors.New("presses: solution failed verification")
)

// Status classifies a solve outcome.
type Status int

const (
	// Optimal: Sum is the proven minimum of sum(x) over all non-negative integer solutions.
	Optimal Status = iota

	// Infeasible: no non-negative integer x satisfies A·x = b. A verdict, not an error.
	Infeasible

	// BudgetExceeded: the step/time budget ran out before optimality or
	// infeasibility was proven. Sum is the best value seen so far (if Found).
	BudgetExceeded
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case BudgetExceeded:
		return "budget-exceeded"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Strategy names the terminal stage that produced a Result.
type Strategy int

const (
	// StrategyTrivial covers n = 0 and all-zero targets: x = 0 is optimal.
	StrategyTrivial Strategy = iota

	// StrategyUnique covers consistent systems without free columns.
	StrategyUnique

	// StrategyInconsistent marks a reduction that proved the rational system has no solution.
	StrategyInconsistent

	// StrategyEnumerate is the bounded free-variable enumeration.
	StrategyEnumerate

	// StrategyBranchAndBound is the search over the original button space.
	StrategyBranchAndBound
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyTrivial:
		return "trivial"
	case StrategyUnique:
		return "unique"
	case StrategyInconsistent:
		return "inconsistent"
	case StrategyEnumerate:
		return "enumerate"
	case StrategyBranchAndBound:
		return "branch-and-bound"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Result is the per-instance answer.
//
//   - Optimal:        Found is true, Presses is a verified solution, Sum == Σ Presses.
//   - Infeasible:     Found is false, Presses is nil, Sum is 0.
//   - BudgetExceeded: Found tells whether any complete solution was seen;
//     when true, Sum/Presses hold the best one (possibly non-optimal).
type Result struct {
	Status   Status
	Sum      int
	Presses  []int
	Found    bool
	Strategy Strategy
	Free     int   // free columns after reduction (0 when reduction was skipped)
	Steps    int64 // search nodes visited
}

// String renders a compact summary such as "optimal(3)" or "infeasible".
func (r Result) String() string {
	switch r.Status {
	case Optimal:
		return fmt.Sprintf("optimal(%d)", r.Sum)
	case BudgetExceeded:
		if r.Found {
			return fmt.Sprintf("budget-exceeded(best=%d)", r.Sum)
		}

		return "budget-exceeded"
	default:
		return r.Status.String()
	}
}
