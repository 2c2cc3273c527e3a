// Package presses - orchestrator: Build → Reduce → Classify → Solve → Validate → Report.
//
// Each instance runs the stages strictly in order and picks exactly one
// terminal strategy; no strategy calls back into Solve.
//
//   - Reduce:   exact Gauss–Jordan on [A | b] (skipped for ForceBranchAndBound).
//   - Classify: inconsistent ⇒ Infeasible; no free columns ⇒ unique rational
//     solution; free <= EnumerationBudget ⇒ enumeration; otherwise
//     branch-and-bound on the original system.
//   - Validate: the RREF pivot block must be an identity, and any reported
//     press vector is re-checked with system.Verify.

package presses

import (
	"context"
	"fmt"

	"github.com/katalvlaran/minpress/matrix"
	"github.com/katalvlaran/minpress/system"
)

// stage tags errors with the pipeline step that produced them.
type stage string

const (
	stageBuild    stage = "build"
	stageReduce   stage = "reduce"
	stageValidate stage = "validate"
)

// solveErrorf wraps err with the stage tag, preserving it via %w.
func solveErrorf(s stage, err error) error {
	return fmt.Errorf("presses: %s: %w", s, err)
}

// SolveButtons builds the system from raw coverage lists and solves it.
// Build errors (out-of-range positions, negative targets) are returned
// wrapped with the build stage; the instance is never solved in that case.
func SolveButtons(ctx context.Context, buttons [][]int, target []int, opts ...Option) (Result, error) {
	sys, err := system.Build(buttons, target)
	if err != nil {
		return Result{}, solveErrorf(stageBuild, err)
	}

	return Solve(ctx, sys, opts...)
}

// Solve computes the minimum total number of presses for sys.
//
// Contracts:
//   - sys must be non-nil (ErrNilSystem).
//   - Options must be within their documented ranges (ErrInvalidOptions).
//   - ctx cancellation and deadlines act like an exhausted budget: the result
//     is BudgetExceeded with the best solution seen so far, error nil.
//
// Errors are reserved for contract violations; Infeasible and
// BudgetExceeded are ordinary results.
func Solve(ctx context.Context, sys *system.LinearSystem, opts ...Option) (Result, error) {
	if sys == nil {
		return Result{}, ErrNilSystem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateOptions(o); err != nil {
		return Result{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// Vacuous or all-zero target: x = 0 is the unique minimum.
	if sys.IsZeroTarget() {
		return report(sys, Result{
			Status:   Optimal,
			Presses:  make([]int, sys.NumButtons()),
			Found:    true,
			Strategy: StrategyTrivial,
		})
	}

	mt := newMeter(ctx, o)
	if ctx.Err() != nil {
		mt.exhausted = true
	}

	if o.Mode == ForceBranchAndBound {
		res, err := search(sys, o, mt, nil, 0)
		return finish(sys, res, err)
	}

	aug, err := sys.Augmented()
	if err != nil {
		return Result{}, solveErrorf(stageBuild, err)
	}
	// Build guarantees both; a failure here is a defect, not bad input.
	if err = matrix.ValidateBinary(aug, sys.NumButtons()); err != nil {
		return Result{}, solveErrorf(stageBuild, fmt.Errorf("%w: %w", ErrInvariantViolation, err))
	}
	if err = matrix.ValidateNonNegativeInts(sys.Target()); err != nil {
		return Result{}, solveErrorf(stageBuild, fmt.Errorf("%w: %w", ErrInvariantViolation, err))
	}
	red, err := matrix.Reduce(aug)
	if err != nil {
		return Result{}, solveErrorf(stageReduce, err)
	}
	if err = checkReduced(red); err != nil {
		return Result{}, solveErrorf(stageReduce, err)
	}

	switch {
	case red.Inconsistent:
		return Result{Status: Infeasible, Strategy: StrategyInconsistent, Free: len(red.Free)}, nil

	case len(red.Free) == 0:
		return report(sys, unique(sys, red))

	case len(red.Free) <= o.EnumerationBudget || o.Mode == ForceEnumerate:
		res, err := search(sys, o, mt, red, len(red.Free))
		return finish(sys, res, err)

	default:
		// Reduction result is not needed by branch-and-bound.
		res, err := search(sys, o, mt, nil, len(red.Free))
		return finish(sys, res, err)
	}
}

// checkReduced rejects an RREF whose pivot columns are not an identity
// block; every later stage reads pivot values straight off the rows.
func checkReduced(red *matrix.Reduced) error {
	if !red.IsIdentityBlock() {
		return fmt.Errorf("%w: pivot block is not an identity", ErrInvariantViolation)
	}

	return nil
}

// finish reports a search result, or the error that stopped it.
func finish(sys *system.LinearSystem, res Result, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}

	return report(sys, res)
}

// unique reads the only rational solution off the RREF and accepts it iff
// every pivot value is a non-negative integer.
func unique(sys *system.LinearSystem, red *matrix.Reduced) Result {
	x := make([]int, sys.NumButtons())
	limit := int64(sys.MaxTarget())
	for r, col := range red.PivotCols {
		v, err := red.PivotValue(r)
		if err != nil || !v.IsInt() || v.Sign() < 0 {
			return Result{Status: Infeasible, Strategy: StrategyUnique}
		}
		num := v.Num()
		if !num.IsInt64() || num.Int64() > limit {
			// A non-negative solution never exceeds max(b) on any column.
			return Result{Status: Infeasible, Strategy: StrategyUnique}
		}
		x[col] = int(num.Int64())
	}

	return Result{
		Status:   Optimal,
		Sum:      system.Sum(x),
		Presses:  x,
		Found:    true,
		Strategy: StrategyUnique,
	}
}

// search runs enumeration (red != nil) or branch-and-bound (red == nil) and
// turns the incumbent into a Result. Errors only come from reading the RREF.
func search(sys *system.LinearSystem, o Options, mt *meter, red *matrix.Reduced, free int) (Result, error) {
	best := newIncumbent(sys.NumButtons())
	if o.SeedUpperBound && !mt.exhausted {
		if seed := greedySeed(sys); seed != nil {
			best.offer(system.Sum(seed), seed)
		}
	}

	strategy := StrategyBranchAndBound
	switch {
	case mt.exhausted:
		// Budget already spent (cancelled context); nothing to search.
		if red != nil {
			strategy = StrategyEnumerate
		}
	case red != nil:
		strategy = StrategyEnumerate
		ok, err := enumerate(sys, red, mt, best)
		if err != nil {
			return Result{}, solveErrorf(stageReduce, err)
		}
		if !ok {
			// Integer form out of int64 range: the button-space search is exact too.
			strategy = StrategyBranchAndBound
			branchAndBound(sys, o.Bound, mt, best)
		}
	default:
		branchAndBound(sys, o.Bound, mt, best)
	}

	res := Result{Strategy: strategy, Free: free, Steps: mt.steps}
	switch {
	case mt.exhausted:
		res.Status = BudgetExceeded
	case best.found:
		res.Status = Optimal
	default:
		res.Status = Infeasible
	}
	if best.found {
		res.Found = true
		res.Sum = best.sum
		res.Presses = append([]int(nil), best.x...)
	}

	return res, nil
}

// report is the Validate stage: every press vector leaving the solver must
// satisfy the original system exactly and match its reported sum.
func report(sys *system.LinearSystem, res Result) (Result, error) {
	if !res.Found {
		return res, nil
	}
	if err := sys.Verify(res.Presses); err != nil {
		return Result{}, solveErrorf(stageValidate, fmt.Errorf("%w: %w", ErrInvariantViolation, err))
	}
	if system.Sum(res.Presses) != res.Sum {
		return Result{}, solveErrorf(stageValidate, ErrInvariantViolation)
	}

	return res, nil
}
