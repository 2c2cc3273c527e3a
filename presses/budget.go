package presses

import (
	"context"
	"math"
	"time"
)

// checkEvery is the node interval between context/deadline checks.
// Must be a power of two minus one (used as a mask).
const checkEvery = 4095

// meter counts search nodes and decides when the budget is spent.
// One meter serves one instance; it is never shared between goroutines.
type meter struct {
	ctx         context.Context
	limit       int64
	steps       int64
	useDeadline bool
	deadline    time.Time
	exhausted   bool
}

func newMeter(ctx context.Context, o Options) *meter {
	mt := &meter{ctx: ctx, limit: o.StepLimit}
	if o.TimeLimit > 0 {
		mt.useDeadline = true
		mt.deadline = time.Now().Add(o.TimeLimit)
	}

	return mt
}

// tick records one node and reports whether the search must stop.
// The hard step limit is exact; context and deadline are sampled sparsely.
func (mt *meter) tick() bool {
	if mt.exhausted {
		return true
	}
	mt.steps++
	if mt.limit > 0 && mt.steps > mt.limit {
		mt.exhausted = true

		return true
	}
	if mt.steps&checkEvery != 0 {
		return false
	}
	if mt.ctx.Err() != nil || (mt.useDeadline && time.Now().After(mt.deadline)) {
		mt.exhausted = true
	}

	return mt.exhausted
}

// incumbent is the single monotone "best so far" shared by every branch of
// one search. sum only ever decreases.
type incumbent struct {
	sum   int
	x     []int
	found bool
}

func newIncumbent(m int) *incumbent {
	return &incumbent{sum: math.MaxInt, x: make([]int, m)}
}

// offer records x if it strictly improves the bound.
func (in *incumbent) offer(sum int, x []int) bool {
	if in.found && sum >= in.sum {
		return false
	}
	in.sum = sum
	copy(in.x, x)
	in.found = true

	return true
}

// beats reports whether a completion with total cost >= lb can still improve.
func (in *incumbent) beats(lb int) bool { return !in.found || lb < in.sum }
