package presses

import (
	"math/big"

	"github.com/katalvlaran/minpress/matrix"
	"github.com/katalvlaran/minpress/system"
)

// safeMagnitudeBits caps |values| seen by the int64 enumerator, leaving
// headroom for one addition per step.
const safeMagnitudeBits = 62

// enumRow is one RREF row in integer form:
//
//	d·x_pivot + Σ_k c[k]·x_free[k] = rhs,   d > 0.
//
// Clearing denominators keeps the integrality test exact: x_pivot is an
// integer iff (rhs − Σ c·x) is divisible by d.
type enumRow struct {
	pivot int
	d     int64
	c     []int64
	rhs   int64

	// tailNonNeg[k] / tailNonPos[k]: every c[k'] with k' >= k is >= 0 / <= 0.
	tailNonNeg []bool
	tailNonPos []bool
}

// enumEngine enumerates free-variable tuples within FreeBounds and
// back-substitutes pivot rows. State lives on the struct, not in closures.
type enumEngine struct {
	free  []int
	ub    []int
	rows  []enumRow
	res   []int64 // res[r] = rhs − Σ_{assigned k} c[k]·x_free[k]
	x     []int   // full press vector (free and pivot columns)
	meter *meter
	best  *incumbent
}

// buildEnumRows converts the first Rank rows of red into integer form.
// It reports ok=false when any reachable magnitude would not fit in
// safeMagnitudeBits; the caller then switches to branch-and-bound.
func buildEnumRows(red *matrix.Reduced, free, ub []int) (rows []enumRow, ok bool, err error) {
	rows = make([]enumRow, red.Rank)
	var (
		r, k  int
		q     *big.Rat
		lcm   = new(big.Int)
		gcd   = new(big.Int)
		num   = new(big.Int)
		span  = new(big.Int)
		limit = new(big.Int).Lsh(big.NewInt(1), safeMagnitudeBits)
	)
	for r = 0; r < red.Rank; r++ {
		qs := make([]*big.Rat, len(free)+1)
		lcm.SetInt64(1)
		for k = 0; k <= len(free); k++ {
			if k < len(free) {
				q, err = red.Coeff(r, free[k])
			} else {
				q, err = red.PivotValue(r)
			}
			if err != nil {
				return nil, false, err
			}
			qs[k] = q
			// lcm = lcm * den / gcd(lcm, den)
			gcd.GCD(nil, nil, lcm, q.Denom())
			lcm.Mul(lcm, q.Denom())
			lcm.Quo(lcm, gcd)
		}
		if lcm.BitLen() > safeMagnitudeBits {
			return nil, false, nil
		}

		row := enumRow{
			pivot:      red.PivotCols[r],
			d:          lcm.Int64(),
			c:          make([]int64, len(free)),
			tailNonNeg: make([]bool, len(free)+1),
			tailNonPos: make([]bool, len(free)+1),
		}
		span.SetInt64(0)
		for k = 0; k <= len(free); k++ {
			// num = q * lcm, exact because lcm is a multiple of q's denominator.
			num.Quo(lcm, qs[k].Denom())
			num.Mul(num, qs[k].Num())
			if num.BitLen() > safeMagnitudeBits {
				return nil, false, nil
			}
			if k < len(free) {
				row.c[k] = num.Int64()
				num.Abs(num)
				num.Mul(num, big.NewInt(int64(ub[k])))
			} else {
				row.rhs = num.Int64()
				num.Abs(num)
			}
			span.Add(span, num)
		}
		if span.Cmp(limit) >= 0 {
			return nil, false, nil
		}

		row.tailNonNeg[len(free)] = true
		row.tailNonPos[len(free)] = true
		for k = len(free) - 1; k >= 0; k-- {
			row.tailNonNeg[k] = row.tailNonNeg[k+1] && row.c[k] >= 0
			row.tailNonPos[k] = row.tailNonPos[k+1] && row.c[k] <= 0
		}
		rows[r] = row
	}

	return rows, true, nil
}

// enumerate runs the exhaustive free-variable search. It returns ok=false
// (without searching) when the integer form is out of int64 range.
func enumerate(sys *system.LinearSystem, red *matrix.Reduced, mt *meter, best *incumbent) (ok bool, err error) {
	ub := FreeBounds(sys, red.Free)
	rows, ok, err := buildEnumRows(red, red.Free, ub)
	if err != nil || !ok {
		return ok, err
	}

	e := enumEngine{
		free:  red.Free,
		ub:    ub,
		rows:  rows,
		res:   make([]int64, len(rows)),
		x:     make([]int, sys.NumButtons()),
		meter: mt,
		best:  best,
	}
	for r := range rows {
		e.res[r] = rows[r].rhs
	}
	e.dfs(0, 0)

	return true, nil
}

// bound returns a lower bound on the total for the current partial tuple at
// level k, or ok=false if some pivot row can no longer be satisfied.
func (e *enumEngine) bound(k, freeSum int) (lb int, ok bool) {
	lb = freeSum
	for r := range e.rows {
		row := &e.rows[r]
		res := e.res[r]
		// Remaining terms can only lower the residual: a negative one is final.
		if row.tailNonNeg[k] && res < 0 {
			return 0, false
		}
		// Remaining terms can only raise x_pivot: ceil(res/d) is already owed.
		if row.tailNonPos[k] && res > 0 {
			lb += int((res + row.d - 1) / row.d)
		}
	}

	return lb, true
}

// dfs assigns free variable k (in ascending column order) and recurses.
func (e *enumEngine) dfs(k, freeSum int) {
	if e.meter.tick() {
		return
	}
	lb, ok := e.bound(k, freeSum)
	if !ok || !e.best.beats(lb) {
		return
	}

	if k == len(e.free) {
		e.leaf(freeSum)

		return
	}

	var (
		col = e.free[k]
		v   int
		r   int
	)
	for v = 0; v <= e.ub[k]; v++ {
		if v > 0 {
			for r = range e.rows {
				e.res[r] -= e.rows[r].c[k]
			}
		}
		// The fixed free sum alone is a lower bound, and it grows with v.
		if !e.best.beats(freeSum + v) {
			break
		}
		e.x[col] = v
		e.dfs(k+1, freeSum+v)
		if e.meter.exhausted {
			break
		}
	}
	if v > e.ub[k] {
		v = e.ub[k]
	}
	for r = range e.rows {
		e.res[r] += e.rows[r].c[k] * int64(v)
	}
	e.x[col] = 0
}

// leaf back-substitutes every pivot row for a complete free tuple.
func (e *enumEngine) leaf(freeSum int) {
	total := freeSum
	for r := range e.rows {
		row := &e.rows[r]
		res := e.res[r]
		if res < 0 || res%row.d != 0 {
			return
		}
		v := int(res / row.d)
		e.x[row.pivot] = v
		total += v
	}
	e.best.offer(total, e.x)
}
