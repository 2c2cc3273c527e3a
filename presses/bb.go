// Package presses - Branch-and-Bound over the original button space.
//
// The search fixes press counts for buttons 0..m-1 in index order. For
// button j the largest useful count is the minimum remaining target over the
// positions it covers; counts are tried from that maximum down to 0.
//
// Lower bound at depth j (buttons >= j undecided), over positions i with
// rem[i] > 0 and cover_j[i] = #undecided buttons covering i:
//   - cover_j[i] == 0 for some i  ⇒ the branch is infeasible.
//   - ShareBound: LB = max_i ceil(rem[i] / cover_j[i]).
//   - PeakBound:  LB = max_i rem[i].
//
// Both are admissible (never above the true remaining cost), so pruning on
// partial + LB >= best only drops proven-suboptimal branches and the search
// stays complete.
//
// Complexity:
//   - Worst case exponential in m (exact search); per node O(n + |button|).
//   - Memory: O(m·n) for suffix coverage counts, O(m + n) for the state.

package presses

import "github.com/katalvlaran/minpress/system"

// bbEngine holds all search data and policies.
// A dedicated struct (instead of closures) keeps the single shared piece of
// mutable state, the incumbent, explicit.
type bbEngine struct {
	// Configuration / policy
	m, n  int
	bound BoundAlgo

	// Problem data
	cols   [][]int // cols[j] = positions covered by button j
	suffix [][]int // suffix[j][i] = #buttons k >= j covering i; len m+1

	// Current search state
	rem      []int // remaining target
	positive int   // #positions with rem > 0
	x        []int // presses fixed so far (0 for undecided)

	meter *meter
	best  *incumbent
}

func newBBEngine(sys *system.LinearSystem, bound BoundAlgo, mt *meter, best *incumbent) *bbEngine {
	var (
		m = sys.NumButtons()
		n = sys.Positions()
		e = &bbEngine{
			m:      m,
			n:      n,
			bound:  bound,
			cols:   make([][]int, m),
			suffix: make([][]int, m+1),
			rem:    sys.Target(),
			x:      make([]int, m),
			meter:  mt,
			best:   best,
		}
		j int
	)
	for j = 0; j < m; j++ {
		e.cols[j] = sys.Button(j).Positions
	}
	e.suffix[m] = make([]int, n)
	for j = m - 1; j >= 0; j-- {
		e.suffix[j] = make([]int, n)
		copy(e.suffix[j], e.suffix[j+1])
		for _, p := range e.cols[j] {
			e.suffix[j][p]++
		}
	}
	for _, r := range e.rem {
		if r > 0 {
			e.positive++
		}
	}

	return e
}

// press adds d presses of button j (d may be negative to undo).
func (e *bbEngine) press(j, d int) {
	var before int
	for _, p := range e.cols[j] {
		before = e.rem[p]
		e.rem[p] -= d
		switch {
		case before > 0 && e.rem[p] == 0:
			e.positive--
		case before == 0 && e.rem[p] > 0:
			e.positive++
		}
	}
}

// maxPress is the largest count of button j that keeps every covered position >= 0.
func (e *bbEngine) maxPress(j int) int {
	if len(e.cols[j]) == 0 {
		return 0 // covers nothing: never useful
	}
	best := e.rem[e.cols[j][0]]
	for _, p := range e.cols[j][1:] {
		if e.rem[p] < best {
			best = e.rem[p]
		}
	}

	return best
}

// lowerBound returns the admissible bound on presses still needed with
// buttons j.. undecided, or -1 if some positive position has no coverer left.
func (e *bbEngine) lowerBound(j int) int {
	var (
		lb, c, v int
		cover    = e.suffix[j]
	)
	for i := 0; i < e.n; i++ {
		if e.rem[i] == 0 {
			continue
		}
		c = cover[i]
		if c == 0 {
			return -1
		}
		switch e.bound {
		case ShareBound:
			v = (e.rem[i] + c - 1) / c
		case PeakBound:
			v = e.rem[i]
		default:
			v = 0
		}
		if v > lb {
			lb = v
		}
	}

	return lb
}

// dfs decides button j given the presses already fixed (partial = Σ x[<j]).
func (e *bbEngine) dfs(j, partial int) {
	if e.meter.tick() {
		return
	}
	if e.positive == 0 {
		// Terminal: every undecided button stays at 0.
		e.best.offer(partial, e.x)

		return
	}
	if j == e.m {
		return
	}
	lb := e.lowerBound(j)
	if lb < 0 || !e.best.beats(partial+lb) {
		return
	}

	pressed := e.maxPress(j)
	e.press(j, pressed)
	for {
		e.x[j] = pressed
		e.dfs(j+1, partial+pressed)
		if pressed == 0 || e.meter.exhausted {
			break
		}
		e.press(j, -1)
		pressed--
	}
	e.press(j, -pressed)
	e.x[j] = 0
}

// branchAndBound runs the exhaustive search on the original system.
func branchAndBound(sys *system.LinearSystem, bound BoundAlgo, mt *meter, best *incumbent) {
	newBBEngine(sys, bound, mt, best).dfs(0, 0)
}
