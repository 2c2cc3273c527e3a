package presses

import (
	"sort"

	"github.com/katalvlaran/minpress/system"
)

// FreeBounds returns, for each column in cols, an upper bound on its press
// count in any non-negative solution: the minimum target over the positions
// it covers (a larger count would overshoot one of them), or MaxTarget for a
// button that covers nothing.
//
// Complexity: O(Σ|button|) over cols.
func FreeBounds(sys *system.LinearSystem, cols []int) []int {
	out := make([]int, len(cols))
	for k, j := range cols {
		out[k] = pressCap(sys, j)
	}

	return out
}

// pressCap is the per-button bound behind FreeBounds.
func pressCap(sys *system.LinearSystem, j int) int {
	b := sys.Button(j)
	if len(b.Positions) == 0 {
		return sys.MaxTarget()
	}
	best := sys.TargetAt(b.Positions[0])
	for _, p := range b.Positions[1:] {
		if t := sys.TargetAt(p); t < best {
			best = t
		}
	}

	return best
}

// greedySeed builds a feasible press vector to serve as the initial
// incumbent, or returns nil. It repeatedly presses the button that covers
// the most still-positive positions as often as the remaining target allows.
// The result only tightens pruning; the exhaustive search still proves (or
// improves) it before anything is reported.
//
// Complexity: O(m² · n) worst case.
func greedySeed(sys *system.LinearSystem) []int {
	var (
		m    = sys.NumButtons()
		rem  = sys.Target()
		x    = make([]int, m)
		used = make([]bool, m)
	)
	order := make([]int, m)
	for j := range order {
		order[j] = j
	}
	// Wider buttons first; index breaks ties for determinism.
	sort.SliceStable(order, func(a, b int) bool {
		return len(sys.Button(order[a]).Positions) > len(sys.Button(order[b]).Positions)
	})

	for {
		pick, pickGain := -1, 0
		for _, j := range order {
			if used[j] {
				continue
			}
			gain := 0
			for _, p := range sys.Button(j).Positions {
				if rem[p] > 0 {
					gain++
				}
			}
			if gain > pickGain {
				pick, pickGain = j, gain
			}
		}
		if pick < 0 {
			break
		}
		used[pick] = true

		positions := sys.Button(pick).Positions
		presses := rem[positions[0]]
		for _, p := range positions[1:] {
			if rem[p] < presses {
				presses = rem[p]
			}
		}
		for _, p := range positions {
			rem[p] -= presses
		}
		x[pick] = presses
	}

	for _, r := range rem {
		if r != 0 {
			return nil
		}
	}

	return x
}
