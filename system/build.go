package system

import (
	"sort"

	"github.com/katalvlaran/minpress/matrix"
)

// Build converts button coverage lists and a target vector into a LinearSystem.
//
// Each buttons[j] is the list of positions button j covers; repeated indices
// collapse (a button is a set). An empty list is kept as an all-zero column.
//
// Errors:
//   - ErrNegativeTarget if any target[i] < 0.
//   - ErrPositionOutOfRange if a button references a position outside [0, len(target)).
//
// Complexity: O(n·m + Σ|button| log |button|).
func Build(buttons [][]int, target []int) (*LinearSystem, error) {
	var (
		n   = len(target)
		m   = len(buttons)
		sys = &LinearSystem{
			buttons: make([]Button, m),
			target:  make([]int, n),
			cover:   make([][]bool, n),
		}
		i, j int
	)
	for i = 0; i < n; i++ {
		if target[i] < 0 {
			return nil, systemErrorf("Build: target[%d]=%d", ErrNegativeTarget, i, target[i])
		}
		sys.target[i] = target[i]
		sys.cover[i] = make([]bool, m)
	}

	for j = 0; j < m; j++ {
		set := make([]int, 0, len(buttons[j]))
		for _, p := range buttons[j] {
			if p < 0 || p >= n {
				return nil, systemErrorf("Build: button %d position %d", ErrPositionOutOfRange, j, p)
			}
			if sys.cover[p][j] {
				continue // duplicate index within one button
			}
			sys.cover[p][j] = true
			set = append(set, p)
		}
		sort.Ints(set)
		sys.buttons[j] = Button{ID: j, Positions: set}
	}

	return sys, nil
}

// FromRows builds a LinearSystem from an explicit n×m coverage matrix.
// Every entry must be exactly 0 or 1; anything else is an input-contract
// violation and is refused.
//
// Errors:
//   - ErrLengthMismatch if len(rows) != len(target).
//   - ErrRaggedMatrix if rows differ in length.
//   - ErrNonBinaryEntry for an entry outside {0,1}.
//   - ErrNegativeTarget as in Build.
func FromRows(rows [][]int, target []int) (*LinearSystem, error) {
	if len(rows) != len(target) {
		return nil, systemErrorf("FromRows: %d rows for %d targets", ErrLengthMismatch, len(rows), len(target))
	}
	var m int
	if len(rows) > 0 {
		m = len(rows[0])
	}
	buttons := make([][]int, m)
	var i, j int
	for i = 0; i < len(rows); i++ {
		if len(rows[i]) != m {
			return nil, systemErrorf("FromRows: row %d", ErrRaggedMatrix, i)
		}
		for j = 0; j < m; j++ {
			switch rows[i][j] {
			case 0:
			case 1:
				buttons[j] = append(buttons[j], i)
			default:
				return nil, systemErrorf("FromRows: entry (%d,%d)=%d", ErrNonBinaryEntry, i, j, rows[i][j])
			}
		}
	}

	return Build(buttons, target)
}

// Positions returns n, the number of rows.
func (s *LinearSystem) Positions() int { return len(s.target) }

// NumButtons returns m, the number of columns.
func (s *LinearSystem) NumButtons() int { return len(s.buttons) }

// Button returns button j. The Positions slice is shared; do not modify it.
func (s *LinearSystem) Button(j int) Button { return s.buttons[j] }

// Buttons returns a copy of the button list.
func (s *LinearSystem) Buttons() []Button {
	out := make([]Button, len(s.buttons))
	copy(out, s.buttons)

	return out
}

// Target returns a copy of the target vector.
func (s *LinearSystem) Target() []int {
	out := make([]int, len(s.target))
	copy(out, s.target)

	return out
}

// TargetAt returns b[i].
func (s *LinearSystem) TargetAt(i int) int { return s.target[i] }

// Covers reports whether button j covers position i (A[i][j] == 1).
func (s *LinearSystem) Covers(i, j int) bool { return s.cover[i][j] }

// MaxTarget returns max(b), or 0 for an empty target.
func (s *LinearSystem) MaxTarget() int {
	var best int
	for _, t := range s.target {
		if t > best {
			best = t
		}
	}

	return best
}

// IsZeroTarget reports whether every target value is zero (vacuous for n = 0).
func (s *LinearSystem) IsZeroTarget() bool {
	for _, t := range s.target {
		if t != 0 {
			return false
		}
	}

	return true
}

// Augmented returns the exact n×(m+1) matrix [A | b].
// The result passes matrix.ValidateBinary on its first m columns.
func (s *LinearSystem) Augmented() (*matrix.Dense, error) {
	var (
		n    = len(s.target)
		m    = len(s.buttons)
		i, j int
	)
	aug, err := matrix.NewDense(n, m+1)
	if err != nil {
		return nil, err
	}
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			if s.cover[i][j] {
				if err = aug.SetInt(i, j, 1); err != nil {
					return nil, err
				}
			}
		}
		if err = aug.SetInt(i, m, int64(s.target[i])); err != nil {
			return nil, err
		}
	}

	return aug, nil
}
