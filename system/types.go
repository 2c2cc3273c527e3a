package system

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the system package.
var (
	// ErrPositionOutOfRange indicates a button referencing a position outside [0, n).
	ErrPositionOutOfRange = errors.New("system: position index out of range")

	// ErrNegativeTarget indicates a target value below zero.
	ErrNegativeTarget = errors.New("system: negative target value")

	// ErrNonBinaryEntry indicates a coverage entry outside {0,1}.
	ErrNonBinaryEntry = errors.New("system: coverage entry is not 0 or 1")

	// ErrRaggedMatrix indicates rows of different lengths in FromRows.
	ErrRaggedMatrix = errors.New("system: ragged coverage matrix")

	// ErrLengthMismatch indicates a vector whose length does not match the system.
	ErrLengthMismatch = errors.New("system: vector length mismatch")

	// ErrNegativePress indicates a press count below zero.
	ErrNegativePress = errors.New("system: negative press count")

	// ErrUnsatisfied indicates that A·x differs from b at some position.
	ErrUnsatisfied = errors.New("system: press vector does not reach the target")
)

// systemErrorf attaches call-site context while keeping the sentinel matchable.
func systemErrorf(format string, err error, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Button is one column of the system: pressing it once adds 1 to every
// covered position. Positions is sorted ascending without duplicates.
type Button struct {
	ID        int   // column index (input order)
	Positions []int // covered position indices
}

// Covers reports whether the button increments position i.
func (b Button) Covers(i int) bool {
	for _, p := range b.Positions {
		if p == i {
			return true
		}
		if p > i {
			return false
		}
	}

	return false
}

// LinearSystem is the augmented 0/1 system A | b.
// It is immutable after Build and safe for concurrent readers.
type LinearSystem struct {
	buttons []Button
	target  []int
	cover   [][]bool // cover[i][j] == (A[i][j] == 1)
}
