package presses

import "time"

// Mode selects how Solve picks its terminal strategy.
type Mode int

const (
	// Auto classifies the reduced system: unique, enumerate (free <= budget)
	// or branch-and-bound.
	Auto Mode = iota

	// ForceEnumerate always enumerates free variables after reduction,
	// regardless of their count. Used for cross-checks.
	ForceEnumerate

	// ForceBranchAndBound skips reduction and searches the original button space.
	ForceBranchAndBound
)

// BoundAlgo selects the branch-and-bound lower bound.
//
//	ShareBound - max over positive positions of ceil(rem_i / coverers_i).
//	PeakBound  - max over positive positions of rem_i (every press adds at
//	             most 1 there, so at least rem_i presses remain).
//	NoBound    - no cost bound (testing only); uncovered positive positions
//	             still cut the branch.
type BoundAlgo int

const (
	// ShareBound is the default lower bound.
	ShareBound BoundAlgo = iota

	// PeakBound dominates ShareBound and is still admissible.
	PeakBound

	// NoBound disables cost pruning.
	NoBound
)

// Defaults (single source of truth).
const (
	// DefaultEnumerationBudget is the largest free-column count enumerated exhaustively.
	DefaultEnumerationBudget = 5

	// MaxEnumerationBudget caps WithEnumerationBudget; the Cartesian product
	// beyond this is never cheaper than branch-and-bound.
	MaxEnumerationBudget = 16

	// DefaultSeedUpperBound enables the greedy incumbent.
	DefaultSeedUpperBound = true
)

// Options configures Solve.
//
// EnumerationBudget - max free columns handled by enumeration (>= 0).
// StepLimit         - search node budget; 0 means unlimited.
// TimeLimit         - wall-clock budget; 0 means unlimited.
// Mode              - strategy selection (Auto by default).
// Bound             - branch-and-bound lower bound.
// SeedUpperBound    - seed the incumbent with a greedy feasible solution.
type Options struct {
	EnumerationBudget int
	StepLimit         int64
	TimeLimit         time.Duration
	Mode              Mode
	Bound             BoundAlgo
	SeedUpperBound    bool
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the documented defaults:
//   - EnumerationBudget: DefaultEnumerationBudget.
//   - StepLimit, TimeLimit: 0 (unlimited).
//   - Mode: Auto; Bound: ShareBound; SeedUpperBound: true.
func DefaultOptions() Options {
	return Options{
		EnumerationBudget: DefaultEnumerationBudget,
		Mode:              Auto,
		Bound:             ShareBound,
		SeedUpperBound:    DefaultSeedUpperBound,
	}
}

// WithEnumerationBudget sets the largest free-column count that is enumerated.
// Panics if k is outside [0, MaxEnumerationBudget].
func WithEnumerationBudget(k int) Option {
	if k < 0 || k > MaxEnumerationBudget {
		panic("presses: enumeration budget out of range")
	}

	return func(o *Options) {
		o.EnumerationBudget = k
	}
}

// WithStepLimit bounds the number of search nodes. 0 means unlimited.
// Panics on a negative limit.
func WithStepLimit(steps int64) Option {
	if steps < 0 {
		panic("presses: step limit must be non-negative")
	}

	return func(o *Options) {
		o.StepLimit = steps
	}
}

// WithTimeLimit bounds wall-clock search time. 0 means unlimited.
// Panics on a negative duration.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("presses: time limit must be non-negative")
	}

	return func(o *Options) {
		o.TimeLimit = d
	}
}

// WithMode overrides strategy selection.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithBound selects the branch-and-bound lower bound.
func WithBound(b BoundAlgo) Option {
	return func(o *Options) {
		o.Bound = b
	}
}

// WithSeed toggles the greedy incumbent.
func WithSeed(enabled bool) Option {
	return func(o *Options) {
		o.SeedUpperBound = enabled
	}
}

// WithOptions replaces the whole configuration; later options still apply on top.
// The value is checked by Solve (ErrInvalidOptions) rather than here.
func WithOptions(src Options) Option {
	return func(o *Options) {
		*o = src
	}
}

// validateOptions checks ranges of a fully assembled Options value.
func validateOptions(o Options) error {
	if o.EnumerationBudget < 0 || o.EnumerationBudget > MaxEnumerationBudget {
		return ErrInvalidOptions
	}
	if o.StepLimit < 0 || o.TimeLimit < 0 {
		return ErrInvalidOptions
	}
	switch o.Mode {
	case Auto, ForceEnumerate, ForceBranchAndBound:
	default:
		return ErrInvalidOptions
	}
	switch o.Bound {
	case ShareBound, PeakBound, NoBound:
	default:
		return ErrInvalidOptions
	}

	return nil
}
