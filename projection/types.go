// SPDX-License-Identifier: MIT

// Package projection: option types, defaults, and sentinel errors.
//
// All projection routines validate their inputs before doing any work and
// report violations through the sentinels below; callers match them with
// errors.Is. No routine panics on user input.
package projection

import (
	"errors"
	"math/rand"
)

// Sentinel errors returned by the projection routines.
var (
	// ErrEmptyVector indicates that an input vector of length zero was passed
	// where at least one element is required.
	ErrEmptyVector = errors.New("projection: input vector must be non-empty")

	// ErrNegativeBound indicates a negative ℓ1-ball radius. The ball is empty
	// for bound < 0, so no projection exists.
	ErrNegativeBound = errors.New("projection: bound must be non-negative")

	// ErrEpigraphDim indicates an epigraph point with fewer than three
	// entries. The layout is (norm slot, coefficients...) and the breakpoint
	// scan needs at least two coefficients.
	ErrEpigraphDim = errors.New("projection: epigraph point needs a norm slot and at least two coefficients")

	// ErrUnknownAlgorithm indicates an Algorithm value outside the declared
	// enum was routed through ProjectL1Ball.
	ErrUnknownAlgorithm = errors.New("projection: unknown ball projection algorithm")
)

// Algorithm selects the ℓ1-ball projection strategy used by ProjectL1Ball.
//
//   - SortedScan      — full sort of absolute values, then one linear scan.
//     Deterministic, O(p log p) always.
//   - RandomizedPivot — quickselect-style partitioning on a random pivot.
//     Expected O(p); degrades to O(p²) on adversarial inputs (all magnitudes
//     equal). Pivot draws follow the package seed policy.
type Algorithm int

const (
	// SortedScan sorts |x| once and locates the threshold in a single pass.
	SortedScan Algorithm = iota

	// RandomizedPivot partitions an undecided index set around random pivots
	// without ever fully sorting.
	RandomizedPivot
)

// Default configuration values. These are the single source of truth; both
// DefaultOptions and documentation derive from them.
const (
	// DefaultBound is the ℓ1-ball radius used when WithBound is not given.
	DefaultBound = 1.0

	// DefaultAlgorithm is the ball projection strategy used by ProjectL1Ball
	// when WithAlgorithm is not given.
	DefaultAlgorithm = SortedScan
)

// Options configures ProjectL1Ball and ProjectL1BallRandomized.
//
// Bound — radius of the target ℓ1-ball; must be ≥ 0 (DefaultBound = 1.0).
// Algo  — ball projection strategy; consulted only by ProjectL1Ball.
// Seed  — seed for the pivot RNG; 0 selects the fixed default stream so that
// unconfigured runs stay reproducible.
// Rand  — explicit RNG; overrides Seed when non-nil. A *rand.Rand is not
// goroutine-safe, so concurrent callers must pass distinct instances (or
// distinct seeds). When neither Seed nor Rand is set, every call builds its
// own deterministic stream and concurrent use is safe.
type Options struct {
	Bound float64    // ℓ1-ball radius
	Algo  Algorithm  // strategy used by the ProjectL1Ball dispatcher
	Seed  int64      // pivot RNG seed; 0 ⇒ default deterministic stream
	Rand  *rand.Rand // explicit pivot RNG; wins over Seed when non-nil
}

// Option is a functional option mutating Options.
type Option func(*Options)

// WithBound sets the ℓ1-ball radius. Negative values are not rejected here;
// the projection routines validate and return ErrNegativeBound.
func WithBound(bound float64) Option {
	return func(o *Options) {
		o.Bound = bound
	}
}

// WithAlgorithm selects the ball projection strategy used by ProjectL1Ball.
func WithAlgorithm(algo Algorithm) Option {
	return func(o *Options) {
		o.Algo = algo
	}
}

// WithSeed pins the pivot RNG of the randomized projector to a deterministic
// stream. Seed 0 selects the package default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand supplies an explicit pivot RNG, overriding WithSeed. Useful when a
// caller already owns a decorrelated stream per worker.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// DefaultOptions returns the baseline configuration:
//   - Bound: DefaultBound (1.0)
//   - Algo:  DefaultAlgorithm (SortedScan)
//   - Seed:  0 (the fixed default stream)
//   - Rand:  nil (derive from Seed)
func DefaultOptions() Options {
	return Options{
		Bound: DefaultBound,
		Algo:  DefaultAlgorithm,
		Seed:  0,
		Rand:  nil,
	}
}
