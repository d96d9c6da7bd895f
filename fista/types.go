// Package fista: problem description, options, result, and sentinel errors.
package fista

import "errors"

// Sentinel errors returned by Minimize.
var (
	// ErrNilGradient indicates a Problem without a gradient callback.
	ErrNilGradient = errors.New("fista: gradient callback must not be nil")

	// ErrNilObjective indicates a Problem without an objective callback.
	ErrNilObjective = errors.New("fista: objective callback must not be nil")

	// ErrNilProx indicates a Problem without a proximal callback.
	ErrNilProx = errors.New("fista: proximal callback must not be nil")

	// ErrBadLipschitz indicates a non-positive or NaN Lipschitz constant.
	ErrBadLipschitz = errors.New("fista: lipschitz constant must be positive")

	// ErrEmptyStart indicates a zero-length starting point.
	ErrEmptyStart = errors.New("fista: starting point must be non-empty")

	// ErrBadOption indicates an out-of-range option value.
	ErrBadOption = errors.New("fista: option value out of range")
)

// Default configuration values.
const (
	// DefaultMaxIter caps the number of proximal gradient steps.
	DefaultMaxIter = 250

	// DefaultTol is the relative objective-change threshold below which
	// Minimize declares convergence.
	DefaultTol = 1e-8
)

// Problem bundles the callbacks describing the composite objective
// f(x) + h(x): a smooth part f given by Grad/Objective with a Lipschitz
// bound, plus a nonsmooth part h reached only through its proximal map.
type Problem struct {
	// Grad returns ∇f at x. Minimize never mutates the returned slice and
	// does not hold it across iterations.
	Grad func(x []float64) []float64

	// Objective returns f(x), the smooth part of the objective.
	Objective func(x []float64) float64

	// Nonsmooth returns h(x). Optional: nil is treated as h ≡ 0. It enters
	// the convergence measure and the reported objective, not the iteration.
	Nonsmooth func(x []float64) float64

	// Prox solves argmin_z lipschitz/2·‖z−x‖² + h(z). An atoms.Atom's Prox
	// method satisfies this signature directly.
	Prox func(x []float64, lipschitz float64) ([]float64, error)

	// Lipschitz bounds the Lipschitz constant of Grad; the step size is its
	// inverse.
	Lipschitz float64
}

// Options configures Minimize.
//
// MaxIter  — hard cap on proximal gradient steps (DefaultMaxIter = 250).
// Tol      — relative objective-change threshold (DefaultTol = 1e-8).
// Momentum — Nesterov acceleration; disabling it yields plain ISTA.
type Options struct {
	MaxIter  int
	Tol      float64
	Momentum bool
}

// Option is a functional option mutating Options.
type Option func(*Options)

// WithMaxIter caps the number of proximal gradient steps.
func WithMaxIter(n int) Option {
	return func(o *Options) {
		o.MaxIter = n
	}
}

// WithTol sets the relative objective-change threshold.
func WithTol(tol float64) Option {
	return func(o *Options) {
		o.Tol = tol
	}
}

// WithMomentum toggles Nesterov acceleration. Minimize runs accelerated by
// default; pass false to fall back to plain ISTA.
func WithMomentum(enabled bool) Option {
	return func(o *Options) {
		o.Momentum = enabled
	}
}

// DefaultOptions returns the baseline configuration:
//   - MaxIter:  DefaultMaxIter (250)
//   - Tol:      DefaultTol (1e-8)
//   - Momentum: true
func DefaultOptions() Options {
	return Options{
		MaxIter:  DefaultMaxIter,
		Tol:      DefaultTol,
		Momentum: true,
	}
}

// Result reports the outcome of a Minimize run.
type Result struct {
	// X is the final iterate.
	X []float64

	// Objective is the composite objective f(X)+h(X) at the final iterate.
	Objective float64

	// Iterations counts the proximal gradient steps taken.
	Iterations int

	// Converged reports whether the relative objective change dropped below
	// Tol before MaxIter ran out.
	Converged bool
}
