// SPDX-License-Identifier: MIT

// Package projection - unified dispatcher for the ℓ1-ball projectors.
//
// ProjectL1Ball is the canonical entry point: it applies the functional
// options on top of DefaultOptions and routes to the requested algorithm.
// Both routes validate identically and agree on every input up to floating
// error, so the choice is purely a performance tradeoff.
package projection

// ProjectL1Ball projects x onto {z : ‖z‖₁ ≤ bound} with the configured
// algorithm.
//
// Options consulted: WithBound (DefaultBound 1.0), WithAlgorithm
// (DefaultAlgorithm SortedScan), and, for RandomizedPivot, WithSeed/WithRand.
//
// Errors: ErrEmptyVector, ErrNegativeBound, ErrUnknownAlgorithm.
//
// Complexity: per chosen algorithm — O(p log p) for SortedScan, expected
// O(p) for RandomizedPivot.
func ProjectL1Ball(x []float64, opts ...Option) ([]float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Route by algorithm.
	switch o.Algo {
	case SortedScan:
		return ProjectL1BallSorted(x, o.Bound)

	case RandomizedPivot:
		return randomizedBallProject(x, o.Bound, resolveRand(o))

	default:
		return nil, ErrUnknownAlgorithm
	}
}
