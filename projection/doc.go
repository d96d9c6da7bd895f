// SPDX-License-Identifier: MIT

// Package projection computes Euclidean projections of real vectors onto
// convex sets cut out by norm constraints: the ℓ1-ball of a given radius and
// the epigraphs of the ℓ1 and ℓ∞ norms.
//
// 🚀 Why projections?
//
//	Proximal and projected-gradient solvers take an unconstrained step and
//	then snap the iterate back onto the feasible set. The snap is a Euclidean
//	projection, and it runs once per iteration, so it has to be cheap and
//	exact. Typical uses:
//	  • LASSO / basis-pursuit solvers (ℓ1-ball constraint)
//	  • dual formulations of sup-norm penalties (ℓ1 epigraph)
//	  • robust regression and box-dual constraints (ℓ∞ epigraph)
//
// ✨ Key features:
//   - ProjectL1BallSorted: deterministic O(p log p) sort-and-scan projection
//   - ProjectL1BallRandomized: expected O(p) randomized pivot projection
//   - ProjectL1Ball: one entry point, algorithm chosen via Options
//   - ProjectL1Epigraph / ProjectLInfEpigraph: breakpoint search on the
//     sorted threshold curve, the ℓ∞ case reduced to ℓ1 by polar duality
//   - SoftThreshold: the shared elementwise shrinkage primitive
//
// ⚙️ Usage:
//
//	import "github.com/dlsun/regreg/projection"
//
//	// project onto {z : ‖z‖₁ ≤ 5} with the default sorted algorithm
//	z, err := projection.ProjectL1Ball(x, projection.WithBound(5))
//
//	// expected-linear-time variant, reproducible pivots
//	z, err = projection.ProjectL1BallRandomized(x, 5, projection.WithSeed(42))
//
// Every routine is a pure function: inputs are never mutated and each call
// returns a freshly allocated vector of the same shape. The only source of
// nondeterminism is the pivot draw in the randomized projector, and it is
// pinned by the seed policy in Options (seed 0 means the fixed default
// stream).
//
// Performance:
//
//   - ProjectL1BallSorted:     O(p log p) time, O(p) space
//   - ProjectL1BallRandomized: expected O(p) time, O(p²) worst case on
//     adversarial all-equal inputs, O(p) space
//   - epigraph projections:    O(n log n) time, O(n) space
//   - SoftThreshold:           O(p) time, O(p) space
//
// See example_test.go for worked scenarios.
package projection
