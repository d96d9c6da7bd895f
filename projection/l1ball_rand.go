// SPDX-License-Identifier: MIT

package projection

import (
	"math"
	"math/rand"
)

// ProjectL1BallRandomized — expected-linear-time ℓ1-ball projection.
//
// Description:
//
//	Same contract as ProjectL1BallSorted, computed without sorting. A
//	quickselect-style loop partitions an undecided index set around a random
//	pivot magnitude and either confirms the whole upper group as lying above
//	the final threshold or narrows the search into it.
//
// Algorithm Outline (loop until the undecided set is empty):
//  1. Draw pivot index k uniformly from the undecided set; xk = |x[k]|.
//  2. Partition the undecided set into G = {u : |x[u]| ≥ xk} (magnitude sum
//     ds, count dρ) and L = {u : |x[u]| < xk}.
//  3. If (s+ds) − (ρ+dρ)·xk < bound, shrinking down to xk cannot exhaust the
//     radius, so the threshold lies below xk: absorb G into the confirmed
//     accumulators (s += ds, ρ += dρ) and continue on L.
//     Otherwise the threshold is ≥ xk. The pivot itself can never survive a
//     threshold at or above its own magnitude, so it is dropped and the loop
//     continues on G∖{k}; both branches shrink the undecided set by at least
//     one index, which bounds the loop by p rounds.
//  4. On exit, eta = (s − bound)/ρ clamped to ≥ 0, and the result is
//     SoftThreshold(x, eta). ρ == 0 means nothing was ever confirmed, which
//     happens exactly when bound == 0: the ball is the origin and the zero
//     vector is returned directly.
//
// The partitions are re-materialized each round into three reused index
// buffers, so the loop allocates nothing after setup.
//
// Determinism: pivot draws come from the package seed policy (WithSeed,
// WithRand; seed 0 ⇒ fixed default stream), so unconfigured runs are
// reproducible. Only Seed and Rand are consulted here; the bound always
// comes from the argument.
//
// Errors:
//   - ErrEmptyVector   — len(x) == 0.
//   - ErrNegativeBound — bound < 0.
//
// Complexity: expected O(p) time over the pivot randomness; O(p²) worst case
// when all magnitudes are equal. O(p) space.
func ProjectL1BallRandomized(x []float64, bound float64, opts ...Option) ([]float64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return randomizedBallProject(x, bound, resolveRand(o))
}

// randomizedBallProject runs the pivot loop with an already-resolved RNG.
// ProjectL1Ball routes here directly so that option parsing happens once.
func randomizedBallProject(x []float64, bound float64, rng *rand.Rand) ([]float64, error) {
	p := len(x)
	if p == 0 {
		return nil, ErrEmptyVector
	}
	if bound < 0 {
		return nil, ErrNegativeBound
	}

	// Three index buffers rotate through the loop; no further allocations.
	undecided := make([]int, p)
	for i := range undecided {
		undecided[i] = i
	}
	greater := make([]int, 0, p)
	lesser := make([]int, 0, p)

	var (
		s   float64 // confirmed magnitude mass above the final threshold
		rho int     // count of confirmed magnitudes
		k   int     // pivot index for the current round
		xk  float64 // pivot magnitude
		ds  float64 // magnitude mass of the upper partition G
		au  float64 // magnitude of the index under partitioning
	)
	for len(undecided) > 0 {
		k = undecided[rng.Intn(len(undecided))]
		xk = math.Abs(x[k])

		// Partition the undecided set around the pivot magnitude.
		greater = greater[:0]
		lesser = lesser[:0]
		ds = 0
		for _, u := range undecided {
			au = math.Abs(x[u])
			if au >= xk {
				greater = append(greater, u)
				ds += au
			} else {
				lesser = append(lesser, u)
			}
		}

		if (s+ds)-float64(rho+len(greater))*xk < bound {
			// Threshold below xk: all of G is confirmed, recurse on L.
			s += ds
			rho += len(greater)
			undecided, lesser = lesser, undecided
		} else {
			// Threshold at or above xk: discard the pivot, recurse on G∖{k}.
			keep := greater[:0]
			for _, u := range greater {
				if u != k {
					keep = append(keep, u)
				}
			}
			undecided, greater = keep, undecided
		}
	}

	if rho == 0 {
		// No magnitude was ever confirmed: bound == 0 and the ball is the
		// origin.
		return make([]float64, p), nil
	}

	eta := (s - bound) / float64(rho)
	if eta < 0 {
		// Negative eta means the input was feasible all along.
		eta = 0
	}

	out := make([]float64, p)
	softThresholdInto(out, x, eta)

	return out, nil
}
