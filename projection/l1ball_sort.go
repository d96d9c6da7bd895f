// SPDX-License-Identifier: MIT

package projection

import (
	"math"
	"sort"
)

// ProjectL1BallSorted — deterministic ℓ1-ball projection via a full sort.
//
// Description:
//
//	Returns the Euclidean projection of x onto {z : ‖z‖₁ ≤ bound}. The
//	projection equals SoftThreshold(x, cut) for exactly one cut ≥ 0, and the
//	sorted scan locates that cut.
//
// Algorithm Outline:
//  1. Sort |x| ascending; walk it from the largest value down.
//  2. At step i (0-indexed from the top) let next be the current value and
//     csum the sum of the i+1 values seen so far. Stop the first time
//     csum − (i+1)·next > bound: shrinking by next alone would already
//     overshoot the radius, so the cut lies in the gap just crossed.
//  3. On a stop at i ≥ 1 the cut spreads the surplus over the i larger
//     values: cut = next + (csum − (i+1)·next − bound)/i. A stop at i == 0
//     has no larger values to spread over; the cut comes straight off the
//     top element, cut = csum − bound.
//  4. If the scan never stops, csum is now ‖x‖₁. Within the radius the input
//     is already feasible and is returned as a copy. Otherwise the cut sits
//     at or below the smallest magnitude (ties at the bottom hide the stop
//     condition), every entry stays active, and the surplus spreads
//     uniformly: cut = (csum − bound)/p.
//  5. Return SoftThreshold(x, cut).
//
// Ties in the sorted order are irrelevant: only the multiset of magnitudes
// enters the scan.
//
// Errors:
//   - ErrEmptyVector   — len(x) == 0.
//   - ErrNegativeBound — bound < 0.
//
// Complexity: O(p log p) time from the sort, O(p) space.
func ProjectL1BallSorted(x []float64, bound float64) ([]float64, error) {
	p := len(x)
	if p == 0 {
		return nil, ErrEmptyVector
	}
	if bound < 0 {
		return nil, ErrNegativeBound
	}

	// Sorted magnitudes; the scan reads them back to front.
	abs := make([]float64, p)
	for i, v := range x {
		abs[i] = math.Abs(v)
	}
	sort.Float64s(abs)

	var (
		csum    float64 // running sum of the magnitudes visited so far
		next    float64 // magnitude at the current step, i-th from the top
		cut     float64 // shrinkage that lands the result on the sphere
		i       int     // scan step, 0-indexed from the top
		stopped bool    // whether the overshoot test fired
	)
	for i = 0; i < p; i++ {
		next = abs[p-1-i]
		csum += next
		if csum-float64(i+1)*next > bound {
			stopped = true

			break
		}
	}

	switch {
	case stopped && i == 0:
		// Only the top element is involved; no interior gap to spread over.
		cut = csum - bound
	case stopped:
		cut = next + (csum-float64(i+1)*next-bound)/float64(i)
	case csum <= bound:
		// Already feasible; hand back a copy, never the caller's buffer.
		out := make([]float64, p)
		copy(out, x)

		return out, nil
	default:
		// Never stopped but still infeasible: uniform shrink keeps all p
		// entries active.
		cut = (csum - bound) / float64(p)
	}

	out := make([]float64, p)
	softThresholdInto(out, x, cut)

	return out, nil
}
