// SPDX-License-Identifier: MIT

package projection

import (
	"math"
	"sort"
)

// epigraphMinLen is the smallest legal epigraph point: one norm slot plus
// two coefficients.
const epigraphMinLen = 3

// ProjectL1Epigraph — Euclidean projection onto the ℓ1-norm epigraph.
//
// Description:
//
//	center is laid out as (norm, coef...): center[0] is the norm slot and
//	center[1:] the coefficient vector. The target set is
//	{(u, v) : ‖v‖₁ ≤ u}. The projection keeps the layout and satisfies
//	out[0] = norm + t and out[1:] = SoftThreshold(coef, t) for the unique
//	t solving Σ max(|coef|−t, 0) = norm + t.
//
// Algorithm Outline:
//  1. If Σ|coef| ≤ norm the point is already in the epigraph; return a copy.
//  2. Otherwise locate t by the shared breakpoint scan (see
//     epigraphThreshold) and assemble the projected point.
//
// Errors:
//   - ErrEpigraphDim — len(center) < 3 (needs a norm slot and two
//     coefficients).
//
// Complexity: O(n log n) time from the sort, O(n) space.
func ProjectL1Epigraph(center []float64) ([]float64, error) {
	if len(center) < epigraphMinLen {
		return nil, ErrEpigraphDim
	}
	norm := center[0]
	coef := center[1:]

	var total float64
	for _, v := range coef {
		total += math.Abs(v)
	}

	out := make([]float64, len(center))
	if total <= norm {
		// Inside the epigraph already.
		copy(out, center)

		return out, nil
	}

	thold := epigraphThreshold(norm, coef)
	out[0] = norm + thold
	softThresholdInto(out[1:], coef, thold)

	return out, nil
}

// ProjectLInfEpigraph — Euclidean projection onto the ℓ∞-norm epigraph.
//
// Description:
//
//	Same layout as ProjectL1Epigraph; the target set is
//	{(u, v) : ‖v‖∞ ≤ u}. The polar cone of the ℓ∞ epigraph is the negated
//	ℓ1 epigraph, so by Moreau's decomposition the projection is
//	center + ProjectL1Epigraph(−center): one breakpoint scan on the negated
//	point, then a vector add. No separate scan logic exists for ℓ∞.
//
// Errors:
//   - ErrEpigraphDim — len(center) < 3.
//
// Complexity: O(n log n) time, O(n) space.
func ProjectLInfEpigraph(center []float64) ([]float64, error) {
	if len(center) < epigraphMinLen {
		return nil, ErrEpigraphDim
	}

	negated := make([]float64, len(center))
	for i, v := range center {
		negated[i] = -v
	}

	delta, err := ProjectL1Epigraph(negated)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(center))
	for i, v := range center {
		out[i] = v + delta[i]
	}

	return out, nil
}

// epigraphThreshold solves Σ max(|coef|−t, 0) = norm + t for the unique root
// t, assuming Σ|coef| > norm (the caller has already handled the feasible
// case).
//
// The left-minus-right gap g(t) = Σ max(|coef|−t, 0) − (norm + t) is
// piecewise linear and strictly decreasing with breakpoints exactly at the
// sorted magnitudes, so sampling g at each magnitude from the largest down
// brackets the root between the first two samples of opposite sign, where
// linear interpolation is exact. Two closed forms handle the roots outside
// the sampled range:
//
//   - g ≥ 0 already at the largest magnitude: above the top breakpoint the
//     gap is −(norm + t), so t = −norm. (Reached when the whole point sits
//     in the polar cone; the ℓ∞ route takes this branch for every feasible
//     input it negates.)
//   - every sample negative: below the bottom breakpoint all n coefficients
//     stay active and g(t) = Σ|coef| − n·t − (norm + t), so
//     t = (Σ|coef| − norm)/(n+1).
//
// Complexity: O(n log n) time, O(n) space.
func epigraphThreshold(norm float64, coef []float64) float64 {
	n := len(coef)
	abs := make([]float64, n)
	for i, v := range coef {
		abs[i] = math.Abs(v)
	}
	sort.Float64s(abs) // ascending; the scan reads back to front

	// Sample at the largest magnitude: nothing lies above it.
	prevT := abs[n-1]
	prevG := -(norm + prevT)
	if prevG >= 0 {
		return -norm
	}

	var (
		csum float64 // sum of the magnitudes above the current sample
		t    float64 // current sample point
		g    float64 // gap at the current sample
	)
	for r := 1; r < n; r++ {
		csum += abs[n-r]
		t = abs[n-1-r]
		g = csum - float64(r)*t - (norm + t)
		if g >= 0 {
			// Root bracketed: the gap is linear on [t, prevT], interpolate.
			return prevT - prevG*(t-prevT)/(g-prevG)
		}
		prevT, prevG = t, g
	}

	// Root below the smallest magnitude; csum currently misses only abs[0].
	return (csum + abs[0] - norm) / float64(n+1)
}
