// SPDX-License-Identifier: MIT

package projection

import "math"

// SoftThreshold — elementwise shrinkage, the proximal operator of the ℓ1 norm.
//
// Description:
//
//	Every entry of x moves toward zero by lagrange and stops there:
//
//	  y[i] = 0                  if |x[i]| ≤ lagrange
//	  y[i] = x[i] - lagrange    if  x[i] > lagrange
//	  y[i] = x[i] + lagrange    if  x[i] < -lagrange
//
//	Both ℓ1-ball projectors and both epigraph projectors finish by applying
//	this operator with the threshold they have computed.
//
// The branches are evaluated in the order written, which keeps the output
// well-defined even for negative lagrange (the intended domain is
// lagrange ≥ 0; callers inside this package always satisfy it).
//
// SoftThreshold never fails and never mutates x; the result is a fresh
// vector of the same length.
//
// Complexity: O(p) time, O(p) space.
func SoftThreshold(x []float64, lagrange float64) []float64 {
	out := make([]float64, len(x))
	softThresholdInto(out, x, lagrange)

	return out
}

// softThresholdInto writes SoftThreshold(x, lagrange) into dst, which must
// have the same length as x. Shared by the projectors to avoid a second
// allocation on their output path.
func softThresholdInto(dst, x []float64, lagrange float64) {
	for i, v := range x {
		switch {
		case math.Abs(v) <= lagrange:
			dst[i] = 0
		case v > lagrange:
			dst[i] = v - lagrange
		default:
			dst[i] = v + lagrange
		}
	}
}
