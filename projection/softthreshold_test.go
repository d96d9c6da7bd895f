// SPDX-License-Identifier: MIT

package projection_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dlsun/regreg/projection"
)

// TestSoftThreshold_KnownVector pins the elementwise shrinkage on a hand-worked
// vector: entries shrink toward zero by the threshold and stop there.
func TestSoftThreshold_KnownVector(t *testing.T) {
	got := projection.SoftThreshold([]float64{3, -4, 0, 1}, 1)
	assert.Equal(t, []float64{2, -3, 0, 0}, got, "each entry must shrink by 1 and clamp at 0")
}

// TestSoftThreshold_SignAndMagnitudeLaw verifies the defining property on random
// inputs: the output keeps the sign of the input (or is zero) and its magnitude
// is max(|x|-lagrange, 0).
func TestSoftThreshold_SignAndMagnitudeLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(64)
		x := make([]float64, n)
		for i := range x {
			x[i] = rng.NormFloat64() * 5
		}
		lagrange := rng.Float64() * 4

		y := projection.SoftThreshold(x, lagrange)
		assert.Len(t, y, n)
		for i := range x {
			want := math.Max(math.Abs(x[i])-lagrange, 0)
			assert.InDelta(t, want, math.Abs(y[i]), 1e-12, "magnitude law at index %d", i)
			if y[i] != 0 {
				assert.Equal(t, math.Signbit(x[i]), math.Signbit(y[i]), "sign must be preserved at index %d", i)
			}
		}
	}
}

// TestSoftThreshold_ZeroLagrange checks that a zero threshold returns the input
// values in a fresh buffer: mutating the output must not touch the input.
func TestSoftThreshold_ZeroLagrange(t *testing.T) {
	x := []float64{1.5, -2.5, 0}
	y := projection.SoftThreshold(x, 0)
	assert.Equal(t, x, y, "zero threshold shrinks nothing")

	y[0] = 99
	assert.Equal(t, 1.5, x[0], "output must not alias the input")
}

// TestSoftThreshold_NegativeLagrange pins the branch order for a negative
// threshold: the zero branch never fires, positive entries grow by |lagrange|
// and negative entries shrink further.
func TestSoftThreshold_NegativeLagrange(t *testing.T) {
	got := projection.SoftThreshold([]float64{0.5, -2, 0}, -1)
	assert.Equal(t, []float64{1.5, -3, 1}, got, "negative lagrange follows the documented branch order")
}

// TestSoftThreshold_EmptyInput verifies the degenerate empty vector passes
// through as an empty result without fault.
func TestSoftThreshold_EmptyInput(t *testing.T) {
	got := projection.SoftThreshold([]float64{}, 1)
	assert.Empty(t, got)
}
