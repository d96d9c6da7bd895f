// SPDX-License-Identifier: MIT

package projection_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlsun/regreg/projection"
)

// tolEpi is the floating tolerance for epigraph assertions.
const tolEpi = 1e-9

// lInfNorm returns the largest magnitude.
func lInfNorm(v []float64) float64 {
	var m float64
	for _, x := range v {
		m = math.Max(m, math.Abs(x))
	}

	return m
}

// dot is the plain inner product.
func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// epigraphOracle projects center onto the ℓ1 epigraph by bisecting the gap
// Σ max(|coef|−t, 0) − (norm + t), which is strictly decreasing in t. It is
// independent of the breakpoint scan under test.
func epigraphOracle(center []float64) []float64 {
	norm := center[0]
	coef := center[1:]

	var total float64
	for _, v := range coef {
		total += math.Abs(v)
	}
	out := make([]float64, len(center))
	if total <= norm {
		copy(out, center)

		return out
	}

	lo := 0.0
	hi := lInfNorm(coef) + math.Abs(norm) + 1
	for iter := 0; iter < 200; iter++ {
		mid := (lo + hi) / 2
		var mass float64
		for _, v := range coef {
			mass += math.Max(math.Abs(v)-mid, 0)
		}
		if mass-(norm+mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	t := (lo + hi) / 2
	out[0] = norm + t
	copy(out[1:], projection.SoftThreshold(coef, t))

	return out
}

// requireL1Certificate asserts the full optimality certificate for projection
// onto the ℓ1 epigraph cone: the result is feasible, the residual lies in the
// polar cone (a negated ℓ∞ epigraph point), and the two are orthogonal.
func requireL1Certificate(t *testing.T, center, out []float64) {
	t.Helper()

	coefMass := 0.0
	for _, v := range out[1:] {
		coefMass += math.Abs(v)
	}
	require.LessOrEqual(t, coefMass, out[0]+tolEpi, "result must satisfy ‖v‖₁ ≤ u")

	resid := make([]float64, len(center))
	for i := range center {
		resid[i] = center[i] - out[i]
	}
	require.LessOrEqual(t, lInfNorm(resid[1:]), -resid[0]+tolEpi, "residual must lie in the polar cone")
	require.InDelta(t, 0, dot(resid, out), tolEpi, "residual must be orthogonal to the projection")
}

// requireLInfCertificate is the ℓ∞ counterpart: feasible result, residual in
// the negated ℓ1 epigraph, orthogonality.
func requireLInfCertificate(t *testing.T, center, out []float64) {
	t.Helper()

	require.LessOrEqual(t, lInfNorm(out[1:]), out[0]+tolEpi, "result must satisfy ‖v‖∞ ≤ u")

	resid := make([]float64, len(center))
	coefMass := 0.0
	for i := range center {
		resid[i] = center[i] - out[i]
		if i > 0 {
			coefMass += math.Abs(resid[i])
		}
	}
	require.LessOrEqual(t, coefMass, -resid[0]+tolEpi, "residual must lie in the polar cone")
	require.InDelta(t, 0, dot(resid, out), tolEpi, "residual must be orthogonal to the projection")
}

// TestProjectL1Epigraph_DimGuard rejects epigraph points without at least a
// norm slot and two coefficients.
func TestProjectL1Epigraph_DimGuard(t *testing.T) {
	for _, center := range [][]float64{nil, {1}, {1, 2}} {
		_, err := projection.ProjectL1Epigraph(center)
		assert.ErrorIs(t, err, projection.ErrEpigraphDim, "len=%d", len(center))

		_, err = projection.ProjectLInfEpigraph(center)
		assert.ErrorIs(t, err, projection.ErrEpigraphDim, "len=%d", len(center))
	}
}

// TestProjectL1Epigraph_Feasible verifies the early return: a point already
// inside the epigraph comes back unchanged in a fresh buffer.
func TestProjectL1Epigraph_Feasible(t *testing.T) {
	center := []float64{10, 1, 2, 3}
	out, err := projection.ProjectL1Epigraph(center)
	require.NoError(t, err)
	assert.Equal(t, center, out)

	out[0] = -1
	assert.Equal(t, 10.0, center[0], "result must not alias the input")
}

// TestProjectL1Epigraph_KnownScenario pins center = [1, 3, 4]: the threshold
// solves to 2 below the smallest breakpoint and the result lands on the
// boundary u = ‖v‖₁.
func TestProjectL1Epigraph_KnownScenario(t *testing.T) {
	out, err := projection.ProjectL1Epigraph([]float64{1, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, out)
	requireL1Certificate(t, []float64{1, 3, 4}, out)
}

// TestProjectL1Epigraph_InterpolatedBreakpoint forces the sign change between
// two interior samples: center = [1, 1, 2, 3, 9] crosses between magnitudes 9
// and 3, interpolating to a threshold of exactly 4.
func TestProjectL1Epigraph_InterpolatedBreakpoint(t *testing.T) {
	out, err := projection.ProjectL1Epigraph([]float64{1, 1, 2, 3, 9})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0, 0, 0, 5}, out)
}

// TestProjectL1Epigraph_NontrivialBranch covers the scenario with
// ‖coef‖₁ = 6 just above norm = 5: all coefficients stay active and shrink
// by the uniform closed form.
func TestProjectL1Epigraph_NontrivialBranch(t *testing.T) {
	out, err := projection.ProjectL1Epigraph([]float64{5, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{5.25, 0.75, 1.75, 2.75}, out)
	requireL1Certificate(t, []float64{5, 1, 2, 3}, out)
}

// TestProjectL1Epigraph_PolarConeInterior covers the closed form above the
// top breakpoint: with norm = -5 dominating every magnitude, the center sits
// in the polar cone and projects to the apex.
func TestProjectL1Epigraph_PolarConeInterior(t *testing.T) {
	out, err := projection.ProjectL1Epigraph([]float64{-5, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, out)
}

// TestProjectL1Epigraph_TiesAtBottom covers equal magnitudes: every sample
// gap ties negative, so the below-bottom closed form fires.
func TestProjectL1Epigraph_TiesAtBottom(t *testing.T) {
	out, err := projection.ProjectL1Epigraph([]float64{1, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, 1}, out)
}

// TestProjectL1Epigraph_OracleAgreement compares the breakpoint scan against
// an independent bisection oracle on random centers, hitting all three
// threshold branches over the trials.
func TestProjectL1Epigraph_OracleAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(555))
	for trial := 0; trial < 60; trial++ {
		n := 2 + rng.Intn(14)
		center := make([]float64, n+1)
		center[0] = rng.NormFloat64() * 4 // norm slot, any sign
		for i := 1; i <= n; i++ {
			center[i] = rng.NormFloat64() * 4
			if rng.Intn(3) == 0 {
				center[i] = math.Round(center[i]) // magnitude ties
			}
		}

		want := epigraphOracle(center)
		got, err := projection.ProjectL1Epigraph(center)
		require.NoError(t, err)
		assert.InDeltaSlice(t, want, got, tolEpi, "trial %d center %v", trial, center)
	}
}

// TestProjectL1Epigraph_MoreauCertificate checks the full cone-projection
// optimality certificate on random centers, plus idempotence.
func TestProjectL1Epigraph_MoreauCertificate(t *testing.T) {
	rng := rand.New(rand.NewSource(77))
	for trial := 0; trial < 40; trial++ {
		n := 2 + rng.Intn(10)
		center := make([]float64, n+1)
		for i := range center {
			center[i] = rng.NormFloat64() * 5
		}

		out, err := projection.ProjectL1Epigraph(center)
		require.NoError(t, err)
		requireL1Certificate(t, center, out)

		again, err := projection.ProjectL1Epigraph(out)
		require.NoError(t, err)
		assert.InDeltaSlice(t, out, again, tolEpi, "projection must be a fixed point")
	}
}

// TestProjectLInfEpigraph_Feasible verifies that points already satisfying
// ‖coef‖∞ ≤ norm come back unchanged; this route runs the full negated scan
// and must still restore the input exactly.
func TestProjectLInfEpigraph_Feasible(t *testing.T) {
	for _, center := range [][]float64{{5, 1, 2, 3}, {10, 1, 2, 3}, {2, -2, 1}} {
		out, err := projection.ProjectLInfEpigraph(center)
		require.NoError(t, err)
		assert.InDeltaSlice(t, center, out, tolEpi, "center %v", center)
	}
}

// TestProjectLInfEpigraph_KnownScenario pins center = [1, 3, 4]: the
// projection averages the violating block onto u = 8/3.
func TestProjectLInfEpigraph_KnownScenario(t *testing.T) {
	out, err := projection.ProjectLInfEpigraph([]float64{1, 3, 4})
	require.NoError(t, err)
	third := 8.0 / 3.0
	assert.InDeltaSlice(t, []float64{third, third, third}, out, tolEpi)
	requireLInfCertificate(t, []float64{1, 3, 4}, out)
}

// TestProjectLInfEpigraph_DeepPolar covers a center inside the polar cone of
// the ℓ∞ epigraph: the projection collapses to the apex.
func TestProjectLInfEpigraph_DeepPolar(t *testing.T) {
	out, err := projection.ProjectLInfEpigraph([]float64{-10, 1, 2})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 0}, out, tolEpi)
}

// TestProjectLInfEpigraph_MoreauCertificate checks feasibility, polar
// residual, and orthogonality on random centers, plus idempotence.
func TestProjectLInfEpigraph_MoreauCertificate(t *testing.T) {
	rng := rand.New(rand.NewSource(978))
	for trial := 0; trial < 40; trial++ {
		n := 2 + rng.Intn(10)
		center := make([]float64, n+1)
		for i := range center {
			center[i] = rng.NormFloat64() * 5
		}

		out, err := projection.ProjectLInfEpigraph(center)
		require.NoError(t, err)
		requireLInfCertificate(t, center, out)

		again, err := projection.ProjectLInfEpigraph(out)
		require.NoError(t, err)
		assert.InDeltaSlice(t, out, again, tolEpi, "projection must be a fixed point")
	}
}
