package atoms

import (
	"math"

	"github.com/dlsun/regreg/projection"
)

// PositivePart is the one-sided atom g(x) = Σ max(x_i, 0): it charges only
// positive coordinates and ignores negative ones entirely.
type PositivePart struct {
	spec
}

// NewPositivePart builds a positive-part atom of the given dimension.
func NewPositivePart(dim int, form Form, param float64) (*PositivePart, error) {
	s, err := newSpec(dim, form, param)
	if err != nil {
		return nil, err
	}
	return &PositivePart{spec: s}, nil
}

// Seminorm returns Σ max(x_i, 0).
func (a *PositivePart) Seminorm(x []float64) (float64, error) {
	if err := a.checkDim(x); err != nil {
		return 0, err
	}
	var total float64
	for _, v := range x {
		if v > 0 {
			total += v
		}
	}
	return total, nil
}

// Evaluate returns λ·Σmax(x_i, 0) in Lagrange form, the one-sided ℓ1
// indicator in bound form.
func (a *PositivePart) Evaluate(x []float64) (float64, error) {
	return evaluate(a, x)
}

// Prox touches positive coordinates only. Lagrange form shifts them down by
// λ/lipschitz, clamping at zero; bound form projects them jointly onto the
// ℓ1 ball of radius param. Negative coordinates pass through unchanged in
// both forms.
//
// Complexity: O(p) (Lagrange) or O(p log p) (bound).
func (a *PositivePart) Prox(x []float64, lipschitz float64) ([]float64, error) {
	if err := a.checkProx(x, lipschitz); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	copy(out, x)
	if a.form == Lagrange {
		shift := a.param / lipschitz
		for i, v := range out {
			if v > 0 {
				out[i] = math.Max(v-shift, 0)
			}
		}
		return out, nil
	}
	idx, pos := gatherPositive(x)
	if len(pos) == 0 {
		return out, nil
	}
	proj, err := projection.ProjectL1BallSorted(pos, a.param)
	if err != nil {
		return nil, err
	}
	for j, i := range idx {
		out[i] = proj[j]
	}
	return out, nil
}

// Conjugate returns the ConstrainedMax atom with the form swapped: the dual
// of the penalty λ·Σmax(x,0) is the box constraint 0 ≤ z ≤ λ.
func (a *PositivePart) Conjugate() Atom {
	return &ConstrainedMax{spec: spec{dim: a.dim, form: a.form.dual(), param: a.param}}
}

// gatherPositive collects the strictly positive entries of x together with
// the indices they came from, preserving order.
func gatherPositive(x []float64) (idx []int, pos []float64) {
	for i, v := range x {
		if v > 0 {
			idx = append(idx, i)
			pos = append(pos, v)
		}
	}
	return idx, pos
}
