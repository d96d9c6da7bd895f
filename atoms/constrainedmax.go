package atoms

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/dlsun/regreg/projection"
)

// ConstrainedMax is the nonnegatively-constrained max atom: g(x) = max(x_i)
// over the orthant x ≥ 0. Its bound form is the box constraint
// 0 ≤ x_i ≤ param; its Lagrange form charges the largest coordinate.
type ConstrainedMax struct {
	spec
}

// NewConstrainedMax builds a constrained-max atom of the given dimension.
func NewConstrainedMax(dim int, form Form, param float64) (*ConstrainedMax, error) {
	s, err := newSpec(dim, form, param)
	if err != nil {
		return nil, err
	}
	return &ConstrainedMax{spec: s}, nil
}

// Seminorm returns max(x_i). The orthant restriction enters through
// Evaluate and Prox, not through the raw value.
func (a *ConstrainedMax) Seminorm(x []float64) (float64, error) {
	if err := a.checkDim(x); err != nil {
		return 0, err
	}
	return floats.Max(x), nil
}

// Evaluate returns λ·max(x_i) in Lagrange form. In bound form the indicator
// also enforces the orthant: +Inf when any coordinate drops below
// −DefaultTol or the maximum exceeds param·(1+DefaultTol).
func (a *ConstrainedMax) Evaluate(x []float64) (float64, error) {
	v, err := a.Seminorm(x)
	if err != nil {
		return 0, err
	}
	if a.form == Lagrange {
		return a.param * v, nil
	}
	if floats.Min(x) < -DefaultTol || v > a.param*(1+DefaultTol) {
		return math.Inf(1), nil
	}
	return 0, nil
}

// Prox in bound form clips every coordinate into the box [0, param]. In
// Lagrange form it is the Moreau complement of the PositivePart bound prox:
// nonpositive coordinates collapse to zero and positive ones keep the
// residual of their joint ℓ1-ball projection at radius λ/lipschitz.
//
// Complexity: O(p log p) (Lagrange) or O(p) (bound).
func (a *ConstrainedMax) Prox(x []float64, lipschitz float64) ([]float64, error) {
	if err := a.checkProx(x, lipschitz); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	if a.form == Lagrange {
		idx, pos := gatherPositive(x)
		if len(pos) == 0 {
			return out, nil
		}
		proj, err := projection.ProjectL1BallSorted(pos, a.param/lipschitz)
		if err != nil {
			return nil, err
		}
		for j, i := range idx {
			out[i] = x[i] - proj[j]
		}
		return out, nil
	}
	for i, v := range x {
		out[i] = math.Min(math.Max(v, 0), a.param)
	}
	return out, nil
}

// Conjugate returns the PositivePart atom with the form swapped.
func (a *ConstrainedMax) Conjugate() Atom {
	return &PositivePart{spec: spec{dim: a.dim, form: a.form.dual(), param: a.param}}
}
