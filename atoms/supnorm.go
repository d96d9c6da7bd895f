package atoms

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/dlsun/regreg/projection"
)

// SupNorm is the ℓ∞-norm atom g(x) = max|x_i|: the Fenchel-dual partner of
// L1Norm.
type SupNorm struct {
	spec
}

// NewSupNorm builds an ℓ∞-norm atom of the given dimension.
func NewSupNorm(dim int, form Form, param float64) (*SupNorm, error) {
	s, err := newSpec(dim, form, param)
	if err != nil {
		return nil, err
	}
	return &SupNorm{spec: s}, nil
}

// Seminorm returns max|x_i|.
func (a *SupNorm) Seminorm(x []float64) (float64, error) {
	if err := a.checkDim(x); err != nil {
		return 0, err
	}
	return floats.Norm(x, math.Inf(1)), nil
}

// Evaluate returns λ·max|x_i| in Lagrange form, the ℓ∞-box indicator in
// bound form.
func (a *SupNorm) Evaluate(x []float64) (float64, error) {
	return evaluate(a, x)
}

// Prox uses the Moreau decomposition in Lagrange form: the prox of λ‖·‖∞ is
// the residual x minus its ℓ1-ball projection at radius λ/lipschitz. Bound
// form clips every coordinate into [−param, param].
//
// Complexity: O(p log p) (Lagrange) or O(p) (bound).
func (a *SupNorm) Prox(x []float64, lipschitz float64) ([]float64, error) {
	if err := a.checkProx(x, lipschitz); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	if a.form == Lagrange {
		proj, err := projection.ProjectL1BallSorted(x, a.param/lipschitz)
		if err != nil {
			return nil, err
		}
		for i, v := range x {
			out[i] = v - proj[i]
		}
		return out, nil
	}
	for i, v := range x {
		out[i] = math.Min(math.Max(v, -a.param), a.param)
	}
	return out, nil
}

// Conjugate returns the ℓ1-norm atom with the form swapped.
func (a *SupNorm) Conjugate() Atom {
	return &L1Norm{spec: spec{dim: a.dim, form: a.form.dual(), param: a.param}}
}
