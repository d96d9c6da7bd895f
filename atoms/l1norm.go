package atoms

import (
	"gonum.org/v1/gonum/floats"

	"github.com/dlsun/regreg/projection"
)

// L1Norm is the ℓ1-norm atom g(x) = Σ|x_i|: the sparsity-inducing lasso
// penalty in Lagrange form, the ℓ1-ball constraint in bound form.
type L1Norm struct {
	spec
}

// NewL1Norm builds an ℓ1-norm atom of the given dimension. In Lagrange form
// param is the penalty weight λ; in bound form it is the ball radius.
func NewL1Norm(dim int, form Form, param float64) (*L1Norm, error) {
	s, err := newSpec(dim, form, param)
	if err != nil {
		return nil, err
	}
	return &L1Norm{spec: s}, nil
}

// Seminorm returns Σ|x_i|.
func (a *L1Norm) Seminorm(x []float64) (float64, error) {
	if err := a.checkDim(x); err != nil {
		return 0, err
	}
	return floats.Norm(x, 1), nil
}

// Evaluate returns λ·Σ|x_i| in Lagrange form, the ℓ1-ball indicator in
// bound form.
func (a *L1Norm) Evaluate(x []float64) (float64, error) {
	return evaluate(a, x)
}

// Prox soft-thresholds every coordinate at λ/lipschitz in Lagrange form and
// projects onto the ℓ1 ball of radius param in bound form.
//
// Complexity: O(p) (Lagrange) or O(p log p) (bound).
func (a *L1Norm) Prox(x []float64, lipschitz float64) ([]float64, error) {
	if err := a.checkProx(x, lipschitz); err != nil {
		return nil, err
	}
	if a.form == Lagrange {
		return projection.SoftThreshold(x, a.param/lipschitz), nil
	}
	return projection.ProjectL1BallSorted(x, a.param)
}

// Conjugate returns the ℓ∞-norm atom with the form swapped: the dual of the
// penalty λ‖·‖₁ is the constraint ‖·‖∞ ≤ λ, and vice versa.
func (a *L1Norm) Conjugate() Atom {
	return &SupNorm{spec: spec{dim: a.dim, form: a.form.dual(), param: a.param}}
}
