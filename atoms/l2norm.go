package atoms

import (
	"gonum.org/v1/gonum/floats"
)

// L2Norm is the Euclidean-norm atom g(x) = ‖x‖₂: the group-lasso penalty in
// Lagrange form, the ℓ2-ball constraint in bound form. The ℓ2 norm is its
// own dual, so Conjugate stays within the type.
type L2Norm struct {
	spec
}

// NewL2Norm builds a Euclidean-norm atom of the given dimension.
func NewL2Norm(dim int, form Form, param float64) (*L2Norm, error) {
	s, err := newSpec(dim, form, param)
	if err != nil {
		return nil, err
	}
	return &L2Norm{spec: s}, nil
}

// Seminorm returns ‖x‖₂.
func (a *L2Norm) Seminorm(x []float64) (float64, error) {
	if err := a.checkDim(x); err != nil {
		return 0, err
	}
	return floats.Norm(x, 2), nil
}

// Evaluate returns λ·‖x‖₂ in Lagrange form, the ℓ2-ball indicator in bound
// form.
func (a *L2Norm) Evaluate(x []float64) (float64, error) {
	return evaluate(a, x)
}

// Prox shrinks x radially. Lagrange form is the block soft-threshold:
// ‖x‖₂ ≤ λ/lipschitz collapses to the origin, anything else is rescaled by
// 1 − (λ/lipschitz)/‖x‖₂. Bound form rescales points outside the ball onto
// the sphere of radius param and copies feasible points through.
//
// Complexity: O(p).
func (a *L2Norm) Prox(x []float64, lipschitz float64) ([]float64, error) {
	if err := a.checkProx(x, lipschitz); err != nil {
		return nil, err
	}
	norm := floats.Norm(x, 2)
	out := make([]float64, len(x))
	if a.form == Lagrange {
		shift := a.param / lipschitz
		if norm <= shift {
			return out, nil
		}
		scale := 1 - shift/norm
		for i, v := range x {
			out[i] = scale * v
		}
		return out, nil
	}
	if norm <= a.param {
		copy(out, x)
		return out, nil
	}
	scale := a.param / norm
	for i, v := range x {
		out[i] = scale * v
	}
	return out, nil
}

// Conjugate returns another L2Norm with the form swapped.
func (a *L2Norm) Conjugate() Atom {
	return &L2Norm{spec: spec{dim: a.dim, form: a.form.dual(), param: a.param}}
}
