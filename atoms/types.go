// Package atoms: the Atom interface, form enum, defaults, and sentinel errors.
package atoms

import (
	"errors"
	"math"
)

// Sentinel errors returned by atom constructors and methods.
var (
	// ErrBadDim indicates a non-positive ambient dimension at construction.
	ErrBadDim = errors.New("atoms: dimension must be positive")

	// ErrBadForm indicates a Form value outside the declared enum.
	ErrBadForm = errors.New("atoms: unknown atom form")

	// ErrNegativeParam indicates a negative Lagrange weight or bound radius.
	ErrNegativeParam = errors.New("atoms: lagrange weight and bound radius must be non-negative")

	// ErrDimMismatch indicates an input vector whose length differs from the
	// dimension fixed at construction.
	ErrDimMismatch = errors.New("atoms: input length does not match atom dimension")

	// ErrBadLipschitz indicates a non-positive or NaN smoothness constant
	// passed to Prox.
	ErrBadLipschitz = errors.New("atoms: lipschitz constant must be positive")
)

// DefaultTol is the relative slack used by bound-form feasibility checks:
// a point x is accepted when Seminorm(x) ≤ param·(1+DefaultTol). The slack
// absorbs the floating-point error of the projections that produce such
// points in the first place.
const DefaultTol = 1e-5

// Form selects which of the two dual parameterizations an atom carries.
type Form int

const (
	// Lagrange treats the atom as the weighted penalty term param·g(x).
	Lagrange Form = iota

	// Bound treats the atom as the hard constraint g(x) ≤ param.
	Bound
)

// String implements fmt.Stringer for diagnostics.
func (f Form) String() string {
	switch f {
	case Lagrange:
		return "Lagrange"
	case Bound:
		return "Bound"
	default:
		return "Unknown"
	}
}

// dual swaps the parameterization: the Lagrange weight of an atom becomes
// the bound radius of its conjugate, and vice versa.
func (f Form) dual() Form {
	if f == Lagrange {
		return Bound
	}
	return Lagrange
}

// Atom is a convex seminorm equipped with proximal machinery in both the
// Lagrange (penalty) and bound (constraint) forms.
type Atom interface {
	// Dim reports the ambient dimension fixed at construction.
	Dim() int

	// Form reports whether the atom acts as a penalty or a constraint.
	Form() Form

	// Param returns the Lagrange weight or the bound radius, per Form.
	Param() float64

	// Seminorm evaluates the raw, unweighted seminorm at x.
	Seminorm(x []float64) (float64, error)

	// Evaluate returns the nonsmooth objective term at x: Param()·Seminorm(x)
	// in Lagrange form; in bound form the constraint indicator, 0 when
	// Seminorm(x) ≤ Param()·(1+DefaultTol) and +Inf otherwise.
	Evaluate(x []float64) (float64, error)

	// Prox solves argmin_z lipschitz/2·‖z−x‖² + atom(z): a shrinkage map in
	// Lagrange form, a Euclidean projection in bound form.
	Prox(x []float64, lipschitz float64) ([]float64, error)

	// Conjugate returns the Fenchel-dual partner with the forms swapped.
	Conjugate() Atom
}

// Compile-time conformance checks.
var (
	_ Atom = (*L1Norm)(nil)
	_ Atom = (*SupNorm)(nil)
	_ Atom = (*L2Norm)(nil)
	_ Atom = (*PositivePart)(nil)
	_ Atom = (*ConstrainedMax)(nil)
)

// spec carries the fields every atom shares. Concrete atoms embed it and fix
// the triple at construction through newSpec.
type spec struct {
	dim   int
	form  Form
	param float64
}

// newSpec validates the construction triple shared by all atoms.
func newSpec(dim int, form Form, param float64) (spec, error) {
	if dim < 1 {
		return spec{}, ErrBadDim
	}
	if form != Lagrange && form != Bound {
		return spec{}, ErrBadForm
	}
	if param < 0 || math.IsNaN(param) {
		return spec{}, ErrNegativeParam
	}
	return spec{dim: dim, form: form, param: param}, nil
}

// Dim reports the ambient dimension fixed at construction.
func (s spec) Dim() int { return s.dim }

// Form reports whether the atom acts as a penalty or a constraint.
func (s spec) Form() Form { return s.form }

// Param returns the Lagrange weight or the bound radius, per Form.
func (s spec) Param() float64 { return s.param }

// checkDim rejects inputs whose length differs from the atom dimension.
func (s spec) checkDim(x []float64) error {
	if len(x) != s.dim {
		return ErrDimMismatch
	}
	return nil
}

// checkProx validates the (x, lipschitz) pair passed to Prox.
func (s spec) checkProx(x []float64, lipschitz float64) error {
	if err := s.checkDim(x); err != nil {
		return err
	}
	if lipschitz <= 0 || math.IsNaN(lipschitz) {
		return ErrBadLipschitz
	}
	return nil
}

// evaluate dispatches the nonsmooth objective on the atom's form using its
// Seminorm. Atoms with an extra domain restriction override Evaluate.
func evaluate(a Atom, x []float64) (float64, error) {
	v, err := a.Seminorm(x)
	if err != nil {
		return 0, err
	}
	if a.Form() == Lagrange {
		return a.Param() * v, nil
	}
	if v <= a.Param()*(1+DefaultTol) {
		return 0, nil
	}
	return math.Inf(1), nil
}
