package lasso

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/dlsun/regreg/fista"
	"github.com/dlsun/regreg/projection"
)

// Solve fits the penalized lasso
//
//	minimize_β  ½‖y − Xβ‖² + λ‖β‖₁
//
// with FISTA, using soft-thresholding as the proximal map. The step size
// derives from the largest singular value of X. Extra options forward to
// the solver untouched.
//
// Errors: ErrNilDesign, ErrDimensionMismatch, ErrBadPenalty, plus anything
// fista.Minimize reports.
//
// Complexity: one SVD of X up front, then O(n·p) per iteration.
func Solve(design *mat.Dense, y []float64, lambda float64, opts ...fista.Option) (Result, error) {
	if err := validate(design, y); err != nil {
		return Result{}, err
	}
	if lambda < 0 {
		return Result{}, ErrBadPenalty
	}

	prox := func(x []float64, lipschitz float64) ([]float64, error) {
		return projection.SoftThreshold(x, lambda/lipschitz), nil
	}
	nonsmooth := func(beta []float64) float64 {
		return lambda * floats.Norm(beta, 1)
	}

	return run(design, y, prox, nonsmooth, opts)
}

// SolveBound fits the constrained lasso
//
//	minimize_β  ½‖y − Xβ‖²  subject to  ‖β‖₁ ≤ bound
//
// with projected FISTA: the proximal map is the Euclidean projection onto
// the ℓ1 ball of the given radius.
//
// Errors: ErrNilDesign, ErrDimensionMismatch, ErrBadPenalty, plus anything
// fista.Minimize reports.
//
// Complexity: one SVD of X up front, then O(n·p + p log p) per iteration.
func SolveBound(design *mat.Dense, y []float64, bound float64, opts ...fista.Option) (Result, error) {
	if err := validate(design, y); err != nil {
		return Result{}, err
	}
	if bound < 0 {
		return Result{}, ErrBadPenalty
	}

	prox := func(x []float64, _ float64) ([]float64, error) {
		return projection.ProjectL1Ball(x, projection.WithBound(bound))
	}

	// every iterate is feasible, so the indicator contributes nothing
	return run(design, y, prox, nil, opts)
}

// validate rejects malformed (design, response) pairs.
func validate(design *mat.Dense, y []float64) error {
	if design == nil || design.IsEmpty() {
		return ErrNilDesign
	}
	rows, _ := design.Dims()
	if len(y) != rows {
		return ErrDimensionMismatch
	}

	return nil
}

// run assembles the fista.Problem shared by both solvers and executes it
// from the zero vector.
func run(design *mat.Dense, y []float64,
	prox func([]float64, float64) ([]float64, error),
	nonsmooth func([]float64) float64,
	opts []fista.Option,
) (Result, error) {
	rows, cols := design.Dims()
	response := mat.NewVecDense(rows, y)

	// scratch vectors shared by the sequential callbacks
	residual := mat.NewVecDense(rows, nil)
	gradient := mat.NewVecDense(cols, nil)

	grad := func(beta []float64) []float64 {
		residual.MulVec(design, mat.NewVecDense(cols, beta))
		residual.SubVec(residual, response)
		gradient.MulVec(design.T(), residual)

		out := make([]float64, cols)
		copy(out, gradient.RawVector().Data)

		return out
	}
	objective := func(beta []float64) float64 {
		residual.MulVec(design, mat.NewVecDense(cols, beta))
		residual.SubVec(residual, response)

		return 0.5 * mat.Dot(residual, residual)
	}

	problem := fista.Problem{
		Grad:      grad,
		Objective: objective,
		Nonsmooth: nonsmooth,
		Prox:      prox,
		Lipschitz: lipschitz(design),
	}

	res, err := fista.Minimize(problem, make([]float64, cols), opts...)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Coef:       res.X,
		Objective:  res.Objective,
		Iterations: res.Iterations,
		Converged:  res.Converged,
	}, nil
}

// lipschitz bounds the gradient's Lipschitz constant by the squared largest
// singular value of the design. A rank-zero design maps to 1 so that the
// prox scaling stays defined; its gradient vanishes everywhere anyway.
func lipschitz(design *mat.Dense) float64 {
	var svd mat.SVD
	if !svd.Factorize(design, mat.SVDNone) {
		return 1
	}
	values := svd.Values(nil)
	if len(values) == 0 || values[0] == 0 {
		return 1
	}

	return values[0] * values[0]
}
