package fista

import "math"

// Minimize runs the accelerated proximal gradient method on the composite
// problem p starting from x0.
//
// Description:
//
//	Each step takes a gradient move on the smooth part followed by the
//	prox of the nonsmooth part:
//	  x_{k+1} = prox(y_k − ∇f(y_k)/L, L)
//	With momentum on, the probe point y carries Nesterov's extrapolation
//	  t_{k+1} = (1 + √(1+4·t_k²)) / 2
//	  y_{k+1} = x_{k+1} + ((t_k−1)/t_{k+1})·(x_{k+1} − x_k)
//	which upgrades the objective decay from O(1/k) to O(1/k²).
//
// Convergence is declared when the composite objective moves by less than
// Tol·max(1, |previous|) between consecutive iterates.
//
// Errors: ErrNilGradient, ErrNilObjective, ErrNilProx, ErrBadLipschitz,
// ErrEmptyStart, ErrBadOption, plus anything the prox callback returns.
//
// Complexity: O(MaxIter·(Grad + Prox)) time, O(p) extra memory.
func Minimize(p Problem, x0 []float64, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(p, x0, o); err != nil {
		return Result{}, err
	}

	x := make([]float64, len(x0))
	copy(x, x0)
	y := make([]float64, len(x0))
	copy(y, x0)
	step := make([]float64, len(x0))

	objective := func(v []float64) float64 {
		total := p.Objective(v)
		if p.Nonsmooth != nil {
			total += p.Nonsmooth(v)
		}
		return total
	}

	var res Result
	prev := objective(x)
	tk := 1.0

	for k := 0; k < o.MaxIter; k++ {
		grad := p.Grad(y)
		for i := range step {
			step[i] = y[i] - grad[i]/p.Lipschitz
		}
		next, err := p.Prox(step, p.Lipschitz)
		if err != nil {
			return Result{}, err
		}

		// the extrapolation reads the pre-update iterate, so y moves first
		if o.Momentum {
			tNext := (1 + math.Sqrt(1+4*tk*tk)) / 2
			scale := (tk - 1) / tNext
			for i := range y {
				y[i] = next[i] + scale*(next[i]-x[i])
			}
			tk = tNext
		} else {
			copy(y, next)
		}
		copy(x, next)
		res.Iterations = k + 1

		cur := objective(x)
		if math.Abs(cur-prev) <= o.Tol*math.Max(1, math.Abs(prev)) {
			res.Converged = true
			prev = cur

			break
		}
		prev = cur
	}

	res.X = x
	res.Objective = prev

	return res, nil
}

// validate rejects malformed problems and options before the loop starts.
func validate(p Problem, x0 []float64, o Options) error {
	if p.Grad == nil {
		return ErrNilGradient
	}
	if p.Objective == nil {
		return ErrNilObjective
	}
	if p.Prox == nil {
		return ErrNilProx
	}
	if p.Lipschitz <= 0 || math.IsNaN(p.Lipschitz) {
		return ErrBadLipschitz
	}
	if len(x0) == 0 {
		return ErrEmptyStart
	}
	if o.MaxIter < 1 {
		return ErrBadOption
	}
	if o.Tol < 0 || math.IsNaN(o.Tol) {
		return ErrBadOption
	}

	return nil
}
