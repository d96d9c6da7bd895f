// Package lasso: result type and sentinel errors.
package lasso

import "errors"

// Sentinel errors returned by the solvers.
var (
	// ErrNilDesign indicates a nil or empty design matrix.
	ErrNilDesign = errors.New("lasso: design matrix must not be nil or empty")

	// ErrDimensionMismatch indicates a response length that differs from the
	// design's row count.
	ErrDimensionMismatch = errors.New("lasso: response length must match design rows")

	// ErrBadPenalty indicates a negative penalty weight or ball radius.
	ErrBadPenalty = errors.New("lasso: penalty and radius must be non-negative")
)

// Result reports a fitted coefficient vector and solver diagnostics.
type Result struct {
	// Coef is the fitted coefficient vector β.
	Coef []float64

	// Objective is the composite objective at Coef.
	Objective float64

	// Iterations counts the proximal gradient steps taken.
	Iterations int

	// Converged mirrors the fista convergence flag.
	Converged bool
}
