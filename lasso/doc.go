// Package lasso fits ℓ1-regularized least squares with proximal gradient
// descent.
//
// 🚀 Two equivalent dials:
//
//	The lasso comes in a penalized and a constrained flavor
//	  Solve:      minimize ½‖y−Xβ‖² + λ‖β‖₁
//	  SolveBound: minimize ½‖y−Xβ‖²  subject to  ‖β‖₁ ≤ δ
//	which trace the same regularization path under the λ ↔ δ bijection.
//	Both run FISTA with the matching proximal map: soft-thresholding for
//	the penalty, ℓ1-ball projection for the constraint.
//
// ✨ Key features:
//   - automatic step size from the largest singular value of X (one SVD)
//   - gonum-backed linear algebra, no hand-rolled matrix loops
//   - solver options forward to fista untouched (WithMaxIter, WithTol,
//     WithMomentum)
//
// ⚙️ Usage:
//
//	X := mat.NewDense(n, p, data)
//	res, err := lasso.Solve(X, y, 0.5)
//	if err != nil { ... }
//	fmt.Println(res.Coef, res.Converged)
//
// Performance:
//
//   - One SVD of X up front: O(min(n,p)·n·p)
//   - Then O(n·p) per iteration, plus O(p log p) for the projection form
//
// See examples in example_test.go.
package lasso
