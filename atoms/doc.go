// Package atoms provides the convex building blocks of regularized
// regression: seminorm atoms with closed-form proximal maps.
//
// 🚀 What is an atom?
//
//	An atom is a convex seminorm g carried in one of two dual forms:
//	  • Lagrange form — the weighted penalty term λ·g(x) added to a smooth
//	    loss, as in the lasso objective ½‖y−Xβ‖² + λ‖β‖₁
//	  • Bound form    — the hard constraint g(x) ≤ δ, encoded as an
//	    indicator that is 0 inside the set and +Inf outside
//	Every atom answers the same three questions: the raw value g(x), the
//	objective term it contributes, and the proximal map
//	  prox(x) = argmin_z  L/2·‖z−x‖² + atom(z)
//	which is the single operation a proximal gradient solver needs.
//
// ✨ Key features:
//   - five atoms: L1Norm, SupNorm, L2Norm, PositivePart, ConstrainedMax
//   - both forms on every atom, fixed at construction
//   - Conjugate() returns the Fenchel-dual partner with the forms swapped
//     (ℓ1 ↔ ℓ∞, ℓ2 ↔ ℓ2, positive-part ↔ constrained-max), so the Moreau
//     identity x = prox_g(x) + prox_g*(x) holds exactly at lipschitz 1
//   - proximal maps delegate to the projection package: soft-thresholding
//     and ℓ1-ball projections do the heavy lifting
//
// ⚙️ Usage:
//
//	import "github.com/dlsun/regreg/atoms"
//
//	pen, err := atoms.NewL1Norm(4, atoms.Lagrange, 0.5)
//	if err != nil { ... }
//	z, err := pen.Prox([]float64{3, -4, 0, 1}, 1) // soft-threshold at 0.5
//
// Performance:
//
//   - L1Norm / SupNorm / PositivePart / ConstrainedMax proxes: O(p log p)
//     where an ℓ1-ball projection is involved, O(p) otherwise
//   - L2Norm and clipping proxes: O(p)
//
// See examples in example_test.go.
package atoms
