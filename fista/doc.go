// Package fista minimizes composite objectives f(x) + h(x) with the
// accelerated proximal gradient method (FISTA).
//
// 🚀 What is FISTA?
//
//	Many regression problems split into a smooth loss f with a known
//	gradient and a nonsmooth regularizer h whose proximal map is cheap:
//	  minimize  f(x) + h(x)
//	ISTA alternates a gradient step on f with the prox of h; FISTA adds
//	Nesterov momentum on top, improving the objective decay from O(1/k)
//	to O(1/k²) at the cost of one extra vector.
//
// ✨ Key features:
//   - callback-based Problem: any gradient, any prox — an atoms.Atom's
//     Prox method plugs in directly
//   - optional nonsmooth term folded into the convergence measure
//   - momentum toggle: WithMomentum(false) falls back to plain ISTA
//   - deterministic: no randomness, no goroutines
//
// ⚙️ Usage:
//
//	pen, _ := atoms.NewL1Norm(p, atoms.Lagrange, lambda)
//	problem := fista.Problem{
//	  Grad:      grad,     // ∇f
//	  Objective: loss,     // f
//	  Prox:      pen.Prox, // h enters through its proximal map
//	  Lipschitz: lip,
//	}
//	res, err := fista.Minimize(problem, make([]float64, p))
//
// Performance:
//
//   - Time:   O(MaxIter·(Grad + Prox))
//   - Memory: O(p) beyond the caller's data
//
// See examples in example_test.go.
package fista
