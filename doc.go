// Package regreg is a toolkit for regularized regression: Euclidean
// projections onto convex sets, proximal maps of common seminorms, and a
// FISTA solver gluing them to smooth losses.
//
// 🚀 What is regreg?
//
//	Sparse estimation keeps asking the same small questions:
//		• project a vector onto an ℓ1 ball (exactly, fast)
//		• project onto the epigraph cone of ‖·‖₁ or ‖·‖∞
//		• soft-threshold a gradient step
//		• run a proximal gradient loop around any of the above
//	regreg answers them with closed-form routines and a deterministic
//	solver, so an entire lasso fit is a few dozen O(p) passes.
//
// ✨ Why choose regreg?
//
//   - Exact projections – breakpoint scans, not iterative approximations
//   - Dual pairs built in – every atom knows its Fenchel conjugate, and
//     the Moreau identity is tested, not assumed
//   - Deterministic by default – the randomized projector takes a seed
//   - gonum-backed – dense designs, SVD step sizes, plotted lasso paths
//
// Everything is organized under four subpackages:
//
//	projection/ — ℓ1-ball projections (sorted & randomized), epigraph cones, soft-threshold
//	atoms/      — L1Norm, SupNorm, L2Norm, PositivePart, ConstrainedMax in both forms, with proxes
//	fista/      — accelerated proximal gradient on callback-defined composite problems
//	lasso/      — penalized & constrained least squares on gonum matrices
//
// See examples/ for runnable walkthroughs: signal denoising, epigraph cone
// certificates, and a plotted lasso path.
//
//	go get github.com/dlsun/regreg
package regreg
