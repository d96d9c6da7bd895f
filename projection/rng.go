// SPDX-License-Identifier: MIT

// Package projection - RNG plumbing for the randomized ball projector.
//
// This file centralizes deterministic random generation for pivot draws.
//
// Goals:
//   - Determinism: same seed ⇒ identical pivot sequence across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go when needed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; pass per-worker instances via WithRand, or distinct seeds.
package projection

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// resolveRand picks the pivot RNG dictated by the options: an explicit Rand
// wins, otherwise a fresh stream is built from Seed under the seed==0 policy.
//
// Complexity: O(1).
func resolveRand(o Options) *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}
