// Package factorize - RNG utilities for the training loop.
//
// This file centralizes deterministic random generation for the engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical factor matrices across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go when needed.
//   - Performance: O(1) helpers, O(n) shuffles, no hidden allocations in hot paths.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines. Independent factorization runs must own independent sources.
package factorize

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

// resolveRNG picks the effective randomness source for a run: the injected
// source if present, otherwise a deterministic stream from seed.
//
// Complexity: O(1).
func resolveRNG(injected *rand.Rand, seed int64) *rand.Rand {
	if injected != nil {
		return injected
	}

	return rngFromSeed(seed)
}

// shuffleObservations performs an in-place Fisher–Yates shuffle of obs using
// rng. Re-shuffling an already-permuted slice still yields a uniformly random
// permutation, so the training loop calls this once per epoch to draw a fresh
// visitation order.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleObservations(obs []observation, rng *rand.Rand) {
	var n int
	n = len(obs)
	if n <= 1 {
		return
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		obs[i], obs[j] = obs[j], obs[i]
	}
}
