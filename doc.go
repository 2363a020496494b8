// Package lowrank is your in-memory toolkit for completing sparse rating
// matrices with latent-factor models — from dense matrix primitives to a
// regularized stochastic-gradient factorizer.
//
// 🚀 What is lowrank?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Dense primitives: row-major float64 matrices with strict shape checks
//		• Factorization: regularized SGD over the observed entries only
//		• Reconstruction: U·Mᵗ predictions for every (user, item) cell
//		• Reproducibility: explicit seedable RNG, no hidden global state
//
// ✨ Why choose lowrank?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – same seed, same factors, on every platform
//   - Pure Go – no cgo, no hidden deps
//   - Honest numerics – divergence is observable, never silently clamped
//
// Everything is organized under two subpackages:
//
//	matrix/    — Dense matrix type, validators & the ops the factorizer needs
//	factorize/ — the SGD latent-factor engine (options, RNG, loss, init)
//
// Quick ASCII example:
//
//	    R (ratings, 0 = unknown)        U·Mᵗ (completed)
//	    ┌ 5  3  0  1 ┐                 ┌ 4.98  2.97  4.37  1.00 ┐
//	    │ 4  0  0  1 │   factorize →   │ 3.98  2.20  3.51  1.00 │
//	    └ 1  1  0  5 ┘                 └ 1.01  0.99  5.21  4.97 ┘
//
//	zeros in R mean "unobserved"; the factorizer trains only on the
//	nonzero cells and predicts the rest.
//
// Dive into factorize/example_test.go and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/lowrank
package lowrank
