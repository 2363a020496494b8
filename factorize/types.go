// Package factorize defines configuration options and sentinel errors for
// the regularized-SGD latent-factor engine.
package factorize

import (
	"errors"
	"math/rand"
)

// Sentinel errors returned by Factorize and its helpers.
var (
	// ErrNilInput indicates that a nil ratings or factor matrix was passed in.
	ErrNilInput = errors.New("factorize: nil input matrix")

	// ErrShapeMismatch indicates that the factor matrices are inconsistent
	// with the ratings matrix or the requested latent dimension:
	// U must be I×K, M must be J×K for an I×J ratings matrix R.
	ErrShapeMismatch = errors.New("factorize: factor shapes inconsistent with ratings and K")

	// ErrBadLatentDim indicates that the latent dimension K is < 1.
	ErrBadLatentDim = errors.New("factorize: latent dimension must be >= 1")

	// ErrBadMaxIter indicates that the epoch cap was set to a negative value.
	// Zero is legal: the call validates, clones and returns without training.
	ErrBadMaxIter = errors.New("factorize: MaxIter must be non-negative")

	// ErrBadLearningRate indicates a non-positive SGD step size.
	ErrBadLearningRate = errors.New("factorize: LearningRate must be positive")

	// ErrBadBeta indicates a negative L2 regularization strength.
	ErrBadBeta = errors.New("factorize: Beta must be non-negative")

	// ErrBadTol indicates a negative early-stop threshold.
	ErrBadTol = errors.New("factorize: Tol must be non-negative")
)

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in DefaultOptions.
const (
	// DefaultMaxIter caps the number of training epochs.
	DefaultMaxIter = 7000

	// DefaultLearningRate is the SGD step size γ.
	DefaultLearningRate = 1e-4

	// DefaultBeta is the L2 regularization strength β.
	DefaultBeta = 0.02

	// DefaultTol is the early-stop threshold on the regularized objective:
	// training stops as soon as the objective drops below it.
	DefaultTol = 1e-3
)

// Options configures the behavior of Factorize.
//
// MaxIter      – epoch cap (must be ≥ 0; reaching it is normal termination).
// LearningRate – SGD step size γ (must be > 0).
// Beta         – L2 regularization strength β (must be ≥ 0).
// Tol          – stop once the regularized objective over the observed set
//
//	drops below this value (must be ≥ 0).
//
// Rand         – explicit randomness source for the per-epoch permutation of
//
//	the observed set. When nil, a deterministic source is built
//	from Seed (seed 0 maps to a fixed default seed, so the zero
//	value of Options is still fully reproducible).
//
// Seed         – seed for the fallback source when Rand is nil.
type Options struct {
	MaxIter      int        // Maximum number of epochs
	LearningRate float64    // SGD step size γ
	Beta         float64    // L2 regularization strength β
	Tol          float64    // Early-stop threshold on the objective
	Rand         *rand.Rand // Injected randomness source (optional)
	Seed         int64      // Seed used when Rand is nil
}

// Option represents a functional option for configuring Factorize.
type Option func(*Options)

// WithMaxIter sets the epoch cap. Negative values cause ErrBadMaxIter at
// call entry; zero means "validate and clone only, no training".
func WithMaxIter(n int) Option {
	return func(o *Options) {
		o.MaxIter = n
	}
}

// WithLearningRate sets the SGD step size γ. Non-positive values cause
// ErrBadLearningRate at call entry. Too-large values may make the run
// diverge; that is a tuning concern, not an error.
func WithLearningRate(gamma float64) Option {
	return func(o *Options) {
		o.LearningRate = gamma
	}
}

// WithBeta sets the L2 regularization strength β. Negative values cause
// ErrBadBeta at call entry.
func WithBeta(beta float64) Option {
	return func(o *Options) {
		o.Beta = beta
	}
}

// WithTol sets the early-stop threshold. Negative values cause ErrBadTol
// at call entry. Tol=0 disables early stopping (the objective is a sum of
// squares and cannot go below zero), so exactly MaxIter epochs run.
func WithTol(tol float64) Option {
	return func(o *Options) {
		o.Tol = tol
	}
}

// WithSeed selects the deterministic fallback stream used when no source
// was injected via WithRand. Seed 0 maps to a fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects an explicit randomness source. The source is consumed
// during training (one shuffle per epoch); do not share it across
// concurrent runs — *rand.Rand is not goroutine-safe.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// DefaultOptions returns an Options struct initialized with the documented
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - MaxIter:      DefaultMaxIter (7000 epochs).
//   - LearningRate: DefaultLearningRate (1e-4).
//   - Beta:         DefaultBeta (0.02).
//   - Tol:          DefaultTol (1e-3).
//   - Rand:         nil (deterministic stream derived from Seed).
//   - Seed:         0 (mapped to the fixed default seed).
func DefaultOptions() Options {
	return Options{
		MaxIter:      DefaultMaxIter,
		LearningRate: DefaultLearningRate,
		Beta:         DefaultBeta,
		Tol:          DefaultTol,
		Rand:         nil,
		Seed:         0,
	}
}
