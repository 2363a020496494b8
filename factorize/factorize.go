// Package factorize implements regularized stochastic-gradient latent-factor
// factorization of a partially observed ratings matrix.
//
// Factorize approximates an I×J ratings matrix R by the product U·Mᵗ of an
// I×K user-factor matrix U and a J×K item-factor matrix M, trained only on
// the observed entries of R (zero cells mean "unobserved", by contract).
//
// Algorithm Outline (one epoch):
//  1. Before the first epoch, collect the observed set Ω = {(i,j): R[i,j] ≠ 0}
//     together with the ratings, once, in row-major order.
//  2. Draw a fresh uniformly random permutation of Ω (Fisher–Yates with the
//     injected RNG) — the visitation order for this epoch only.
//  3. For each (i,j) in the permuted order:
//     e = R[i,j] − U[i,:]·M[j,:]
//     for t = 0..K-1 (sequentially):
//     U[i,t] += γ·(2·e·M[j,t] − β·U[i,t])
//     M[j,t] += γ·(2·e·U[i,t] − β·M[j,t])   // uses the just-updated U[i,t]
//  4. Recompute the regularized objective over Ω:
//     E = Σ_(i,j)∈Ω [ (R[i,j] − U[i,:]·M[j,:])² + (β/2)·Σ_t (U[i,t]² + M[j,t]²) ]
//  5. Stop when E < Tol; otherwise continue, up to MaxIter epochs.
//     Reaching MaxIter is normal termination, not a failure.
//
// Notes on implementation choices:
//
//   - The per-dimension update is deliberately sequential: M's step for
//     dimension t reads the U value already moved in the same step. This
//     coupling is the defined semantics of the engine, not an accident;
//     symmetrizing it would change the trained factors.
//   - The regularization term of the objective is summed once per observed
//     entry per dimension, matching the per-entry update granularity.
//   - The objective is evaluated over Ω only; the full dense product is
//     never materialized during training.
//   - No NaN/Inf guards run inside the loop: a too-large learning rate may
//     diverge, and that stays observable in the returned matrices.
//
// Complexity per epoch: O(|Ω|·K) updates + O(|Ω|·K) objective evaluation.
// Memory: O(I·K + J·K) for the working copies + O(|Ω|) for the observed set.
package factorize

import (
	"fmt"

	"github.com/katalvlaran/lowrank/matrix"
)

// observation is one observed cell of the ratings matrix: position and value.
// The rating is cached so the hot loop never re-reads R.
type observation struct {
	i, j   int     // row (user) and column (item) indices
	rating float64 // observed value, always nonzero
}

// Factorize trains latent factors for the ratings matrix r starting from the
// initial factors u0 (I×K) and m0 (J×K). The inputs are never mutated: both
// factor matrices are cloned on entry and the trained copies are returned.
//
// Zero entries of r are treated as unobserved — they never contribute to an
// update or to the stopping objective. This conflates genuine zero ratings
// with missing data and is part of the contract.
//
// Returns:
//
//   - u: I×K trained user factors (fresh matrix, caller-owned).
//   - m: J×K trained item factors (fresh matrix, caller-owned).
//   - err: a sentinel from types.go if validation fails; nil otherwise.
//
// Preconditions and validation (in order, nothing mutated on failure):
//  1. k ≥ 1 (ErrBadLatentDim).
//  2. MaxIter ≥ 0, LearningRate > 0, Beta ≥ 0, Tol ≥ 0
//     (ErrBadMaxIter, ErrBadLearningRate, ErrBadBeta, ErrBadTol).
//  3. r, u0, m0 non-nil (ErrNilInput).
//  4. u0 is r.Rows()×k and m0 is r.Cols()×k (ErrShapeMismatch).
//
// Determinism: two calls with identical inputs and the same seed (or
// equivalently-seeded injected sources) produce identical factors. The only
// randomness consumed is the per-epoch shuffle of the observed set.
func Factorize(r, u0, m0 *matrix.Dense, k int, opts ...Option) (u, m *matrix.Dense, err error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}

	// 2) Validate hyperparameters before touching any matrix.
	if k < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrBadLatentDim, k)
	}
	if cfg.MaxIter < 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrBadMaxIter, cfg.MaxIter)
	}
	if cfg.LearningRate <= 0 {
		return nil, nil, fmt.Errorf("%w: got %g", ErrBadLearningRate, cfg.LearningRate)
	}
	if cfg.Beta < 0 {
		return nil, nil, fmt.Errorf("%w: got %g", ErrBadBeta, cfg.Beta)
	}
	if cfg.Tol < 0 {
		return nil, nil, fmt.Errorf("%w: got %g", ErrBadTol, cfg.Tol)
	}

	// 3) Validate matrix presence.
	if matrix.ValidateNotNil(r) != nil || matrix.ValidateNotNil(u0) != nil || matrix.ValidateNotNil(m0) != nil {
		return nil, nil, ErrNilInput
	}

	// 4) Validate shape consistency: U is I×K, M is J×K.
	if err = validateShapes(r, u0, m0, k); err != nil {
		return nil, nil, err
	}

	// 5) Resolve the randomness source (injected, or deterministic from seed).
	rng := resolveRNG(cfg.Rand, cfg.Seed)

	// 6) Collect the observed set Ω once, in deterministic row-major order.
	//    It is fixed for the whole run; only its visitation order changes.
	omega := observedSet(r)

	// 7) Clone the factors: the caller's matrices are never mutated.
	u = u0.Clone()
	m = m0.Clone()

	// 8) Materialize row views once; all epoch work goes through these.
	uRows, mRows, err := factorRows(u, m)
	if err != nil {
		return nil, nil, err
	}

	// 9) Epoch loop.
	var (
		epoch int
		o     observation
		e     float64
		t     int
	)
	for epoch = 0; epoch < cfg.MaxIter; epoch++ {
		// Fresh uniform visitation order for this epoch.
		shuffleObservations(omega, rng)

		// Stochastic pass: one gradient step per observed entry.
		for _, o = range omega {
			uRow, mRow := uRows[o.i], mRows[o.j]
			e = o.rating - dot(uRow, mRow)
			for t = 0; t < k; t++ {
				uRow[t] += cfg.LearningRate * (2*e*mRow[t] - cfg.Beta*uRow[t])
				// Sequential coupling: mRow's step reads the uRow value
				// already moved above for the same dimension.
				mRow[t] += cfg.LearningRate * (2*e*uRow[t] - cfg.Beta*mRow[t])
			}
		}

		// Early stop on the regularized objective over Ω.
		if objective(omega, uRows, mRows, cfg.Beta) < cfg.Tol {
			break
		}
	}

	return u, m, nil
}

// Loss evaluates the exact stopping objective of Factorize for the given
// ratings and factors: the squared reconstruction error over the observed
// set plus the per-entry L2 penalty (β/2)·Σ_t (U[i,t]² + M[j,t]²).
//
// It is public so callers can inspect convergence of a finished run or of
// factors obtained elsewhere. Validation mirrors Factorize: ErrBadBeta for
// negative beta, ErrNilInput for nil matrices, ErrShapeMismatch for
// inconsistent shapes (K is taken from u's column count).
//
// Complexity: O(|Ω|·K).
func Loss(r, u, m *matrix.Dense, beta float64) (float64, error) {
	if beta < 0 {
		return 0, fmt.Errorf("%w: got %g", ErrBadBeta, beta)
	}
	if matrix.ValidateNotNil(r) != nil || matrix.ValidateNotNil(u) != nil || matrix.ValidateNotNil(m) != nil {
		return 0, ErrNilInput
	}
	if err := validateShapes(r, u, m, u.Cols()); err != nil {
		return 0, err
	}

	uRows, mRows, err := factorRows(u, m)
	if err != nil {
		return 0, err
	}

	return objective(observedSet(r), uRows, mRows, beta), nil
}

// validateShapes enforces the factor-shape invariant against r and k:
// u.Rows == r.Rows, m.Rows == r.Cols, u.Cols == m.Cols == k.
// Returns ErrShapeMismatch with full context on violation. Complexity: O(1).
func validateShapes(r, u, m *matrix.Dense, k int) error {
	if u.Rows() != r.Rows() || m.Rows() != r.Cols() || u.Cols() != k || m.Cols() != k {
		return fmt.Errorf("%w: R=%dx%d U=%dx%d M=%dx%d K=%d",
			ErrShapeMismatch, r.Rows(), r.Cols(), u.Rows(), u.Cols(), m.Rows(), m.Cols(), k)
	}

	return nil
}

// observedSet collects Ω = {(i,j): r[i,j] ≠ 0} with cached ratings, in
// row-major order. Complexity: O(I·J) time, O(|Ω|) memory.
func observedSet(r *matrix.Dense) []observation {
	obs := make([]observation, 0, r.Rows()*r.Cols())
	r.Do(func(i, j int, v float64) bool {
		if v != 0 {
			obs = append(obs, observation{i: i, j: j, rating: v})
		}

		return true
	})

	return obs
}

// factorRows materializes the row views of both factor matrices so the
// training loop touches backing storage directly. The error path is
// unreachable after shape validation but is propagated for uniformity.
// Complexity: O(I + J).
func factorRows(u, m *matrix.Dense) (uRows, mRows [][]float64, err error) {
	uRows = make([][]float64, u.Rows())
	var i int
	for i = 0; i < u.Rows(); i++ {
		if uRows[i], err = u.Row(i); err != nil {
			return nil, nil, err
		}
	}
	mRows = make([][]float64, m.Rows())
	for i = 0; i < m.Rows(); i++ {
		if mRows[i], err = m.Row(i); err != nil {
			return nil, nil, err
		}
	}

	return uRows, mRows, nil
}

// objective computes the regularized squared error over the observed set.
// The L2 term is summed once per observed entry per dimension, matching the
// per-entry granularity of the SGD updates. Complexity: O(|Ω|·K).
func objective(omega []observation, uRows, mRows [][]float64, beta float64) float64 {
	var (
		total float64
		o     observation
		e     float64
		t     int
	)
	for _, o = range omega {
		uRow, mRow := uRows[o.i], mRows[o.j]
		e = o.rating - dot(uRow, mRow)
		total += e * e
		for t = 0; t < len(uRow); t++ {
			total += (beta / 2) * (uRow[t]*uRow[t] + mRow[t]*mRow[t])
		}
	}

	return total
}

// dot returns the dot product of two equal-length vectors.
func dot(a, b []float64) float64 {
	var sum float64
	var t int
	for t = 0; t < len(a); t++ {
		sum += a[t] * b[t]
	}

	return sum
}
