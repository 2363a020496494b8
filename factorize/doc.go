// Package factorize completes sparse rating matrices with regularized
// stochastic-gradient latent-factor factorization.
//
// 🚀 What is latent-factor factorization?
//
//	Given an I×J ratings matrix R where zero means "unobserved", the engine
//	learns an I×K user matrix U and a J×K item matrix M whose product U·Mᵗ
//	approximates R on the observed cells. The trained factors then predict
//	every unobserved cell. Widely used in:
//	  • Collaborative-filtering recommenders (users × movies, readers × books)
//	  • Sparse matrix completion & denoising
//	  • Compact embedding extraction for downstream models
//
// ✨ Key features:
//   - trains on observed (nonzero) entries only — zero means "missing"
//   - regularized SGD with a fresh random visitation order every epoch
//   - early stop on the regularized objective, hard cap via MaxIter
//   - explicit seedable RNG: same seed ⇒ bit-identical factors
//   - caller matrices never mutated; working copies are cloned on entry
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lowrank/factorize"
//
//	r, _ := matrix.NewDenseFromRows([][]float64{
//	  {5, 3, 0, 1},
//	  {4, 0, 0, 1},
//	  {1, 1, 0, 5},
//	})
//	rng := rand.New(rand.NewSource(42))
//	u0, _ := factorize.RandomFactors(r.Rows(), 2, rng)
//	m0, _ := factorize.RandomFactors(r.Cols(), 2, rng)
//
//	u, m, err := factorize.Factorize(r, u0, m0, 2,
//	  factorize.WithSeed(42),
//	  factorize.WithMaxIter(5000),
//	)
//	if err != nil {
//	  // handle ErrShapeMismatch, ErrBadLearningRate, ...
//	}
//	pred, _ := factorize.Reconstruct(u, m) // full U·Mᵗ prediction matrix
//
// Tuning notes:
//
//   - LearningRate too large ⇒ the run may diverge (values grow without
//     bound). The engine never clamps or errors on divergence; inspect
//     Loss(r, u, m, beta) to judge a finished run.
//   - Tol=0 disables early stopping and runs exactly MaxIter epochs.
//
// Performance:
//
//   - Time:   O(MaxIter · |Ω| · K), Ω = observed cells
//   - Memory: O(I·K + J·K + |Ω|)
//
// See example_test.go for runnable scenarios and the examples/ directory
// for a full movie-ratings walkthrough.
package factorize
