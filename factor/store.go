package factor

import (
	"fmt"
	"math/rand"

	"github.com/lattice-ml/xdomain-mf/numeric"
)

// Store holds the trained latent factors. U has one row per user id
// (0..maxUserID), V has one row per item id (0..maxItemID); both carry K
// columns. Store is owned by exactly one trainer for the duration of a
// training run; within a phase, workers write disjoint rows and never
// resize either matrix.
type Store struct {
	U [][]float64
	V [][]float64
	K int
}

// New allocates a Store sized for nUsers users and nItems items, seeding
// both matrices from N(mean, stddev^2) via rng. Pass a seeded RNG
// (numeric.NewSeededRNG) for bit-reproducible runs.
// Stage 1 (Validate): nUsers, nItems, k must all be > 0.
// Stage 2 (Execute): allocate and Gaussian-fill U then V, in that order, so
// a single rng produces bit-stable results regardless of caller-side
// parallelism elsewhere.
func New(nUsers, nItems, k int, mean, stddev float64, rng *rand.Rand) (*Store, error) {
	if nUsers <= 0 || nItems <= 0 || k <= 0 {
		return nil, fmt.Errorf("factor.New: nUsers=%d nItems=%d k=%d: %w", nUsers, nItems, k, ErrInvalidDimensions)
	}

	u, err := numeric.MakeGaussianMatrix(nUsers, k, mean, stddev, rng)
	if err != nil {
		return nil, fmt.Errorf("factor.New: user factors: %w", err)
	}
	v, err := numeric.MakeGaussianMatrix(nItems, k, mean, stddev, rng)
	if err != nil {
		return nil, fmt.Errorf("factor.New: item factors: %w", err)
	}

	return &Store{U: u, V: v, K: k}, nil
}

// Predict returns dot(U[u], V[i]) when both ids are valid row indices into
// the store, or NaN otherwise.
func (s *Store) Predict(u, i int) float64 {
	if u < 0 || u >= len(s.U) || i < 0 || i >= len(s.V) {
		return nan()
	}
	dot, err := numeric.Dot(s.U[u], s.V[i])
	if err != nil {
		return nan()
	}

	return dot
}
