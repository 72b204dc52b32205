package train

import (
	"fmt"

	"github.com/lattice-ml/xdomain-mf/factor"
	"github.com/lattice-ml/xdomain-mf/numeric"
)

// AdjacencySource is what the training engine reads from a preference
// store: dense-id bounds and the two dense-id adjacency sets. It is not a
// subset of prefs.PreferenceData, which has no UserItemIDs/ItemUserIDs.
// *prefs.Index satisfies both.
type AdjacencySource interface {
	MaxUserID() int
	MaxItemID() int
	UserItemIDs(u int) map[int]struct{}
	ItemUserIDs(i int) map[int]struct{}
}

// InitMean and InitStdDev are the Gaussian initialization parameters:
// factors seed from N(InitMean, InitStdDev^2).
const (
	InitMean   = 0.0
	InitStdDev = 0.1
)

// base holds the state and setters shared by every trainer variant: plain
// composition in place of a deep inheritance chain, so each variant
// overrides only the phase methods it needs to specialize.
type base struct {
	cfg     config
	data    AdjacencySource
	factors *factor.Store
}

func newBase(data AdjacencySource, opts []Option) (base, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return base{}, err
	}

	return base{cfg: cfg, data: data}, nil
}

// init allocates and Gaussian-seeds U and V from numeric.DefaultSeed, so
// two runs over the same data and config produce identical factors.
func (b *base) init() error {
	nUsers := b.data.MaxUserID() + 1
	nItems := b.data.MaxItemID() + 1

	rng := numeric.NewSeededRNG(numeric.DefaultSeed)
	store, err := factor.New(nUsers, nItems, b.cfg.k, InitMean, InitStdDev, rng)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	b.factors = store

	return nil
}

// Factors exposes the underlying FactorStore, e.g. for a top-N scorer or
// for inspecting V directly in cross-domain property tests.
func (b *base) Factors() *factor.Store { return b.factors }

// Predict returns dot(U[u], V[i]), or NaN for an unknown id.
func (b *base) Predict(u, i int) float64 {
	if b.factors == nil {
		return nan()
	}

	return b.factors.Predict(u, i)
}

// SetK adjusts the factor count; takes effect on the next Train() call.
func (b *base) SetK(k int) error {
	if k < 1 {
		return &ConfigurationError{Err: fmt.Errorf("k=%d: %w", k, ErrInvalidK)}
	}
	b.cfg.k = k

	return nil
}

// SetIters adjusts the outer-iteration count.
func (b *base) SetIters(iters int) error {
	if iters < 0 {
		return &ConfigurationError{Err: fmt.Errorf("iters=%d: %w", iters, ErrInvalidIters)}
	}
	b.cfg.iters = iters

	return nil
}

// SetLambda adjusts the ridge regularizer.
func (b *base) SetLambda(lambda float64) error {
	if lambda < 0 {
		return &ConfigurationError{Err: fmt.Errorf("lambda=%g: %w", lambda, ErrNegativeLambda)}
	}
	b.cfg.lambda = lambda

	return nil
}

// SetAlpha adjusts the implicit-feedback confidence weight.
func (b *base) SetAlpha(alpha float64) error {
	if alpha < 0 {
		return &ConfigurationError{Err: fmt.Errorf("alpha=%g: %w", alpha, ErrNegativeAlpha)}
	}
	b.cfg.alpha = alpha

	return nil
}

// SetLambdaCross adjusts the cross-domain coupling weight (SimMF, NeighborMF).
func (b *base) SetLambdaCross(lambdaCross float64) error {
	if lambdaCross < 0 {
		return &ConfigurationError{Err: fmt.Errorf("lambdaCross=%g: %w", lambdaCross, ErrNegativeLambda)}
	}
	b.cfg.lambdaCross = lambdaCross

	return nil
}
