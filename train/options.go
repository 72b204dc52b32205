package train

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Default hyperparameters.
const (
	DefaultK           = 10
	DefaultIters       = 15
	DefaultLambda      = 0.015
	DefaultAlpha       = 1.0
	DefaultLambdaCross = 0.015
)

// config holds the hyperparameters shared by every trainer variant, set
// through functional options and validated once by New.
type config struct {
	k           int
	iters       int
	lambda      float64
	alpha       float64
	lambdaCross float64
	logger      zerolog.Logger
}

func defaultConfig() config {
	return config{
		k:           DefaultK,
		iters:       DefaultIters,
		lambda:      DefaultLambda,
		alpha:       DefaultAlpha,
		lambdaCross: DefaultLambdaCross,
		logger:      zerolog.Nop(),
	}
}

// Option customizes hyperparameters before training begins. These never
// panic: a bad value is data, not a programmer mistake, and surfaces as a
// ConfigurationError from New instead.
type Option func(*config)

// WithK sets the factor count (default DefaultK).
func WithK(k int) Option { return func(c *config) { c.k = k } }

// WithIters sets the number of outer ALS iterations (default DefaultIters).
func WithIters(iters int) Option { return func(c *config) { c.iters = iters } }

// WithLambda sets the ridge regularizer (default DefaultLambda).
func WithLambda(lambda float64) Option { return func(c *config) { c.lambda = lambda } }

// WithAlpha sets the implicit-feedback confidence weight (default DefaultAlpha).
func WithAlpha(alpha float64) Option { return func(c *config) { c.alpha = alpha } }

// WithLambdaCross sets the cross-domain coupling weight used by SimMF and
// NeighborMF (default DefaultLambdaCross); ignored by ImplicitALS/FastALS.
func WithLambdaCross(lambdaCross float64) Option {
	return func(c *config) { c.lambdaCross = lambdaCross }
}

// WithLogger attaches a structured logger; the zero value (zerolog.Nop())
// performs no I/O, so trainers never hold a hidden global logging dependency.
func WithLogger(logger zerolog.Logger) Option { return func(c *config) { c.logger = logger } }

func (c config) validate() error {
	if c.k < 1 {
		return &ConfigurationError{Err: fmt.Errorf("k=%d: %w", c.k, ErrInvalidK)}
	}
	if c.iters < 0 {
		return &ConfigurationError{Err: fmt.Errorf("iters=%d: %w", c.iters, ErrInvalidIters)}
	}
	if c.lambda < 0 {
		return &ConfigurationError{Err: fmt.Errorf("lambda=%g: %w", c.lambda, ErrNegativeLambda)}
	}
	if c.alpha < 0 {
		return &ConfigurationError{Err: fmt.Errorf("alpha=%g: %w", c.alpha, ErrNegativeAlpha)}
	}
	if c.lambdaCross < 0 {
		return &ConfigurationError{Err: fmt.Errorf("lambdaCross=%g: %w", c.lambdaCross, ErrNegativeLambda)}
	}

	return nil
}
