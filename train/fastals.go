package train

import "fmt"

// FastALS is the RR1 trainer: it replaces ImplicitALS's per-row LU solve
// with a single RR1 coordinate-descent cycle, after encoding the fixed
// G0+lambda*I block as k synthetic training points via the G matrix.
type FastALS struct {
	base
}

// NewFastALS builds a FastALS trainer over data.
func NewFastALS(data AdjacencySource, opts...Option) (*FastALS, error) {
	b, err := newBase(data, opts)
	if err != nil {
		return nil, err
	}

	return &FastALS{base: b}, nil
}

// Train runs init() followed by cfg.iters alternating user/item phases.
func (t *FastALS) Train() error {
	if err := t.init(); err != nil {
		return err
	}

	for iter := 1; iter <= t.cfg.iters; iter++ {
		if err := t.userPhase(); err != nil {
			return fmt.Errorf("FastALS.Train: iter %d user phase: %w", iter, err)
		}
		if err := t.itemPhase(); err != nil {
			return fmt.Errorf("FastALS.Train: iter %d item phase: %w", iter, err)
		}
		t.cfg.logger.Debug().Int("iter", iter).Str("trainer", "fast_als").Msg("iteration complete")
	}

	return nil
}

func (t *FastALS) userPhase() error {
	g, err := gMatrixFor(t.factors.V, t.cfg.k, t.cfg.lambda)
	if err != nil {
		return err
	}

	return runPhase(len(t.factors.U), func(scratch *Scratch, u int) error {
		examples := baseExamples(g, t.factors.V, t.data.UserItemIDs(u), t.cfg.alpha)
		RunCycle(t.factors.U[u], t.cfg.lambda, examples, nil, 0, scratch)

		return nil
	})
}

// itemPhase is the hook FastALS's cross-domain subclasses (SimMF,
// NeighborMF) override; the plain FastALS item phase is symmetric to the
// user phase with no cross-domain term.
func (t *FastALS) itemPhase() error {
	g, err := gMatrixFor(t.factors.U, t.cfg.k, t.cfg.lambda)
	if err != nil {
		return err
	}

	return runPhase(len(t.factors.V), func(scratch *Scratch, i int) error {
		examples := baseExamples(g, t.factors.U, t.data.ItemUserIDs(i), t.cfg.alpha)
		RunCycle(t.factors.V[i], t.cfg.lambda, examples, nil, 0, scratch)

		return nil
	})
}

// ComputeLoss returns the same Hu-Koren-Volinsky objective as ImplicitALS's
// ComputeLoss; FastALS approximates the solve, not the objective.
func (t *FastALS) ComputeLoss() float64 {
	ias := ImplicitALS{base: t.base}

	return ias.ComputeLoss()
}
