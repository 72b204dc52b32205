package train

import (
	"errors"
	"fmt"
	"math"

	"github.com/lattice-ml/xdomain-mf/numeric"
	"github.com/lattice-ml/xdomain-mf/solve"
)

// ImplicitALS is the baseline trainer: the Hu-Koren-Volinsky
// implicit-feedback objective, solved each phase by an exact per-row LU
// solve of the ridge normal equations.
type ImplicitALS struct {
	base
}

// NewImplicitALS builds an ImplicitALS trainer over data, applying opts on
// top of the documented defaults. Returns a ConfigurationError if any
// hyperparameter is out of range.
func NewImplicitALS(data AdjacencySource, opts...Option) (*ImplicitALS, error) {
	b, err := newBase(data, opts)
	if err != nil {
		return nil, err
	}

	return &ImplicitALS{base: b}, nil
}

// Init allocates and Gaussian-seeds the factor store, exposed so callers
// (and tests tracking per-iteration loss) can drive Step directly instead
// of the full Train loop.
func (t *ImplicitALS) Init() error { return t.init() }

// Step runs one outer iteration: a user phase followed by an item phase.
func (t *ImplicitALS) Step() error {
	if err := t.userPhase(); err != nil {
		return fmt.Errorf("ImplicitALS.Step: user phase: %w", err)
	}
	if err := t.itemPhase(); err != nil {
		return fmt.Errorf("ImplicitALS.Step: item phase: %w", err)
	}

	return nil
}

// Train runs Init() followed by cfg.iters calls to Step.
func (t *ImplicitALS) Train() error {
	if err := t.Init(); err != nil {
		return err
	}

	for iter := 1; iter <= t.cfg.iters; iter++ {
		if err := t.Step(); err != nil {
			return fmt.Errorf("ImplicitALS.Train: iter %d: %w", iter, err)
		}
		t.cfg.logger.Debug().Int("iter", iter).Str("trainer", "implicit_als").Msg("iteration complete")
	}

	return nil
}

// userPhase updates every row of U with V held fixed.
func (t *ImplicitALS) userPhase() error {
	g0, err := numeric.NewSquareMatrix(t.cfg.k)
	if err != nil {
		return err
	}
	if err := numeric.MaskedGram(t.factors.V, func(int) bool { return true }, g0); err != nil {
		return err
	}

	return runPhase(len(t.factors.U), func(_ *Scratch, u int) error {
		return t.updateRow(t.factors.U[u], g0, t.factors.V, t.data.UserItemIDs(u), "user", u)
	})
}

// itemPhase updates every row of V with U held fixed.
func (t *ImplicitALS) itemPhase() error {
	g0, err := numeric.NewSquareMatrix(t.cfg.k)
	if err != nil {
		return err
	}
	if err := numeric.MaskedGram(t.factors.U, func(int) bool { return true }, g0); err != nil {
		return err
	}

	return runPhase(len(t.factors.V), func(_ *Scratch, i int) error {
		return t.updateRow(t.factors.V[i], g0, t.factors.U, t.data.ItemUserIDs(i), "item", i)
	})
}

// updateRow solves A*w = b for one row, where A = g0 + alpha*Sum_{q in
// liked} Q[q]Q[q]^T + lambda*I and b = (1+alpha)*Sum_{q in liked} Q[q]
//. liked holds the dense ids of Q-side rows this row
// interacts with.
func (t *ImplicitALS) updateRow(w []float64, g0 [][]float64, q [][]float64, liked map[int]struct{}, side string, id int) error {
	k := t.cfg.k

	a := make([][]float64, k)
	for r := 0; r < k; r++ {
		a[r] = append([]float64(nil), g0[r]...)
	}
	b := make([]float64, k)

	for qid := range liked {
		row := q[qid]
		for r := 0; r < k; r++ {
			vr := row[r]
			for c := 0; c < k; c++ {
				a[r][c] += t.cfg.alpha * vr * row[c]
			}
			b[r] += (1 + t.cfg.alpha) * row[r]
		}
	}
	if err := numeric.AddRidge(a, t.cfg.lambda); err != nil {
		return err
	}

	sol, err := solve.Solve(a, b)
	if err != nil {
		if errors.Is(err, solve.ErrSingular) {
			return &DegeneracyError{Side: side, Row: id, Err: fmt.Errorf("%w", ErrZeroLambdaEmptyRow)}
		}

		return &DegeneracyError{Side: side, Row: id, Err: err}
	}
	for _, x := range sol {
		if math.IsNaN(x) {
			return &DegeneracyError{Side: side, Row: id, Err: errors.New("NaN in solved row")}
		}
	}

	copy(w, sol)

	return nil
}

// ComputeLoss returns the current Hu-Koren-Volinsky objective: Sum_{u,i} c_ui*(p_ui - dot(U[u],V[i]))^2 + lambda*(||U||^2+||V||^2).
// Expensive (Theta(|U|*|I|*k)); intended for tests and diagnostics, not the
// hot training path.
func (t *ImplicitALS) ComputeLoss() float64 {
	var loss float64
	k := t.cfg.k

	for u := range t.factors.U {
		liked := t.data.UserItemIDs(u)
		uRow := t.factors.U[u]
		for i := range t.factors.V {
			iRow := t.factors.V[i]
			var dot float64
			for kk := 0; kk < k; kk++ {
				dot += uRow[kk] * iRow[kk]
			}

			p, c := 0.0, 1.0
			if _, ok := liked[i]; ok {
				p, c = 1.0, 1.0+t.cfg.alpha
			}
			diff := p - dot
			loss += c * diff * diff
		}
	}

	loss += t.cfg.lambda * (numeric.SqL2Matrix(t.factors.U) + numeric.SqL2Matrix(t.factors.V))

	return loss
}
