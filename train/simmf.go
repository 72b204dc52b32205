package train

import (
	"fmt"

	"github.com/lattice-ml/xdomain-mf/numeric"
	"github.com/lattice-ml/xdomain-mf/partition"
	"github.com/lattice-ml/xdomain-mf/similarity"
)

// SimMF is the pairwise-similarity trainer: it extends FastALS's item phase
// with one synthetic training point per opposite-domain item, whose target
// is an external similarity score.
type SimMF struct {
	FastALS
	partition *partition.Partition
	oracle    similarity.Oracle
}

// NewSimMF builds a SimMF trainer over data, with part defining the source
// and target item domains and oracle supplying pairwise similarity scores.
func NewSimMF(data AdjacencySource, part *partition.Partition, oracle similarity.Oracle, opts...Option) (*SimMF, error) {
	fast, err := NewFastALS(data, opts...)
	if err != nil {
		return nil, err
	}

	return &SimMF{FastALS: *fast, partition: part, oracle: oracle}, nil
}

// Train runs init() followed by cfg.iters alternating user/item phases;
// the item phase splits into a source sub-phase then a target sub-phase.
func (t *SimMF) Train() error {
	if err := t.init(); err != nil {
		return err
	}

	for iter := 1; iter <= t.cfg.iters; iter++ {
		if err := t.userPhase(); err != nil {
			return fmt.Errorf("SimMF.Train: iter %d user phase: %w", iter, err)
		}
		if err := t.itemPhase(); err != nil {
			return fmt.Errorf("SimMF.Train: iter %d item phase: %w", iter, err)
		}
		t.cfg.logger.Debug().Int("iter", iter).Str("trainer", "sim_mf").Msg("iteration complete")
	}

	return nil
}

// itemPhase overrides FastALS's: source items update first (against the
// previous iteration's target factors), then target items (against the
// just-updated source factors). The two sub-phases run as separate,
// sequential calls to runPhaseIDs so the second never observes a
// partially-updated first sub-phase.
func (t *SimMF) itemPhase() error {
	g, err := gMatrixFor(t.factors.U, t.cfg.k, t.cfg.lambda)
	if err != nil {
		return err
	}

	sourceIDs := t.partition.SourceItems()
	targetIDs := t.partition.TargetItems()

	if err := runPhaseIDs(sourceIDs, func(scratch *Scratch, i int) error {
		examples := append(baseExamples(g, t.factors.U, t.data.ItemUserIDs(i), t.cfg.alpha),
			t.crossExamples(i, targetIDs)...)
		RunCycle(t.factors.V[i], t.cfg.lambda, examples, nil, 0, scratch)

		return nil
	}); err != nil {
		return fmt.Errorf("source sub-phase: %w", err)
	}

	if err := runPhaseIDs(targetIDs, func(scratch *Scratch, i int) error {
		examples := append(baseExamples(g, t.factors.U, t.data.ItemUserIDs(i), t.cfg.alpha),
			t.crossExamples(i, sourceIDs)...)
		RunCycle(t.factors.V[i], t.cfg.lambda, examples, nil, 0, scratch)

		return nil
	}); err != nil {
		return fmt.Errorf("target sub-phase: %w", err)
	}

	return nil
}

// crossExamples builds one synthetic training point per opposite-domain
// item: x=V[opposite], y=sim(this,opposite), c=lambdaCross. A miss (Sim
// returns 0) still adds a point, with target 0, so it pulls that pair's
// dot product toward 0.
func (t *SimMF) crossExamples(thisID int, opposite []int) []Example {
	examples := make([]Example, len(opposite))
	for idx, o := range opposite {
		examples[idx] = Example{X: t.factors.V[o], Y: t.oracle.Sim(thisID, o), C: t.cfg.lambdaCross}
	}

	return examples
}

// ComputeLoss returns the Hu-Koren-Volinsky objective plus the pairwise-
// similarity cross term. The cross term is summed once per (source,target)
// pair by iterating source items' opposite set, rather than double-counted
// from both sides.
func (t *SimMF) ComputeLoss() float64 {
	ias := ImplicitALS{base: t.base}
	loss := ias.ComputeLoss()

	var cross float64
	for _, s := range t.partition.SourceItems() {
		for _, tg := range t.partition.TargetItems() {
			dot, err := numeric.Dot(t.factors.V[s], t.factors.V[tg])
			if err != nil {
				continue
			}
			diff := t.oracle.Sim(s, tg) - dot
			cross += diff * diff
		}
	}

	return loss + t.cfg.lambdaCross*cross
}
