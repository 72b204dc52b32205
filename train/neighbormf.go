package train

import (
	"fmt"

	"github.com/lattice-ml/xdomain-mf/neighbor"
	"github.com/lattice-ml/xdomain-mf/numeric"
	"github.com/lattice-ml/xdomain-mf/partition"
)

// NeighborMF is the neighbor-distance trainer: it extends FastALS's item
// phase with a centroid-pull term toward each item's neighbors' current
// factors, weighted by edge score.
type NeighborMF struct {
	FastALS
	partition *partition.Partition
	neighbors *neighbor.Index
}

// NewNeighborMF builds a NeighborMF trainer over data, with part defining
// the source/target domains and neighbors supplying the directed
// neighbor-weight relation.
func NewNeighborMF(data AdjacencySource, part *partition.Partition, neighbors *neighbor.Index, opts...Option) (*NeighborMF, error) {
	fast, err := NewFastALS(data, opts...)
	if err != nil {
		return nil, err
	}

	return &NeighborMF{FastALS: *fast, partition: part, neighbors: neighbors}, nil
}

// Train runs init() followed by cfg.iters alternating user/item phases.
func (t *NeighborMF) Train() error {
	if err := t.init(); err != nil {
		return err
	}

	for iter := 1; iter <= t.cfg.iters; iter++ {
		if err := t.userPhase(); err != nil {
			return fmt.Errorf("NeighborMF.Train: iter %d user phase: %w", iter, err)
		}
		if err := t.itemPhase(); err != nil {
			return fmt.Errorf("NeighborMF.Train: iter %d item phase: %w", iter, err)
		}
		t.cfg.logger.Debug().Int("iter", iter).Str("trainer", "neighbor_mf").Msg("iteration complete")
	}

	return nil
}

// itemPhase overrides FastALS's. Source items update first, pulled toward
// the *previous* iteration's target factors via invNeighbors; target items
// update second, pulled toward the *just-updated* source factors via
// neighbors. This order is load-bearing: the target rows of V read by the
// source update are written later in the same item phase by the target
// sub-phase, so the two sub-phases must not overlap.
func (t *NeighborMF) itemPhase() error {
	g, err := gMatrixFor(t.factors.U, t.cfg.k, t.cfg.lambda)
	if err != nil {
		return err
	}

	sourceIDs := t.partition.SourceItems()
	targetIDs := t.partition.TargetItems()

	if err := runPhaseIDs(sourceIDs, func(scratch *Scratch, i int) error {
		crossNum, crossDen := t.centroid(t.neighbors.InvNeighbors(i), func(e neighbor.Edge) int { return e.From })
		examples := baseExamples(g, t.factors.U, t.data.ItemUserIDs(i), t.cfg.alpha)
		RunCycle(t.factors.V[i], t.cfg.lambda, examples, crossNum, crossDen, scratch)

		return nil
	}); err != nil {
		return fmt.Errorf("source sub-phase: %w", err)
	}

	if err := runPhaseIDs(targetIDs, func(scratch *Scratch, i int) error {
		crossNum, crossDen := t.centroid(t.neighbors.Neighbors(i), func(e neighbor.Edge) int { return e.To })
		examples := baseExamples(g, t.factors.U, t.data.ItemUserIDs(i), t.cfg.alpha)
		RunCycle(t.factors.V[i], t.cfg.lambda, examples, crossNum, crossDen, scratch)

		return nil
	}); err != nil {
		return fmt.Errorf("target sub-phase: %w", err)
	}

	return nil
}

// centroid computes lambdaCross*C and lambdaCross*D for the coordinate
// update: C = Sum s_tn*V[n], D = Sum s_tn, over edges with otherID picking
// the neighboring item id out of each edge (From for an inverse lookup, To
// for a forward one). An empty edge list yields an all-zero C and D=0,
// degenerating the update to plain FastALS.
func (t *NeighborMF) centroid(edges []neighbor.Edge, otherID func(neighbor.Edge) int) (num []float64, den float64) {
	num = make([]float64, t.cfg.k)
	for _, e := range edges {
		v := t.factors.V[otherID(e)]
		for kk := range num {
			num[kk] += e.Weight * v[kk]
		}
		den += e.Weight
	}
	for kk := range num {
		num[kk] *= t.cfg.lambdaCross
	}
	den *= t.cfg.lambdaCross

	return num, den
}

// ComputeLoss returns the Hu-Koren-Volinsky objective plus the neighbor-
// distance cross term, summed over target items only.
func (t *NeighborMF) ComputeLoss() float64 {
	ias := ImplicitALS{base: t.base}
	loss := ias.ComputeLoss()

	var cross float64
	for _, tg := range t.partition.TargetItems() {
		for _, e := range t.neighbors.Neighbors(tg) {
			d, err := numeric.SqDistance(t.factors.V[tg], t.factors.V[e.To])
			if err != nil {
				continue
			}
			cross += e.Weight * d
		}
	}

	return loss + t.cfg.lambdaCross*cross
}
