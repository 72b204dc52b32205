package neighbor

import (
	"fmt"
	"sort"
)

// Edge is a directed, weighted neighbor reference from item From to item To.
type Edge struct {
	From, To int
	Weight   float64
}

// Index holds a directed neighbor relation plus its inverse, built in a
// single pass so NeighborMF's item phase can look up both "who do I pull
// toward" (Neighbors) and "who pulls toward me" (InvNeighbors) without a
// second index.
type Index struct {
	forward map[int][]*Edge
	inverse map[int][]*Edge
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{
		forward: make(map[int][]*Edge),
		inverse: make(map[int][]*Edge),
	}
}

// Add records a directed edge from -> to with the given non-negative
// weight, updating both the forward and inverse adjacency in one step.
func (ix *Index) Add(from, to int, weight float64) error {
	if weight < 0 {
		return fmt.Errorf("neighbor.Add(%d,%d,%g): %w", from, to, weight, ErrNegativeWeight)
	}

	e := &Edge{From: from, To: to, Weight: weight}
	ix.forward[from] = append(ix.forward[from], e)
	ix.inverse[to] = append(ix.inverse[to], e)

	return nil
}

// Neighbors returns the items that item references, i.e. the edges item
// pulls toward during NeighborMF's centroid term.
func (ix *Index) Neighbors(item int) []Edge {
	return snapshot(ix.forward[item])
}

// InvNeighbors returns the items that reference item, i.e. the edges that
// pull toward item during NeighborMF's centroid term.
func (ix *Index) InvNeighbors(item int) []Edge {
	return snapshot(ix.inverse[item])
}

func snapshot(edges []*Edge) []Edge {
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = *e
	}

	return out
}

// Normalize rescales every source item's outgoing weights to sum to 1 (L1
// normalization), leaving items with no outgoing edges untouched. Because
// forward and inverse share the same underlying *Edge values, this also
// updates what InvNeighbors reports.
func (ix *Index) Normalize() {
	for _, edges := range ix.forward {
		var sum float64
		for _, e := range edges {
			sum += e.Weight
		}
		if sum <= 0 {
			continue
		}
		for _, e := range edges {
			e.Weight /= sum
		}
	}
}

// TruncateTopN keeps, for every source item, only the n highest-weight
// outgoing edges, dropping the rest from both forward and inverse. n <= 0
// means "no bound".
func (ix *Index) TruncateTopN(n int) {
	if n <= 0 {
		return
	}

	kept := make(map[*Edge]struct{})
	for from, edges := range ix.forward {
		sorted := append([]*Edge(nil), edges...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Weight > sorted[j].Weight })
		if len(sorted) > n {
			sorted = sorted[:n]
		}
		ix.forward[from] = sorted
		for _, e := range sorted {
			kept[e] = struct{}{}
		}
	}

	for to, edges := range ix.inverse {
		filtered := edges[:0:0]
		for _, e := range edges {
			if _, ok := kept[e]; ok {
				filtered = append(filtered, e)
			}
		}
		ix.inverse[to] = filtered
	}
}
