package partition

import "fmt"

// ErrOverlap is returned by New when a target item id lies outside
// [0, numItems), i.e. outside the id range the source/target split covers.
var ErrOverlap = fmt.Errorf("partition: source and target items overlap")

// Partition holds the disjoint source/target item split over dense item ids
// in [0, numItems). It is constructed from the target set alone (source
// items are all items not in target); every item not in target is
// implicitly source.
type Partition struct {
	numItems int
	target   map[int]struct{}
}

// New builds a Partition over numItems dense item ids where targetItems
// names the target domain; every other id in [0, numItems) is source.
// Stage 1 (Validate): every target id must be in range.
// Stage 2 (Execute): record the target set; source is computed on demand so
// Partition stays O(|target|) in memory regardless of numItems.
func New(numItems int, targetItems []int) (*Partition, error) {
	target := make(map[int]struct{}, len(targetItems))
	for _, id := range targetItems {
		if id < 0 || id >= numItems {
			return nil, fmt.Errorf("partition.New: target id %d out of [0,%d): %w", id, numItems, ErrOverlap)
		}
		target[id] = struct{}{}
	}

	return &Partition{numItems: numItems, target: target}, nil
}

// IsTarget reports whether item id belongs to the target domain.
func (p *Partition) IsTarget(id int) bool {
	_, ok := p.target[id]

	return ok
}

// IsSource reports whether item id belongs to the source domain, i.e. it is
// not in the target set.
func (p *Partition) IsSource(id int) bool {
	return !p.IsTarget(id)
}

// TargetItems returns every target item's dense id, in ascending order.
func (p *Partition) TargetItems() []int {
	out := make([]int, 0, len(p.target))
	for id := 0; id < p.numItems; id++ {
		if p.IsTarget(id) {
			out = append(out, id)
		}
	}

	return out
}

// SourceItems returns every source item's dense id, in ascending order.
func (p *Partition) SourceItems() []int {
	out := make([]int, 0, p.numItems-len(p.target))
	for id := 0; id < p.numItems; id++ {
		if p.IsSource(id) {
			out = append(out, id)
		}
	}

	return out
}

// NumItems returns the total number of items the partition was built over.
func (p *Partition) NumItems() int { return p.numItems }
