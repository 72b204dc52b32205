// Package neighbor implements item neighborhoods: a directed "item a
// references item b as a neighbor" relation over dense item ids, exposed
// both forward (neighbors of a) and in reverse (items that reference b,
// invNeighbors), since NeighborMF's centroid-pull term needs to walk the
// relation in both directions in a single item-phase pass. Weights are
// optionally L1-normalized per source item so the pull term is a true
// weighted average.
package neighbor
