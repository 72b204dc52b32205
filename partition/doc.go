// Package partition implements DomainPartition: the
// disjoint source/target item split SimMF and NeighborMF's item phase use to
// run separate sub-phases over source items and target items while sharing
// the user-factor block.
package partition
