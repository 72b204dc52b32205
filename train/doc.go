// Package train implements the shared ALS training driver and its four
// variants: ImplicitALS (baseline LU-solved normal equations), FastALS
// (single RR1 cycle per row against a precomputed G matrix), SimMF (FastALS
// plus a pairwise-similarity coupling term on the item phase), and
// NeighborMF (FastALS plus a neighbor-centroid pull term). The three
// RR1-based variants share one parameterized RR1 routine, differing only in
// the row-update strategy supplied to each phase; ImplicitALS solves each
// row with an LU solve instead.
package train
