// Package xdomainmf implements the training core of a cross-domain
// implicit-feedback collaborative-filtering engine.
//
// Given two overlapping user bases — a source domain providing auxiliary
// preference signal and a target domain where recommendations must be
// delivered — the engine learns low-rank latent user and item factors so
// that unobserved target-domain items can be ranked per user. Auxiliary
// source data influences target factors through a cross-domain coupling on
// item factors.
//
// The module is organized as:
//
//	prefs/      — PreferenceIndex: the user/item bijection and adjacency sets
//	numeric/    — dense vector/matrix primitives (dot, Gaussian init, Gram)
//	solve/      — LU decomposition and Jacobi eigendecomposition
//	factor/     — FactorStore: the trained U/V matrices
//	similarity/ — the SimilarityOracle contract used by SimMF
//	neighbor/   — the ItemNeighborhoods contract used by NeighborMF
//	partition/  — the source/target DomainPartition
//	train/      — the training driver and its four variants: ImplicitALS,
//	              FastALS, SimMF, NeighborMF
//	topn/       — a minimal top-N scorer consuming the trained Predict contract
//	cmd/xmf-demo — a runnable end-to-end demo
package xdomainmf
