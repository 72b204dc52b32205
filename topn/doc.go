// Package topn implements a minimal top-N scorer: a thin consumer of the
// trained engine's Predict interface that ranks a caller-supplied candidate
// set and returns the highest-scoring unseen items per user. It is
// deliberately separate from the MF engine itself and kept minimal.
package topn
