package similarity

import "math"

// Oracle is the similarity contract SimMF's cross-domain coupling reads
// from: Sim(a,b) is symmetric over dense item ids and returns 0 for
// "unknown" — SimMF's coupling term treats an unknown pair as no signal.
type Oracle interface {
	Sim(a, b int) float64
}

// pairKey canonicalizes an (a,b) pair with the smaller id first, so lookups
// are symmetric regardless of argument order.
type pairKey struct{ lo, hi int }

func canon(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// MapOracle is a simple in-memory Oracle backed by a canonicalized map. A
// production similarity source (computed from content features, co-click
// logs, etc.) lives outside this package; the training engine only depends
// on the Oracle interface.
type MapOracle struct {
	scores map[pairKey]float64
}

// NewMapOracle returns an empty MapOracle.
func NewMapOracle() *MapOracle {
	return &MapOracle{scores: make(map[pairKey]float64)}
}

// Set records sim(a,b) = score, symmetric by construction. NaN scores are
// dropped at ingestion, same as a miss.
func (o *MapOracle) Set(a, b int, score float64) {
	if math.IsNaN(score) {
		delete(o.scores, canon(a, b))

		return
	}
	o.scores[canon(a, b)] = score
}

// Sim returns the recorded score for (a,b), or 0 if no signal is on file.
func (o *MapOracle) Sim(a, b int) float64 {
	if a == b {
		return 0 // sim(a,a) is unused
	}
	score, ok := o.scores[canon(a, b)]
	if !ok {
		return 0
	}

	return score
}
