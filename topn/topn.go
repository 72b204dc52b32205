package topn

import (
	"math"
	"sort"
)

// Predictor is the only interface topn depends on: a trained engine's
// Predict(u,i) returning dot(U[u],V[i]) or NaN.
type Predictor interface {
	Predict(user, item int) float64
}

// scored pairs an item with its predicted score, used only to sort.
type scored struct {
	item  int
	score float64
}

// Recommend scores every candidate for user, drops candidates in seen and
// any that predict NaN (unknown id), and returns up to n item ids sorted by
// descending score.
func Recommend(pred Predictor, user int, candidates []int, seen map[int]struct{}, n int) []int {
	ranked := make([]scored, 0, len(candidates))
	for _, item := range candidates {
		if _, skip := seen[item]; skip {
			continue
		}
		score := pred.Predict(user, item)
		if math.IsNaN(score) {
			continue
		}
		ranked = append(ranked, scored{item: item, score: score})
	}

	sort.Slice(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if n < len(ranked) {
		ranked = ranked[:n]
	}

	out := make([]int, len(ranked))
	for i, r := range ranked {
		out[i] = r.item
	}

	return out
}
