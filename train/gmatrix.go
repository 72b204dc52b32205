package train

import (
	"fmt"

	"github.com/lattice-ml/xdomain-mf/numeric"
	"github.com/lattice-ml/xdomain-mf/solve"
)

// gMatrixFor computes the G matrix for the fixed matrix q: A0 = q^T*q +
// lambda*I, then G such that G^T*G == A0. G's rows are the k synthetic
// training points that encode the fixed block inside a single RR1 cycle.
func gMatrixFor(q [][]float64, k int, lambda float64) ([][]float64, error) {
	a0, err := numeric.NewSquareMatrix(k)
	if err != nil {
		return nil, err
	}
	if err := numeric.MaskedGram(q, func(int) bool { return true }, a0); err != nil {
		return nil, err
	}
	if err := numeric.AddRidge(a0, lambda); err != nil {
		return nil, err
	}

	g, err := solve.GMatrix(a0, solve.DefaultEigenTol, solve.DefaultEigenMaxIter)
	if err != nil {
		return nil, fmt.Errorf("gMatrixFor: %w", err)
	}

	return g, nil
}

// baseExamples builds the (k+|liked|) training points: the k synthetic
// points encoding the fixed G block (y=0, c=1), followed by one point per
// positive interaction (y=(1+alpha)/alpha, c=alpha), the residual-
// cancellation trick from Pilaszy et al. alpha must be > 0 for this target
// to be finite, the same regime FastALS/SimMF/NeighborMF require
// throughout.
func baseExamples(g [][]float64, q [][]float64, liked map[int]struct{}, alpha float64) []Example {
	examples := make([]Example, 0, len(g)+len(liked))
	for _, row := range g {
		examples = append(examples, Example{X: row, Y: 0, C: 1})
	}

	y := (1 + alpha) / alpha
	for qid := range liked {
		examples = append(examples, Example{X: q[qid], Y: y, C: alpha})
	}

	return examples
}
