package train

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunCycleSingleCoordinateNoRidge(t *testing.T) {
	w := []float64{0}
	examples := []Example{{X: []float64{1}, Y: 3, C: 1}}
	scratch := &Scratch{}

	RunCycle(w, 0, examples, nil, 0, scratch)
	require.InDelta(t, 3.0, w[0], 1e-12)
}

func TestRunCycleSingleCoordinateWithRidge(t *testing.T) {
	w := []float64{0}
	examples := []Example{{X: []float64{1}, Y: 3, C: 1}}
	scratch := &Scratch{}

	RunCycle(w, 1, examples, nil, 0, scratch)
	require.InDelta(t, 1.5, w[0], 1e-12)
}

func TestRunCycleCrossTermPullsTowardCentroid(t *testing.T) {
	w := []float64{0}
	// No examples at all: without the cross term w stays at 0/(lambda) = 0.
	withoutCross := []float64{0}
	RunCycle(withoutCross, 0.1, nil, nil, 0, &Scratch{})
	require.InDelta(t, 0.0, withoutCross[0], 1e-12)

	// With a cross term pulling toward 5 with weight 1, w should move there.
	RunCycle(w, 0.1, nil, []float64{5}, 1, &Scratch{})
	require.InDelta(t, 5.0/1.1, w[0], 1e-12)
}

func TestRunCycleTwoCoordinatesReducesResidual(t *testing.T) {
	w := []float64{0, 0}
	examples := []Example{
		{X: []float64{1, 0}, Y: 2, C: 1},
		{X: []float64{0, 1}, Y: -1, C: 1},
	}
	scratch := &Scratch{}

	RunCycle(w, 0, examples, nil, 0, scratch)
	require.InDelta(t, 2.0, w[0], 1e-9)
	require.InDelta(t, -1.0, w[1], 1e-9)
}
