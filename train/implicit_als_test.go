package train_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/lattice-ml/xdomain-mf/prefs"
	"github.com/lattice-ml/xdomain-mf/train"
	"github.com/stretchr/testify/require"
)

func TestImplicitALSSingleUserSingleItem(t *testing.T) {
	idx := prefs.NewIndex()
	require.NoError(t, idx.Add("u1", "i1"))

	trainer, err := train.NewImplicitALS(idx, train.WithK(2), train.WithIters(5), train.WithLambda(0.015), train.WithAlpha(1))
	require.NoError(t, err)
	require.NoError(t, trainer.Train())

	u1, i1 := idx.UserID("u1"), idx.ItemID("i1")
	require.Greater(t, trainer.Predict(u1, i1), 0.0)
	require.True(t, math.IsNaN(trainer.Predict(u1, 99)))
}

func TestImplicitALSRejectsInvalidK(t *testing.T) {
	idx := prefs.NewIndex()
	require.NoError(t, idx.Add("u1", "i1"))

	_, err := train.NewImplicitALS(idx, train.WithK(0))
	var cfgErr *train.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestImplicitALSPredictDeterminism(t *testing.T) {
	idx := prefs.NewIndex()
	require.NoError(t, idx.Add("u1", "i1"))
	require.NoError(t, idx.Add("u2", "i2"))

	run := func() float64 {
		trainer, err := train.NewImplicitALS(idx, train.WithK(3), train.WithIters(4))
		require.NoError(t, err)
		require.NoError(t, trainer.Train())

		return trainer.Predict(idx.UserID("u1"), idx.ItemID("i1"))
	}

	require.InDelta(t, run(), run(), 1e-12)
}

func TestImplicitALSLossNonIncreasing(t *testing.T) {
	idx := prefs.NewIndex()
	for u := 0; u < 20; u++ {
		for i := 0; i < 20; i++ {
			if (u+i)%3 == 0 {
				require.NoError(t, idx.Add(userName(u), itemName(i)))
			}
		}
	}

	trainer, err := train.NewImplicitALS(idx, train.WithK(5), train.WithIters(5))
	require.NoError(t, err)
	require.NoError(t, trainer.Init())

	var losses []float64
	for iter := 0; iter < 5; iter++ {
		require.NoError(t, trainer.Step())
		losses = append(losses, trainer.ComputeLoss())
	}

	for i := 1; i < len(losses); i++ {
		require.LessOrEqual(t, losses[i], losses[i-1]*(1+1e-3))
	}
}

func userName(i int) string { return "u" + strconv.Itoa(i) }
func itemName(i int) string { return "i" + strconv.Itoa(i) }
