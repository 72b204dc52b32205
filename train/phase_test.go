package train

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunPhaseVisitsEveryRowExactlyOnce(t *testing.T) {
	const n = 97
	var seen [n]int32

	err := runPhase(n, func(_ *Scratch, row int) error {
		atomic.AddInt32(&seen[row], 1)

		return nil
	})
	require.NoError(t, err)

	for i, count := range seen {
		require.Equalf(t, int32(1), count, "row %d visited %d times", i, count)
	}
}

func TestRunPhasePropagatesRowError(t *testing.T) {
	sentinel := errors.New("boom")

	err := runPhase(10, func(_ *Scratch, row int) error {
		if row == 5 {
			return sentinel
		}

		return nil
	})
	require.ErrorIs(t, err, sentinel)
}

func TestRunPhaseIDsVisitsListedRowsOnly(t *testing.T) {
	ids := []int{3, 7, 9, 21}
	visited := make(map[int]bool)
	var mu sync.Mutex

	err := runPhaseIDs(ids, func(_ *Scratch, id int) error {
		mu.Lock()
		visited[id] = true
		mu.Unlock()

		return nil
	})
	require.NoError(t, err)
	require.Len(t, visited, len(ids))
	for _, id := range ids {
		require.True(t, visited[id])
	}
}
