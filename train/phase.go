package train

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// runPhase partitions [0, nRows) into contiguous worker shards and runs
// rowUpdate over each row in parallel, using errgroup so a row update's
// error, including a DegeneracyError, propagates out of group.Wait()
// instead of being silently dropped. Each worker gets its own Scratch so no
// two goroutines ever share residual-buffer state.
func runPhase(nRows int, rowUpdate func(scratch *Scratch, row int) error) error {
	if nRows == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > nRows {
		workers = nRows
	}
	chunk := (nRows + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < nRows; start += chunk {
		end := start + chunk
		if end > nRows {
			end = nRows
		}

		s, e := start, end
		g.Go(func() error {
			scratch := &Scratch{}
			for row := s; row < e; row++ {
				if err := rowUpdate(scratch, row); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}

// runPhaseIDs is runPhase's counterpart for an arbitrary (non-contiguous)
// row-id list, used when the row set being optimized is a subset of all
// items, as in SimMF's and NeighborMF's source/target sub-phases.
func runPhaseIDs(ids []int, rowUpdate func(scratch *Scratch, id int) error) error {
	if len(ids) == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(ids) {
		workers = len(ids)
	}
	chunk := (len(ids) + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < len(ids); start += chunk {
		end := start + chunk
		if end > len(ids) {
			end = len(ids)
		}

		shard := ids[start:end]
		g.Go(func() error {
			scratch := &Scratch{}
			for _, id := range shard {
				if err := rowUpdate(scratch, id); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}
