// Command xmf-demo builds a tiny toy preference set, trains each of the
// four trainer variants (ImplicitALS, FastALS, SimMF, NeighborMF), and
// prints a few predictions from each. It exists to exercise the engine
// end-to-end; a production dataset loader and full CLI surface are out of
// scope and are not reimplemented here.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lattice-ml/xdomain-mf/neighbor"
	"github.com/lattice-ml/xdomain-mf/partition"
	"github.com/lattice-ml/xdomain-mf/prefs"
	"github.com/lattice-ml/xdomain-mf/similarity"
	"github.com/lattice-ml/xdomain-mf/train"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "xmf-demo:", err)
		os.Exit(1)
	}
}

func run() error {
	idx := prefs.NewIndex()
	// Source domain: book purchases. Target domain: movie watches.
	// u1, u2 overlap across both domains; u3 is target-only.
	pairs := [][2]string{
		{"u1", "book:scifi"}, {"u1", "book:fantasy"},
		{"u2", "book:romance"},
		{"u1", "movie:scifi"}, {"u2", "movie:romance"},
		{"u3", "movie:scifi"}, {"u3", "movie:action"},
	}
	for _, p := range pairs {
		if err := idx.Add(p[0], p[1]); err != nil {
			return fmt.Errorf("building index: %w", err)
		}
	}

	if err := runImplicitALS(idx); err != nil {
		return fmt.Errorf("ImplicitALS: %w", err)
	}
	if err := runFastALS(idx); err != nil {
		return fmt.Errorf("FastALS: %w", err)
	}
	if err := runSimMF(idx); err != nil {
		return fmt.Errorf("SimMF: %w", err)
	}
	if err := runNeighborMF(idx); err != nil {
		return fmt.Errorf("NeighborMF: %w", err)
	}

	return nil
}

func runImplicitALS(idx *prefs.Index) error {
	trainer, err := train.NewImplicitALS(idx, train.WithK(8), train.WithIters(15))
	if err != nil {
		return err
	}
	if err := trainer.Train(); err != nil {
		return err
	}

	u1 := idx.UserID("u1")
	fmt.Printf("ImplicitALS: predict(u1, book:scifi)=%.4f predict(u1, movie:action)=%.4f\n",
		trainer.Predict(u1, idx.ItemID("book:scifi")),
		trainer.Predict(u1, idx.ItemID("movie:action")))

	return nil
}

func runFastALS(idx *prefs.Index) error {
	trainer, err := train.NewFastALS(idx, train.WithK(8), train.WithIters(15))
	if err != nil {
		return err
	}
	if err := trainer.Train(); err != nil {
		return err
	}

	u1 := idx.UserID("u1")
	fmt.Printf("FastALS: predict(u1, book:scifi)=%.4f predict(u1, movie:action)=%.4f\n",
		trainer.Predict(u1, idx.ItemID("book:scifi")),
		trainer.Predict(u1, idx.ItemID("movie:action")))

	return nil
}

func targetItemIDs(idx *prefs.Index) []int {
	var target []int
	for _, item := range idx.Items() {
		if strings.HasPrefix(item, "movie:") {
			target = append(target, idx.ItemID(item))
		}
	}

	return target
}

func runSimMF(idx *prefs.Index) error {
	part, err := partition.New(idx.MaxItemID()+1, targetItemIDs(idx))
	if err != nil {
		return err
	}

	oracle := similarity.NewMapOracle()
	oracle.Set(idx.ItemID("book:scifi"), idx.ItemID("movie:scifi"), 0.9)
	oracle.Set(idx.ItemID("book:romance"), idx.ItemID("movie:romance"), 0.8)

	trainer, err := train.NewSimMF(idx, part, oracle, train.WithK(8), train.WithIters(20), train.WithLambdaCross(1))
	if err != nil {
		return err
	}
	if err := trainer.Train(); err != nil {
		return err
	}

	u3 := idx.UserID("u3")
	fmt.Printf("SimMF: predict(u3, movie:scifi)=%.4f predict(u3, movie:romance)=%.4f\n",
		trainer.Predict(u3, idx.ItemID("movie:scifi")),
		trainer.Predict(u3, idx.ItemID("movie:romance")))

	return nil
}

func runNeighborMF(idx *prefs.Index) error {
	part, err := partition.New(idx.MaxItemID()+1, targetItemIDs(idx))
	if err != nil {
		return err
	}

	neighbors := neighbor.NewIndex()
	if err := neighbors.Add(idx.ItemID("movie:scifi"), idx.ItemID("book:scifi"), 1.0); err != nil {
		return err
	}
	if err := neighbors.Add(idx.ItemID("movie:romance"), idx.ItemID("book:romance"), 1.0); err != nil {
		return err
	}

	trainer, err := train.NewNeighborMF(idx, part, neighbors, train.WithK(8), train.WithIters(20), train.WithLambdaCross(5))
	if err != nil {
		return err
	}
	if err := trainer.Train(); err != nil {
		return err
	}

	u3 := idx.UserID("u3")
	fmt.Printf("NeighborMF: predict(u3, movie:scifi)=%.4f predict(u3, movie:romance)=%.4f\n",
		trainer.Predict(u3, idx.ItemID("movie:scifi")),
		trainer.Predict(u3, idx.ItemID("movie:romance")))

	return nil
}
