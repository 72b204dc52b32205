package train_test

import (
	"fmt"

	"github.com/lattice-ml/xdomain-mf/prefs"
	"github.com/lattice-ml/xdomain-mf/train"
)

// ExampleImplicitALS_Train trains the baseline engine on a tiny preference
// set and prints whether a known pair outranks an unknown one.
func ExampleImplicitALS_Train() {
	idx := prefs.NewIndex()
	_ = idx.Add("alice", "sneakers")
	_ = idx.Add("alice", "boots")
	_ = idx.Add("bob", "sandals")

	trainer, err := train.NewImplicitALS(idx, train.WithK(4), train.WithIters(10))
	if err != nil {
		panic(err)
	}
	if err := trainer.Train(); err != nil {
		panic(err)
	}

	alice := idx.UserID("alice")
	sneakers, sandals := idx.ItemID("sneakers"), idx.ItemID("sandals")

	fmt.Println(trainer.Predict(alice, sneakers) > trainer.Predict(alice, sandals))
	// Output:
	// true
}
