package simul_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstat/simul"
)

// ExampleSBM demonstrates a planted two-community graph with degenerate
// block probabilities: edges within a community are certain, edges across
// never occur, so the draw is fully determined.
func ExampleSBM() {
	p := mat.NewDense(2, 2, []float64{
		1, 0,
		0, 1,
	})

	a, labels, _ := simul.SBM([]int{2, 3}, p)

	fmt.Println("labels:", labels)
	fmt.Println("0-1 within:", a.At(0, 1))
	fmt.Println("0-2 across:", a.At(0, 2))
	// Output:
	// labels: [0 0 1 1 1]
	// 0-1 within: 1
	// 0-2 across: 0
}

// ExampleERNM samples a graph with an exact edge budget; the count is a
// hard guarantee, not an expectation.
func ExampleERNM() {
	a, _ := simul.ERNM(6, 5, simul.WithSeed(42))

	edges := 0
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			if a.At(i, j) != 0 {
				edges++
			}
		}
	}
	fmt.Println("edges:", edges)
	// Output:
	// edges: 5
}

// ExamplePFromLatent turns latent positions into connection probabilities:
// P = X·Xᵀ with the diagonal removed for loopless graphs.
func ExamplePFromLatent() {
	x := mat.NewDense(3, 2, []float64{
		0.5, 0.5,
		0.5, 0.0,
		0.0, 0.5,
	})

	p, _ := simul.PFromLatent(x, nil)

	fmt.Println("P[0,1]:", p.At(0, 1))
	fmt.Println("P[1,2]:", p.At(1, 2))
	fmt.Println("P[0,0]:", p.At(0, 0))
	// Output:
	// P[0,1]: 0.25
	// P[1,2]: 0
	// P[0,0]: 0
}
