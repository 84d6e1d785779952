package embed_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstat/embed"
)

// ExampleSelectDimension locates the elbow of a scree plot: three dominant
// singular values followed by a sharp drop yield rank 3.
func ExampleSelectDimension() {
	values := []float64{100, 99, 98, 1, 0.9, 0.8}

	elbows, _ := embed.SelectDimension(values, 1)

	fmt.Println("elbow:", elbows[0])
	// Output:
	// elbow: 3
}

// ExampleAugmentDiagonal replaces the zero diagonal of a loopless graph
// with each vertex's mean incident weight.
func ExampleAugmentDiagonal() {
	g := mat.NewDense(3, 3, []float64{
		0, 1, 1,
		1, 0, 0,
		1, 0, 0,
	})

	out, _ := embed.AugmentDiagonal(g)

	fmt.Println(out.At(0, 0), out.At(1, 1), out.At(2, 2))
	// Output:
	// 1 0.5 0.5
}

// ExampleMultipleASE embeds a pair of graphs into one shared latent space.
func ExampleMultipleASE() {
	g := mat.NewDense(4, 4, []float64{
		0, 1, 1, 0,
		1, 0, 1, 0,
		1, 1, 0, 1,
		0, 0, 1, 0,
	})

	m := embed.NewMultipleASE(embed.WithComponents(2))
	_ = m.Fit([]*mat.Dense{g, g})

	u, _ := m.LatentLeft()
	r, c := u.Dims()
	fmt.Printf("latent positions: %d×%d, directed: %v\n", r, c, m.Directed())
	// Output:
	// latent positions: 4×2, directed: false
}
