// SPDX-License-Identifier: MIT
// Package: graphstat/embed
//
// augment.go — degree-based diagonal augmentation.
//
// Spectral embeddings of loopless graphs inherit a bias from the zero
// diagonal; replacing it with a degree-derived value is the standard
// correction. Each diagonal entry becomes
//
//	d_i = ((in-degree_i + out-degree_i) / 2) / (n − 1)
//
// where degrees are weighted row/column sums excluding the diagonal. For
// symmetric input the two degrees coincide and d_i is the mean weight of
// vertex i's incident edges.

package embed

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// AugmentDiagonal returns a copy of g with its diagonal replaced by the
// normalized mean degree. g must be square with at least 2 vertices; the
// input is never mutated.
// Complexity: O(n²).
func AugmentDiagonal(g *mat.Dense) (*mat.Dense, error) {
	const method = "AugmentDiagonal"

	if g == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilMatrix)
	}
	n, c := g.Dims()
	if n != c {
		return nil, fmt.Errorf("%s: matrix is %d×%d: %w", method, n, c, ErrNonSquare)
	}
	if n < 2 {
		return nil, fmt.Errorf("%s: need at least 2 vertices, got %d: %w", method, n, ErrBadDimension)
	}

	out := mat.DenseCopyOf(g)
	divisor := float64(n - 1)
	for i := 0; i < n; i++ {
		outDeg, inDeg := 0.0, 0.0
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			outDeg += g.At(i, j)
			inDeg += g.At(j, i)
		}
		out.Set(i, i, (outDeg+inDeg)/2/divisor)
	}

	return out, nil
}
