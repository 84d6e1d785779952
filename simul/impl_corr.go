// SPDX-License-Identifier: MIT
// Package: graphstat/simul
//
// impl_corr.go — Bernoulli-correlated graph pair sampler.
//
// Canonical model (Lyzinski et al., seeded graph matching):
//   - G1 ~ Bernoulli(P) via the edge sampler.
//   - Conditional matrix: where G1 has an edge, P2 = P + R·(1−P); where it
//     does not, P2 = P·(1−R). G2 ~ Bernoulli(P2).
//   - Marginally G1, G2 ~ Bernoulli(P); cellwise Pearson correlation ≈ R.
//     R → 0 gives independent draws, R → 1 gives G2 = G1.
//
// Contract:
//   - P non-nil and square; R non-nil with the same shape
//     (ErrNilMatrix / ErrNonSquare / ErrDimensionMismatch).
//   - RNG required whenever either stage is stochastic (ErrNeedRandSource).
//
// Determinism: G1's draw stream precedes G2's; fixed seed ⇒ identical pair.
//
// Complexity: O(n²) per graph.

package simul

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const methodSampleEdgesCorr = "SampleEdgesCorr"

// SampleEdgesCorr samples a pair of Bernoulli-correlated graphs from a
// probability matrix p and a cellwise correlation matrix r.
// Options: Directed(), WithLoops(), WithRand/WithSeed.
func SampleEdgesCorr(p, r *mat.Dense, opts ...Option) (*mat.Dense, *mat.Dense, error) {
	cfg := newConfig(opts...)

	n, err := checkSquare(p, methodSampleEdgesCorr, "P")
	if err != nil {
		return nil, nil, err
	}
	if r == nil {
		return nil, nil, fmt.Errorf("%s: R: %w", methodSampleEdgesCorr, ErrNilMatrix)
	}
	if rr, rc := r.Dims(); rr != n || rc != n {
		return nil, nil, fmt.Errorf("%s: R is %d×%d, want %d×%d: %w",
			methodSampleEdgesCorr, rr, rc, n, n, ErrDimensionMismatch)
	}
	// P entries in {0,1} force P2 into {0,1} regardless of R, so only P
	// decides whether the pair is stochastic.
	if cfg.rng == nil && stochasticProbs(p) {
		return nil, nil, fmt.Errorf("%s: %w", methodSampleEdgesCorr, ErrNeedRandSource)
	}

	g1 := sampleEdges(p, cfg)

	// Conditional probabilities given G1, cell by cell.
	p2 := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			pij, rij := p.At(i, j), r.At(i, j)
			if g1.At(i, j) != 0 {
				p2.Set(i, j, pij+rij*(1-pij))
			} else {
				p2.Set(i, j, pij*(1-rij))
			}
		}
	}

	g2 := sampleEdges(p2, cfg)

	return g1, g2, nil
}
