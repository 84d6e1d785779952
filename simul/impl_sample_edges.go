// SPDX-License-Identifier: MIT
// Package: graphstat/simul
//
// impl_sample_edges.go — Bernoulli edge sampler over a probability matrix.
//
// Canonical model:
//   - A[i,j] ~ Bernoulli(P[i,j]) independently per ordered pair (directed).
//   - Undirected: only the upper triangle (diagonal included) is drawn and
//     mirrored, so ONE draw governs both A[i,j] and A[j,i]. This is a
//     consistency guarantee, not only a cost saving: a symmetric matrix can
//     never be produced "by accident" from two disagreeing draws.
//   - Loopless: the diagonal is zeroed after sampling.
//
// Contract:
//   - P non-nil and square (ErrNilMatrix / ErrNonSquare). Entries are NOT
//     range-checked at this layer: parametric callers validate their own
//     specifications, and P arising from latent positions is already
//     clipped/rescaled by PFromLatent.
//   - RNG required whenever any entry lies strictly inside (0,1); entries
//     exactly 0 or 1 keep the call deterministic (ErrNeedRandSource).
//
// Determinism:
//   - Trial order is row-major: i ascending, j ascending (j ≥ i when
//     undirected). Fixed seed ⇒ identical adjacency matrix.
//
// Complexity: O(n²) trials, O(n²) result space.

package simul

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

const methodSampleEdges = "SampleEdges"

// SampleEdges draws a binary adjacency matrix from the probability matrix p.
// Structural options: Directed(), WithLoops(), WithRand/WithSeed.
func SampleEdges(p *mat.Dense, opts ...Option) (*mat.Dense, error) {
	cfg := newConfig(opts...)

	if _, err := checkSquare(p, methodSampleEdges, "P"); err != nil {
		return nil, err
	}
	if cfg.rng == nil && stochasticProbs(p) {
		return nil, fmt.Errorf("%s: %w", methodSampleEdges, ErrNeedRandSource)
	}

	return sampleEdges(p, cfg), nil
}

// sampleEdges is the validated kernel shared with RDPG and SampleEdgesCorr.
// Callers guarantee squareness and RNG presence for stochastic input.
func sampleEdges(p *mat.Dense, cfg config) *mat.Dense {
	n, _ := p.Dims()
	a := mat.NewDense(n, n, nil)

	if cfg.directed {
		// Directed: every ordered pair is an independent trial.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if bernoulli(cfg.rng, p.At(i, j)) {
					a.Set(i, j, 1)
				}
			}
		}
	} else {
		// Undirected: draw the upper triangle (diagonal included), mirror.
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				if bernoulli(cfg.rng, p.At(i, j)) {
					a.Set(i, j, 1)
				}
			}
		}
		mirrorUpper(a)
	}

	if !cfg.loops {
		zeroDiagonal(a)
	}

	return a
}

// bernoulli performs one trial with success probability p. With a nil RNG
// only degenerate probabilities reach this point (validated upstream), so
// the comparison stays exact: p ≥ 1 always fires, p ≤ 0 never does. With an
// RNG, u ∈ [0,1) makes u < p a correct Bernoulli(p) for p ∈ [0,1] inclusive.
func bernoulli(rng *rand.Rand, p float64) bool {
	if rng == nil {
		return p >= 1
	}

	return rng.Float64() < p
}
