// SPDX-License-Identifier: MIT
// Package: graphstat/simul
//
// impl_siem.go — structured independent-edge model sampler.
//
// Canonical model:
//   - Every matrix cell (candidate edge) carries an integer community label
//     in 1..K; label 0 is reserved for the diagonal of loopless graphs.
//   - Cells of community k are independent Bernoulli(p[k−1]) trials; an
//     optional per-community weight multiplies accepted edges.
//   - Undirected graphs mirror the upper triangle after sampling.
//
// Contract:
//   - n ≥ 1 (ErrBadSize); edgeComm non-nil, n×n (ErrNilMatrix/ErrNonSquare,
//     ErrDimensionMismatch against n).
//   - Labels must be dense and consecutive: with loops, exactly the values
//     1..K occur; without loops, the diagonal is all zero and the
//     off-diagonal values are exactly 1..K (ErrBadCommunities).
//   - Undirected requires a symmetric edgeComm. The reference
//     implementation only composed the violation message without raising;
//     this sampler raises ErrAsymmetry — silently honoring one triangle of
//     an asymmetric assignment would desynchronize the returned labels
//     from the sampled graph.
//   - p: length 1 (broadcast over all K communities) or length K
//     (ErrDimensionMismatch), entries in [0,1] (ErrInvalidProbability).
//   - Per-community weights: length K (ErrDimensionMismatch).
//   - RNG required unless all probabilities are in {0,1} and no stochastic
//     weights are configured (ErrNeedRandSource).
//
// Determinism:
//   - Communities are processed k = 1..K; within a community, cells are
//     visited row-major. Fixed seed ⇒ identical (A, assignment).
//
// Complexity: O(K·n²) label scans + O(n²) trials.

package simul

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const methodSIEM = "SIEM"

// SIEM samples a structured independent-edge model adjacency matrix and
// returns it together with a defensive copy of the edge-community
// assignment. Options: Directed(), WithLoops(), WithRand/WithSeed,
// WithWeight, WithCommunityWeights.
func SIEM(n int, p []float64, edgeComm [][]int, opts ...Option) (*mat.Dense, [][]int, error) {
	cfg := newConfig(opts...)

	if n < 1 {
		return nil, nil, fmt.Errorf("%s: n=%d < 1: %w", methodSIEM, n, ErrBadSize)
	}

	k, err := checkEdgeComm(edgeComm, n, cfg)
	if err != nil {
		return nil, nil, err
	}

	// Broadcast a single probability over all K communities.
	probs := p
	if len(probs) == 1 {
		probs = make([]float64, k)
		for i := range probs {
			probs[i] = p[0]
		}
	}
	if len(probs) != k {
		return nil, nil, fmt.Errorf("%s: %d probabilities for %d communities: %w",
			methodSIEM, len(probs), k, ErrDimensionMismatch)
	}
	for i, v := range probs {
		if v < 0 || v > 1 {
			return nil, nil, fmt.Errorf("%s: p[%d]=%g not in [0,1]: %w",
				methodSIEM, i, v, ErrInvalidProbability)
		}
	}

	if cfg.commWeights != nil && len(cfg.commWeights) != k {
		return nil, nil, fmt.Errorf("%s: %d weight policies for %d communities: %w",
			methodSIEM, len(cfg.commWeights), k, ErrDimensionMismatch)
	}

	if cfg.rng == nil && siemNeedsRNG(probs, cfg) {
		return nil, nil, fmt.Errorf("%s: %w", methodSIEM, ErrNeedRandSource)
	}

	// End checks, begin simulation: one community at a time, row-major.
	a := mat.NewDense(n, n, nil)
	for comm := 1; comm <= k; comm++ {
		w := communityWeight(cfg, comm-1)
		blockP := probs[comm-1]
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if edgeComm[i][j] != comm {
					continue
				}
				if !bernoulli(cfg.rng, blockP) {
					continue
				}
				v := DefaultEdgeWeight
				if w != nil {
					v = w.draw(cfg.rng)
				}
				a.Set(i, j, v)
			}
		}
	}

	if !cfg.directed {
		mirrorUpper(a)
	}

	return a, copyEdgeComm(edgeComm), nil
}

// checkEdgeComm validates shape, label density and symmetry of the
// assignment matrix, returning the community count K.
func checkEdgeComm(edgeComm [][]int, n int, cfg config) (int, error) {
	if edgeComm == nil {
		return 0, fmt.Errorf("%s: edgeComm: %w", methodSIEM, ErrNilMatrix)
	}
	if len(edgeComm) != n {
		return 0, fmt.Errorf("%s: edgeComm has %d rows, want %d: %w",
			methodSIEM, len(edgeComm), n, ErrDimensionMismatch)
	}
	for i, row := range edgeComm {
		if len(row) != n {
			return 0, fmt.Errorf("%s: edgeComm row %d has %d entries, want %d: %w",
				methodSIEM, i, len(row), n, ErrNonSquare)
		}
	}

	// Collect the label set and extrema.
	seen := make(map[int]bool)
	k := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			label := edgeComm[i][j]
			if label < 0 {
				return 0, fmt.Errorf("%s: edgeComm[%d][%d]=%d is negative: %w",
					methodSIEM, i, j, label, ErrBadCommunities)
			}
			if cfg.loops {
				if label == 0 {
					return 0, fmt.Errorf("%s: edgeComm[%d][%d]=0 but labels must cover 1..K when loops are allowed: %w",
						methodSIEM, i, j, ErrBadCommunities)
				}
			} else {
				if i == j && label != 0 {
					return 0, fmt.Errorf("%s: loopless graph but edgeComm[%d][%d]=%d on the diagonal: %w",
						methodSIEM, i, i, label, ErrBadCommunities)
				}
				if i != j && label == 0 {
					return 0, fmt.Errorf("%s: off-diagonal edgeComm[%d][%d]=0, labels must cover 1..K: %w",
						methodSIEM, i, j, ErrBadCommunities)
				}
			}
			seen[label] = true
			if label > k {
				k = label
			}
		}
	}
	if k == 0 {
		return 0, fmt.Errorf("%s: edgeComm assigns no community: %w", methodSIEM, ErrBadCommunities)
	}
	// Dense, consecutive numbering 1..K.
	for label := 1; label <= k; label++ {
		if !seen[label] {
			return 0, fmt.Errorf("%s: community %d missing, labels must be consecutive 1..%d: %w",
				methodSIEM, label, k, ErrBadCommunities)
		}
	}

	// Undirected: the assignment itself must be symmetric.
	if !cfg.directed {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if edgeComm[i][j] != edgeComm[j][i] {
					return 0, fmt.Errorf("%s: undirected requested but edgeComm[%d][%d]=%d ≠ edgeComm[%d][%d]=%d: %w",
						methodSIEM, i, j, edgeComm[i][j], j, i, edgeComm[j][i], ErrAsymmetry)
				}
			}
		}
	}

	return k, nil
}

// communityWeight resolves the weight policy for community index k0 (zero
// based): the per-community slice wins, then the global policy, then nil.
func communityWeight(cfg config, k0 int) *Weight {
	if cfg.commWeights != nil {
		return &cfg.commWeights[k0]
	}

	return cfg.weight
}

// siemNeedsRNG reports whether the call consumes randomness.
func siemNeedsRNG(probs []float64, cfg config) bool {
	for _, v := range probs {
		if v > 0 && v < 1 {
			return true
		}
	}
	if cfg.weight != nil && cfg.weight.stochastic() {
		return true
	}
	for _, w := range cfg.commWeights {
		if w.stochastic() {
			return true
		}
	}

	return false
}

// copyEdgeComm deep-copies the assignment so the caller's slice and the
// returned labels share no storage.
func copyEdgeComm(edgeComm [][]int) [][]int {
	cp := make([][]int, len(edgeComm))
	for i, row := range edgeComm {
		cp[i] = make([]int, len(row))
		copy(cp[i], row)
	}

	return cp
}
