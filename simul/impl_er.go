// SPDX-License-Identifier: MIT
// Package: graphstat/simul
//
// impl_er.go — Erdős–Rényi samplers: ERNP (edge probability) and
// ERNM (exact edge count).
//
// Canonical models:
//   - ERNP(n,p): every admissible pair is an independent Bernoulli(p) trial.
//     Implemented as the degenerate single-block SBM — one community of
//     size n with a 1×1 probability matrix [[p]] — so ERNP and
//     SBM([n], [[p]]) are identical draw for draw, not merely in law.
//   - ERNM(n,m): exactly m distinct admissible index pairs are chosen
//     uniformly without replacement and assigned the configured weight.
//     Admissible pair counts: n² (directed, loops), n(n+1)/2 (undirected,
//     loops), n(n−1) (directed), n(n−1)/2 (undirected).
//
// Contract:
//   - n ≥ 1, m ≥ 1 (ErrBadSize); p ∈ [0,1] (ErrInvalidProbability via SBM).
//   - m ≤ maxEdges(n, directed, loops) (ErrTooManyEdges).
//   - ERNM always requires an RNG: subset choice is inherently stochastic
//     (ErrNeedRandSource).
//
// Determinism:
//   - ERNP inherits the SBM trial order. ERNM enumerates admissible pairs
//     row-major and applies a partial Fisher–Yates; fixed seed ⇒ identical
//     edge set and weight stream.

package simul

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	methodERNP = "ERNP"
	methodERNM = "ERNM"
)

// ERNP samples an Erdős–Rényi G(n,p) adjacency matrix. The full SBM option
// set applies (weights, degree correction), making the degree-corrected
// Erdős–Rényi model a zero-cost special case.
func ERNP(n int, p float64, opts ...Option) (*mat.Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodERNP, n, ErrBadSize)
	}

	// Delegate to the single-block SBM; labels are all zero and dropped.
	a, _, err := SBM([]int{n}, mat.NewDense(1, 1, []float64{p}), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodERNP, err)
	}

	return a, nil
}

// ERNM samples an Erdős–Rényi G(n,m) adjacency matrix with exactly m edges
// (counting each unordered pair once when undirected).
// Options: Directed(), WithLoops(), WithRand/WithSeed, WithWeight.
func ERNM(n, m int, opts ...Option) (*mat.Dense, error) {
	cfg := newConfig(opts...)

	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodERNM, n, ErrBadSize)
	}
	if m < 1 {
		return nil, fmt.Errorf("%s: m=%d < 1: %w", methodERNM, m, ErrBadSize)
	}

	maxEdges, formula := maxEdgeCount(n, cfg.directed, cfg.loops)
	if m > maxEdges {
		return nil, fmt.Errorf("%s: m=%d exceeds %s=%d: %w",
			methodERNM, m, formula, maxEdges, ErrTooManyEdges)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodERNM, ErrNeedRandSource)
	}

	// Enumerate admissible pairs row-major, then pick m without replacement.
	ps := admissiblePairs(n, cfg.directed, cfg.loops)
	chosen := choosePairs(cfg.rng, ps, m)

	a := mat.NewDense(n, n, nil)
	for _, pr := range chosen {
		v := DefaultEdgeWeight
		if cfg.weight != nil {
			v = cfg.weight.draw(cfg.rng)
		}
		a.Set(pr.r, pr.c, v)
	}

	if !cfg.directed {
		mirrorUpper(a)
	}

	return a, nil
}

// maxEdgeCount returns the number of admissible index pairs together with
// the combinatorial formula used in error messages.
func maxEdgeCount(n int, directed, loops bool) (int, string) {
	switch {
	case directed && loops:
		return n * n, "n²"
	case directed:
		return n * (n - 1), "n(n-1)"
	case loops:
		return n * (n + 1) / 2, "n(n+1)/2"
	default:
		return n * (n - 1) / 2, "n(n-1)/2"
	}
}

// admissiblePairs lists the eligible index pairs in row-major order:
// all ordered pairs for directed graphs (minus the diagonal when loopless),
// upper-triangle pairs for undirected graphs (diagonal per the loops flag).
// Complexity: O(n²) time and space.
func admissiblePairs(n int, directed, loops bool) []pair {
	count, _ := maxEdgeCount(n, directed, loops)
	ps := make([]pair, 0, count)
	for i := 0; i < n; i++ {
		jStart := 0
		if !directed {
			jStart = i
			if !loops {
				jStart = i + 1
			}
		}
		for j := jStart; j < n; j++ {
			if directed && !loops && i == j {
				continue
			}
			ps = append(ps, pair{i, j})
		}
	}

	return ps
}
