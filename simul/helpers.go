// SPDX-License-Identifier: MIT
// Package: graphstat/simul
//
// helpers.go — deterministic matrix and index utilities shared by the
// samplers: triangle mirroring, diagonal zeroing, block index arithmetic
// and without-replacement choice. All loop orders are fixed (row-major,
// ascending) so sampled graphs are reproducible for a fixed seed.

package simul

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// mirrorUpper copies the strict upper triangle onto the lower triangle,
// making a symmetric: a[j][i] = a[i][j] for i < j. This is the "triu"
// symmetrization of the undirected samplers — a single draw governs both
// directions of every unordered pair, and anything written below the
// diagonal is discarded.
// Complexity: O(n²).
func mirrorUpper(a *mat.Dense) {
	n, _ := a.Dims()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a.Set(j, i, a.At(i, j))
		}
	}
}

// zeroDiagonal clears self-edges in place.
// Complexity: O(n).
func zeroDiagonal(a *mat.Dense) {
	n, _ := a.Dims()
	for i := 0; i < n; i++ {
		a.Set(i, i, 0)
	}
}

// blockOffsets returns the starting vertex index of each community plus a
// trailing total, so community b occupies [off[b], off[b+1]).
// Complexity: O(K).
func blockOffsets(sizes []int) []int {
	off := make([]int, len(sizes)+1)
	for b, s := range sizes {
		off[b+1] = off[b] + s
	}

	return off
}

// labelsFromSizes expands community sizes into a per-vertex label vector:
// vertices [0, sizes[0]) get label 0, the next sizes[1] get label 1, ...
// Complexity: O(sum(sizes)).
func labelsFromSizes(sizes []int) []int {
	off := blockOffsets(sizes)
	labels := make([]int, off[len(sizes)])
	for b := range sizes {
		for v := off[b]; v < off[b+1]; v++ {
			labels[v] = b
		}
	}

	return labels
}

// pair is one candidate edge (row, col) inside a block's Cartesian product.
type pair struct{ r, c int }

// blockPairs enumerates the Cartesian product of two communities' vertex
// ranges in row-major order (r ascending, then c ascending) — the fixed
// trial order of the SBM block loop.
// Complexity: O(|ri|·|rj|) time and space.
func blockPairs(r0, r1, c0, c1 int) []pair {
	ps := make([]pair, 0, (r1-r0)*(c1-c0))
	for r := r0; r < r1; r++ {
		for c := c0; c < c1; c++ {
			ps = append(ps, pair{r, c})
		}
	}

	return ps
}

// choosePairs picks m distinct elements of ps uniformly without replacement
// via a partial Fisher–Yates shuffle. ps is mutated (prefix holds the
// selection). Requires 0 ≤ m ≤ len(ps); callers enforce the bound.
// Complexity: O(m) swaps.
func choosePairs(rng *rand.Rand, ps []pair, m int) []pair {
	for k := 0; k < m; k++ {
		j := k + rng.Intn(len(ps)-k)
		ps[k], ps[j] = ps[j], ps[k]
	}

	return ps[:m]
}

// weightedChoice picks m distinct indices of ps without replacement, with
// per-index probability proportional to w. Chosen entries have their weight
// zeroed so they cannot repeat. Requires m ≤ #{w > 0}; callers cap m first.
//
// Determinism: one uniform draw per pick walks the running prefix sums in
// index order, so a fixed seed reproduces the selection.
// Complexity: O(m·len(ps)) — block products are small relative to total
// sampling cost, so the simple scan beats maintaining a Fenwick tree here.
func weightedChoice(rng *rand.Rand, ps []pair, w []float64, m int) []pair {
	total := 0.0
	for _, wi := range w {
		total += wi
	}

	chosen := make([]pair, 0, m)
	for k := 0; k < m; k++ {
		u := rng.Float64() * total
		acc := 0.0
		pick := -1
		for i, wi := range w {
			if wi <= 0 {
				continue
			}
			acc += wi
			if u < acc {
				pick = i
				break
			}
		}
		// Floating-point slack: fall back to the last positive-weight index.
		if pick < 0 {
			for i := len(w) - 1; i >= 0; i-- {
				if w[i] > 0 {
					pick = i
					break
				}
			}
		}
		chosen = append(chosen, ps[pick])
		total -= w[pick]
		w[pick] = 0
	}

	return chosen
}
