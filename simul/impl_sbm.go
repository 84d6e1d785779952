// SPDX-License-Identifier: MIT
// Package: graphstat/simul
//
// impl_sbm.go — stochastic block model sampler, optionally degree-corrected.
//
// Canonical model:
//   - K communities of given sizes; vertices are numbered block-major, so
//     community b occupies the contiguous index range [off[b], off[b+1]).
//   - p[i,j] is the Bernoulli parameter for edges between communities i, j.
//   - For every (ordered if directed, else i ≤ j) community pair, the block
//     loop enumerates the Cartesian product of the two vertex ranges in
//     row-major order and performs one uniform trial per candidate pair.
//   - Degree correction: the number of accepted trials becomes an edge
//     BUDGET, re-spent without replacement over the same candidate pairs
//     with probability proportional to dcProbs[u]·dcProbs[v]. A budget
//     exceeding the nonzero-weight support is truncated with a warning.
//   - Post-processing: zero the diagonal when loopless, then mirror the
//     upper triangle when undirected. Candidate trials below the diagonal
//     of undirected diagonal blocks are drawn and discarded by the mirror —
//     the trial stream depends only on (sizes, p, options), never on
//     interleaved acceptance state.
//
// Contract:
//   - sizes non-empty, all ≥ 1 (ErrBadSize).
//   - p non-nil, K×K (ErrNilMatrix / ErrDimensionMismatch), entries in
//     [0,1] (ErrInvalidProbability).
//   - Undirected: p must be exactly symmetric, and any per-block weight
//     table symmetric in kind and constant value (ErrAsymmetry). Draw-
//     variant weight functions cannot be compared and are accepted
//     structurally.
//   - RNG required unless the call is fully degenerate: all p in {0,1},
//     no degree correction, no stochastic weights (ErrNeedRandSource).
//
// Determinism:
//   - Block order: i ascending, then j ascending. Within a block: row-major
//     candidate order, uniforms first, degree-corrected choice second,
//     weight draws third. Fixed seed ⇒ identical (A, labels).
//
// Complexity: O(n_total²) trials; degree-corrected blocks add O(m·|block|)
// for the without-replacement choice.

package simul

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const methodSBM = "SBM"

// SBM samples a stochastic block model adjacency matrix together with the
// per-vertex community labels (zero-indexed, block-declaration order).
// Options: Directed(), WithLoops(), WithRand/WithSeed, WithWeight,
// WithBlockWeights, WithDegreeCorrection, WithWarnHandler.
func SBM(sizes []int, p *mat.Dense, opts ...Option) (*mat.Dense, []int, error) {
	cfg := newConfig(opts...)

	// 1) Sizes.
	if err := checkSizes(sizes, methodSBM); err != nil {
		return nil, nil, err
	}
	k := len(sizes)

	// 2) Probability matrix: nil, shape, range.
	if p == nil {
		return nil, nil, fmt.Errorf("%s: p: %w", methodSBM, ErrNilMatrix)
	}
	if pr, pc := p.Dims(); pr != k || pc != k {
		return nil, nil, fmt.Errorf("%s: p is %d×%d, want %d×%d: %w",
			methodSBM, pr, pc, k, k, ErrDimensionMismatch)
	}
	if err := checkProbRange(p, methodSBM, "p"); err != nil {
		return nil, nil, err
	}

	// 3) Per-block weight table shape.
	if cfg.blockWeights != nil {
		if len(cfg.blockWeights) != k {
			return nil, nil, fmt.Errorf("%s: weight table has %d rows, want %d: %w",
				methodSBM, len(cfg.blockWeights), k, ErrDimensionMismatch)
		}
		for i, row := range cfg.blockWeights {
			if len(row) != k {
				return nil, nil, fmt.Errorf("%s: weight table row %d has %d entries, want %d: %w",
					methodSBM, i, len(row), k, ErrDimensionMismatch)
			}
		}
	}

	// 4) Undirected symmetry of the specification.
	if !cfg.directed {
		if !exactlySymmetric(p) {
			return nil, nil, fmt.Errorf("%s: undirected requested but p is directed: %w",
				methodSBM, ErrAsymmetry)
		}
		if cfg.blockWeights != nil {
			for i := 0; i < k; i++ {
				for j := i + 1; j < k; j++ {
					if !cfg.blockWeights[i][j].sameKindAndValue(cfg.blockWeights[j][i]) {
						return nil, nil, fmt.Errorf("%s: undirected requested but weight table is directed at (%d,%d): %w",
							methodSBM, i, j, ErrAsymmetry)
					}
				}
			}
		}
	}

	// 5) RNG presence before any draw happens.
	if cfg.rng == nil && sbmNeedsRNG(p, cfg) {
		return nil, nil, fmt.Errorf("%s: %w", methodSBM, ErrNeedRandSource)
	}

	// 6) Degree correction → one per-vertex weight vector.
	var dcProbs []float64
	if cfg.dc != nil {
		var err error
		if dcProbs, err = cfg.dc.resolve(sizes, cfg); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", methodSBM, err)
		}
	}

	// End checks, begin simulation.
	off := blockOffsets(sizes)
	total := off[k]
	a := mat.NewDense(total, total, nil)

	for i := 0; i < k; i++ {
		jStart := 0
		if !cfg.directed {
			jStart = i
		}
		for j := jStart; j < k; j++ {
			sampleBlock(a, cfg, p.At(i, j), blockWeight(cfg, i, j),
				blockPairs(off[i], off[i+1], off[j], off[j+1]), dcProbs)
		}
	}

	if !cfg.loops {
		zeroDiagonal(a)
	}
	if !cfg.directed {
		mirrorUpper(a)
	}

	return a, labelsFromSizes(sizes), nil
}

// sampleBlock runs the trials of one community pair and writes accepted
// edges (with their weights) into a. ps is consumed.
func sampleBlock(a *mat.Dense, cfg config, blockP float64, w *Weight, ps []pair, dcProbs []float64) {
	var accepted []pair
	if dcProbs != nil {
		// Budget: plain Bernoulli acceptance count over the candidates.
		budget := 0
		for range ps {
			if bernoulli(cfg.rng, blockP) {
				budget++
			}
		}
		// Joint weights; cap the budget at the nonzero support.
		jw := make([]float64, len(ps))
		support := 0
		for idx, pr := range ps {
			jw[idx] = dcProbs[pr.r] * dcProbs[pr.c]
			if jw[idx] > 0 {
				support++
			}
		}
		if budget > support {
			cfg.warnf(fmt.Sprintf("simul: %d edges requested but only %d nonzero degree-correction pairs, truncating", budget, support))
			budget = support
		}
		accepted = weightedChoice(cfg.rng, ps, jw, budget)
	} else {
		accepted = ps[:0]
		for _, pr := range ps {
			if bernoulli(cfg.rng, blockP) {
				accepted = append(accepted, pr)
			}
		}
	}

	for _, pr := range accepted {
		v := DefaultEdgeWeight
		if w != nil {
			v = w.draw(cfg.rng)
		}
		a.Set(pr.r, pr.c, v)
	}
}

// blockWeight resolves the weight policy for community pair (i,j):
// the per-block table wins, then the global policy, then nil (binary).
func blockWeight(cfg config, i, j int) *Weight {
	if cfg.blockWeights != nil {
		return &cfg.blockWeights[i][j]
	}

	return cfg.weight
}

// sbmNeedsRNG reports whether this SBM call consumes randomness: any
// genuinely stochastic block probability, any degree correction (budget
// trials and the without-replacement choice both draw), or any draw-variant
// weight reachable from the configuration.
func sbmNeedsRNG(p *mat.Dense, cfg config) bool {
	if stochasticProbs(p) || cfg.dc != nil {
		return true
	}
	if cfg.weight != nil && cfg.weight.stochastic() {
		return true
	}
	for _, row := range cfg.blockWeights {
		for _, w := range row {
			if w.stochastic() {
				return true
			}
		}
	}

	return false
}
