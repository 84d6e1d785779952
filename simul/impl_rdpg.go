// SPDX-License-Identifier: MIT
// Package: graphstat/simul
//
// impl_rdpg.go — random dot product graph: probability matrix from latent
// positions, then Bernoulli sampling with optional edge weights.
//
// Canonical model:
//   - P = X·Yᵀ where X (and optionally Y, defaulting to X) hold one latent
//     position per row; inner products approximate connection probability.
//   - Loopless: the diagonal is zeroed BEFORE any probability policy runs,
//     which can change the rescale result (the diagonal no longer competes
//     for the minimum/maximum).
//   - Probability policies (mutually exclusive, selected by WithRescale):
//     clip (default): entries outside [0,1] are clamped;
//     rescale: subtract the minimum if negative, then divide by the
//     maximum if above 1 — an affine map preserving relative structure.
//
// Contract:
//   - X non-nil (ErrNilMatrix); X and Y share one shape
//     (ErrDimensionMismatch). Any n×d shape is accepted, d ≥ 1.
//   - RDPG weighting: a constant multiplies the whole binary matrix; a
//     draw variant replaces each currently-nonzero cell with an
//     independent draw, row-major. Draw weights on an undirected graph
//     are drawn per cell, so weighted symmetry is NOT guaranteed — only
//     the binary support is symmetric. Use a constant weight when exact
//     weighted symmetry matters.
//
// Determinism: fixed seed ⇒ identical P, support and weight stream.
//
// Complexity: O(n²·d) for the product, O(n²) for sampling.

package simul

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	methodPFromLatent = "PFromLatent"
	methodRDPG        = "RDPG"
)

// PFromLatent computes the connection-probability matrix P = X·Yᵀ from
// latent positions. A nil y means Y = X (symmetric model).
// Options: WithLoops(), WithRescale().
func PFromLatent(x, y *mat.Dense, opts ...Option) (*mat.Dense, error) {
	cfg := newConfig(opts...)

	return pFromLatent(x, y, cfg)
}

// pFromLatent is the validated kernel shared with RDPG.
func pFromLatent(x, y *mat.Dense, cfg config) (*mat.Dense, error) {
	if x == nil {
		return nil, fmt.Errorf("%s: X: %w", methodPFromLatent, ErrNilMatrix)
	}
	if y == nil {
		y = x
	}
	xr, xc := x.Dims()
	yr, yc := y.Dims()
	if xr != yr || xc != yc {
		return nil, fmt.Errorf("%s: X is %d×%d, Y is %d×%d: %w",
			methodPFromLatent, xr, xc, yr, yc, ErrDimensionMismatch)
	}

	p := mat.NewDense(xr, xr, nil)
	p.Mul(x, y.T())

	// Diagonal removal precedes the probability policy on purpose; see the
	// file header.
	if !cfg.loops {
		zeroDiagonal(p)
	}

	if cfg.rescale {
		if minV := mat.Min(p); minV < 0 {
			applyShift(p, -minV)
		}
		if maxV := mat.Max(p); maxV > 1 {
			p.Scale(1/maxV, p)
		}
	} else {
		clip01(p)
	}

	return p, nil
}

// RDPG samples a random dot product graph from latent positions: P via
// PFromLatent, a binary graph via the edge sampler, then the configured
// weight policy over the sampled support.
// Options: Directed(), WithLoops(), WithRescale(), WithRand/WithSeed,
// WithWeight.
func RDPG(x, y *mat.Dense, opts ...Option) (*mat.Dense, error) {
	cfg := newConfig(opts...)

	p, err := pFromLatent(x, y, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRDPG, err)
	}

	needRNG := stochasticProbs(p) || (cfg.weight != nil && cfg.weight.stochastic())
	if cfg.rng == nil && needRNG {
		return nil, fmt.Errorf("%s: %w", methodRDPG, ErrNeedRandSource)
	}

	a := sampleEdges(p, cfg)

	switch {
	case cfg.weight == nil:
		// Binary graph.
	case cfg.weight.stochastic():
		// Independent draw per nonzero cell, row-major.
		n, _ := a.Dims()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if a.At(i, j) != 0 {
					a.Set(i, j, cfg.weight.draw(cfg.rng))
				}
			}
		}
	default:
		// Constant multiply; zeros stay zero.
		a.Scale(cfg.weight.draw(nil), a)
	}

	return a, nil
}

// applyShift adds s to every entry in place.
func applyShift(m *mat.Dense, s float64) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, m.At(i, j)+s)
		}
	}
}

// clip01 clamps every entry into [0,1] in place.
func clip01(m *mat.Dense) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			switch v := m.At(i, j); {
			case v < 0:
				m.Set(i, j, 0)
			case v > 1:
				m.Set(i, j, 1)
			}
		}
	}
}
