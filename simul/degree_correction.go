// SPDX-License-Identifier: MIT
// Package: graphstat/simul
//
// degree_correction.go — tagged degree-correction variant and its
// normalization into a single per-vertex weight vector.
//
// Canonical model (degree-corrected SBM, Qin & Rohe 2013):
//   • Each vertex carries a non-negative weight; within every community the
//     weights sum to 1 and scale the vertex's share of the block's edges.
//   • Three input forms are accepted and normalized up front:
//       DCFunc(fn)      — one generator drawn per vertex;
//       DCVector(w)     — explicit per-vertex weights, length sum(sizes);
//       DCPerBlock(fns) — one generator per community, length K.
//   • Raw vectors whose block sums deviate from 1 are renormalized with a
//     warning (non-fatal). Generator draws are always renormalized silently.
//
// Contract:
//   • Negative weights      → ErrBadDegreeCorrection.
//   • Zero block sum        → ErrBadDegreeCorrection (nothing to normalize).
//   • Wrong vector/fn count → ErrDimensionMismatch.
//   • Generator variants require a non-nil RNG → ErrNeedRandSource.

package simul

import (
	"fmt"
	"math"
)

// dcSumTolerance bounds how far a block's raw weights may stray from 1
// before renormalization triggers a warning.
const dcSumTolerance = 1e-8

// DegreeCorrection is the tagged degree-correction variant. The zero value
// is not meaningful; construct through DCFunc, DCVector or DCPerBlock.
type DegreeCorrection struct {
	fn  WeightFn   // per-vertex generator (kindFunc)
	vec []float64  // explicit per-vertex weights (kindVector)
	fns []WeightFn // per-community generators (kindPerBlock)
}

// DCFunc builds a degree correction that draws one non-negative weight per
// vertex from fn and renormalizes within each community. Panics on nil.
func DCFunc(fn WeightFn) DegreeCorrection {
	if fn == nil {
		panic("simul: DCFunc(nil)")
	}

	return DegreeCorrection{fn: fn}
}

// DCVector builds a degree correction from explicit per-vertex weights.
// The slice is copied; length must equal the total vertex count at
// resolution time. Panics on an empty slice.
func DCVector(w []float64) DegreeCorrection {
	if len(w) == 0 {
		panic("simul: DCVector(empty)")
	}
	cp := make([]float64, len(w))
	copy(cp, w)

	return DegreeCorrection{vec: cp}
}

// DCPerBlock builds a degree correction with one generator per community;
// fns[i] produces the weights of every vertex in community i. Panics on an
// empty slice or any nil element.
func DCPerBlock(fns []WeightFn) DegreeCorrection {
	if len(fns) == 0 {
		panic("simul: DCPerBlock(empty)")
	}
	for i, fn := range fns {
		if fn == nil {
			panic(fmt.Sprintf("simul: DCPerBlock: nil generator at index %d", i))
		}
	}
	cp := make([]WeightFn, len(fns))
	copy(cp, fns)

	return DegreeCorrection{fns: cp}
}

// stochastic reports whether resolving the variant consumes randomness.
func (dc DegreeCorrection) stochastic() bool { return dc.fn != nil || dc.fns != nil }

// resolve normalizes the variant into one per-vertex weight vector of
// length sum(sizes), with weights summing to 1 inside every community.
//
// Implementation:
//   - Stage 1: materialize raw weights per the variant kind.
//   - Stage 2: reject negatives and NaN/Inf.
//   - Stage 3: per community, renormalize to unit sum; explicit vectors
//     whose sums deviate beyond dcSumTolerance raise a warning first.
//
// Determinism:
//   - Vertex order is block-major, index ascending; generator draws follow
//     that order exactly, so a fixed seed reproduces the vector.
//
// Complexity: O(sum(sizes)).
func (dc DegreeCorrection) resolve(sizes []int, cfg config) ([]float64, error) {
	const method = "DegreeCorrection"

	total := 0
	for _, s := range sizes {
		total += s
	}

	// Stage 1: raw weights.
	probs := make([]float64, total)
	switch {
	case dc.fn != nil:
		for v := 0; v < total; v++ {
			probs[v] = dc.fn(cfg.rng)
		}
	case dc.fns != nil:
		if len(dc.fns) != len(sizes) {
			return nil, fmt.Errorf("%s: %d generators for %d communities: %w",
				method, len(dc.fns), len(sizes), ErrDimensionMismatch)
		}
		v := 0
		for b, size := range sizes {
			for i := 0; i < size; i++ {
				probs[v] = dc.fns[b](cfg.rng)
				v++
			}
		}
	case dc.vec != nil:
		if len(dc.vec) != total {
			return nil, fmt.Errorf("%s: vector length %d, want %d vertices: %w",
				method, len(dc.vec), total, ErrDimensionMismatch)
		}
		copy(probs, dc.vec)
	default:
		return nil, fmt.Errorf("%s: empty variant: %w", method, ErrBadDegreeCorrection)
	}

	// Stage 2: domain checks.
	for v, w := range probs {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%s: weight %g at vertex %d: %w",
				method, w, v, ErrBadDegreeCorrection)
		}
	}

	// Stage 3: per-community renormalization.
	offset := 0
	for b, size := range sizes {
		sum := 0.0
		for i := 0; i < size; i++ {
			sum += probs[offset+i]
		}
		if sum <= 0 {
			return nil, fmt.Errorf("%s: community %d weights sum to 0: %w",
				method, b, ErrBadDegreeCorrection)
		}
		// Explicit vectors carry a unit-sum contract; deviation warns.
		if dc.vec != nil && math.Abs(sum-1) > dcSumTolerance {
			cfg.warnf(fmt.Sprintf("simul: degree-correction weights of community %d sum to %g, renormalizing", b, sum))
		}
		for i := 0; i < size; i++ {
			probs[offset+i] /= sum
		}
		offset += size
	}

	return probs, nil
}
