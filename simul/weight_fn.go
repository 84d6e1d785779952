// SPDX-License-Identifier: MIT
// Package: graphstat/simul
//
// weight_fn.go — edge-weight generators and the tagged Weight variant.
//
// Design:
//   • WeightFn draws one weight from an injected RNG; it must be pure with
//     respect to the RNG state so a fixed seed reproduces weight streams.
//   • Weight is a tagged variant {constant | draw}, resolved ONCE during
//     validation. Samplers branch on the tag exactly once per edge instead
//     of re-inspecting a dynamic value inside hot loops.
//   • Constructors validate and panic on meaningless parameters; the draw
//     path itself never panics.

package simul

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultEdgeWeight is the weight assigned to accepted edges when no weight
// policy is configured (binary graphs).
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed. When rng is nil the
// function yields DefaultEdgeWeight as a deterministic fallback; samplers
// reject that combination up front via ErrNeedRandSource, so the fallback
// is never observable through the public surface.
type WeightFn func(rng *rand.Rand) float64

// UniformWeightFn returns a WeightFn sampling uniformly in [lo, hi).
// Panics if lo < 0 or hi < lo.
// Complexity: O(1) per draw.
func UniformWeightFn(lo, hi float64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("simul: UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if hi == lo {
			// Degenerate interval: constant.
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mu, sigma), clipped at
// zero so weights stay non-negative. Panics if sigma < 0.
// Complexity: O(1) per draw.
func NormalWeightFn(mu, sigma float64) WeightFn {
	if sigma < 0 {
		panic(fmt.Sprintf("simul: NormalWeightFn: sigma must be ≥ 0, got %g", sigma))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Max(0, mu+sigma*rng.NormFloat64())
	}
}

// PoissonWeightFn returns a WeightFn sampling from Poisson(lambda), the
// standard choice for count-weighted networks. Panics if lambda <= 0.
// Complexity: O(1) amortized per draw.
func PoissonWeightFn(lambda float64) WeightFn {
	if lambda <= 0 {
		panic(fmt.Sprintf("simul: PoissonWeightFn: lambda must be > 0, got %g", lambda))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		// distuv draws through an exp/rand source; adapt the injected RNG so
		// the whole call stays on one seeded stream.
		p := distuv.Poisson{Lambda: lambda, Src: randSource{rng}}

		return p.Rand()
	}
}

// randSource adapts *math/rand.Rand to the source interface consumed by
// gonum's distuv distributions.
type randSource struct{ r *rand.Rand }

func (s randSource) Uint64() uint64   { return s.r.Uint64() }
func (s randSource) Seed(seed uint64) { s.r.Seed(int64(seed)) }

// Weight is the resolved edge-weight variant: either a constant value or an
// independent per-edge draw. The zero value is not meaningful; construct
// through ConstantWeight or DrawWeight.
type Weight struct {
	constant float64
	fn       WeightFn
	isDraw   bool
}

// ConstantWeight returns a Weight assigning the same value to every
// accepted edge. Panics if value is negative, NaN or infinite.
// Complexity: O(1).
func ConstantWeight(value float64) Weight {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("simul: ConstantWeight: value must be finite and ≥ 0, got %g", value))
	}

	return Weight{constant: value}
}

// DrawWeight returns a Weight drawing an independent value per accepted
// edge from fn. Panics on nil.
// Complexity: O(1).
func DrawWeight(fn WeightFn) Weight {
	if fn == nil {
		panic("simul: DrawWeight(nil)")
	}

	return Weight{fn: fn, isDraw: true}
}

// stochastic reports whether applying the weight consumes randomness.
func (w Weight) stochastic() bool { return w.isDraw }

// draw yields the weight for one accepted edge.
func (w Weight) draw(rng *rand.Rand) float64 {
	if w.isDraw {
		return w.fn(rng)
	}

	return w.constant
}

// sameKindAndValue reports whether two weights are interchangeable for the
// undirected symmetry check: both constants with equal values, or both
// draw variants. Draw functions cannot be compared in Go; the check is
// therefore structural for them (documented in SBM).
func (w Weight) sameKindAndValue(o Weight) bool {
	if w.isDraw != o.isDraw {
		return false
	}
	if w.isDraw {
		return true
	}

	return w.constant == o.constant
}
