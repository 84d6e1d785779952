// SPDX-License-Identifier: MIT
// Package: graphstat/embed
//
// elbow.go — automatic rank selection from a scree plot of singular values
// via the Zhu & Ghodsi (2006) profile-likelihood method.
//
// Canonical model:
//   - Sort the positive singular values in descending order.
//   - For every split point q, model the head d[:q] and tail d[q:] as two
//     Normal populations sharing one pooled variance; the split maximizing
//     the total log-likelihood is the elbow.
//   - Successive elbows repeat the procedure on the tail beyond the
//     previous elbow; ranks are reported 1-indexed and cumulative.
//
// Contract:
//   - nElbows ≥ 1 (ErrBadDimension).
//   - At least one strictly positive value (ErrNoElbow). Non-positive
//     values never contribute to rank.
//   - Fewer elbows than requested may be returned when the tail runs out;
//     that is a property of the input, not an error.
//
// Determinism: pure function of the value multiset. Complexity: O(m²) per
// elbow over m values — spectra here are short (≤ ⌈log₂ n⌉), so the
// quadratic scan is irrelevant next to the SVDs that produced them.

package embed

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// degenerateSigma floors the pooled standard deviation so that constant
// spectra keep a finite log-likelihood instead of collapsing to ±Inf.
const degenerateSigma = 1e-12

// SelectDimension locates up to nElbows successive elbows in the scree
// plot of values and returns their 1-indexed ranks in ascending order.
// The last entry is the conventional choice of embedding dimension.
func SelectDimension(values []float64, nElbows int) ([]int, error) {
	const method = "SelectDimension"

	if nElbows < 1 {
		return nil, fmt.Errorf("%s: nElbows=%d: %w", method, nElbows, ErrBadDimension)
	}

	// Positive values only, descending.
	vals := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("%s: no positive singular values: %w", method, ErrNoElbow)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))

	elbows := make([]int, 0, nElbows)
	offset := 0
	rem := vals
	for e := 0; e < nElbows && len(rem) > 0; e++ {
		if len(rem) == 1 {
			elbows = append(elbows, offset+1)
			break
		}
		idx := profileLikelihoodSplit(rem)
		elbows = append(elbows, offset+idx)
		offset += idx
		rem = rem[idx:]
	}

	return elbows, nil
}

// profileLikelihoodSplit returns the 1-indexed split point of d (sorted
// descending, len ≥ 2) maximizing the two-population Normal likelihood
// with pooled variance.
func profileLikelihoodSplit(d []float64) int {
	n := len(d)
	best, bestLL := 1, math.Inf(-1)

	for q := 1; q <= n; q++ {
		head, tail := d[:q], d[q:]

		mu1 := stat.Mean(head, nil)
		ss := sumSquaredDev(head, mu1)
		mu2 := 0.0
		if len(tail) > 0 {
			mu2 = stat.Mean(tail, nil)
			ss += sumSquaredDev(tail, mu2)
		}

		// Pooled variance; one dof for mu1, one more for mu2 when the tail
		// is non-empty.
		dof := n - 1
		if q < n {
			dof--
		}
		sigma := degenerateSigma
		if dof > 0 {
			if s := math.Sqrt(ss / float64(dof)); s > sigma {
				sigma = s
			}
		}

		headDist := distuv.Normal{Mu: mu1, Sigma: sigma}
		tailDist := distuv.Normal{Mu: mu2, Sigma: sigma}
		ll := 0.0
		for _, v := range head {
			ll += headDist.LogProb(v)
		}
		for _, v := range tail {
			ll += tailDist.LogProb(v)
		}

		if ll > bestLL {
			bestLL, best = ll, q
		}
	}

	return best
}

// sumSquaredDev accumulates Σ(x−mu)².
func sumSquaredDev(xs []float64, mu float64) float64 {
	ss := 0.0
	for _, x := range xs {
		dev := x - mu
		ss += dev * dev
	}

	return ss
}
