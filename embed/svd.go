// SPDX-License-Identifier: MIT
// Package: graphstat/embed
//
// svd.go — rank-selecting truncated SVD, the numeric primitive behind MASE.
//
// Algorithms:
//   - SVDFull / SVDTruncated: exact thin factorization (gonum mat.SVD),
//     truncated to the requested rank afterwards. Deterministic.
//   - SVDRandomized: Gaussian range sketching with power iterations
//     (Halko, Martinsson & Tropp 2011), the standard fast path for large
//     matrices with slowly decaying spectra. Requires an injected RNG.
//
// Contract:
//   - a non-nil (ErrNilMatrix); 0 ≤ nComponents ≤ min(rows, cols)
//     (ErrBadDimension / ErrDimensionTooLarge).
//   - nComponents == 0 means automatic rank: the exact spectrum is
//     computed and SelectDimension picks the last of nElbows elbows. The
//     automatic path always factorizes exactly — sketching cannot precede
//     rank selection, because the elbow needs the true scree.
//
// Determinism:
//   - Exact paths are fully deterministic. The randomized path is
//     deterministic for a fixed seed (Gaussian draws fill the test matrix
//     column-major per row, i ascending then j ascending).
//
// Complexity:
//   - Exact: O(min(r,c)·r·c). Randomized: O(r·c·l) per pass with sketch
//     width l = k + oversample, nIter+1 passes.

package embed

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const methodSelectSVD = "SelectSVD"

// SelectSVD computes a rank-k truncated singular value decomposition
// a ≈ U·diag(s)·Vᵀ, with U (r×k), s (k, descending) and V (c×k).
// nComponents == 0 selects the rank automatically via SelectDimension.
// Options: WithAlgorithm, WithIterations, WithElbows, WithRand/WithSeed.
func SelectSVD(a mat.Matrix, nComponents int, opts ...Option) (*mat.Dense, []float64, *mat.Dense, error) {
	cfg := newConfig(opts...)

	return selectSVD(a, nComponents, cfg)
}

// selectSVD is the kernel shared with MultipleASE (which resolves its own
// config once and reuses it across both embedding stages).
func selectSVD(a mat.Matrix, nComponents int, cfg config) (*mat.Dense, []float64, *mat.Dense, error) {
	if a == nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", methodSelectSVD, ErrNilMatrix)
	}
	r, c := a.Dims()
	minDim := min(r, c)
	if nComponents < 0 {
		return nil, nil, nil, fmt.Errorf("%s: nComponents=%d: %w", methodSelectSVD, nComponents, ErrBadDimension)
	}
	if nComponents > minDim {
		return nil, nil, nil, fmt.Errorf("%s: nComponents=%d > min(%d,%d): %w",
			methodSelectSVD, nComponents, r, c, ErrDimensionTooLarge)
	}

	// The randomized sketch needs a fixed target rank AND an RNG.
	if cfg.algorithm == SVDRandomized && nComponents > 0 {
		if cfg.rng == nil {
			return nil, nil, nil, fmt.Errorf("%s: randomized algorithm: %w", methodSelectSVD, ErrNeedRandSource)
		}

		return randomizedSVD(a, nComponents, cfg)
	}

	// Exact thin factorization (also the automatic-rank path).
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, nil, nil, fmt.Errorf("%s: %w", methodSelectSVD, ErrSVDFailed)
	}
	values := svd.Values(nil)

	k := nComponents
	if k == 0 {
		elbows, err := SelectDimension(values, cfg.nElbows)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%s: %w", methodSelectSVD, err)
		}
		k = elbows[len(elbows)-1]
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	return truncateFactors(&u, &v, values, k)
}

// randomizedSVD runs the Gaussian range finder with power iterations and
// factorizes the small projected matrix exactly.
func randomizedSVD(a mat.Matrix, k int, cfg config) (*mat.Dense, []float64, *mat.Dense, error) {
	r, c := a.Dims()
	l := k + defaultOversample
	if minDim := min(r, c); l > minDim {
		l = minDim
	}

	// Gaussian test matrix Ω (c×l); fixed fill order for reproducibility.
	omega := mat.NewDense(c, l, nil)
	for i := 0; i < c; i++ {
		for j := 0; j < l; j++ {
			omega.Set(i, j, cfg.rng.NormFloat64())
		}
	}

	// Range sketch Y = A·Ω, orthonormalized into Q.
	y := mat.NewDense(r, l, nil)
	y.Mul(a, omega)
	q := orthonormalize(y)

	// Power iterations sharpen the sketch for slowly decaying spectra;
	// re-orthonormalizing every half-step keeps the basis well conditioned.
	z := mat.NewDense(c, l, nil)
	for it := 0; it < cfg.nIter; it++ {
		z.Mul(a.T(), q)
		qz := orthonormalize(z)
		y.Mul(a, qz)
		q = orthonormalize(y)
	}

	// Project: B = Qᵀ·A is l×c; its exact SVD lifts back through Q.
	b := mat.NewDense(l, c, nil)
	b.Mul(q.T(), a)

	var svd mat.SVD
	if !svd.Factorize(b, mat.SVDThin) {
		return nil, nil, nil, fmt.Errorf("%s: %w", methodSelectSVD, ErrSVDFailed)
	}
	values := svd.Values(nil)

	var ub, vb mat.Dense
	svd.UTo(&ub)
	svd.VTo(&vb)

	u := mat.NewDense(r, l, nil)
	u.Mul(q, &ub)

	return truncateFactors(u, &vb, values, k)
}

// truncateFactors copies the leading k columns of u, v and the leading k
// singular values into fresh matrices (no aliasing into SVD workspaces).
func truncateFactors(u, v *mat.Dense, values []float64, k int) (*mat.Dense, []float64, *mat.Dense, error) {
	ur, _ := u.Dims()
	vr, _ := v.Dims()

	uk := mat.DenseCopyOf(u.Slice(0, ur, 0, k))
	vk := mat.DenseCopyOf(v.Slice(0, vr, 0, k))
	sk := make([]float64, k)
	copy(sk, values[:k])

	return uk, sk, vk, nil
}

// orthonormalize returns an orthonormal basis for the column space of a
// (r×c, r ≥ c) via the thin Q factor of a QR decomposition.
func orthonormalize(a *mat.Dense) *mat.Dense {
	r, c := a.Dims()
	var qr mat.QR
	qr.Factorize(a)
	var q mat.Dense
	qr.QTo(&q)

	return mat.DenseCopyOf(q.Slice(0, r, 0, c))
}
