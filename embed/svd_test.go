package embed_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstat/embed"
)

// rankTwoMatrix builds an 8×6 matrix of exact rank 2 with well-separated
// singular values.
func rankTwoMatrix() *mat.Dense {
	u := mat.NewDense(8, 2, nil)
	v := mat.NewDense(6, 2, nil)
	for i := 0; i < 8; i++ {
		u.Set(i, 0, float64(i+1))
		u.Set(i, 1, float64((i*3)%7)-3)
	}
	for j := 0; j < 6; j++ {
		v.Set(j, 0, float64(6-j))
		v.Set(j, 1, float64((j*5)%4)-1.5)
	}
	a := mat.NewDense(8, 6, nil)
	a.Mul(u, v.T())

	return a
}

// reconstruct forms U·diag(s)·Vᵀ.
func reconstruct(u *mat.Dense, s []float64, v *mat.Dense) *mat.Dense {
	ur, k := u.Dims()
	vr, _ := v.Dims()

	us := mat.NewDense(ur, k, nil)
	for j := 0; j < k; j++ {
		for i := 0; i < ur; i++ {
			us.Set(i, j, u.At(i, j)*s[j])
		}
	}
	out := mat.NewDense(ur, vr, nil)
	out.Mul(us, v.T())

	return out
}

func TestSelectSVD_ExactRecoversLowRank(t *testing.T) {
	a := rankTwoMatrix()

	u, s, v, err := embed.SelectSVD(a, 2)
	require.NoError(t, err)

	ur, uc := u.Dims()
	require.Equal(t, 8, ur)
	require.Equal(t, 2, uc)
	vr, vc := v.Dims()
	require.Equal(t, 6, vr)
	require.Equal(t, 2, vc)
	require.Len(t, s, 2)
	require.Greater(t, s[0], s[1])
	require.Greater(t, s[1], 0.0)

	// Rank-2 input: the rank-2 factorization reconstructs it exactly
	// (up to floating-point noise).
	require.True(t, mat.EqualApprox(a, reconstruct(u, s, v), 1e-8))
}

func TestSelectSVD_AutomaticRankViaElbow(t *testing.T) {
	// Exact rank 2 means the scree collapses after the second value; the
	// automatic rank must not exceed the true rank.
	u, s, _, err := embed.SelectSVD(rankTwoMatrix(), 0)
	require.NoError(t, err)

	_, k := u.Dims()
	require.Equal(t, len(s), k)
	require.LessOrEqual(t, k, 2)
	require.GreaterOrEqual(t, k, 1)
}

func TestSelectSVD_RandomizedMatchesExactOnLowRank(t *testing.T) {
	a := rankTwoMatrix()

	u, s, v, err := embed.SelectSVD(a, 2,
		embed.WithAlgorithm(embed.SVDRandomized), embed.WithSeed(12))
	require.NoError(t, err)

	// The sketch captures an exact-rank-2 range perfectly, so the
	// reconstruction matches the input.
	require.True(t, mat.EqualApprox(a, reconstruct(u, s, v), 1e-6))

	_, sExact, _, err := embed.SelectSVD(a, 2)
	require.NoError(t, err)
	require.InDelta(t, sExact[0], s[0], 1e-6)
	require.InDelta(t, sExact[1], s[1], 1e-6)
}

func TestSelectSVD_RandomizedSeededReproducibility(t *testing.T) {
	a := rankTwoMatrix()

	u1, s1, _, err := embed.SelectSVD(a, 2,
		embed.WithAlgorithm(embed.SVDRandomized), embed.WithSeed(5))
	require.NoError(t, err)
	u2, s2, _, err := embed.SelectSVD(a, 2,
		embed.WithAlgorithm(embed.SVDRandomized), embed.WithSeed(5))
	require.NoError(t, err)

	require.Equal(t, s1, s2)
	require.True(t, mat.Equal(u1, u2))
}

func TestSelectSVD_OrthonormalColumns(t *testing.T) {
	u, _, _, err := embed.SelectSVD(rankTwoMatrix(), 2)
	require.NoError(t, err)

	var gram mat.Dense
	gram.Mul(u.T(), u)
	require.True(t, mat.EqualApprox(&gram, mat.NewDiagDense(2, []float64{1, 1}), 1e-10))
}

func TestSelectSVD_Errors(t *testing.T) {
	a := rankTwoMatrix()

	_, _, _, err := embed.SelectSVD(nil, 2)
	require.True(t, errors.Is(err, embed.ErrNilMatrix))

	_, _, _, err = embed.SelectSVD(a, -1)
	require.True(t, errors.Is(err, embed.ErrBadDimension))

	_, _, _, err = embed.SelectSVD(a, 7) // min(8,6) = 6
	require.True(t, errors.Is(err, embed.ErrDimensionTooLarge))

	_, _, _, err = embed.SelectSVD(a, 2, embed.WithAlgorithm(embed.SVDRandomized))
	require.True(t, errors.Is(err, embed.ErrNeedRandSource))
}
