package embed_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstat/embed"
)

func TestAugmentDiagonal_KnownValues(t *testing.T) {
	// Path graph 0—1, 0—2: degrees 2, 1, 1; divisor n−1 = 2.
	g := mat.NewDense(3, 3, []float64{
		0, 1, 1,
		1, 0, 0,
		1, 0, 0,
	})

	out, err := embed.AugmentDiagonal(g)
	require.NoError(t, err)

	require.Equal(t, 1.0, out.At(0, 0))
	require.Equal(t, 0.5, out.At(1, 1))
	require.Equal(t, 0.5, out.At(2, 2))

	// Off-diagonal entries pass through untouched.
	require.Equal(t, 1.0, out.At(0, 1))
	require.Equal(t, 0.0, out.At(1, 2))
}

func TestAugmentDiagonal_DirectedAveragesDegrees(t *testing.T) {
	// One directed edge 0→1: out-degree 1 at vertex 0, in-degree 1 at
	// vertex 1, both averaged to 1/2 then divided by n−1 = 1.
	g := mat.NewDense(2, 2, []float64{
		0, 1,
		0, 0,
	})

	out, err := embed.AugmentDiagonal(g)
	require.NoError(t, err)
	require.Equal(t, 0.5, out.At(0, 0))
	require.Equal(t, 0.5, out.At(1, 1))
}

func TestAugmentDiagonal_InputNotMutated(t *testing.T) {
	g := mat.NewDense(3, 3, []float64{
		0, 1, 0,
		1, 0, 1,
		0, 1, 0,
	})
	orig := mat.DenseCopyOf(g)

	_, err := embed.AugmentDiagonal(g)
	require.NoError(t, err)
	require.True(t, mat.Equal(orig, g))
}

func TestAugmentDiagonal_ExistingDiagonalIgnored(t *testing.T) {
	// Degrees count off-diagonal mass only; a pre-filled diagonal must not
	// leak into the result.
	g := mat.NewDense(2, 2, []float64{
		7, 1,
		1, 7,
	})

	out, err := embed.AugmentDiagonal(g)
	require.NoError(t, err)
	require.Equal(t, 1.0, out.At(0, 0))
	require.Equal(t, 1.0, out.At(1, 1))
}

func TestAugmentDiagonal_Errors(t *testing.T) {
	_, err := embed.AugmentDiagonal(nil)
	require.True(t, errors.Is(err, embed.ErrNilMatrix))

	_, err = embed.AugmentDiagonal(mat.NewDense(2, 3, nil))
	require.True(t, errors.Is(err, embed.ErrNonSquare))

	_, err = embed.AugmentDiagonal(mat.NewDense(1, 1, nil))
	require.True(t, errors.Is(err, embed.ErrBadDimension))
}
