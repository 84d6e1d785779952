package embed_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/graphstat/embed"
)

// twoCliques builds the undirected graph of two 4-cliques joined by the
// single bridge 3—4 (8 vertices, binary, zero diagonal).
func twoCliques() *mat.Dense {
	g := mat.NewDense(8, 8, nil)
	link := func(i, j int) {
		g.Set(i, j, 1)
		g.Set(j, i, 1)
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			link(i, j)
			link(i+4, j+4)
		}
	}
	link(3, 4)

	return g
}

// ringDigraph builds a directed 8-cycle with two extra chords, clearly
// asymmetric.
func ringDigraph() *mat.Dense {
	g := mat.NewDense(8, 8, nil)
	for i := 0; i < 8; i++ {
		g.Set(i, (i+1)%8, 1)
	}
	g.Set(0, 3, 1)
	g.Set(5, 2, 1)

	return g
}

func TestMultipleASE_UndirectedFit(t *testing.T) {
	graphs := []*mat.Dense{twoCliques(), twoCliques()}

	m := embed.NewMultipleASE(embed.WithComponents(2), embed.NoDiagAug())
	require.NoError(t, m.Fit(graphs))

	require.Equal(t, 2, m.NGraphs())
	require.Equal(t, 8, m.NVertices())
	require.False(t, m.Directed())

	u, err := m.LatentLeft()
	require.NoError(t, err)
	r, c := u.Dims()
	require.Equal(t, 8, r)
	require.Equal(t, 2, c)

	right, err := m.LatentRight()
	require.NoError(t, err)
	require.Nil(t, right, "undirected population has no separate right positions")

	// Joint latent positions come out of an SVD: orthonormal columns.
	var gram mat.Dense
	gram.Mul(u.T(), u)
	require.True(t, mat.EqualApprox(&gram, mat.NewDiagDense(2, []float64{1, 1}), 1e-10))
}

func TestMultipleASE_ScoresMatchProjection(t *testing.T) {
	a := twoCliques()
	graphs := []*mat.Dense{a, a}

	m := embed.NewMultipleASE(embed.WithComponents(2), embed.NoDiagAug())
	require.NoError(t, m.Fit(graphs))

	u, err := m.LatentLeft()
	require.NoError(t, err)
	scores, err := m.Scores()
	require.NoError(t, err)
	require.Len(t, scores, 2)

	// Undirected scores are R = Uᵀ·A·U.
	var tmp, want mat.Dense
	tmp.Mul(u.T(), a)
	want.Mul(&tmp, u)
	for i, r := range scores {
		sr, sc := r.Dims()
		require.Equal(t, 2, sr)
		require.Equal(t, 2, sc)
		require.True(t, mat.EqualApprox(&want, r, 1e-10), "scores of graph %d", i)
	}
}

func TestMultipleASE_DirectedFit(t *testing.T) {
	graphs := []*mat.Dense{ringDigraph(), ringDigraph()}

	m := embed.NewMultipleASE(embed.WithComponents(2))
	require.NoError(t, m.Fit(graphs))
	require.True(t, m.Directed())

	right, err := m.LatentRight()
	require.NoError(t, err)
	require.NotNil(t, right)
	rr, rc := right.Dims()
	require.Equal(t, 8, rr)
	require.Equal(t, 2, rc)
}

func TestMultipleASE_OneAsymmetricGraphMakesPopulationDirected(t *testing.T) {
	graphs := []*mat.Dense{twoCliques(), ringDigraph()}

	m := embed.NewMultipleASE(embed.WithComponents(2))
	require.NoError(t, m.Fit(graphs))
	require.True(t, m.Directed())
}

func TestMultipleASE_FitTransformShapes(t *testing.T) {
	undirected := []*mat.Dense{twoCliques(), twoCliques()}
	directed := []*mat.Dense{ringDigraph(), ringDigraph()}

	u, v, err := embed.NewMultipleASE(embed.WithComponents(2)).FitTransform(undirected)
	require.NoError(t, err)
	require.Nil(t, v)
	_, c := u.Dims()
	require.Equal(t, 2, c)

	u, v, err = embed.NewMultipleASE(embed.WithComponents(2)).FitTransform(directed)
	require.NoError(t, err)
	require.NotNil(t, v)

	// Concat folds both sides into one wide matrix.
	u, v, err = embed.NewMultipleASE(embed.WithComponents(2), embed.Concat()).FitTransform(directed)
	require.NoError(t, err)
	require.Nil(t, v)
	r, c := u.Dims()
	require.Equal(t, 8, r)
	require.Equal(t, 4, c)
}

func TestMultipleASE_AutomaticRank(t *testing.T) {
	graphs := []*mat.Dense{twoCliques(), twoCliques(), twoCliques()}

	m := embed.NewMultipleASE()
	require.NoError(t, m.Fit(graphs))

	u, err := m.LatentLeft()
	require.NoError(t, err)
	r, d := u.Dims()
	require.Equal(t, 8, r)
	require.GreaterOrEqual(t, d, 1)

	// The scores must live in the jointly selected d-dimensional space.
	scores, err := m.Scores()
	require.NoError(t, err)
	for _, s := range scores {
		sr, sc := s.Dims()
		require.Equal(t, d, sr)
		require.Equal(t, d, sc)
	}
}

func TestMultipleASE_RandomizedAlgorithm(t *testing.T) {
	graphs := []*mat.Dense{twoCliques(), twoCliques()}

	m := embed.NewMultipleASE(embed.WithComponents(2),
		embed.WithAlgorithm(embed.SVDRandomized), embed.WithSeed(23))
	require.NoError(t, m.Fit(graphs))

	u, err := m.LatentLeft()
	require.NoError(t, err)
	r, c := u.Dims()
	require.Equal(t, 8, r)
	require.Equal(t, 2, c)
}

func TestMultipleASE_AccessorsBeforeFit(t *testing.T) {
	m := embed.NewMultipleASE()

	_, err := m.LatentLeft()
	require.True(t, errors.Is(err, embed.ErrNotFitted))
	_, err = m.LatentRight()
	require.True(t, errors.Is(err, embed.ErrNotFitted))
	_, err = m.Scores()
	require.True(t, errors.Is(err, embed.ErrNotFitted))

	require.Zero(t, m.NGraphs())
	require.False(t, m.Directed())
}

func TestMultipleASE_FitValidation(t *testing.T) {
	for _, tc := range []struct {
		name   string
		graphs []*mat.Dense
		opts   []embed.Option
		want   error
	}{
		{name: "no graphs", graphs: nil, want: embed.ErrNoGraphs},
		{name: "nil graph", graphs: []*mat.Dense{twoCliques(), nil}, want: embed.ErrNilMatrix},
		{name: "non-square", graphs: []*mat.Dense{mat.NewDense(3, 4, nil)}, want: embed.ErrNonSquare},
		{name: "size mismatch", graphs: []*mat.Dense{twoCliques(), mat.NewDense(4, 4, nil)}, want: embed.ErrDimensionMismatch},
		{
			name:   "randomized without rng",
			graphs: []*mat.Dense{twoCliques()},
			opts:   []embed.Option{embed.WithComponents(2), embed.WithAlgorithm(embed.SVDRandomized)},
			want:   embed.ErrNeedRandSource,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := embed.NewMultipleASE(tc.opts...).Fit(tc.graphs)
			require.Error(t, err)
			require.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

func TestMultipleASE_InputsNotMutated(t *testing.T) {
	g := twoCliques()
	orig := mat.DenseCopyOf(g)

	require.NoError(t, embed.NewMultipleASE(embed.WithComponents(2)).Fit([]*mat.Dense{g}))
	require.True(t, mat.Equal(orig, g))
}
