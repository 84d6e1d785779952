// Package embed_test contains unit tests for the embedding pipeline.
package embed_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstat/embed"
)

func TestSelectDimension_PlantedGap(t *testing.T) {
	// Three dominant values, then a sharp drop: the first elbow is 3.
	values := []float64{100, 99, 98, 1, 0.9, 0.8}

	elbows, err := embed.SelectDimension(values, 1)
	require.NoError(t, err)
	require.Equal(t, []int{3}, elbows)
}

func TestSelectDimension_SuccessiveElbowsAreCumulative(t *testing.T) {
	values := []float64{100, 99, 98, 1, 0.9, 0.8}

	elbows, err := embed.SelectDimension(values, 2)
	require.NoError(t, err)
	require.Len(t, elbows, 2)
	require.Equal(t, 3, elbows[0])
	require.Greater(t, elbows[1], elbows[0])
	require.LessOrEqual(t, elbows[1], len(values))
}

func TestSelectDimension_OrderInsensitive(t *testing.T) {
	// Values are sorted internally; input order must not matter.
	a, err := embed.SelectDimension([]float64{1, 100, 0.9, 98, 0.8, 99}, 1)
	require.NoError(t, err)
	b, err := embed.SelectDimension([]float64{100, 99, 98, 1, 0.9, 0.8}, 1)
	require.NoError(t, err)
	require.Equal(t, b, a)
}

func TestSelectDimension_NonPositiveValuesIgnored(t *testing.T) {
	elbows, err := embed.SelectDimension([]float64{10, 9, 0, -1, 0}, 1)
	require.NoError(t, err)
	require.Len(t, elbows, 1)
	require.LessOrEqual(t, elbows[0], 2, "rank must count positive values only")
}

func TestSelectDimension_SingleValue(t *testing.T) {
	elbows, err := embed.SelectDimension([]float64{5}, 3)
	require.NoError(t, err)
	require.Equal(t, []int{1}, elbows)
}

func TestSelectDimension_TailExhaustion(t *testing.T) {
	// Requesting more elbows than the spectrum supports returns fewer.
	elbows, err := embed.SelectDimension([]float64{10, 1}, 5)
	require.NoError(t, err)
	require.NotEmpty(t, elbows)
	require.LessOrEqual(t, len(elbows), 2)
	require.Equal(t, 2, elbows[len(elbows)-1], "the elbows must exhaust the spectrum")
}

func TestSelectDimension_Errors(t *testing.T) {
	_, err := embed.SelectDimension([]float64{1, 2, 3}, 0)
	require.True(t, errors.Is(err, embed.ErrBadDimension))

	_, err = embed.SelectDimension([]float64{0, -1}, 1)
	require.True(t, errors.Is(err, embed.ErrNoElbow))

	_, err = embed.SelectDimension(nil, 1)
	require.True(t, errors.Is(err, embed.ErrNoElbow))
}
