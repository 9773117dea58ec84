package genetic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gopherforge/chromabench/core"
	"github.com/gopherforge/chromabench/genetic"
	"github.com/gopherforge/chromabench/rng"
)

// TestSearch_TriangleUsesThreeColours pins the K3 scenario (spec §8).
func TestSearch_TriangleUsesThreeColours(t *testing.T) {
	g, err := core.New(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	require.NoError(t, err)

	c, err := genetic.Search(g, 0, rng.FromSeed(3), nil)
	require.NoError(t, err)
	require.True(t, g.IsValid(c))
	require.Equal(t, 3, c.NumColors())
}

// TestSearch_PathFiveUsesTwoColours pins the P5 scenario (spec §8).
func TestSearch_PathFiveUsesTwoColours(t *testing.T) {
	g, err := core.New(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	require.NoError(t, err)

	c, err := genetic.Search(g, 0, rng.FromSeed(11), nil)
	require.NoError(t, err)
	require.True(t, g.IsValid(c))
	require.LessOrEqual(t, c.NumColors(), 2)
}
