package exact_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gopherforge/chromabench/core"
	"github.com/gopherforge/chromabench/dsatur"
	"github.com/gopherforge/chromabench/exact"
)

// myciel3 builds the Mycielski construction over C5 (the Grötzsch graph):
// n=11, m=20, chromatic number 4 (spec §8, concrete scenario 4).
func myciel3(t *testing.T) *core.Graph {
	t.Helper()
	edges := [][2]int{
		// original C5: v0..v4
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		// shadow vertices u0..u4 = 5..9: ui-vj and uj-vi per original edge
		{5, 1}, {6, 0}, {6, 2}, {7, 1}, {7, 3}, {8, 2}, {8, 4}, {9, 3}, {9, 0}, {5, 4},
		// apex w = 10, connected to every shadow vertex
		{10, 5}, {10, 6}, {10, 7}, {10, 8}, {10, 9},
	}
	g, err := core.New(11, edges)
	require.NoError(t, err)
	require.Equal(t, 20, g.M())
	return g
}

func TestSolve_Myciel3HasChromaticNumberFour(t *testing.T) {
	g := myciel3(t)

	c, err := exact.Solve(g, nil, 0, nil)
	require.NoError(t, err)
	require.True(t, g.IsValid(c))
	require.Equal(t, 4, c.NumColors())
}

func TestDSATUR_Myciel3FindsFourColours(t *testing.T) {
	g := myciel3(t)

	c, err := dsatur.Colour(g, nil)
	require.NoError(t, err)
	require.True(t, g.IsValid(c))
	require.Equal(t, 4, c.NumColors())
}

// queen5x5 builds the 5x5 queens graph: one vertex per board square,
// edges between any two squares a queen attacks (same row, column, or
// diagonal). n=25, chromatic number 5 (spec §8, concrete scenario 5).
func queen5x5(t *testing.T) *core.Graph {
	t.Helper()
	const size = 5
	id := func(r, c int) int { return r*size + c }
	var edges [][2]int
	for r1 := 0; r1 < size; r1++ {
		for c1 := 0; c1 < size; c1++ {
			for r2 := 0; r2 < size; r2++ {
				for c2 := 0; c2 < size; c2++ {
					a, b := id(r1, c1), id(r2, c2)
					if a >= b {
						continue
					}
					sameRow := r1 == r2
					sameCol := c1 == c2
					sameDiag := abs(r1-r2) == abs(c1-c2)
					if sameRow || sameCol || sameDiag {
						edges = append(edges, [2]int{a, b})
					}
				}
			}
		}
	}
	g, err := core.New(size*size, edges)
	require.NoError(t, err)
	return g
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestSolve_Queen5x5HasChromaticNumberFive(t *testing.T) {
	if testing.Short() {
		t.Skip("branch-and-bound over 25 vertices is slow; skipped under -short")
	}
	g := queen5x5(t)

	c, err := exact.Solve(g, nil, 0, nil)
	require.NoError(t, err)
	require.True(t, g.IsValid(c))
	require.Equal(t, 5, c.NumColors())
}

func TestDSATUR_Queen5x5UsesAtMostSevenColours(t *testing.T) {
	g := queen5x5(t)

	c, err := dsatur.Colour(g, nil)
	require.NoError(t, err)
	require.True(t, g.IsValid(c))
	require.LessOrEqual(t, c.NumColors(), 7)
}

// TestSolve_K7MinusMatchingEdgeUsesSixColours pins concrete scenario 6:
// K7 with the edge (1,2) removed (0-indexed: (0,1)) drops to chromatic
// number 6, since those two vertices can now share a colour.
func TestSolve_K7MinusMatchingEdgeUsesSixColours(t *testing.T) {
	n := 7
	var edges [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if u == 0 && v == 1 {
				continue
			}
			edges = append(edges, [2]int{u, v})
		}
	}
	g, err := core.New(n, edges)
	require.NoError(t, err)

	c, err := exact.Solve(g, nil, 0, nil)
	require.NoError(t, err)
	require.True(t, g.IsValid(c))
	require.Equal(t, 6, c.NumColors())
}
