package repair

import (
	"errors"
	"fmt"

	"github.com/gopherforge/chromabench/core"
)

// ErrInvalidPalette indicates K < 1 was requested.
var ErrInvalidPalette = errors.New("repair: palette size must be at least 1")

// ErrSeedLengthMismatch indicates the seed colouring's length did not match
// the graph's vertex count.
var ErrSeedLengthMismatch = errors.New("repair: seed length does not match graph vertex count")

// GreedyRepair traverses vertices in descending-degree order (ties broken by
// ascending vertex id, via Graph.DegreeOrder) and assigns each one a colour
// in [0, K):
//
//  1. if seed[v] is in [0,K) and unused by v's already-coloured neighbours,
//     keep it;
//  2. otherwise use the smallest colour in [0,K) unused by those neighbours;
//  3. if every colour in [0,K) is used by some neighbour, pick the colour
//     that minimises the number of same-coloured coloured neighbours,
//     breaking ties by the smaller colour index.
//
// The result always has length N(), uses only colours in [0,K), and
// introduces conflicts only at vertices reaching step 3, each with as few
// same-coloured neighbours as the palette allows — it never fails to
// produce an output, though that output may not be conflict-free.
//
// Complexity: O(n*K + m) — each vertex scans its neighbours once (O(m)
// total) and at most K candidate colours.
func GreedyRepair(g *core.Graph, seed core.Coloring, k int) (core.Coloring, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPalette, k)
	}
	n := g.N()
	if len(seed) != n {
		return nil, fmt.Errorf("%w: len(seed)=%d, N()=%d", ErrSeedLengthMismatch, len(seed), n)
	}

	c := make(core.Coloring, n)
	for i := range c {
		c[i] = -1
	}

	used := make([]bool, k)
	for _, v := range g.DegreeOrder() {
		for i := range used {
			used[i] = false
		}
		for _, w := range g.Neighbours(v) {
			if cw := c[w]; cw >= 0 && cw < k {
				used[cw] = true
			}
		}

		if sv := seed[v]; sv >= 0 && sv < k && !used[sv] {
			c[v] = sv
			continue
		}

		colour := firstUnused(used)
		if colour >= 0 {
			c[v] = colour
			continue
		}

		c[v] = leastConflicting(g, c, v, k)
	}

	return c, nil
}

// firstUnused returns the smallest index i with !used[i], or -1 if all are
// used.
func firstUnused(used []bool) int {
	for i, u := range used {
		if !u {
			return i
		}
	}
	return -1
}

// leastConflicting returns the colour in [0,K) minimising the number of
// same-coloured already-coloured neighbours of v, breaking ties by smaller
// colour index.
func leastConflicting(g *core.Graph, c core.Coloring, v, k int) int {
	counts := make([]int, k)
	for _, w := range g.Neighbours(v) {
		if cw := c[w]; cw >= 0 && cw < k {
			counts[cw]++
		}
	}
	best := 0
	for colour := 1; colour < k; colour++ {
		if counts[colour] < counts[best] {
			best = colour
		}
	}
	return best
}
