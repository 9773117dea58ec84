package tabu

import (
	"math/rand"

	"github.com/gopherforge/chromabench/core"
	"github.com/gopherforge/chromabench/snapshot"
	"github.com/gopherforge/chromabench/welshpowell"
)

// Search runs Tabu Search's k-descent outer loop. warmStartK is the first
// palette size to try; pass 0 to use the canonical g.MaxDegree()+1. r
// drives every random choice (the randomised greedy builder's colour
// picks); sink, if non-nil, records a snapshot after every
// strictly-improving move.
//
// Search never returns an error: a valid colouring always exists (in the
// worst case, one colour per vertex), and the fallback path guarantees one
// is returned even if no K-stage down to 1 succeeds.
func Search(g *core.Graph, warmStartK int, r *rand.Rand, sink snapshot.Sink, opts ...Option) (core.Coloring, error) {
	n := g.N()
	if n == 0 {
		return core.Coloring{}, nil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	k0 := warmStartK
	if k0 <= 0 {
		k0 = g.MaxDegree() + 1
	}

	var best core.Coloring
	found := false
	for k := k0; k >= 1; k-- {
		c := randomizedGreedyBuild(g, k, r)
		if g.ConflictCount(c) == 0 {
			best = c
			found = true
			continue
		}
		result, ok := innerLoop(g, c, k, sink, cfg)
		if !ok {
			break
		}
		best = result
		found = true
	}
	if found {
		return best, nil
	}
	// Fallback: Welsh-Powell is always valid, just possibly over more
	// colours than any K-stage we attempted.
	return welshpowell.Colour(g, nil)
}

// randomizedGreedyBuild assigns vertices in descending-degree order; each
// vertex uniformly picks an allowed colour in [0,K) (one not used by an
// already-coloured neighbour), or the conflict-minimising colour if none is
// allowed.
func randomizedGreedyBuild(g *core.Graph, k int, r *rand.Rand) core.Coloring {
	n := g.N()
	c := make(core.Coloring, n)
	for i := range c {
		c[i] = -1
	}
	allowed := make([]int, 0, k)
	for _, v := range g.DegreeOrder() {
		used := make(map[int]bool, g.Degree(v))
		for _, w := range g.Neighbours(v) {
			if cw := c[w]; cw >= 0 {
				used[cw] = true
			}
		}
		allowed = allowed[:0]
		for colour := 0; colour < k; colour++ {
			if !used[colour] {
				allowed = append(allowed, colour)
			}
		}
		if len(allowed) > 0 {
			c[v] = allowed[r.Intn(len(allowed))]
		} else {
			c[v] = leastConflicting(g, c, v, k)
		}
	}
	return c
}

func leastConflicting(g *core.Graph, c core.Coloring, v, k int) int {
	best := 0
	bestConflicts := g.ConflictsIfColoured(c, v, 0)
	for colour := 1; colour < k; colour++ {
		if cc := g.ConflictsIfColoured(c, v, colour); cc < bestConflicts {
			bestConflicts = cc
			best = colour
		}
	}
	return best
}

func maxIterations(n int, cfg Options) int {
	if cfg.MaxIterations > 0 {
		return cfg.MaxIterations
	}
	if v := 100 * n; v > 10000 {
		return v
	}
	return 10000
}

func tabuTenure(n int, cfg Options) int {
	if cfg.Tenure > 0 {
		return cfg.Tenure
	}
	if v := n / 10; v > 7 {
		return v
	}
	return 7
}

// innerLoop runs the bounded tabu-search repair for a single K-stage. It
// reports (colouring, true) if a conflict-free colouring was reached,
// (nil, false) if the loop exhausted its admissible moves or iteration
// budget without reaching one.
func innerLoop(g *core.Graph, c core.Coloring, k int, sink snapshot.Sink, cfg Options) (core.Coloring, bool) {
	n := g.N()
	maxIter := maxIterations(n, cfg)
	tenure := tabuTenure(n, cfg)

	tabu := make([][]int, n)
	for v := range tabu {
		tabu[v] = make([]int, k)
	}

	conflicts := g.ConflictCount(c)
	bestConflicts := conflicts

	for t := 0; t < maxIter && conflicts > 0; t++ {
		mv, ok := bestAdmissibleMove(g, c, k, tabu, t, conflicts, bestConflicts)
		if !ok {
			return nil, false
		}
		oldColour := c[mv.v]
		c[mv.v] = mv.colour
		conflicts += mv.delta
		tabu[mv.v][oldColour] = t + tenure

		if conflicts < bestConflicts {
			bestConflicts = conflicts
		}
		if sink != nil && mv.delta < 0 {
			if err := sink.Record(c); err != nil {
				return nil, false
			}
		}
		if conflicts == 0 {
			return c, true
		}
	}
	return nil, false
}

type move struct {
	v, colour, delta int
	tabu             bool
}

// bestAdmissibleMove scans every conflicting vertex and every candidate
// colour, picking the admissible move of smallest delta (ties preferring
// non-tabu moves). A tabu move is admissible only under the aspiration
// criterion: it must beat bestConflicts outright.
func bestAdmissibleMove(g *core.Graph, c core.Coloring, k int, tabu [][]int, t, conflicts, bestConflicts int) (move, bool) {
	var best move
	have := false
	for v := 0; v < g.N(); v++ {
		curColour := c[v]
		curConf := g.ConflictsAt(c, v)
		if curConf == 0 {
			continue
		}
		for newColour := 0; newColour < k; newColour++ {
			if newColour == curColour {
				continue
			}
			delta := g.ConflictsIfColoured(c, v, newColour) - curConf
			isTabu := tabu[v][newColour] > t
			if isTabu && conflicts+delta >= bestConflicts {
				continue
			}
			cand := move{v: v, colour: newColour, delta: delta, tabu: isTabu}
			if !have || cand.delta < best.delta || (cand.delta == best.delta && !cand.tabu && best.tabu) {
				best = cand
				have = true
			}
		}
	}
	return best, have
}
