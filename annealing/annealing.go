package annealing

import (
	"math"
	"math/rand"

	"github.com/gopherforge/chromabench/core"
	"github.com/gopherforge/chromabench/repair"
	"github.com/gopherforge/chromabench/snapshot"
)

const (
	defaultInitialTemperature = 1.0
	defaultMinTemperature     = 1e-4
)

// Search runs Simulated Annealing's k-descent outer loop: for each palette
// size from warmStartK (or max_degree+1, when warmStartK <= 0) down to 1,
// it anneals a legalised random start and records a valid colouring
// whenever the stage reaches zero conflicts. The first stage that fails to
// reach zero conflicts ends the descent; Search then returns the best
// valid colouring recorded, or — if none ever validated — the best
// colouring seen across every stage, compared by (conflicts asc, colours
// asc).
//
// Search returns an error only if sink.Record does.
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

	var bestValid core.Coloring
	validFound := false
	var overallBest core.Coloring
	overallBestConflicts := math.MaxInt
	overallBestColours := math.MaxInt

	for k := k0; k >= 1; k-- {
		c, conflicts, err := anneal(g, k, r, sink, cfg)
		if err != nil {
			return nil, err
		}
		colours := c.NumColors()
		if conflicts < overallBestConflicts || (conflicts == overallBestConflicts && colours < overallBestColours) {
			overallBest = c
			overallBestConflicts = conflicts
			overallBestColours = colours
		}
		if conflicts == 0 {
			bestValid = c
			validFound = true
			continue
		}
		break
	}
	if validFound {
		return bestValid, nil
	}
	return overallBest, nil
}

// anneal runs one K-stage to completion and returns the best colouring
// observed during the run together with its conflict count.
func anneal(g *core.Graph, k int, r *rand.Rand, sink snapshot.Sink, cfg Options) (core.Coloring, int, error) {
	n := g.N()
	c := initialAssignment(g, k, r)
	conflicts := g.ConflictCount(c)

	best := c.Clone()
	bestConflicts := conflicts
	bestColours := c.NumColors()

	iters := annealIterations(n, cfg)
	t0 := cfg.InitialTemperature
	if t0 <= 0 {
		t0 = defaultInitialTemperature
	}
	tmin := cfg.MinTemperature
	if tmin <= 0 {
		tmin = defaultMinTemperature
	}
	temperature := t0
	alpha := math.Pow(tmin/t0, 1.0/float64(iters))

	for i := 0; i < iters && conflicts > 0; i++ {
		v := r.Intn(n)
		newColour := otherColour(r, k, c[v])
		if newColour == c[v] {
			temperature *= alpha
			continue
		}
		curConf := g.ConflictsAt(c, v)
		newConf := g.ConflictsIfColoured(c, v, newColour)
		delta := newConf - curConf

		accept := delta <= 0
		if !accept {
			accept = r.Float64() < math.Exp(-float64(delta)/temperature)
		}
		if accept {
			c[v] = newColour
			conflicts += delta
			if sink != nil {
				if err := sink.Record(c); err != nil {
					return nil, 0, err
				}
			}
			if colours := c.NumColors(); conflicts < bestConflicts || (conflicts == bestConflicts && colours < bestColours) {
				best = c.Clone()
				bestConflicts = conflicts
				bestColours = colours
			}
		}
		temperature *= alpha
	}
	return best, bestConflicts, nil
}

// initialAssignment draws a uniform random colouring over [0,K) and
// legalises it with Greedy Repair.
func initialAssignment(g *core.Graph, k int, r *rand.Rand) core.Coloring {
	n := g.N()
	seed := make(core.Coloring, n)
	for i := range seed {
		seed[i] = r.Intn(k)
	}
	c, err := repair.GreedyRepair(g, seed, k)
	if err != nil {
		// Unreachable: k >= 1 and len(seed) == n by construction.
		panic(err)
	}
	return c
}

// otherColour returns a colour drawn uniformly from [0,K) \ {current}. When
// K <= 1 there is no alternative and current is returned unchanged.
func otherColour(r *rand.Rand, k, current int) int {
	if k <= 1 {
		return current
	}
	col := r.Intn(k - 1)
	if col >= current {
		col++
	}
	return col
}

func annealIterations(n int, cfg Options) int {
	if cfg.Iterations > 0 {
		return cfg.Iterations
	}
	if v := 50 * n; v > 1000 {
		return v
	}
	return 1000
}
