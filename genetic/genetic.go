package genetic

import (
	"math"
	"math/rand"
	"sort"

	"github.com/gopherforge/chromabench/core"
	"github.com/gopherforge/chromabench/repair"
	"github.com/gopherforge/chromabench/snapshot"
)

const (
	mutationDecay = 0.98
	minMutation   = 0.005
	tournamentK   = 3
)

// Search runs the Genetic Algorithm's k-descent outer loop. warmStartK is
// the first palette size to try; pass 0 to use max_degree+1. sink, if
// non-nil, records a snapshot every time the global best fitness (across
// the whole run) strictly improves.
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
	overallBestFitness := math.MaxInt
	globalBestFitness := math.MaxInt

	for k := k0; k >= 1; k-- {
		best, bestFitness, err := runStage(g, k, cfg, r, sink, &globalBestFitness)
		if err != nil {
			return nil, err
		}
		if bestFitness < overallBestFitness {
			overallBest = best
			overallBestFitness = bestFitness
		}
		if g.ConflictCount(best) == 0 {
			bestValid = best
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

// runStage evolves a population for at most cfg.MaxGenerations generations
// at palette size k, returning the best individual's colouring and
// fitness. globalBest tracks the best fitness seen across the entire
// k-descent so the snapshot trigger fires only on a true global
// improvement.
func runStage(g *core.Graph, k int, cfg Options, r *rand.Rand, sink snapshot.Sink, globalBest *int) (core.Coloring, int, error) {
	pop := make([]individual, cfg.PopulationSize)
	for i := range pop {
		pop[i] = newIndividual(g, k, r)
	}
	sortByFitness(pop)
	if err := recordIfGlobalBest(sink, pop[0], globalBest); err != nil {
		return nil, 0, err
	}

	mutationRate := cfg.InitialMutationRate
	for gen := 0; gen < cfg.MaxGenerations; gen++ {
		if g.ConflictCount(pop[0].c) == 0 {
			break
		}
		next := make([]individual, 0, len(pop))
		next = append(next, pop[0], pop[1]) // elitism: top 2 survive unchanged
		for len(next) < len(pop) {
			pa := tournamentSelect(pop, r)
			pb := tournamentSelect(pop, r)
			child := crossover(pa.c, pb.c, k, r)
			if r.Float64() < mutationRate {
				mutate(g, child, k, r)
			}
			repaired, err := repair.GreedyRepair(g, child, k)
			if err != nil {
				// Unreachable: k >= 1 and len(child) == g.N() by construction.
				panic(err)
			}
			next = append(next, individual{c: repaired, fitness: fitness(g, repaired)})
		}
		pop = next
		sortByFitness(pop)
		if err := recordIfGlobalBest(sink, pop[0], globalBest); err != nil {
			return nil, 0, err
		}

		mutationRate *= mutationDecay
		if mutationRate < minMutation {
			mutationRate = minMutation
		}
	}
	return pop[0].c, pop[0].fitness, nil
}

func recordIfGlobalBest(sink snapshot.Sink, best individual, globalBest *int) error {
	if best.fitness >= *globalBest {
		return nil
	}
	*globalBest = best.fitness
	if sink != nil {
		return sink.Record(best.c)
	}
	return nil
}

func newIndividual(g *core.Graph, k int, r *rand.Rand) individual {
	n := g.N()
	seed := make(core.Coloring, n)
	for i := range seed {
		seed[i] = r.Intn(k)
	}
	c, err := repair.GreedyRepair(g, seed, k)
	if err != nil {
		panic(err)
	}
	return individual{c: c, fitness: fitness(g, c)}
}

// fitness is conflicts*n^2 + colours_used: conflicts dominate lexically,
// and among conflict-free individuals fewer colours win.
func fitness(g *core.Graph, c core.Coloring) int {
	n := g.N()
	return g.ConflictCount(c)*n*n + c.NumColors()
}

func sortByFitness(pop []individual) {
	sort.Slice(pop, func(i, j int) bool { return pop[i].fitness < pop[j].fitness })
}

// tournamentSelect samples tournamentK individuals uniformly with
// replacement and returns the fittest.
func tournamentSelect(pop []individual, r *rand.Rand) individual {
	best := pop[r.Intn(len(pop))]
	for i := 1; i < tournamentK; i++ {
		cand := pop[r.Intn(len(pop))]
		if cand.fitness < best.fitness {
			best = cand
		}
	}
	return best
}

// crossover builds a child by picking each position from parent a or b
// with equal probability (GPX-lite); any value the choice produces outside
// [0,K) is resampled uniformly, which only happens if a caller passes
// parents from a different palette than k.
func crossover(a, b core.Coloring, k int, r *rand.Rand) core.Coloring {
	n := len(a)
	child := make(core.Coloring, n)
	for i := 0; i < n; i++ {
		if r.Float64() < 0.5 {
			child[i] = a[i]
		} else {
			child[i] = b[i]
		}
		if child[i] < 0 || child[i] >= k {
			child[i] = r.Intn(k)
		}
	}
	return child
}

// mutate recolours one randomly chosen vertex with the colour in [0,K)
// that minimises its same-coloured-neighbour count.
func mutate(g *core.Graph, c core.Coloring, k int, r *rand.Rand) {
	v := r.Intn(len(c))
	best := 0
	bestConflicts := g.ConflictsIfColoured(c, v, 0)
	for colour := 1; colour < k; colour++ {
		if cc := g.ConflictsIfColoured(c, v, colour); cc < bestConflicts {
			bestConflicts = cc
			best = colour
		}
	}
	c[v] = best
}
