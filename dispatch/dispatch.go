package dispatch

import (
	"fmt"
	"time"

	"github.com/gopherforge/chromabench/annealing"
	"github.com/gopherforge/chromabench/core"
	"github.com/gopherforge/chromabench/dsatur"
	"github.com/gopherforge/chromabench/exact"
	"github.com/gopherforge/chromabench/genetic"
	"github.com/gopherforge/chromabench/rng"
	"github.com/gopherforge/chromabench/tabu"
	"github.com/gopherforge/chromabench/welshpowell"
)

// Run invokes the strategy named by cfg.Algorithm against cfg.Graph,
// timing the call with a monotonic clock and validating that the returned
// colouring has exactly one entry per vertex.
func Run(cfg Config) (Result, error) {
	r := rng.FromSeed(cfg.Seed)

	start := time.Now()
	var c core.Coloring
	var err error
	switch cfg.Algorithm {
	case "welsh_powell":
		c, err = welshpowell.Colour(cfg.Graph, cfg.Snapshot)
	case "dsatur":
		c, err = dsatur.Colour(cfg.Graph, cfg.Snapshot)
	case "tabu_search":
		c, err = tabu.Search(cfg.Graph, 0, r, cfg.Snapshot, cfg.TabuOptions...)
	case "simulated_annealing":
		c, err = annealing.Search(cfg.Graph, 0, r, cfg.Snapshot, cfg.AnnealingOptions...)
	case "genetic":
		c, err = genetic.Search(cfg.Graph, 0, r, cfg.Snapshot, cfg.GeneticOptions...)
	case "exact_solver":
		c, err = exact.Solve(cfg.Graph, cfg.Snapshot, cfg.ProgressInterval, cfg.Logger)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.Algorithm)
	}
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, err
	}
	if len(c) != cfg.Graph.N() {
		return Result{}, fmt.Errorf("%w: got %d, want %d", ErrResultSizeMismatch, len(c), cfg.Graph.N())
	}
	return Result{Algorithm: cfg.Algorithm, Coloring: c, Runtime: elapsed}, nil
}
