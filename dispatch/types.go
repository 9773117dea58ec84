package dispatch

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gopherforge/chromabench/annealing"
	"github.com/gopherforge/chromabench/core"
	"github.com/gopherforge/chromabench/genetic"
	"github.com/gopherforge/chromabench/snapshot"
	"github.com/gopherforge/chromabench/tabu"
)

// ErrUnknownAlgorithm is returned when Config.Algorithm is outside the
// closed strategy-name set.
var ErrUnknownAlgorithm = errors.New("dispatch: unknown algorithm")

// ErrResultSizeMismatch is returned when a strategy's returned colouring
// does not have exactly one entry per graph vertex. This should be
// unreachable for any correctly implemented strategy; it exists as a
// defensive boundary check.
var ErrResultSizeMismatch = errors.New("dispatch: result size mismatch")

// Names lists the closed set of strategy names Run accepts, in the order
// they are documented.
var Names = []string{
	"welsh_powell",
	"dsatur",
	"tabu_search",
	"simulated_annealing",
	"genetic",
	"exact_solver",
}

// Config bundles everything a single dispatch needs. Graph and Algorithm
// are required; every other field is optional and ignored by strategies
// that don't use it (e.g. Seed and GeneticOptions are meaningless for
// welsh_powell).
type Config struct {
	Algorithm string
	Graph     *core.Graph

	// Seed drives the per-run RNG handed to the randomised strategies
	// (tabu_search, simulated_annealing, genetic), via rng.FromSeed. Run
	// itself treats Seed as an explicit, reproducible choice regardless of
	// value — including zero. Callers that want a nondeterministic default
	// (no seed supplied by the user) must draw one themselves before
	// calling Run; the CLI does this from a cryptographic source whenever
	// --seed was not passed.
	Seed int64

	Snapshot snapshot.Sink

	// GeneticOptions, TabuOptions, and AnnealingOptions are forwarded
	// verbatim to their respective strategy; each is ignored by every
	// other algorithm.
	GeneticOptions   []genetic.Option
	TabuOptions      []tabu.Option
	AnnealingOptions []annealing.Option

	// ProgressInterval and Logger are forwarded to exact.Solve verbatim;
	// ignored by every other algorithm.
	ProgressInterval time.Duration
	Logger           *log.Logger
}

// Result is the uniform outcome of a dispatch, regardless of which
// strategy produced it.
type Result struct {
	Algorithm string
	Coloring  core.Coloring
	Runtime   time.Duration
}
