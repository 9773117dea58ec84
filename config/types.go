package config

import (
	"time"

	"github.com/gopherforge/chromabench/annealing"
	"github.com/gopherforge/chromabench/genetic"
	"github.com/gopherforge/chromabench/tabu"
)

// Config is the full set of overridable strategy knobs, mirroring the
// "Configuration options" each component documents.
type Config struct {
	Genetic   GeneticConfig   `toml:"genetic"`
	Tabu      TabuConfig      `toml:"tabu"`
	Annealing AnnealingConfig `toml:"annealing"`
	Exact     ExactConfig     `toml:"exact"`
}

// GeneticConfig mirrors genetic.Options.
type GeneticConfig struct {
	PopulationSize      int     `toml:"population_size"`
	MaxGenerations      int     `toml:"max_generations"`
	InitialMutationRate float64 `toml:"initial_mutation_rate"`
}

// TabuConfig mirrors tabu.Options; zero fields fall back to the spec
// formula (see tabu.Options).
type TabuConfig struct {
	Tenure        int `toml:"tenure"`
	MaxIterations int `toml:"max_iterations"`
}

// AnnealingConfig mirrors annealing.Options; zero fields fall back to the
// spec defaults (see annealing.Options).
type AnnealingConfig struct {
	Iterations         int     `toml:"iterations"`
	InitialTemperature float64 `toml:"initial_temperature"`
	MinTemperature     float64 `toml:"min_temperature"`
}

// ExactConfig holds the branch-and-bound progress-reporting interval.
type ExactConfig struct {
	ProgressIntervalSeconds float64 `toml:"progress_interval_seconds"`
}

// Default returns the spec-documented defaults for every knob.
func Default() Config {
	return Config{
		Genetic: GeneticConfig{
			PopulationSize:      64,
			MaxGenerations:      500,
			InitialMutationRate: 0.03,
		},
		Exact: ExactConfig{ProgressIntervalSeconds: 5},
	}
}

// GeneticOptions converts c.Genetic into genetic.Option values.
func (c Config) GeneticOptions() []genetic.Option {
	return []genetic.Option{
		genetic.WithPopulationSize(c.Genetic.PopulationSize),
		genetic.WithMaxGenerations(c.Genetic.MaxGenerations),
		genetic.WithInitialMutationRate(c.Genetic.InitialMutationRate),
	}
}

// TabuOptions converts c.Tabu into tabu.Option values.
func (c Config) TabuOptions() []tabu.Option {
	return []tabu.Option{
		tabu.WithTenure(c.Tabu.Tenure),
		tabu.WithMaxIterations(c.Tabu.MaxIterations),
	}
}

// AnnealingOptions converts c.Annealing into annealing.Option values.
func (c Config) AnnealingOptions() []annealing.Option {
	return []annealing.Option{
		annealing.WithIterations(c.Annealing.Iterations),
		annealing.WithInitialTemperature(c.Annealing.InitialTemperature),
		annealing.WithMinTemperature(c.Annealing.MinTemperature),
	}
}

// ExactProgressInterval converts c.Exact into a time.Duration.
func (c Config) ExactProgressInterval() time.Duration {
	return time.Duration(c.Exact.ProgressIntervalSeconds * float64(time.Second))
}
