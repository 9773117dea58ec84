package genetic

import "github.com/gopherforge/chromabench/core"

// Options configures the Genetic Algorithm's population dynamics. Use
// DefaultOptions and the With... constructors rather than building an
// Options literal directly, so future fields get sane defaults.
type Options struct {
	PopulationSize      int
	MaxGenerations      int
	InitialMutationRate float64
}

// DefaultOptions returns the spec's documented defaults: population 64,
// 500 generations, initial mutation rate 0.03.
func DefaultOptions() Options {
	return Options{
		PopulationSize:      64,
		MaxGenerations:      500,
		InitialMutationRate: 0.03,
	}
}

// Option mutates an Options value; invalid inputs are ignored rather than
// causing a panic, so a caller can apply several options without ordering
// concerns.
type Option func(*Options)

// WithPopulationSize overrides the population size. Values below 2 are
// ignored (elitism requires at least 2 individuals).
func WithPopulationSize(p int) Option {
	return func(o *Options) {
		if p >= 2 {
			o.PopulationSize = p
		}
	}
}

// WithMaxGenerations overrides the per-stage generation budget. Values
// below 1 are ignored.
func WithMaxGenerations(g int) Option {
	return func(o *Options) {
		if g >= 1 {
			o.MaxGenerations = g
		}
	}
}

// WithInitialMutationRate overrides the starting mutation probability.
// Values outside [0,1] are ignored.
func WithInitialMutationRate(m float64) Option {
	return func(o *Options) {
		if m >= 0 && m <= 1 {
			o.InitialMutationRate = m
		}
	}
}

type individual struct {
	c       core.Coloring
	fitness int
}
