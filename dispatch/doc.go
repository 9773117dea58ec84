// Package dispatch maps a strategy name to its entry point, times the
// call with a monotonic clock, validates the result size, and returns a
// uniform Result regardless of which of the six strategies ran.
//
// The strategy name set is closed: welsh_powell, dsatur,
// simulated_annealing, genetic, tabu_search, exact_solver. Anything else
// is rejected with ErrUnknownAlgorithm before any strategy runs.
package dispatch
