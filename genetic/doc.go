// Package genetic implements the palette-bounded Genetic Algorithm over
// the same k-descent outer loop as Tabu Search and Simulated Annealing.
//
// For each palette size K, a population of Greedy-Repaired random
// colourings evolves under tournament selection, GPX-lite crossover,
// conflict-focused mutation, and elitism, with an adaptive mutation rate
// that decays each generation. A stage ends once its best individual
// reaches zero conflicts or max_generations is exhausted; it succeeds only
// in the first case.
package genetic
