// Package annealing implements Simulated Annealing over the same k-descent
// outer loop as Tabu Search: for each palette size K from max_degree+1 (or
// a caller-supplied warm start) down to 1, an initial random assignment is
// legalised with Greedy Repair and then improved by single-vertex
// recolour moves accepted either because they reduce conflicts or
// probabilistically under a geometrically-cooling temperature schedule.
package annealing
