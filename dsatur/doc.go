// Package dsatur implements the DSATUR (degree of saturation) greedy
// colouring heuristic: at each step, colour an uncoloured vertex of maximum
// saturation (number of distinct colours already used by its coloured
// neighbours), breaking ties by degree in the uncoloured subgraph, then by
// ascending vertex id. The assigned colour is always the smallest one that
// introduces no conflict.
//
// DSATUR also seeds the exact branch-and-bound solver's initial upper bound
// (spec §4.H): a feasible colouring found cheaply here prunes the search
// tree from the first node.
//
// The priority queue follows a lazy-decrease-key discipline: instead of
// mutating an entry's priority in place, a fresh entry is pushed for every
// uncoloured neighbour of a newly coloured vertex (its remaining degree
// drops and its saturation may rise), and stale entries are discarded on
// pop by comparing the popped (saturation, remaining degree) pair against
// the vertex's current counters.
package dsatur
