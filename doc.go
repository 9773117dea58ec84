// Package chromabench is a graph-colouring benchmark engine: six
// strategies — Welsh–Powell, DSATUR, Tabu Search (TabuCol), Simulated
// Annealing, a Genetic Algorithm, and an exact branch-and-bound solver —
// assign non-negative integer colours to a graph's vertices so that no
// edge joins two same-coloured vertices, while driving the colour count
// toward the graph's chromatic number.
//
// Subpackages:
//
//	core/        graph model, coloring, conflict and saturation queries
//	repair/      bounded-palette greedy repair shared by the metaheuristics
//	welshpowell/ degree-ordered greedy baseline
//	dsatur/      saturation-priority greedy, also DSATUR upper bound for exact
//	tabu/        TabuCol: conflict repair with a tabu list, k-descent
//	annealing/   simulated annealing, k-descent
//	genetic/     population + GPX-lite crossover + greedy repair, k-descent
//	exact/       DSATUR-seeded branch-and-bound solver
//	snapshot/    per-step colouring recorder for visualisation
//	dispatch/    strategy dispatcher, timing, and result validation
//	dimacs/      DIMACS graph reader and colouring writer
//	metrics/     metrics CSV appender
//	bench/       synthetic benchmark graph generators
//	config/      TOML configuration and environment variable overrides
//	visualize/   Graphviz DOT/SVG export of a produced colouring
//	cmd/chromabench/ the command-line dispatcher host
//
// The six strategies share one contract: (graph, optional config,
// optional snapshot sink) -> colouring. Dispatch over the closed set of
// strategy names lives in dispatch/; the core algorithmic packages never
// touch a file handle, and only exact/ reads the clock and logs, for its
// progress line through a logger the caller passes in.
package chromabench
