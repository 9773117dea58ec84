// Package snapshot implements the optional per-step recorder every
// strategy can report progress through. Each strategy defines its own
// trigger (spec §4.I): after every vertex assignment for Welsh-Powell and
// DSATUR, after every strictly-improving move for Tabu, after every
// accepted move for Simulated Annealing, when the global best fitness
// improves for the Genetic Algorithm, and whenever the incumbent improves
// for the Exact solver.
//
// A snapshot is the full colouring vector at that instant (uncoloured
// positions are -1). Writes are synchronous to the search loop by design
// (spec §9: "snapshot back-pressure") — a Sink must not block on anything
// slower than a buffered in-memory write, or it will dominate the search's
// wall-clock budget on large graphs with many snapshots.
package snapshot
