// Package repair implements bounded-palette greedy repair: turning an
// arbitrary seed colouring into a near-valid k-colouring that uses only
// colours in [0, K).
//
// GreedyRepair is the shared primitive behind Simulated Annealing's and the
// Genetic Algorithm's legalisation step. It
// never fails to terminate and never exceeds the requested palette, at the
// cost of possibly introducing conflicts at vertices whose neighbourhood
// already exhausts every colour in the palette.
package repair
