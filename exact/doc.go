// Package exact implements a DSATUR-seeded branch-and-bound search for the
// chromatic number: the smallest K for which g admits a valid K-colouring.
//
// DSATUR (package dsatur) supplies the initial incumbent upper bound so
// the very first branch already prunes aggressively. The search explores
// one uncoloured vertex at a time, chosen by the same saturation-priority
// rule as DSATUR, and at each node either reuses an already-open colour
// with no local conflict or opens a new one — never both when opening a
// new colour cannot possibly beat the incumbent.
//
// A dedicated engine struct holds all search state (instead of closures
// capturing loop variables) to keep the hot recursive path's dependencies
// explicit and its behaviour easy to unit test in isolation.
package exact
