// Package welshpowell implements the Welsh-Powell degree-ordered greedy
// colouring heuristic.
//
// Vertices are sorted once by descending degree (ties broken by ascending
// vertex id). The algorithm repeatedly opens a new colour class: it assigns
// the current colour to the first uncoloured vertex in that order, then
// sweeps the remaining uncoloured vertices in the same order, adding to the
// class every vertex none of whose neighbours already carries the current
// colour. This always terminates with a valid colouring using at most
// Δ+1 colours, where Δ is the graph's maximum degree.
//
// Complexity: O(n log n) for the one-time sort plus O(colours * (n+m)) for
// the sweep passes, which is O(n*(n+m)) worst case.
package welshpowell
