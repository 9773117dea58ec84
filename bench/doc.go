// Package bench generates synthetic benchmark graphs: Erdős-Rényi G(n,p)
// random graphs and k-colourable planted-partition graphs, both driven by
// a caller-supplied *rand.Rand so a benchmark run is exactly reproducible
// from its seed, the same discipline the six colouring strategies follow.
package bench
