package bench

import (
	"errors"
	"math/rand"

	"github.com/gopherforge/chromabench/core"
)

// ErrInvalidPartitionCount indicates PlantedPartition was asked for fewer
// than one partition.
var ErrInvalidPartitionCount = errors.New("bench: partition count must be >= 1")

// ErdosRenyi builds a G(n,p) random graph: every one of the n*(n-1)/2
// possible edges is independently included with probability p.
func ErdosRenyi(n int, p float64, r *rand.Rand) (*core.Graph, error) {
	var edges [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if r.Float64() < p {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	return core.New(n, edges)
}

// PlantedPartition builds a graph guaranteed to be k-colourable: every
// vertex is assigned uniformly to one of k partitions, and an edge between
// two vertices in different partitions is included independently with
// probability p (no edge ever joins two vertices in the same partition, so
// the partition assignment itself is always a valid k-colouring). It
// returns the graph alongside that planted colouring, useful as a ground
// truth for comparing a strategy's result against a known-good solution.
func PlantedPartition(n, k int, p float64, r *rand.Rand) (*core.Graph, core.Coloring, error) {
	if k < 1 {
		return nil, nil, ErrInvalidPartitionCount
	}
	partition := make(core.Coloring, n)
	for i := range partition {
		partition[i] = r.Intn(k)
	}
	var edges [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if partition[u] == partition[v] {
				continue
			}
			if r.Float64() < p {
				edges = append(edges, [2]int{u, v})
			}
		}
	}
	g, err := core.New(n, edges)
	if err != nil {
		return nil, nil, err
	}
	return g, partition, nil
}
