package core

import "sort"

// New builds an immutable Graph over n vertices from a list of undirected
// edges given as [from, to] pairs. Edges outside [0, n) return
// ErrVertexOutOfRange. Self-loops (from == to) are silently dropped and
// duplicate edges silently merged, matching the DIMACS format's dedup rule
// (spec §6): the stored M() reflects the deduplicated count, never the
// length of edges.
//
// Complexity: O(n + e log e) for the sort-based dedup.
func New(n int, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}

	g := &Graph{n: n}
	raw := make([][]int, n)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, ErrVertexOutOfRange
		}
		if u == v {
			continue // self-loop, silently dropped
		}
		raw[u] = append(raw[u], v)
		raw[v] = append(raw[v], u)
	}

	g.adj = make([][]int, n)
	g.deg = make([]int, n)
	var m int
	for v := 0; v < n; v++ {
		g.adj[v] = dedupSorted(raw[v])
		g.deg[v] = len(g.adj[v])
	}
	for v := 0; v < n; v++ {
		for _, w := range g.adj[v] {
			if v < w {
				m++
			}
		}
	}
	g.m = m
	g.order = computeDegreeOrder(g.deg)

	return g, nil
}

// dedupSorted sorts a and removes duplicate values in place, returning the
// deduplicated prefix (re-sliced, not copied).
func dedupSorted(a []int) []int {
	if len(a) == 0 {
		return a
	}
	sort.Ints(a)
	out := a[:1]
	for _, v := range a[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// computeDegreeOrder returns vertex ids sorted by (degree desc, id asc).
func computeDegreeOrder(deg []int) []int {
	order := make([]int, len(deg))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return deg[order[i]] > deg[order[j]]
	})
	return order
}
