package dsatur

import (
	"container/heap"

	"github.com/gopherforge/chromabench/core"
	"github.com/gopherforge/chromabench/snapshot"
)

// Colour produces a proper colouring of g using DSATUR. sink may be nil;
// when non-nil, Record is called after every vertex assignment.
//
// Colour returns an error only if sink.Record does: like Welsh-Powell,
// DSATUR is total, including over the empty graph.
func Colour(g *core.Graph, sink snapshot.Sink) (core.Coloring, error) {
	n := g.N()
	c := make(core.Coloring, n)
	for i := range c {
		c[i] = -1
	}
	if n == 0 {
		return c, nil
	}

	satCount := make([]int, n)
	satColours := make([]map[int]bool, n)
	remDeg := make([]int, n)
	for v := 0; v < n; v++ {
		satColours[v] = make(map[int]bool)
		remDeg[v] = g.Degree(v)
	}

	pq := make(nodePQ, n)
	for v := 0; v < n; v++ {
		pq[v] = &nodeItem{id: v, sat: 0, remDeg: remDeg[v]}
	}
	heap.Init(&pq)

	remaining := n
	for remaining > 0 {
		var item *nodeItem
		for pq.Len() > 0 {
			cand := heap.Pop(&pq).(*nodeItem)
			if c[cand.id] != -1 {
				continue // stale: vertex already coloured
			}
			if cand.sat != satCount[cand.id] || cand.remDeg != remDeg[cand.id] {
				continue // stale: a fresher entry for this vertex was pushed since
			}
			item = cand
			break
		}
		// item is always found while remaining > 0: every uncoloured vertex
		// has exactly one live heap entry at its current (saturation, remaining
		// degree) pair.
		v := item.id
		colour := chooseColour(g, c, v)
		c[v] = colour
		remaining--
		if sink != nil {
			if err := sink.Record(c); err != nil {
				return nil, err
			}
		}

		for _, w := range g.Neighbours(v) {
			if c[w] != -1 {
				continue
			}
			remDeg[w]--
			if !satColours[w][colour] {
				satColours[w][colour] = true
				satCount[w]++
			}
			heap.Push(&pq, &nodeItem{id: w, sat: satCount[w], remDeg: remDeg[w]})
		}
	}
	return c, nil
}

// chooseColour returns the smallest non-negative colour not already present
// on a coloured neighbour of v.
func chooseColour(g *core.Graph, c core.Coloring, v int) int {
	used := make(map[int]bool, g.Degree(v))
	for _, w := range g.Neighbours(v) {
		if cw := c[w]; cw >= 0 {
			used[cw] = true
		}
	}
	colour := 0
	for used[colour] {
		colour++
	}
	return colour
}

// nodeItem is a candidate vertex awaiting colouring, carrying the
// saturation and remaining-degree snapshot it was pushed with.
type nodeItem struct {
	id     int
	sat    int
	remDeg int
}

// nodePQ is a max-heap ordered by (saturation desc, remaining degree desc,
// id asc), the DSATUR tie-break rule. Staleness is resolved lazily by the
// caller: an entry whose (sat, remDeg) no longer matches the vertex's live
// counters is skipped on pop rather than updated in place.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].sat != pq[j].sat {
		return pq[i].sat > pq[j].sat
	}
	if pq[i].remDeg != pq[j].remDeg {
		return pq[i].remDeg > pq[j].remDeg
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
