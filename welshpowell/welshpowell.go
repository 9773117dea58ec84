package welshpowell

import (
	"github.com/gopherforge/chromabench/core"
	"github.com/gopherforge/chromabench/snapshot"
)

// Colour produces a proper colouring of g using the Welsh-Powell
// degree-ordered greedy heuristic. sink may be nil; when non-nil, Record is
// called after every vertex assignment with the colouring-so-far
// (uncoloured vertices still hold -1).
//
// Colour returns an error only if sink.Record does: the heuristic is total over every graph,
// including the empty graph (N()==0, which returns an empty Coloring
// immediately).
func Colour(g *core.Graph, sink snapshot.Sink) (core.Coloring, error) {
	n := g.N()
	c := make(core.Coloring, n)
	for i := range c {
		c[i] = -1
	}
	order := g.DegreeOrder()

	remaining := n
	colour := 0
	for remaining > 0 {
		for _, v := range order {
			if c[v] != -1 {
				continue
			}
			if !hasNeighbourWithColour(g, c, v, colour) {
				c[v] = colour
				remaining--
				if sink != nil {
					if err := sink.Record(c); err != nil {
						return nil, err
					}
				}
			}
		}
		colour++
	}
	return c, nil
}

func hasNeighbourWithColour(g *core.Graph, c core.Coloring, v, colour int) bool {
	for _, w := range g.Neighbours(v) {
		if c[w] == colour {
			return true
		}
	}
	return false
}
