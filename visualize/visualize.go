package visualize

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/gopherforge/chromabench/core"
)

// palette cycles through a fixed set of distinguishable fill colours; a
// colouring using more colours than len(palette) wraps around, which only
// affects the picture's readability, never the DOT graph's validity.
var palette = []string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231",
	"#911eb4", "#46f0f0", "#f032e6", "#bcf60c", "#fabebe",
}

// ToDOT renders g and its colouring c as an undirected Graphviz DOT graph,
// filling each vertex with its colour class's palette entry.
func ToDOT(g *core.Graph, c core.Coloring) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=12];\n")
	buf.WriteString("\n")

	for v := 0; v < g.N(); v++ {
		fill := "white"
		if v < len(c) && c[v] >= 0 {
			fill = palette[c[v]%len(palette)]
		}
		fmt.Fprintf(&buf, "  %d [label=%q, fillcolor=%q];\n", v, fmt.Sprintf("%d", v), fill)
	}

	buf.WriteString("\n")
	for u := 0; u < g.N(); u++ {
		for _, v := range g.Neighbours(u) {
			if u < v {
				fmt.Fprintf(&buf, "  %d -- %d;\n", u, v)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph produced by ToDOT to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("visualize: init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("visualize: parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("visualize: render: %w", err)
	}
	return buf.Bytes(), nil
}
