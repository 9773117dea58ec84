package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gopherforge/chromabench/dimacs"
	"github.com/gopherforge/chromabench/visualize"
)

type visualizeOpts struct {
	input    string
	coloring string
	output   string
	svg      bool
}

// visualizeCommand renders a DIMACS graph, optionally coloured by a
// previously produced colouring file, to a Graphviz DOT (or SVG) picture.
func (c *CLI) visualizeCommand() *cobra.Command {
	var opts visualizeOpts

	cmd := &cobra.Command{
		Use:   "visualize",
		Short: "Render a graph (and optional colouring) to DOT or SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVisualize(&opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.input, "input", "", "path to a DIMACS .col graph file")
	flags.StringVar(&opts.coloring, "coloring", "", "path to a DIMACS colouring file produced by `run --output`; empty renders every vertex white")
	flags.StringVar(&opts.output, "output", "", "path to write the rendered picture")
	flags.BoolVar(&opts.svg, "svg", false, "rasterize to SVG instead of writing raw DOT")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *CLI) runVisualize(opts *visualizeOpts) error {
	in, err := os.Open(opts.input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	g, err := dimacs.ParseGraph(in)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	coloring := make([]int, g.N())
	for i := range coloring {
		coloring[i] = -1
	}
	if opts.coloring != "" {
		parsed, err := os.Open(opts.coloring)
		if err != nil {
			return fmt.Errorf("open coloring: %w", err)
		}
		defer parsed.Close()
		coloring, err = parseColouringFile(parsed, g.N())
		if err != nil {
			return fmt.Errorf("parse coloring: %w", err)
		}
	}

	dot := visualize.ToDOT(g, coloring)

	var data []byte
	if opts.svg {
		data, err = visualize.RenderSVG(dot)
		if err != nil {
			return err
		}
	} else {
		data = []byte(dot)
	}

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	c.Logger.Infof("wrote %s", opts.output)
	return nil
}
