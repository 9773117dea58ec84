package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gopherforge/chromabench/core"
)

// ErrMissingProblemLine indicates the input never contained a "p edge n m"
// line.
var ErrMissingProblemLine = errors.New("dimacs: missing problem line")

// ErrEdgeBeforeProblemLine indicates an "e u v" line appeared before the
// problem line that declares the vertex count.
var ErrEdgeBeforeProblemLine = errors.New("dimacs: edge line before problem line")

// ErrMalformedLine wraps any problem or edge line that fails to parse.
var ErrMalformedLine = errors.New("dimacs: malformed line")

// ParseGraph reads a DIMACS edge-list graph from r and builds a
// core.Graph. Vertex indices are translated from the format's 1-indexed
// convention to this module's 0-indexed one; validation of the resulting
// indices, self-loop dropping, and duplicate-edge deduplication are all
// delegated to core.New.
func ParseGraph(r io.Reader) (*core.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n := 0
	sawProblemLine := false
	var edges [][2]int

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line[0] {
		case 'c', '%', '#':
			continue
		case 'p':
			fields := strings.Fields(line)
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			parsed, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("%w: vertex count %q", ErrMalformedLine, fields[2])
			}
			n = parsed
			sawProblemLine = true
		case 'e':
			if !sawProblemLine {
				return nil, ErrEdgeBeforeProblemLine
			}
			fields := strings.Fields(line)
			if len(fields) < 3 {
				return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			u, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			edges = append(edges, [2]int{u - 1, v - 1})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !sawProblemLine {
		return nil, ErrMissingProblemLine
	}
	return core.New(n, edges)
}

// WriteGraph writes g in the DIMACS edge-list format ParseGraph accepts: a
// comment line, a "p edge n m" problem line, then one "e u v" line per
// edge with vertices translated back to the format's 1-indexed convention.
func WriteGraph(w io.Writer, comment string, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	if comment != "" {
		if _, err := fmt.Fprintf(bw, "c %s\n", comment); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "p edge %d %d\n", g.N(), g.M()); err != nil {
		return err
	}
	for u := 0; u < g.N(); u++ {
		for _, v := range g.Neighbours(u) {
			if u < v {
				if _, err := fmt.Fprintf(bw, "e %d %d\n", u+1, v+1); err != nil {
					return err
				}
			}
		}
	}
	return bw.Flush()
}

// WriteColouring writes c in the module's colouring output format:
// a comment line naming algorithm, a problem line echoing g's size, then
// one "v vertex-1-indexed colour-0-indexed" line per vertex.
func WriteColouring(w io.Writer, algorithm string, g *core.Graph, c core.Coloring) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "c colouring produced by %s\n", algorithm); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "p edge %d %d\n", g.N(), g.M()); err != nil {
		return err
	}
	for v, colour := range c {
		if _, err := fmt.Fprintf(bw, "v %d %d\n", v+1, colour); err != nil {
			return err
		}
	}
	return bw.Flush()
}
