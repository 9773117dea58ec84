// Package dimacs reads the DIMACS edge-list graph format the rest of this
// module consumes, and writes the colouring output format the CLI
// produces.
//
// Input format:
//
//	c <comment>
//	p edge <n> <m>
//	e <u> <v>          // 1-indexed, one line per edge
//
// Comment lines start with c, %, or #. Self-loops are silently dropped and
// duplicate edges silently deduplicated by core.New, which every parsed
// graph passes through; the parser itself only translates 1-indexed DIMACS
// vertices to this module's 0-indexed convention.
//
// Output format:
//
//	c colouring produced by <algorithm>
//	p edge <n> <m>
//	v <vertex-1-indexed> <colour-0-indexed>
package dimacs
