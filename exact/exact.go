package exact

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/gopherforge/chromabench/core"
	"github.com/gopherforge/chromabench/dsatur"
	"github.com/gopherforge/chromabench/snapshot"
)

const (
	// DefaultProgressInterval matches the spec's documented default.
	DefaultProgressInterval = 5 * time.Second
	minProgressInterval     = 50 * time.Millisecond
	maxProgressInterval     = 600 * time.Second

	progressCheckEvery = 1023 // bitmask: check wall clock every 1024 node events
)

// Solve runs the branch-and-bound search and returns a colouring that
// uses the chromatic number of g. logger may be nil to disable progress
// reporting; sink may be nil to disable snapshots. progressInterval <= 0
// uses DefaultProgressInterval; values are clamped to [0.05s, 600s].
//
// Solve returns an error only if the final sink.Record does: DSATUR's seed
// is always available, and the search tree is always finite. Errors from
// the snapshots recorded during the search itself are discarded.
func Solve(g *core.Graph, sink snapshot.Sink, progressInterval time.Duration, logger *log.Logger) (core.Coloring, error) {
	n := g.N()
	if n == 0 {
		return core.Coloring{}, nil
	}

	seed, err := dsatur.Colour(g, nil)
	if err != nil {
		return nil, err
	}

	e := &engine{
		g:                g,
		n:                n,
		bestK:            seed.NumColors(),
		bestSolution:     seed.Clone(),
		c:                make(core.Coloring, n),
		sink:             sink,
		logger:           logger,
		progressInterval: clampInterval(progressInterval),
		start:            time.Now(),
	}
	for i := range e.c {
		e.c[i] = -1
	}
	e.lastReport = e.start

	e.search(-1)

	if sink != nil {
		if err := sink.Record(e.bestSolution); err != nil {
			return nil, err
		}
	}
	return e.bestSolution, nil
}

func clampInterval(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultProgressInterval
	}
	if d < minProgressInterval {
		return minProgressInterval
	}
	if d > maxProgressInterval {
		return maxProgressInterval
	}
	return d
}

// engine holds all branch-and-bound search state. A fresh engine serves
// exactly one Solve call.
type engine struct {
	g *core.Graph
	n int

	bestK        int
	bestSolution core.Coloring

	c core.Coloring // current partial assignment; -1 marks uncoloured

	sink   snapshot.Sink
	logger *log.Logger

	progressInterval time.Duration
	start            time.Time
	lastReport       time.Time
	steps            int
	nodesVisited     int
}

// search explores every completion of the current partial assignment
// reachable without exceeding bestK-1 colours, given that currentMaxColour
// is the highest colour index used so far (-1 if none yet).
func (e *engine) search(currentMaxColour int) {
	e.nodesVisited++
	e.maybeReportProgress(currentMaxColour)

	if currentMaxColour+1 >= e.bestK {
		return // a completion from here cannot beat the incumbent
	}

	v, ok := e.selectVertex()
	if !ok {
		// Full assignment: this branch strictly improves the incumbent by
		// construction (the prune above would have fired otherwise).
		e.bestK = currentMaxColour + 1
		e.bestSolution = e.c.Clone()
		if e.sink != nil {
			_ = e.sink.Record(e.bestSolution)
		}
		return
	}

	for colour := 0; colour <= currentMaxColour; colour++ {
		if e.g.ConflictsIfColoured(e.c, v, colour) == 0 {
			e.c[v] = colour
			e.search(currentMaxColour)
			e.c[v] = -1
		}
	}
	if currentMaxColour+2 < e.bestK {
		e.c[v] = currentMaxColour + 1
		e.search(currentMaxColour + 1)
		e.c[v] = -1
	}
}

// selectVertex picks the uncoloured vertex of maximum saturation (ties by
// higher remaining degree, then smaller id) — the same priority key DSATUR
// uses. Saturation is over colours already present on coloured neighbours,
// which by construction never exceeds the current max colour. Returns
// (0, false) when every vertex is coloured.
func (e *engine) selectVertex() (int, bool) {
	best, bestSat, bestRemDeg := -1, -1, -1
	for v := 0; v < e.n; v++ {
		if e.c[v] != -1 {
			continue
		}
		sat := e.g.Saturation(e.c, v)
		remDeg := e.remainingDegree(v)
		if best == -1 || sat > bestSat || (sat == bestSat && remDeg > bestRemDeg) {
			best, bestSat, bestRemDeg = v, sat, remDeg
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// remainingDegree counts v's still-uncoloured neighbours.
func (e *engine) remainingDegree(v int) int {
	n := 0
	for _, w := range e.g.Neighbours(v) {
		if e.c[w] == -1 {
			n++
		}
	}
	return n
}

// maybeReportProgress emits one diagnostic log line at most once per
// progressInterval, checked on a sparse cadence to keep the overhead of
// this instrumentation negligible relative to the search itself.
func (e *engine) maybeReportProgress(currentMaxColour int) {
	if e.logger == nil {
		return
	}
	e.steps++
	if e.steps&progressCheckEvery != 0 {
		return
	}
	now := time.Now()
	if now.Sub(e.lastReport) < e.progressInterval {
		return
	}
	e.lastReport = now

	coloured := 0
	for _, cv := range e.c {
		if cv != -1 {
			coloured++
		}
	}
	e.logger.Info("branch-and-bound progress",
		"elapsed_s", now.Sub(e.start).Seconds(),
		"coloured", coloured,
		"total", e.n,
		"palette", currentMaxColour+1,
		"best_k", e.bestK,
		"nodes", e.nodesVisited,
	)
}
