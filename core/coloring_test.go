package core_test

import (
	"testing"

	"github.com/gopherforge/chromabench/core"
)

func TestColoring_NumColors(t *testing.T) {
	cases := []struct {
		name string
		c    core.Coloring
		want int
	}{
		{"empty", nil, 0},
		{"all uncoloured", core.Coloring{-1, -1}, 0},
		{"single", core.Coloring{0}, 1},
		{"three colours", core.Coloring{2, 0, 1}, 3},
	}
	for _, tc := range cases {
		if got := tc.c.NumColors(); got != tc.want {
			t.Errorf("%s: NumColors()=%d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestGraph_ConflictCount(t *testing.T) {
	g, err := core.New(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	valid := core.Coloring{0, 1, 2}
	if n := g.ConflictCount(valid); n != 0 {
		t.Errorf("valid triangle colouring: ConflictCount=%d, want 0", n)
	}
	invalid := core.Coloring{0, 0, 1}
	if n := g.ConflictCount(invalid); n != 1 {
		t.Errorf("one clash: ConflictCount=%d, want 1", n)
	}
}

func TestGraph_IsValid(t *testing.T) {
	g, err := core.New(3, [][2]int{{0, 1}, {1, 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.IsValid(core.Coloring{0, 1, 0}) {
		t.Error("path P3 2-colouring should be valid")
	}
	if g.IsValid(core.Coloring{0, 0, 0}) {
		t.Error("all-same colouring should be invalid")
	}
	if g.IsValid(core.Coloring{0, -1, 0}) {
		t.Error("partial colouring (contains -1) should be invalid")
	}
}

func TestGraph_Saturation(t *testing.T) {
	// Star: 0 - {1,2,3}; colour 1 and 2 differently, leave 3 uncoloured.
	g, err := core.New(4, [][2]int{{0, 1}, {0, 2}, {0, 3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := core.Coloring{-1, 0, 1, -1}
	if s := g.Saturation(c, 0); s != 2 {
		t.Errorf("Saturation(0)=%d, want 2", s)
	}
	if s := g.Saturation(c, 3); s != 0 {
		t.Errorf("Saturation(3)=%d, want 0 (no coloured neighbours)", s)
	}
}

func TestGraph_ConflictsAt_MatchesConflictCountDelta(t *testing.T) {
	g, err := core.New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := core.Coloring{0, 0, 1, 1}
	// vertex 1 conflicts with vertex 0 only.
	if n := g.ConflictsAt(c, 1); n != 1 {
		t.Errorf("ConflictsAt(1)=%d, want 1", n)
	}
	// recoloured to 1, vertex 1 would conflict with vertex 2 only.
	if n := g.ConflictsIfColoured(c, 1, 1); n != 1 {
		t.Errorf("ConflictsIfColoured(1,1)=%d, want 1", n)
	}
	moved := c.Clone()
	moved[1] = 1
	delta := g.ConflictsIfColoured(c, 1, 1) - g.ConflictsAt(c, 1)
	if got := g.ConflictCount(moved) - g.ConflictCount(c); got != delta {
		t.Errorf("ConflictCount delta=%d, want local delta %d", got, delta)
	}
}
