package genetic_test

import (
	"testing"

	"github.com/gopherforge/chromabench/core"
	"github.com/gopherforge/chromabench/genetic"
	"github.com/gopherforge/chromabench/rng"
)

func TestSearch_EmptyGraph(t *testing.T) {
	g, err := core.New(0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := genetic.Search(g, 0, rng.FromSeed(1), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c) != 0 {
		t.Errorf("len(c)=%d, want 0", len(c))
	}
}

func TestSearch_ProducesValidColoring(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges [][2]int
	}{
		{"triangle", 3, [][2]int{{0, 1}, {1, 2}, {2, 0}}},
		{"cycle5", 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}},
		{"edgeless", 4, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.New(tc.n, tc.edges)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			c, err := genetic.Search(g, 0, rng.FromSeed(31),
				nil,
				genetic.WithPopulationSize(20),
				genetic.WithMaxGenerations(100),
			)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !g.IsValid(c) {
				t.Errorf("colouring %v is not valid for %s", c, tc.name)
			}
		})
	}
}

func TestDefaultOptions_MatchesDocumentedDefaults(t *testing.T) {
	cfg := genetic.DefaultOptions()
	if cfg.PopulationSize != 64 {
		t.Errorf("PopulationSize=%d, want 64", cfg.PopulationSize)
	}
	if cfg.MaxGenerations != 500 {
		t.Errorf("MaxGenerations=%d, want 500", cfg.MaxGenerations)
	}
	if cfg.InitialMutationRate != 0.03 {
		t.Errorf("InitialMutationRate=%v, want 0.03", cfg.InitialMutationRate)
	}
}

func TestWithPopulationSize_RejectsBelowTwo(t *testing.T) {
	cfg := genetic.DefaultOptions()
	genetic.WithPopulationSize(1)(&cfg)
	if cfg.PopulationSize != 64 {
		t.Errorf("PopulationSize=%d after rejecting invalid override, want unchanged 64", cfg.PopulationSize)
	}
}

func TestSearch_DeterministicGivenSameSeed(t *testing.T) {
	g, err := core.New(6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, {0, 3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts := []genetic.Option{genetic.WithPopulationSize(16), genetic.WithMaxGenerations(50)}
	c1, err := genetic.Search(g, 0, rng.FromSeed(88), nil, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c2, err := genetic.Search(g, 0, rng.FromSeed(88), nil, opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for v := range c1 {
		if c1[v] != c2[v] {
			t.Fatalf("vertex %d: %d != %d across identical-seed runs", v, c1[v], c2[v])
		}
	}
}
