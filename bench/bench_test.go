package bench_test

import (
	"errors"
	"testing"

	"github.com/gopherforge/chromabench/bench"
	"github.com/gopherforge/chromabench/rng"
)

func TestErdosRenyi_VertexCountAndDeterminism(t *testing.T) {
	g1, err := bench.ErdosRenyi(30, 0.2, rng.FromSeed(11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g1.N() != 30 {
		t.Errorf("N()=%d, want 30", g1.N())
	}
	g2, err := bench.ErdosRenyi(30, 0.2, rng.FromSeed(11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g1.M() != g2.M() {
		t.Errorf("same seed produced different edge counts: %d vs %d", g1.M(), g2.M())
	}
}

func TestErdosRenyi_ZeroProbabilityIsEdgeless(t *testing.T) {
	g, err := bench.ErdosRenyi(10, 0, rng.FromSeed(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.M() != 0 {
		t.Errorf("M()=%d, want 0", g.M())
	}
}

func TestPlantedPartition_PartitionIsAlwaysValidColouring(t *testing.T) {
	g, partition, err := bench.PlantedPartition(40, 4, 0.5, rng.FromSeed(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.IsValid(partition) {
		t.Errorf("planted partition %v is not a valid colouring of the graph it generated", partition)
	}
}

func TestPlantedPartition_RejectsZeroPartitions(t *testing.T) {
	_, _, err := bench.PlantedPartition(10, 0, 0.5, rng.FromSeed(1))
	if !errors.Is(err, bench.ErrInvalidPartitionCount) {
		t.Errorf("want ErrInvalidPartitionCount, got %v", err)
	}
}
