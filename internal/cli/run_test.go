package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunColour_WritesOutputAndMetrics(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "triangle.col")
	if err := os.WriteFile(input, []byte("p edge 3 3\ne 1 2\ne 2 3\ne 3 1\n"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := filepath.Join(dir, "triangle.out")
	results := filepath.Join(dir, "results.csv")

	var logBuf bytes.Buffer
	c := New(&logBuf, LogInfo)

	opts := runOpts{
		algorithm: "welsh_powell",
		input:     input,
		output:    output,
		results:   results,
		graphName: "triangle",
	}
	if err := c.runColour(&opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outBytes, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(outBytes), "p edge 3 3") {
		t.Errorf("output missing problem line: %q", outBytes)
	}

	csvBytes, err := os.ReadFile(results)
	if err != nil {
		t.Fatalf("reading results: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(csvBytes)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d CSV lines, want 2 (header + row): %q", len(lines), csvBytes)
	}
	if !strings.HasPrefix(lines[1], "welsh_powell,triangle,3,3,3,,") {
		t.Errorf("CSV row = %q, want prefix %q", lines[1], "welsh_powell,triangle,3,3,3,,")
	}
}

func TestRunColour_UnknownAlgorithm(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "triangle.col")
	if err := os.WriteFile(input, []byte("p edge 3 3\ne 1 2\ne 2 3\ne 3 1\n"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var logBuf bytes.Buffer
	c := New(&logBuf, LogInfo)
	err := c.runColour(&runOpts{algorithm: "not_a_strategy", input: input})
	if err == nil {
		t.Fatal("want error for unknown algorithm, got nil")
	}
}
