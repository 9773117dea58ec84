package metrics

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrOpenFailed wraps any error opening the results file for append.
var ErrOpenFailed = errors.New("metrics: failed to open results file")

// Record is one benchmark outcome, one row of the CSV schema.
type Record struct {
	Algorithm  string
	GraphName  string
	Vertices   int
	Edges      int
	ColorsUsed int
	// KnownOptimal is nil when the graph's chromatic number isn't known
	// independently, producing an empty CSV field.
	KnownOptimal *int
	RuntimeMS    float64
}

// AppendCSV appends rec to the CSV file at path, creating it (with header)
// if absent, or adding a header to an existing-but-empty file.
func AppendCSV(path string, rec Record) error {
	info, statErr := os.Stat(path)
	writeHeader := errors.Is(statErr, os.ErrNotExist) || (statErr == nil && info.Size() == 0)
	if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrOpenFailed, statErr)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	defer f.Close()

	if writeHeader {
		if _, err := fmt.Fprintln(f, "algorithm,graph_name,vertices,edges,colors_used,known_optimal,runtime_ms"); err != nil {
			return err
		}
	}

	known := ""
	if rec.KnownOptimal != nil {
		known = strconv.Itoa(*rec.KnownOptimal)
	}
	_, err = fmt.Fprintf(f, "%s,%s,%d,%d,%d,%s,%.3f\n",
		rec.Algorithm, rec.GraphName, rec.Vertices, rec.Edges, rec.ColorsUsed, known, rec.RuntimeMS)
	return err
}
