package snapshot

import (
	"bufio"
	"errors"
	"io"
	"strconv"

	"github.com/gopherforge/chromabench/core"
)

// ErrWriteFailed wraps any underlying write error a Sink encounters.
var ErrWriteFailed = errors.New("snapshot: write failed")

// Sink records a colouring snapshot. Implementations must be safe to call
// repeatedly from within a single strategy's search loop; they are never
// called concurrently (spec §5: the core is single-threaded).
type Sink interface {
	// Record appends a snapshot of c. Uncoloured vertices (-1) are recorded
	// verbatim.
	Record(c core.Coloring) error
}

// BufferedSink writes one line per snapshot — N space-separated integers,
// vertex order, no header — to an underlying io.Writer through a bufio
// buffer. Callers must call Flush when the search loop ends; nothing
// flushes automatically, so a crash between the last Record and Flush loses
// buffered snapshots (acceptable: snapshots are a visualisation aid, not a
// correctness artifact).
type BufferedSink struct {
	w *bufio.Writer
}

// NewBufferedSink wraps w in a buffered writer of 4096 bytes, which holds
// one line for a graph of up to about two thousand single-digit colours.
func NewBufferedSink(w io.Writer) *BufferedSink {
	return &BufferedSink{w: bufio.NewWriterSize(w, 4096)}
}

// Record writes c as one line of space-separated integers.
func (s *BufferedSink) Record(c core.Coloring) error {
	for i, v := range c {
		if i > 0 {
			if err := s.w.WriteByte(' '); err != nil {
				return errJoin(err)
			}
		}
		if _, err := s.w.WriteString(strconv.Itoa(v)); err != nil {
			return errJoin(err)
		}
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return errJoin(err)
	}
	return nil
}

// Flush forces any buffered snapshots out to the underlying writer.
func (s *BufferedSink) Flush() error {
	if err := s.w.Flush(); err != nil {
		return errJoin(err)
	}
	return nil
}

func errJoin(cause error) error {
	return errors.Join(ErrWriteFailed, cause)
}

// MemorySink accumulates snapshots in memory, useful for tests and for
// embedding callers that want the final trace without a file.
type MemorySink struct {
	Snapshots []core.Coloring
}

// Record appends a defensive copy of c.
func (s *MemorySink) Record(c core.Coloring) error {
	s.Snapshots = append(s.Snapshots, c.Clone())
	return nil
}
