// Package trace emits Chrome trace-event JSON for esio's collective I/O
// calls: esio has no /proc-based CPU or memory sampling to report, only
// the duration of each collective write/read, so this sticks to the
// sink/event primitives.
package trace

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var start = time.Now()

var (
	sinkMu sync.Mutex
	sink   io.Writer = io.Discard
)

// Sink writes all following Event()s as a Chrome trace event file into w.
func Sink(w io.Writer) {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	sink = w
	w.Write([]byte{'['}) // the closing ']' is optional in Chrome's format
}

// Enable creates $TMPDIR/esio.traces/prefix.$PID and sinks events into it.
func Enable(prefix string) error {
	fn := filepath.Join(os.TempDir(), "esio.traces", fmt.Sprintf("%s.%d", prefix, os.Getpid()))
	if err := os.MkdirAll(filepath.Dir(fn), 0755); err != nil {
		return err
	}
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	Sink(f)
	return nil
}

// PendingEvent is one in-flight span; call Done to close and emit it.
type PendingEvent struct {
	Name           string      `json:"name"`
	Type           string      `json:"ph"`
	ClockTimestamp uint64      `json:"ts"`
	Duration       uint64      `json:"dur"`
	Pid            uint64      `json:"pid"`
	Tid            uint64      `json:"tid"`
	Args           interface{} `json:"args,omitempty"`

	start time.Time
}

// Done closes pe, stamping its duration, and writes it to the active sink.
func (pe *PendingEvent) Done() {
	pe.Duration = uint64(time.Since(pe.start) / time.Microsecond)
	b, err := json.Marshal(pe)
	if err != nil {
		panic(err)
	}
	sinkMu.Lock()
	defer sinkMu.Unlock()
	if _, err := sink.Write(append(b, ',')); err != nil {
		log.Printf("[trace] %v", err)
	}
}

// Event starts a new span named name on logical thread tid (use the rank
// for multi-rank traces).
func Event(name string, tid int) *PendingEvent {
	return &PendingEvent{
		Name:           name,
		Type:           "X",
		ClockTimestamp: uint64(time.Since(start) / time.Microsecond),
		Tid:            uint64(tid),
		start:          time.Now(),
	}
}
