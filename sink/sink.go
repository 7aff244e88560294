package sink

import (
	"errors"
	"io"
	"os"
	"sync"

	"github.com/Philipp01105/memsink/buffer"
	"github.com/Philipp01105/memsink/core"
	"github.com/Philipp01105/memsink/layout"
)

// ErrNoLayout is returned by operations that render events when no
// layout has been configured. The caller can recover by calling
// SetLayout and retrying.
var ErrNoLayout = errors.New("sink: layout is not set, cannot format events without a layout")

// MemSink is a bounded in-memory log sink. It retains the newest
// capacity-many events, renders them with a configurable layout, and
// accounts for every event discarded under capacity pressure.
//
// All methods are safe for concurrent use. Ingestion never fails and
// never panics; errors occur only on misconfiguration.
type MemSink struct {
	buf *buffer.Buffer

	mu  sync.RWMutex // guards lay and writes to w
	lay layout.Layout
	w   io.Writer
}

// Config holds configuration for a MemSink.
type Config struct {
	// Capacity is the maximum number of retained events (default: 1000)
	Capacity int
	// Layout renders events for EventStrings and Flush (default: unset)
	Layout layout.Layout
	// Writer receives flushed events (default: os.Stdout)
	Writer io.Writer
	// Store is the backing container for retained events
	// (default: a fresh buffer.SliceStore)
	Store buffer.Store
}

// New creates a MemSink from cfg, applying defaults for zero fields.
func New(cfg Config) (*MemSink, error) {
	if cfg.Capacity == 0 {
		cfg.Capacity = buffer.DefaultCapacity
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Store == nil {
		cfg.Store = buffer.NewSliceStore()
	}

	buf, err := buffer.NewWithStore(cfg.Capacity, cfg.Store)
	if err != nil {
		return nil, err
	}
	return &MemSink{
		buf: buf,
		lay: cfg.Layout,
		w:   cfg.Writer,
	}, nil
}

// Ingest stores one event. A nil event is silently dropped; Ingest
// never returns an error back into the logging path.
func (s *MemSink) Ingest(ev *core.Event) {
	s.buf.Add(ev)
}

// CurrentLogs returns an independent copy of the retained events,
// oldest first.
func (s *MemSink) CurrentLogs() []*core.Event {
	return s.buf.Snapshot()
}

// EventStrings renders every retained event with the configured
// layout, oldest first. The events are snapshotted before formatting,
// so ingestion racing with this call never affects the result. It
// returns ErrNoLayout when no layout is configured.
func (s *MemSink) EventStrings() ([]string, error) {
	lay := s.Layout()
	if lay == nil {
		return nil, ErrNoLayout
	}

	snap := s.buf.Snapshot()
	out := make([]string, len(snap))
	for i, ev := range snap {
		out[i] = lay.Format(ev)
	}
	return out, nil
}

// Flush renders every retained event, writes each on its own line to
// the configured writer, and removes the flushed events from the
// buffer. The eviction counter is preserved, unlike Reset.
//
// Flush operates on a snapshot: events are rendered and written
// outside the buffer lock, then exactly the snapshotted events are
// removed. Events ingested while the flush is writing stay retained
// and are picked up by the next flush. It returns ErrNoLayout when no
// layout is configured.
func (s *MemSink) Flush() error {
	lay := s.Layout()
	if lay == nil {
		return ErrNoLayout
	}

	snap := s.buf.Snapshot()

	s.mu.Lock()
	for _, ev := range snap {
		if _, err := io.WriteString(s.w, lay.Format(ev)); err != nil {
			s.mu.Unlock()
			return err
		}
		if _, err := io.WriteString(s.w, "\n"); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	s.mu.Unlock()

	s.buf.Drain(len(snap))
	return nil
}

// Discarded returns the number of events evicted due to capacity
// pressure since the sink was created or last Reset.
func (s *MemSink) Discarded() uint64 {
	return s.buf.Evicted()
}

// Size returns the number of currently retained events.
func (s *MemSink) Size() int {
	return s.buf.Len()
}

// Capacity returns the maximum number of retained events.
func (s *MemSink) Capacity() int {
	return s.buf.Capacity()
}

// SetCapacity updates the retention capacity. Shrinking below the
// current size evicts oldest-first and counts each eviction.
func (s *MemSink) SetCapacity(n int) error {
	return s.buf.SetCapacity(n)
}

// SetLayout replaces the sink's layout. A nil layout unsets it.
func (s *MemSink) SetLayout(l layout.Layout) {
	s.mu.Lock()
	s.lay = l
	s.mu.Unlock()
}

// Layout returns the configured layout, or nil when unset.
func (s *MemSink) Layout() layout.Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lay
}

// EstimatedMemoryUsage returns a rough estimate of the memory held by
// retained event messages, at two bytes per message character. It is
// advisory only.
func (s *MemSink) EstimatedMemoryUsage() int64 {
	var total int64
	for _, ev := range s.buf.Snapshot() {
		total += 2 * int64(len(ev.Message))
	}
	return total
}

// Reset removes all retained events and zeroes the eviction counter.
// The layout and writer are kept.
func (s *MemSink) Reset() {
	s.buf.Clear()
}

// Close resets the sink. It is idempotent and keeps the layout
// reference, matching Reset semantics.
func (s *MemSink) Close() error {
	s.buf.Clear()
	return nil
}
