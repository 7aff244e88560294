package buffer

import "github.com/Philipp01105/memsink/core"

// Store is the backing container for a Buffer. It is the dependency
// injection point for substituting the storage strategy: a caller can
// pre-seed events or supply an alternative implementation.
//
// Store implementations are not required to be goroutine-safe; the
// owning Buffer serializes all access under its lock.
type Store interface {
	// Append adds an event at the tail.
	Append(ev *core.Event)
	// RemoveOldest removes the event at the head. It is a no-op on an
	// empty store.
	RemoveOldest()
	// Len returns the number of stored events.
	Len() int
	// Snapshot returns an independent copy of the contents, oldest first.
	Snapshot() []*core.Event
	// Clear removes all events.
	Clear()
}

// SliceStore is the default slice-backed Store.
type SliceStore struct {
	events []*core.Event
}

// NewSliceStore creates an empty SliceStore.
func NewSliceStore() *SliceStore {
	return &SliceStore{events: make([]*core.Event, 0, 16)}
}

// Append adds an event at the tail.
func (s *SliceStore) Append(ev *core.Event) {
	s.events = append(s.events, ev)
}

// RemoveOldest removes the event at the head.
func (s *SliceStore) RemoveOldest() {
	if len(s.events) == 0 {
		return
	}
	n := copy(s.events, s.events[1:])
	s.events[n] = nil // release the reference
	s.events = s.events[:n]
}

// Len returns the number of stored events.
func (s *SliceStore) Len() int {
	return len(s.events)
}

// Snapshot returns an independent copy of the contents, oldest first.
func (s *SliceStore) Snapshot() []*core.Event {
	out := make([]*core.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Clear removes all events.
func (s *SliceStore) Clear() {
	for i := range s.events {
		s.events[i] = nil
	}
	s.events = s.events[:0]
}
