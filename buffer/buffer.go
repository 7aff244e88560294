package buffer

import (
	"errors"
	"sync"

	"github.com/Philipp01105/memsink/core"
)

// DefaultCapacity is the capacity used when none is specified.
const DefaultCapacity = 1000

var (
	// ErrInvalidCapacity is returned when a capacity is not a positive integer.
	ErrInvalidCapacity = errors.New("buffer: capacity must be a positive integer")
	// ErrNilStore is returned when constructing a Buffer with a nil Store.
	ErrNilStore = errors.New("buffer: store cannot be nil")
)

// Buffer is a capacity-bounded, insertion-ordered container of log
// events. When full, adding an event evicts the oldest one; every
// eviction is counted. All operations are goroutine-safe.
//
// A single mutex covers contents, capacity, and the eviction counter
// jointly. The accounting invariant spans all three, so finer-grained
// locking would let readers observe a half-applied add or shrink.
type Buffer struct {
	mu       sync.Mutex
	store    Store
	capacity int
	evicted  uint64
}

// New creates a Buffer with the given capacity and a SliceStore.
func New(capacity int) (*Buffer, error) {
	return NewWithStore(capacity, NewSliceStore())
}

// NewDefault creates a Buffer with DefaultCapacity and a SliceStore.
func NewDefault() *Buffer {
	b, err := New(DefaultCapacity)
	if err != nil {
		panic("buffer: default capacity is invalid: " + err.Error())
	}
	return b
}

// NewWithStore creates a Buffer with the given capacity and backing
// store. The store may be pre-seeded; contents beyond capacity are
// evicted on the first Add or SetCapacity.
func NewWithStore(capacity int, store Store) (*Buffer, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if store == nil {
		return nil, ErrNilStore
	}
	return &Buffer{store: store, capacity: capacity}, nil
}

// Add appends an event at the tail. If the buffer is full, the oldest
// event is removed first and the eviction counter incremented. A nil
// event is silently ignored.
func (b *Buffer) Add(ev *core.Event) {
	if ev == nil {
		return
	}
	b.mu.Lock()
	for b.store.Len() >= b.capacity {
		b.store.RemoveOldest()
		b.evicted++
	}
	b.store.Append(ev)
	b.mu.Unlock()
}

// Snapshot returns an independent copy of the retained events, oldest
// first. Later mutations of the buffer do not affect the returned slice.
func (b *Buffer) Snapshot() []*core.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.Snapshot()
}

// SetCapacity updates the capacity. Shrinking below the current size
// evicts from the head, incrementing the eviction counter once per
// removed event, until the size fits. Growing never evicts.
func (b *Buffer) SetCapacity(n int) error {
	if n <= 0 {
		return ErrInvalidCapacity
	}
	b.mu.Lock()
	b.capacity = n
	for b.store.Len() > n {
		b.store.RemoveOldest()
		b.evicted++
	}
	b.mu.Unlock()
	return nil
}

// Capacity returns the current capacity.
func (b *Buffer) Capacity() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.capacity
}

// Len returns the number of retained events.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.Len()
}

// Evicted returns the number of events removed due to capacity
// pressure since the last Clear.
func (b *Buffer) Evicted() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.evicted
}

// Clear removes all events and resets the eviction counter. Capacity
// is unchanged.
func (b *Buffer) Clear() {
	b.mu.Lock()
	b.store.Clear()
	b.evicted = 0
	b.mu.Unlock()
}

// Drain removes up to n events from the head without touching the
// eviction counter. The sink uses it to discard exactly the events it
// already flushed, so ingestion racing with a flush is never lost.
func (b *Buffer) Drain(n int) {
	b.mu.Lock()
	for i := 0; i < n && b.store.Len() > 0; i++ {
		b.store.RemoveOldest()
	}
	b.mu.Unlock()
}
