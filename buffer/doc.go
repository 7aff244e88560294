// Package buffer provides the bounded, insertion-ordered event
// container behind a memory sink.
//
// Buffer retains the newest capacity-many events in arrival order,
// evicting oldest-first under capacity pressure and counting every
// eviction. Capacity is adjustable at runtime; shrinking evicts the
// excess immediately. One mutex guards contents, capacity, and the
// eviction counter as a unit.
//
// The backing container is pluggable through the Store interface.
// SliceStore is the default; callers can inject a pre-seeded or custom
// store at construction.
package buffer
