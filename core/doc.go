// Package core defines the shared types used across the memsink module.
//
// It provides the Level type for event severity and the Event type that
// represents a single log occurrence. Events are treated as immutable:
// the sink stores references and shares them between snapshots, which
// keeps ingestion allocation-free beyond the event itself.
//
// Timestamps come from Now, which normally delegates to time.Now. Hot
// producers can opt into the coarse clock via StartCoarseClock, which
// caches the wall clock every 500µs and turns per-event timestamping
// into a single atomic load.
package core
