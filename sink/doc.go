// Package sink provides MemSink, a bounded in-memory log sink with
// pluggable rendering.
//
// A MemSink composes a buffer.Buffer, which retains the newest
// capacity-many events and counts evictions, with a layout.Layout that
// renders events on demand. Producers call Ingest concurrently;
// consumers read consistent snapshots via CurrentLogs and
// EventStrings, or emit-and-discard via Flush.
//
// Flush preserves the eviction counter while Reset and Close zero it.
// That asymmetry is kept from the behavior this sink is modeled on:
// a flush is routine emission, while Reset marks a new lifetime region
// for the counters.
//
// The package-level Default registry offers a process-wide instance
// for frameworks that require global lookup, with ResetDefault exposed
// separately for tests. Dependency-injected instances from New remain
// the primary construction path.
package sink
