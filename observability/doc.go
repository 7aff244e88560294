// Package observability exports a memory sink's retention state to
// Prometheus.
//
// SinkCollector is a pull-style prometheus.Collector: metric values
// are read from the sink at scrape time. The eviction counter follows
// the sink's lifecycle, so a Reset of the sink appears to Prometheus
// as an ordinary counter reset.
package observability
