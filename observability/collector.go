package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Philipp01105/memsink/sink"
)

// SinkCollector exposes a MemSink's retention state as Prometheus
// metrics. Register it with a prometheus.Registry; every scrape reads
// the sink's counters directly, so no polling goroutine is needed.
type SinkCollector struct {
	sink *sink.MemSink

	retained *prometheus.Desc
	capacity *prometheus.Desc
	evicted  *prometheus.Desc
	memory   *prometheus.Desc
}

// NewSinkCollector creates a collector for the given sink.
func NewSinkCollector(s *sink.MemSink) *SinkCollector {
	return &SinkCollector{
		sink: s,
		retained: prometheus.NewDesc(
			"memsink_retained_events",
			"Number of log events currently retained in the sink",
			nil, nil,
		),
		capacity: prometheus.NewDesc(
			"memsink_capacity",
			"Maximum number of log events the sink retains",
			nil, nil,
		),
		evicted: prometheus.NewDesc(
			"memsink_evicted_events_total",
			"Total number of log events evicted due to capacity pressure",
			nil, nil,
		),
		memory: prometheus.NewDesc(
			"memsink_estimated_memory_bytes",
			"Rough estimate of memory held by retained event messages",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *SinkCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.retained
	ch <- c.capacity
	ch <- c.evicted
	ch <- c.memory
}

// Collect implements prometheus.Collector.
func (c *SinkCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.retained, prometheus.GaugeValue, float64(c.sink.Size()))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(c.sink.Capacity()))
	ch <- prometheus.MustNewConstMetric(c.evicted, prometheus.CounterValue, float64(c.sink.Discarded()))
	ch <- prometheus.MustNewConstMetric(c.memory, prometheus.GaugeValue, float64(c.sink.EstimatedMemoryUsage()))
}
