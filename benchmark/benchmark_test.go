package benchmark

import (
	"testing"
	"time"

	"github.com/Philipp01105/memsink/core"
	"github.com/Philipp01105/memsink/layout"
	"github.com/Philipp01105/memsink/sink"
)

func newBenchSink(b *testing.B, capacity int) *sink.MemSink {
	b.Helper()
	lay, err := layout.NewPatternLayout("[$p] $c: $m")
	if err != nil {
		b.Fatal(err)
	}
	s, err := sink.New(sink.Config{Capacity: capacity, Layout: lay})
	if err != nil {
		b.Fatal(err)
	}
	return s
}

func benchEvent() *core.Event {
	return core.NewEventAt("bench.logger", time.Now(), core.InfoLevel, "benchmark message with a typical length", "goroutine-1")
}

func BenchmarkIngest(b *testing.B) {
	s := newBenchSink(b, 1000)
	ev := benchEvent()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Ingest(ev)
	}
}

func BenchmarkIngestParallel(b *testing.B) {
	s := newBenchSink(b, 1000)
	ev := benchEvent()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			s.Ingest(ev)
		}
	})
}

func BenchmarkIngestWithEviction(b *testing.B) {
	// Small capacity so nearly every add evicts.
	s := newBenchSink(b, 8)
	ev := benchEvent()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Ingest(ev)
	}
}

func BenchmarkPatternFormat(b *testing.B) {
	lay, err := layout.NewPatternLayout("$d [$p] $t - $c: $m$n")
	if err != nil {
		b.Fatal(err)
	}
	ev := benchEvent()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lay.Format(ev)
	}
}

func BenchmarkJSONFormat(b *testing.B) {
	lay := layout.NewJSONLayout()
	ev := benchEvent()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lay.Format(ev)
	}
}

func BenchmarkEventStrings(b *testing.B) {
	s := newBenchSink(b, 100)
	ev := benchEvent()
	for i := 0; i < 100; i++ {
		s.Ingest(ev)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.EventStrings(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewEvent(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = core.NewEvent("bench.logger", core.InfoLevel, "msg")
	}
}

func BenchmarkNewEventCoarseClock(b *testing.B) {
	core.StartCoarseClock()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.NewEvent("bench.logger", core.InfoLevel, "msg")
	}
}
