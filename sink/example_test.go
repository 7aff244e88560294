package sink_test

import (
	"fmt"

	"github.com/Philipp01105/memsink/core"
	"github.com/Philipp01105/memsink/layout"
	"github.com/Philipp01105/memsink/sink"
)

func Example() {
	lay, _ := layout.NewPatternLayout("[$p] $c: $m")
	s, _ := sink.New(sink.Config{Capacity: 2, Layout: lay})

	s.Ingest(core.NewEvent("app", core.InfoLevel, "starting"))
	s.Ingest(core.NewEvent("app", core.WarnLevel, "low memory"))
	s.Ingest(core.NewEvent("app", core.ErrorLevel, "giving up"))

	strs, _ := s.EventStrings()
	for _, line := range strs {
		fmt.Println(line)
	}
	fmt.Println("discarded:", s.Discarded())
	// Output:
	// [WARN] app: low memory
	// [ERROR] app: giving up
	// discarded: 1
}

func ExampleMemSink_SetCapacity() {
	s, _ := sink.New(sink.Config{Capacity: 10})
	for i := 0; i < 6; i++ {
		s.Ingest(core.NewEvent("app", core.InfoLevel, fmt.Sprintf("event %d", i)))
	}

	_ = s.SetCapacity(4)
	fmt.Println("size:", s.Size(), "discarded:", s.Discarded())
	// Output:
	// size: 4 discarded: 2
}
