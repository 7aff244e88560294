package config

import (
	"os"
	"strings"

	"github.com/Philipp01105/memsink/layout"
	"github.com/Philipp01105/memsink/sink"
)

// NewSink constructs a MemSink from a validated Config: a pattern
// layout compiled from Pattern, the configured capacity, and the
// selected output writer.
func (c *Config) NewSink() (*sink.MemSink, error) {
	lay, err := layout.NewPatternLayout(c.Pattern)
	if err != nil {
		return nil, err
	}

	writer := os.Stdout
	if strings.ToLower(c.Output) == "stderr" {
		writer = os.Stderr
	}

	return sink.New(sink.Config{
		Capacity: c.Capacity,
		Layout:   lay,
		Writer:   writer,
	})
}
