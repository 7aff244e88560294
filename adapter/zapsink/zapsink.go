// Package zapsink adapts a memsink to zap, letting a zap logger
// dispatch into a bounded in-memory sink through a zapcore.Core.
package zapsink

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/Philipp01105/memsink/core"
	"github.com/Philipp01105/memsink/sink"
)

// Core implements zapcore.Core by converting entries into events and
// ingesting them into a MemSink. Level filtering happens through the
// embedded LevelEnabler, upstream of the sink.
type Core struct {
	zapcore.LevelEnabler
	sink *sink.MemSink
	// fields holds pre-rendered " key=value" text accumulated via With.
	fields string
}

// New creates a zapcore.Core that feeds the given sink. Use it with
// zap.New, or alongside other cores via zapcore.NewTee.
func New(s *sink.MemSink, enab zapcore.LevelEnabler) *Core {
	return &Core{LevelEnabler: enab, sink: s}
}

// With returns a copy of the core with the fields rendered into its
// prefix text.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	return &Core{
		LevelEnabler: c.LevelEnabler,
		sink:         c.sink,
		fields:       c.fields + renderFields(fields),
	}
}

// Check adds this core to the checked entry when its level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the entry into a core.Event and ingests it.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	name := ent.LoggerName
	if name == "" {
		name = "zap"
	}
	msg := ent.Message + c.fields + renderFields(fields)
	c.sink.Ingest(core.NewEventAt(name, ent.Time, zapLevelToCore(ent.Level), msg, core.RoutineLabel()))
	return nil
}

// Sync is a no-op; the sink is in-memory.
func (c *Core) Sync() error {
	return nil
}

// renderFields encodes zap fields as " key=value" pairs in key order,
// since the sink retains fully rendered messages.
func renderFields(fields []zapcore.Field) string {
	if len(fields) == 0 {
		return ""
	}
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		fmt.Fprintf(&b, "%v", enc.Fields[k])
	}
	return b.String()
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.DPanicLevel:
		return core.FatalLevel
	case level == zapcore.ErrorLevel:
		return core.ErrorLevel
	case level == zapcore.WarnLevel:
		return core.WarnLevel
	case level == zapcore.InfoLevel:
		return core.InfoLevel
	case level == zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
