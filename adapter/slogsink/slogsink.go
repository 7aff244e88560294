// Package slogsink adapts a memsink to log/slog, letting the standard
// library's structured logging dispatch into a bounded in-memory sink.
package slogsink

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Philipp01105/memsink/core"
	"github.com/Philipp01105/memsink/sink"
)

// Handler implements slog.Handler by converting records into events
// and ingesting them into a MemSink. Level filtering happens here,
// upstream of the sink, which retains everything it is handed.
type Handler struct {
	sink  *sink.MemSink
	level core.Level
	name  string
	// attrs holds pre-rendered " key=value" text from WithAttrs,
	// captured with the group prefix in effect at that time.
	attrs string
	group string
}

// New creates a slog.Handler that feeds the given sink. Records below
// minLevel are dropped. The handler reports logger name "slog" unless
// groups are added via WithGroup.
func New(s *sink.MemSink, minLevel core.Level) *Handler {
	return &Handler{
		sink:  s,
		level: minLevel,
		name:  "slog",
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= h.level
}

// Handle converts the record into a core.Event and ingests it. Attrs
// are rendered into the message as space-separated key=value pairs,
// since the sink retains fully rendered messages.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(h.attrs)

	record.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})

	t := record.Time
	if t.IsZero() {
		t = core.Now()
	}
	h.sink.Ingest(core.NewEventAt(h.name, t, slogLevelToCore(record.Level), b.String(), core.RoutineLabel()))
	return nil
}

// WithAttrs returns a new Handler with the attributes rendered into
// its prefix text under the current group.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		writeAttr(&b, h.group, a)
	}
	return &Handler{
		sink:  h.sink,
		level: h.level,
		name:  h.name,
		attrs: b.String(),
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name appended
// to the attribute prefix and the reported logger name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	loggerName := h.name + "." + name
	return &Handler{
		sink:  h.sink,
		level: h.level,
		name:  loggerName,
		attrs: h.attrs,
		group: newGroup,
	}
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		prefix := a.Key
		if group != "" {
			prefix = group + "." + a.Key
		}
		for _, ga := range a.Value.Group() {
			writeAttr(b, prefix, ga)
		}
		return
	}
	b.WriteByte(' ')
	if group != "" {
		b.WriteString(group)
		b.WriteByte('.')
	}
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
