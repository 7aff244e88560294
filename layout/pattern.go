package layout

import (
	"bytes"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/Philipp01105/memsink/core"
)

// DefaultPattern is the pattern used by NewDefaultPatternLayout.
const DefaultPattern = "[$p] $c $d: $m$n"

// Example patterns for common use cases.
const (
	PatternSimple      = "[$p] $m$n"
	PatternDetailed    = "$d [$p] $c - $m$n"
	PatternThreadAware = "$d [$p] $t - $c: $m$n"
	PatternCompact     = "$p: $m$n"
)

// LineSeparator is the platform line separator substituted for $n.
var LineSeparator = func() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}()

// dateFormat approximates the classic wall-clock date string
// ("Mon Jan  2 15:04:05 MST 2006") used for the $d placeholder.
const dateFormat = time.UnixDate

// PatternLayout renders events by substituting named placeholders in a
// template string. Recognized placeholders:
//
//	$c  logger name
//	$d  date (human-readable wall-clock form)
//	$m  message
//	$p  level
//	$t  routine (thread) name
//	$n  line separator
//
// Both $c and ${c} forms are accepted. Unrecognized placeholders pass
// through literally.
//
// Format and SetPattern may race: a Format call concurrent with
// SetPattern applies either the old or the new pattern, never a torn
// one. Pattern replacement is atomic.
type PatternLayout struct {
	mu      sync.RWMutex
	pattern string
}

// NewPatternLayout creates a PatternLayout with the given pattern.
func NewPatternLayout(pattern string) (*PatternLayout, error) {
	l := &PatternLayout{}
	if err := l.SetPattern(pattern); err != nil {
		return nil, err
	}
	return l, nil
}

// NewDefaultPatternLayout creates a PatternLayout with DefaultPattern.
func NewDefaultPatternLayout() *PatternLayout {
	l, err := NewPatternLayout(DefaultPattern)
	if err != nil {
		panic("layout: default pattern is invalid: " + err.Error())
	}
	return l
}

// SetPattern atomically replaces the active pattern. It returns
// ErrEmptyPattern when pattern is empty or all-whitespace.
func (l *PatternLayout) SetPattern(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return ErrEmptyPattern
	}
	l.mu.Lock()
	l.pattern = pattern
	l.mu.Unlock()
	return nil
}

// Pattern returns the active pattern.
func (l *PatternLayout) Pattern() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pattern
}

// Format renders the event with the active pattern. Rendering never
// fails: any panic during substitution is converted into the fixed
// fallback format so callers always receive some string.
func (l *PatternLayout) Format(ev *core.Event) (s string) {
	if ev == nil {
		return ""
	}
	pattern := l.Pattern()
	if strings.TrimSpace(pattern) == "" {
		return ev.Message
	}

	defer func() {
		if r := recover(); r != nil {
			s = fallbackFormat(ev)
		}
	}()

	buf := getBuffer()
	defer putBuffer(buf)

	for i := 0; i < len(pattern); {
		if pattern[i] != '$' {
			buf.WriteByte(pattern[i])
			i++
			continue
		}
		name, width := placeholderAt(pattern, i)
		if width == 0 {
			buf.WriteByte('$')
			i++
			continue
		}
		writeBinding(buf, ev, name)
		i += width
	}
	return buf.String()
}

// placeholderAt inspects pattern at index i (which holds '$') and
// returns the placeholder name and total width consumed, or width 0
// when the text is not a recognized placeholder.
func placeholderAt(pattern string, i int) (byte, int) {
	if i+1 >= len(pattern) {
		return 0, 0
	}
	next := pattern[i+1]
	if next == '{' && i+3 < len(pattern) && pattern[i+3] == '}' && isBindingName(pattern[i+2]) {
		return pattern[i+2], 4
	}
	if isBindingName(next) {
		return next, 2
	}
	return 0, 0
}

func isBindingName(c byte) bool {
	switch c {
	case 'c', 'd', 'm', 'p', 't', 'n':
		return true
	}
	return false
}

func writeBinding(buf *bytes.Buffer, ev *core.Event, name byte) {
	switch name {
	case 'c':
		buf.WriteString(ev.LoggerName)
	case 'd':
		buf.Write(ev.Time.AppendFormat(buf.AvailableBuffer(), dateFormat))
	case 'm':
		buf.WriteString(ev.Message)
	case 'p':
		buf.WriteString(ev.Level.String())
	case 't':
		buf.WriteString(ev.Routine)
	case 'n':
		buf.WriteString(LineSeparator)
	}
}

// fallbackFormat is the deterministic rendering used when template
// substitution fails: level, logger name, date, and message,
// space-separated, followed by the line separator.
func fallbackFormat(ev *core.Event) string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(ev.Level.String())
	b.WriteString("] ")
	if ev.LoggerName != "" {
		b.WriteString(ev.LoggerName)
		b.WriteByte(' ')
	}
	b.WriteString(ev.Time.Format(dateFormat))
	b.WriteString(": ")
	b.WriteString(ev.Message)
	b.WriteString(LineSeparator)
	return b.String()
}

// SupportedVariables returns a help string describing the recognized
// placeholders, for documentation and tooling.
func SupportedVariables() string {
	return "Supported variables:\n" +
		"  $c - Logger name\n" +
		"  $d - Date (wall-clock format)\n" +
		"  $m - Message\n" +
		"  $p - Log level\n" +
		"  $t - Routine (thread) name\n" +
		"  $n - Line separator"
}
