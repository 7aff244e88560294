package layout

import (
	"bytes"
	"time"

	"github.com/Philipp01105/memsink/core"
)

// JSONLayout renders events as single-line JSON objects. It is an
// alternative Layout implementation for consumers that post-process
// retained events instead of reading them.
type JSONLayout struct {
	// TimestampFormat specifies the time format (empty for RFC3339Nano)
	TimestampFormat string
}

// NewJSONLayout creates a new JSON layout
func NewJSONLayout() *JSONLayout {
	return &JSONLayout{TimestampFormat: time.RFC3339Nano}
}

// Format renders the event as a JSON object.
func (l *JSONLayout) Format(ev *core.Event) string {
	if ev == nil {
		return ""
	}
	format := l.TimestampFormat
	if format == "" {
		format = time.RFC3339Nano
	}

	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString(`{"time":"`)
	buf.Write(ev.Time.AppendFormat(buf.AvailableBuffer(), format))
	buf.WriteString(`","level":"`)
	buf.WriteString(ev.Level.String())
	buf.WriteString(`","logger":"`)
	appendJSONString(buf, ev.LoggerName)
	buf.WriteString(`","message":"`)
	appendJSONString(buf, ev.Message)
	buf.WriteString(`","routine":"`)
	appendJSONString(buf, ev.Routine)
	buf.WriteString(`"}`)
	return buf.String()
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
