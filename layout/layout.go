package layout

import (
	"bytes"
	"errors"
	"sync"

	"github.com/Philipp01105/memsink/core"
)

// ErrEmptyPattern is returned when a pattern is set to a null, empty,
// or all-whitespace string.
var ErrEmptyPattern = errors.New("layout: pattern cannot be empty or blank")

// Layout defines the interface for rendering one event into a string.
//
// Format never fails: implementations that can encounter rendering
// errors must swallow them and return a deterministic fallback string,
// because a log sink must not throw back into the application it
// instruments. Format must be safe for concurrent use.
type Layout interface {
	// Format renders a log event into its string form.
	Format(ev *core.Event) string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
