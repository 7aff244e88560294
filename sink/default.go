package sink

import "sync"

var (
	defaultSink *MemSink
	defaultMu   sync.Mutex
)

// Default returns the process-wide sink, creating it with default
// configuration on first use. Repeated calls return the same instance
// until ResetDefault is invoked.
//
// Prefer constructing a MemSink with New and passing it explicitly;
// Default exists for frameworks that mandate global lookup.
func Default() *MemSink {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSink == nil {
		s, err := New(Config{})
		if err != nil {
			panic("sink: default config is invalid: " + err.Error())
		}
		defaultSink = s
	}
	return defaultSink
}

// SetDefault replaces the process-wide sink.
func SetDefault(s *MemSink) {
	defaultMu.Lock()
	defaultSink = s
	defaultMu.Unlock()
}

// ResetDefault discards the process-wide sink so the next Default call
// creates a fresh one. Intended for test isolation.
func ResetDefault() {
	defaultMu.Lock()
	defaultSink = nil
	defaultMu.Unlock()
}
