// Package layout defines how retained log events are rendered into
// strings.
//
// The Layout interface is deliberately a single Format method so that
// the sink never depends on how a particular layout is configured.
// PatternLayout is the primary implementation: a template string with
// $-placeholders for logger name, date, message, level, routine name,
// and line separator. JSONLayout is an alternative for machine-readable
// output.
//
// Rendering is infallible from the caller's perspective. PatternLayout
// converts any substitution failure into a fixed fallback line rather
// than returning an error, because a sink that fails to render one
// event must not propagate that failure into the application.
//
// Both layouts use a pooled bytes.Buffer internally. Buffers larger
// than 64 KiB are not returned to the pool to prevent a single large
// log line from permanently inflating memory usage.
package layout
