package core

import (
	"bytes"
	"runtime"
	"time"
)

// Event represents one log occurrence. Events are immutable once
// constructed: the sink stores and shares them across snapshots, so
// callers must not modify an Event after handing it to a sink.
type Event struct {
	// LoggerName identifies the logger/source that produced the event.
	LoggerName string
	// Time is the wall-clock instant the event was created.
	Time time.Time
	// Level is the severity of the event.
	Level Level
	// Message is the fully rendered log message.
	Message string
	// Routine identifies the producing goroutine.
	Routine string
}

// NewEvent creates an Event stamped with the current time and the
// calling goroutine's identifier.
func NewEvent(loggerName string, level Level, message string) *Event {
	return &Event{
		LoggerName: loggerName,
		Time:       Now(),
		Level:      level,
		Message:    message,
		Routine:    RoutineLabel(),
	}
}

// NewEventAt creates an Event with an explicit timestamp and routine
// label. Adapters that receive both from an upstream framework use this
// to preserve the original values.
func NewEventAt(loggerName string, t time.Time, level Level, message, routine string) *Event {
	return &Event{
		LoggerName: loggerName,
		Time:       t,
		Level:      level,
		Message:    message,
		Routine:    routine,
	}
}

var goroutinePrefix = []byte("goroutine ")

// RoutineLabel extracts the calling goroutine's numeric id from the
// runtime stack header ("goroutine 42 [running]:") and returns it as a
// label. Adapters use it together with NewEventAt.
func RoutineLabel() string {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	buf = bytes.TrimPrefix(buf[:n], goroutinePrefix)
	if i := bytes.IndexByte(buf, ' '); i > 0 {
		return "goroutine-" + string(buf[:i])
	}
	return "goroutine"
}
