package logging

import "github.com/rs/zerolog"

// LogSink is one destination of the dispatcher. It receives every record and
// applies its own threshold and target overrides before formatting.
type LogSink interface {
	zerolog.LevelWriter
	// Threshold is the configured minimum level, before target overrides.
	Threshold() Level
	// Enabled reports whether a record of level from target would be written.
	Enabled(level Level, target string) bool
}

// Logger is a target-scoped structured logger backed by the committed dispatcher.
// Every event it creates carries the logger's target as the record origin.
type Logger interface {
	TraceWith() LogEvent
	DebugWith() LogEvent
	InfoWith() LogEvent
	WarnWith() LogEvent
	ErrorWith() LogEvent

	// Target returns the origin tag stamped on every record.
	Target() string
}
