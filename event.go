package logging

import (
	"time"

	"github.com/rs/zerolog"
)

// LogEvent provides a fluent interface for structured logging with type-safe field methods.
// Fields are appended to the formatted line as key=value pairs after the message.
type LogEvent interface {
	Str(key, val string) LogEvent
	Int(key string, val int) LogEvent
	Int64(key string, val int64) LogEvent
	Bool(key string, val bool) LogEvent
	Dur(key string, val time.Duration) LogEvent
	Err(err error) LogEvent
	Msg(msg string)
	Msgf(format string, v ...interface{})
	Send()
}

// logEvent implements LogEvent by wrapping zerolog.Event. A nil event is a no-op.
type logEvent struct {
	event *zerolog.Event
}

func newLogEvent(e *zerolog.Event) LogEvent {
	return &logEvent{event: e}
}

func (e *logEvent) Str(key, val string) LogEvent {
	if e.event != nil {
		e.event.Str(key, val)
	}
	return e
}

func (e *logEvent) Int(key string, val int) LogEvent {
	if e.event != nil {
		e.event.Int(key, val)
	}
	return e
}

func (e *logEvent) Int64(key string, val int64) LogEvent {
	if e.event != nil {
		e.event.Int64(key, val)
	}
	return e
}

func (e *logEvent) Bool(key string, val bool) LogEvent {
	if e.event != nil {
		e.event.Bool(key, val)
	}
	return e
}

func (e *logEvent) Dur(key string, val time.Duration) LogEvent {
	if e.event != nil {
		e.event.Dur(key, val)
	}
	return e
}

// Err records err along with its root cause and the joined cause history.
func (e *logEvent) Err(err error) LogEvent {
	if e.event == nil || err == nil {
		return e
	}
	e.event.Err(err)
	chain, root := buildErrorChain(err)
	if len(chain) > 1 {
		e.event.Str("error_root", root)
		e.event.Str("error_history", joinChain(chain))
	}
	return e
}

func (e *logEvent) Msg(msg string) {
	if e.event != nil {
		e.event.Msg(msg)
	}
}

func (e *logEvent) Msgf(format string, v ...interface{}) {
	if e.event != nil {
		e.event.Msgf(format, v...)
	}
}

func (e *logEvent) Send() {
	if e.event != nil {
		e.event.Send()
	}
}

// targetLogger implements Logger on top of a Service. It looks the
// dispatcher up per event, so loggers created before Initialize start
// writing as soon as it succeeds.
type targetLogger struct {
	service *Service
	target  string
}

// For returns a Logger whose records carry target as their origin.
// An empty target falls back to DefaultTarget.
func (s *Service) For(target string) Logger {
	if target == emptyString {
		target = DefaultTarget
	}
	return &targetLogger{service: s, target: target}
}

func (l *targetLogger) Target() string {
	return l.target
}

func (l *targetLogger) TraceWith() LogEvent { return l.event(TraceLevel) }
func (l *targetLogger) DebugWith() LogEvent { return l.event(DebugLevel) }
func (l *targetLogger) InfoWith() LogEvent  { return l.event(InfoLevel) }
func (l *targetLogger) WarnWith() LogEvent  { return l.event(WarnLevel) }
func (l *targetLogger) ErrorWith() LogEvent { return l.event(ErrorLevel) }

func (l *targetLogger) event(level Level) LogEvent {
	if l.service == nil {
		return newLogEvent(nil)
	}
	logger := l.service.dispatcher.Load()
	if logger == nil {
		return newLogEvent(nil)
	}
	return newLogEvent(logger.WithLevel(level.Zerolog()).Str(TargetFieldName, l.target))
}
