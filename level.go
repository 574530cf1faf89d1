package logging

import (
	"strings"

	"github.com/rs/zerolog"
)

// Level is a sink threshold or record severity, ordered Trace < Debug < Info < Warn < Error < Off.
type Level int8

const (
	TraceLevel Level = iota
	DebugLevel
	InfoLevel
	WarnLevel
	ErrorLevel
	OffLevel
)

// ParseLevel maps a human-readable level name onto a Level, case-insensitively.
// Unrecognized names yield InfoLevel rather than an error.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return TraceLevel
	case "debug":
		return DebugLevel
	case "info":
		return InfoLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "off":
		return OffLevel
	default:
		return InfoLevel
	}
}

func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case OffLevel:
		return "OFF"
	default:
		return "INFO"
	}
}

// Zerolog returns the equivalent zerolog level. OffLevel maps to zerolog.Disabled.
func (l Level) Zerolog() zerolog.Level {
	switch l {
	case TraceLevel:
		return zerolog.TraceLevel
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case OffLevel:
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// recordLevel maps a zerolog level back for formatting. Fatal and panic
// records are reported as ERROR, unlevelled records as INFO.
func recordLevel(zl zerolog.Level) Level {
	switch zl {
	case zerolog.TraceLevel:
		return TraceLevel
	case zerolog.DebugLevel:
		return DebugLevel
	case zerolog.WarnLevel:
		return WarnLevel
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return ErrorLevel
	default:
		return InfoLevel
	}
}
