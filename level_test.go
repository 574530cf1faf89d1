package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"trace":   TraceLevel,
		"DEBUG":   DebugLevel,
		"Info":    InfoLevel,
		" warn ":  WarnLevel,
		"error":   ErrorLevel,
		"off":     OffLevel,
		"verbose": InfoLevel,
		"warning": InfoLevel,
		"":        InfoLevel,
	}
	for name, want := range cases {
		assert.Equal(t, want, ParseLevel(name), "ParseLevel(%q)", name)
	}
}

func TestLevel_Ordering(t *testing.T) {
	assert.Less(t, TraceLevel, DebugLevel)
	assert.Less(t, DebugLevel, InfoLevel)
	assert.Less(t, InfoLevel, WarnLevel)
	assert.Less(t, WarnLevel, ErrorLevel)
	assert.Less(t, ErrorLevel, OffLevel)
}

func TestLevel_Zerolog(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, TraceLevel.Zerolog())
	assert.Equal(t, zerolog.InfoLevel, InfoLevel.Zerolog())
	assert.Equal(t, zerolog.ErrorLevel, ErrorLevel.Zerolog())
	assert.Equal(t, zerolog.Disabled, OffLevel.Zerolog())

	assert.Equal(t, ErrorLevel, recordLevel(zerolog.FatalLevel))
	assert.Equal(t, InfoLevel, recordLevel(zerolog.NoLevel))
	assert.Equal(t, "WARN", recordLevel(zerolog.WarnLevel).String())
}
