package logging

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// ANSI colors per level, as the console shows them.
var levelColors = map[Level]string{
	TraceLevel: "\x1b[37m",
	DebugLevel: "\x1b[35m",
	InfoLevel:  "\x1b[32m",
	WarnLevel:  "\x1b[33m",
	ErrorLevel: "\x1b[31m",
}

const colorReset = "\x1b[0m"

// lineSink formats dispatcher records as
//
//	[<local time> <LEVEL> <target>] <message>[ key=value...]
//
// and writes one line per record that passes its filter.
type lineSink struct {
	out       io.Writer
	threshold Level
	overrides map[string]Level
	color     bool
	now       func() time.Time
}

var _ LogSink = (*lineSink)(nil)

func newLineSink(out io.Writer, threshold Level, color bool) *lineSink {
	overrides := make(map[string]Level, len(noisyTargets))
	for _, target := range noisyTargets {
		overrides[target] = ErrorLevel
	}
	return &lineSink{
		out:       zerolog.SyncWriter(out),
		threshold: threshold,
		overrides: overrides,
		color:     color,
		now:       time.Now,
	}
}

func (s *lineSink) Threshold() Level {
	return s.threshold
}

func (s *lineSink) Enabled(level Level, target string) bool {
	threshold := s.threshold
	for name, override := range s.overrides {
		if targetUnder(target, name) {
			threshold = override
			break
		}
	}
	return threshold != OffLevel && level >= threshold
}

// Write handles records that arrive without a level; the level is read from the payload.
func (s *lineSink) Write(p []byte) (int, error) {
	return s.WriteLevel(zerolog.NoLevel, p)
}

func (s *lineSink) WriteLevel(zl zerolog.Level, p []byte) (int, error) {
	rec, err := decodeRecord(p)
	if err != nil {
		return 0, err
	}
	if zl == zerolog.NoLevel {
		zl = rec.level
	}
	level := recordLevel(zl)
	if !s.Enabled(level, rec.target) {
		return len(p), nil
	}

	when := rec.time
	if when.IsZero() {
		when = s.now()
	}

	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(when.Local().Format(recordTimeLayout))
	b.WriteByte(' ')
	if s.color {
		b.WriteString(levelColors[level])
		b.WriteString(level.String())
		b.WriteString(colorReset)
	} else {
		b.WriteString(level.String())
	}
	b.WriteByte(' ')
	b.WriteString(rec.target)
	b.WriteString("] ")
	b.WriteString(rec.message)
	for _, f := range rec.fields {
		b.WriteByte(' ')
		b.WriteString(f)
	}
	b.WriteByte('\n')

	if _, err = io.WriteString(s.out, b.String()); err != nil {
		return 0, err
	}
	return len(p), nil
}

// targetUnder reports whether target is name or one of its sub-targets.
func targetUnder(target, name string) bool {
	if target == name {
		return true
	}
	if !strings.HasPrefix(target, name) {
		return false
	}
	rest := target[len(name):]
	return strings.HasPrefix(rest, "::") || strings.HasPrefix(rest, "/") || strings.HasPrefix(rest, ".")
}

// record is a decoded zerolog JSON event.
type record struct {
	level   zerolog.Level
	target  string
	message string
	time    time.Time
	fields  []string
}

func decodeRecord(p []byte) (record, error) {
	var evt map[string]any
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()
	if err := dec.Decode(&evt); err != nil {
		return record{}, fmt.Errorf("cannot decode log record: %w", err)
	}

	rec := record{level: zerolog.NoLevel, target: fallbackRecordTarget}
	if v, ok := evt[zerolog.LevelFieldName].(string); ok {
		if zl, err := zerolog.ParseLevel(v); err == nil {
			rec.level = zl
		}
	}
	if v, ok := evt[TargetFieldName].(string); ok {
		rec.target = v
	}
	if v, ok := evt[zerolog.MessageFieldName].(string); ok {
		rec.message = v
	}
	if v, ok := evt[zerolog.TimestampFieldName].(string); ok {
		if t, err := time.Parse(zerolog.TimeFieldFormat, v); err == nil {
			rec.time = t
		}
	}

	keys := make([]string, 0, len(evt))
	for k := range evt {
		switch k {
		case zerolog.LevelFieldName, TargetFieldName, zerolog.MessageFieldName, zerolog.TimestampFieldName:
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rec.fields = append(rec.fields, k+"="+fieldValue(evt[k]))
	}
	return rec, nil
}

func fieldValue(v any) string {
	switch vv := v.(type) {
	case string:
		if strings.ContainsAny(vv, " \t\n\"") {
			return fmt.Sprintf("%q", vv)
		}
		return vv
	case json.Number:
		return vv.String()
	case nil:
		return "null"
	case map[string]any, []any:
		b, err := json.Marshal(vv)
		if err != nil {
			return fmt.Sprint(vv)
		}
		return string(b)
	default:
		return fmt.Sprint(vv)
	}
}
