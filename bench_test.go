package logging

import (
	"io"
	"testing"

	"github.com/spf13/afero"
)

// newBenchService initializes a Service on an in-memory file system with the
// console discarded, so only formatting and dispatch are measured.
func newBenchService(b *testing.B, consoleLevel, fileLevel string) *Service {
	b.Helper()
	svc := NewService()
	svc.Console = io.Discard
	svc.Fs = afero.NewMemMapFs()
	svc.Directory = func() (string, error) { return "/bench/logs", nil }

	s := DefaultSettings()
	s.ConsoleLevel = Value(consoleLevel)
	s.FileLevel = Value(fileLevel)
	if err := svc.Initialize(s); err != nil {
		b.Fatal(err)
	}
	return svc
}

func BenchmarkSubmit(b *testing.B) {
	svc := newBenchService(b, "info", "info")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		svc.Submit("info", "window resized", "app/page.tsx:40")
	}
}

func BenchmarkSubmit_Filtered(b *testing.B) {
	svc := newBenchService(b, "error", "error")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		svc.Submit("debug", "window resized", "app/page.tsx:40")
	}
}

func BenchmarkSubmit_Parallel(b *testing.B) {
	svc := newBenchService(b, "off", "info")
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			svc.Submit("warn", "frame dropped", "renderer")
		}
	})
}
