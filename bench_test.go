package bole

import (
	"io"
	"testing"
	"time"
)

// BenchmarkLoggerLog benchmarks an accepted log call through one sink.
func BenchmarkLoggerLog(b *testing.B) {
	h := New(WithRootLevel(LevelInfo), WithRootSink(NewWriterSink(io.Discard)))
	logger := h.GetLogger("bench.hot")

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		logger.Info("benchmark entry")
	}
}

// BenchmarkLoggerLogRejected benchmarks the below-level fast path.
func BenchmarkLoggerLogRejected(b *testing.B) {
	h := New(WithRootSink(NewWriterSink(io.Discard)))
	logger := h.GetLogger("bench.cold.deep.chain")

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		logger.Debug("never built")
	}
}

// BenchmarkTemplateFormat benchmarks a representative template.
func BenchmarkTemplateFormat(b *testing.B) {
	tmpl := NewTemplate(
		Stamp{Layout: time.RFC3339}, " ",
		Column{Field: FieldLevel, Width: 5, Justify: Left}, " ",
		Column{Field: FieldFile}, ":", Column{Field: FieldLine}, " - ",
		Column{Field: FieldMessage},
	)

	e := Entry{
		Site:    Site{File: "/srv/app/main.go", Line: 42},
		Time:    time.Now(),
		Level:   LevelInfo,
		Message: "benchmark entry",
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = tmpl.Format(&e)
	}
}

// BenchmarkGetLogger benchmarks lookup of an existing logger.
func BenchmarkGetLogger(b *testing.B) {
	h := New()
	h.GetLogger("svc.worker.queue")

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = h.GetLogger("svc.worker.queue")
	}
}

// BenchmarkFilterCheck benchmarks prefix fallback through a deep name.
func BenchmarkFilterCheck(b *testing.B) {
	f := NewFilter(LevelWarn).Rule("svc", LevelDebug)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = f.Check("svc.worker.queue.consumer", LevelInfo)
	}
}
