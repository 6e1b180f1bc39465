package bole

import (
	"io"
	"os"
	"sync"
)

// Sink is a terminal consumer of log entries. A sink decides whether to
// keep each entry, renders it, and writes it somewhere.
//
// Log must tolerate calls from multiple goroutines: one sink is commonly
// attached to several loggers. Delivery is best effort; Log has no error
// to return, and implementations are expected to swallow write failures
// rather than disturb the logging call site.
type Sink interface {
	Log(e *Entry)
}

// flusher is satisfied by buffered writers such as bufio.Writer.
type flusher interface {
	Flush() error
}

// sinkConfig holds the configuration options for a WriterSink.
type sinkConfig struct {
	formatter Formatter
	filter    *Filter
	level     Level
}

// SinkOption applies a configuration option to a sink under construction.
type SinkOption func(sinkConfig) sinkConfig

// makeSinkConfig creates a sinkConfig with defaults applied, overridden
// by any provided options.
func makeSinkConfig(opts ...SinkOption) sinkConfig {
	c := sinkConfig{formatter: Plain{}, level: LevelAll}

	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// WithFormatter sets the formatter a sink renders entries with.
// The default is [Plain].
func WithFormatter(f Formatter) SinkOption {
	return func(c sinkConfig) sinkConfig {
		if f != nil {
			c.formatter = f
		}

		return c
	}
}

// WithMinLevel sets the minimum severity a sink accepts, independent of
// any logger-level gating. The default is [LevelAll].
func WithMinLevel(min Level) SinkOption {
	return func(c sinkConfig) sinkConfig {
		c.level = min

		return c
	}
}

// WithFilter attaches a channel filter consulted before formatting.
// Entries whose origin channel and severity fail [Filter.Check] are
// dropped by the sink.
func WithFilter(f *Filter) SinkOption {
	return func(c sinkConfig) sinkConfig {
		c.filter = f

		return c
	}
}

// WriterSink formats entries and writes them to an io.Writer.
//
// Writes are serialized by an internal mutex, so one sink may be shared
// by any number of loggers. The minimum level and filter are fixed at
// construction; the formatter may be swapped at runtime with
// [WriterSink.SetFormatter].
type WriterSink struct {
	mu        sync.Mutex
	w         io.Writer
	closer    io.Closer
	formatter Formatter
	filter    *Filter
	level     Level
	closed    bool
}

// NewWriterSink returns a sink writing formatted entries to w. A nil w
// discards output. If w buffers and implements Flush, the sink flushes
// after every entry.
func NewWriterSink(w io.Writer, opts ...SinkOption) *WriterSink {
	if w == nil {
		w = io.Discard
	}

	c := makeSinkConfig(opts...)

	return &WriterSink{
		w:         w,
		formatter: c.formatter,
		filter:    c.filter,
		level:     c.level,
	}
}

// NewFileSink creates or truncates the file at path and returns a sink
// writing to it. The sink owns the file: [WriterSink.Close] closes it.
func NewFileSink(path string, opts ...SinkOption) (*WriterSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, MakeError(err).Wrapf("create sink file %q", path)
	}

	s := NewWriterSink(f, opts...)
	s.closer = f

	return s, nil
}

// MinLevel returns the minimum severity the sink accepts.
func (s *WriterSink) MinLevel() Level {
	return s.level
}

// Formatter returns the sink's current formatter.
func (s *WriterSink) Formatter() Formatter {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.formatter
}

// SetFormatter replaces the sink's formatter. A nil f restores [Plain].
func (s *WriterSink) SetFormatter(f Formatter) {
	if f == nil {
		f = Plain{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.formatter = f
}

// Log implements [Sink]. Entries below the sink's minimum level, or
// rejected by its filter, are dropped before formatting. Write errors
// are swallowed: delivery is best effort, and a failing writer must not
// disturb the logging call site.
func (s *WriterSink) Log(e *Entry) {
	if e.Level < s.level {
		return
	}

	if s.filter != nil && !s.filter.Check(e.Channel(), e.Level) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if _, err := io.WriteString(s.w, s.formatter.Format(e)); err != nil {
		return
	}

	if f, ok := s.w.(flusher); ok {
		_ = f.Flush()
	}
}

// Close flushes the sink and, when it owns its writer (file sinks),
// closes it. Logging to a closed sink silently drops the entry. Closing
// twice returns [ErrSinkClosed].
func (s *WriterSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSinkClosed
	}

	s.closed = true

	if f, ok := s.w.(flusher); ok {
		_ = f.Flush()
	}

	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			return MakeError(err).Wrapf("close sink")
		}
	}

	return nil
}
