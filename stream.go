package bole

import (
	"fmt"
	"strings"
)

// Stream accumulates message text for one deferred log call.
//
// A stream is created by [Logger.Stream] with its severity, time, and
// site already fixed; text appended through any of its methods becomes
// the entry's message when [Stream.Close] finalizes it. Each stream
// dispatches at most one entry, on its first Close.
//
// A stream belongs to a single goroutine. The nil *Stream returned for a
// rejected severity accepts every method as a no-op.
type Stream struct {
	entry Entry
	buf   strings.Builder
	done  bool
}

// Write appends p to the message text, implementing io.Writer. It
// returns [ErrStreamClosed] after the stream has been finalized.
func (s *Stream) Write(p []byte) (int, error) {
	if s == nil {
		return len(p), nil
	}

	if s.done {
		return 0, ErrStreamClosed
	}

	return s.buf.Write(p)
}

// WriteString appends v to the message text. It returns
// [ErrStreamClosed] after the stream has been finalized.
func (s *Stream) WriteString(v string) (int, error) {
	if s == nil {
		return len(v), nil
	}

	if s.done {
		return 0, ErrStreamClosed
	}

	return s.buf.WriteString(v)
}

// Print appends the operands to the message text in the manner of
// fmt.Fprint and returns the stream for chaining:
//
//	logger.Stream(LevelInfo).Print("x=").Print(5).Close()
//
// Print on a finalized stream appends nothing.
func (s *Stream) Print(args ...any) *Stream {
	if s == nil || s.done {
		return s
	}

	fmt.Fprint(&s.buf, args...)

	return s
}

// Printf appends a formatted operand to the message text and returns the
// stream for chaining. Printf on a finalized stream appends nothing.
func (s *Stream) Printf(format string, args ...any) *Stream {
	if s == nil || s.done {
		return s
	}

	fmt.Fprintf(&s.buf, format, args...)

	return s
}

// Close finalizes the stream: the accumulated text becomes the entry's
// message, and the entry dispatches through the originating logger
// exactly once. Close implements io.Closer; second and later calls
// return nil without dispatching again.
func (s *Stream) Close() error {
	if s == nil || s.done {
		return nil
	}

	s.done = true
	s.entry.Message = s.buf.String()
	s.entry.Logger.dispatch(&s.entry)

	return nil
}
