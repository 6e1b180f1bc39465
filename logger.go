package bole

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

// Logger is one node of a [Hierarchy].
//
// A logger carries a level (possibly [LevelInherit]), an ordered set of
// sinks, and an additivity flag. Loggers are created through
// [Hierarchy.GetLogger] and never removed; the parent pointer is fixed at
// creation. All other state may be reconfigured at any time from any
// goroutine.
type Logger struct {
	hier   *Hierarchy
	parent *Logger
	name   string

	mu       sync.RWMutex
	sinks    []Sink
	level    Level
	additive bool
}

// Name returns the logger's full dot-separated name. The root logger's
// name is the empty string.
func (l *Logger) Name() string {
	return l.name
}

// Parent returns the logger's parent, or nil for the root.
func (l *Logger) Parent() *Logger {
	return l.parent
}

// Child returns the descendant named suffix relative to l, creating it
// and any intermediate loggers as needed.
func (l *Logger) Child(suffix string) *Logger {
	if l.name == "" {
		return l.hier.GetLogger(suffix)
	}

	return l.hier.GetLogger(l.name + "." + suffix)
}

// Level returns the logger's effective level: the stored level, or the
// nearest ancestor's stored level when the logger's own is
// [LevelInherit]. The root always stores a concrete severity, so
// resolution terminates there.
func (l *Logger) Level() Level {
	for {
		l.mu.RLock()
		level := l.level
		l.mu.RUnlock()

		if level != LevelInherit || l.parent == nil {
			return level
		}

		l = l.parent
	}
}

// SetLevel assigns the logger's stored level. Assigning [LevelInherit]
// to the root logger is ignored, retaining the prior level: the root
// anchors inheritance and must stay concrete.
func (l *Logger) SetLevel(level Level) {
	if level == LevelInherit && l.parent == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = level
}

// Additive reports whether entries accepted by this logger propagate
// onward to its parent's sinks.
func (l *Logger) Additive() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.additive
}

// SetAdditive sets whether entries propagate to the parent's sinks.
// Loggers start additive.
func (l *Logger) SetAdditive(additive bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.additive = additive
}

// AddSink appends a sink to the logger. Duplicates are permitted; a sink
// added twice receives each entry twice. A nil sink is ignored.
func (l *Logger) AddSink(s Sink) {
	if s == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Copy on write: dispatch iterates the slice outside the lock.
	sinks := make([]Sink, 0, len(l.sinks)+1)
	sinks = append(sinks, l.sinks...)
	l.sinks = append(sinks, s)
}

// RemoveSink removes the first sink equal to s. Removing a sink that is
// not attached is a no-op. A dispatch already in flight may still
// deliver its entry to the removed sink.
func (l *Logger) RemoveSink(s Sink) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, attached := range l.sinks {
		if attached == s {
			sinks := make([]Sink, 0, len(l.sinks)-1)
			sinks = append(sinks, l.sinks[:i]...)
			l.sinks = append(sinks, l.sinks[i+1:]...)

			return
		}
	}
}

// Sinks returns a snapshot of the logger's sinks in attachment order.
func (l *Logger) Sinks() []Sink {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.sinks)
}

// Enabled reports whether a call at the given severity would pass the
// logger's effective level.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.Level()
}

// Log emits msg at the given severity. The optional site records the
// call's source location (see [Caller]); only the first is used. Calls
// below the effective level return immediately without building an
// entry.
func (l *Logger) Log(level Level, msg string, site ...Site) {
	if !l.Enabled(level) {
		return
	}

	e := Entry{Time: time.Now(), Logger: l, Level: level, Message: msg}
	if len(site) > 0 {
		e.Site = site[0]
	}

	l.dispatch(&e)
}

// Logf emits a message formatted in the manner of fmt.Sprintf. The
// arguments are not evaluated by fmt when the severity is rejected.
func (l *Logger) Logf(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	l.Log(level, fmt.Sprintf(format, args...))
}

// Stream returns a deferred log call at the given severity: text written
// to the stream becomes the entry's message when the stream is closed.
// When the severity is rejected, Stream returns nil; every [Stream]
// method accepts a nil receiver as a no-op, so rejected streams cost
// nothing and dispatch nothing.
func (l *Logger) Stream(level Level, site ...Site) *Stream {
	if !l.Enabled(level) {
		return nil
	}

	s := &Stream{entry: Entry{Time: time.Now(), Logger: l, Level: level}}
	if len(site) > 0 {
		s.entry.Site = site[0]
	}

	return s
}

// Trace emits msg at [LevelTrace].
func (l *Logger) Trace(msg string, site ...Site) { l.Log(LevelTrace, msg, site...) }

// Debug emits msg at [LevelDebug].
func (l *Logger) Debug(msg string, site ...Site) { l.Log(LevelDebug, msg, site...) }

// Info emits msg at [LevelInfo].
func (l *Logger) Info(msg string, site ...Site) { l.Log(LevelInfo, msg, site...) }

// Warn emits msg at [LevelWarn].
func (l *Logger) Warn(msg string, site ...Site) { l.Log(LevelWarn, msg, site...) }

// Error emits msg at [LevelError].
func (l *Logger) Error(msg string, site ...Site) { l.Log(LevelError, msg, site...) }

// Fatal emits msg at [LevelFatal]. It does not exit the process.
func (l *Logger) Fatal(msg string, site ...Site) { l.Log(LevelFatal, msg, site...) }

// Tracef emits a formatted message at [LevelTrace].
func (l *Logger) Tracef(format string, args ...any) { l.Logf(LevelTrace, format, args...) }

// Debugf emits a formatted message at [LevelDebug].
func (l *Logger) Debugf(format string, args ...any) { l.Logf(LevelDebug, format, args...) }

// Infof emits a formatted message at [LevelInfo].
func (l *Logger) Infof(format string, args ...any) { l.Logf(LevelInfo, format, args...) }

// Warnf emits a formatted message at [LevelWarn].
func (l *Logger) Warnf(format string, args ...any) { l.Logf(LevelWarn, format, args...) }

// Errorf emits a formatted message at [LevelError].
func (l *Logger) Errorf(format string, args ...any) { l.Logf(LevelError, format, args...) }

// Fatalf emits a formatted message at [LevelFatal]. It does not exit the
// process.
func (l *Logger) Fatalf(format string, args ...any) { l.Logf(LevelFatal, format, args...) }

// dispatch delivers e to the logger's own sinks and then, while each
// visited logger's additivity flag holds, to successive ancestors'
// sinks. Severity is not re-checked on the way up: the level gate
// applies only at the origin. A non-additive logger's own sinks still
// receive the entry; propagation stops after them.
func (l *Logger) dispatch(e *Entry) {
	for node := l; node != nil; {
		node.mu.RLock()
		sinks := node.sinks
		additive := node.additive
		node.mu.RUnlock()

		for _, s := range sinks {
			s.Log(e)
		}

		if !additive {
			return
		}

		node = node.parent
	}
}
