package bole

import (
	"iter"
	"strings"
)

// Level represents the severity of a log entry.
//
// Severities form an ascending scale from [LevelAll] to [LevelOff]. A
// logger stores either one of these severities or the sentinel
// [LevelInherit], which defers to the logger's parent when resolving the
// effective level.
type Level int

const (
	// LevelInherit defers level resolution to the logger's parent. It is
	// never an effective level: the root logger always stores a concrete
	// severity so resolution terminates.
	LevelInherit Level = iota - 1

	// LevelAll accepts every severity. It is the default minimum level of
	// a sink.
	LevelAll
	LevelTrace
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	// LevelFatal is the highest orderable severity. Logging at it carries
	// no process-exit side effect.
	LevelFatal
	// LevelOff rejects every severity.
	LevelOff
)

// DefaultLevel is the level assigned to the root logger of a new
// [Hierarchy].
const DefaultLevel = LevelWarn

// String returns the canonical upper-case name of the level,
// or "???" for values outside the defined set.
func (l Level) String() string {
	switch l {
	case LevelInherit:
		return "INHERIT"
	case LevelAll:
		return "ALL"
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelOff:
		return "OFF"
	default:
		return "???"
	}
}

// Levels returns an iterator over the severity scale, from [LevelAll]
// through [LevelOff]. [LevelInherit] is not part of the scale.
func Levels() iter.Seq[Level] {
	return func(yield func(Level) bool) {
		for l := LevelAll; l <= LevelOff; l++ {
			if !yield(l) {
				return
			}
		}
	}
}

// ParseLevel parses a string representation of a level.
// Valid strings are the names returned by [Level.String], matched
// case-insensitively. Unrecognized names return [DefaultLevel] and an
// error wrapping [ErrBadLevel].
func ParseLevel(s string) (Level, error) {
	if strings.EqualFold(s, LevelInherit.String()) {
		return LevelInherit, nil
	}

	for l := range Levels() {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}

	return DefaultLevel, ErrBadLevel.Wrapf("%q", s)
}
