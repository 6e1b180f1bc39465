package bole

import (
	"runtime"
	"strings"
)

// Site identifies the source location of a log call. Sites are captured
// explicitly with [Caller] and passed to [Logger.Log] or [Logger.Stream];
// the zero Site means no location was recorded.
type Site struct {
	// File is the full path of the source file, as reported by the
	// runtime.
	File string
	// Line is the line number within File.
	Line int
	// Func is the fully qualified function name, when known.
	Func string
}

// Caller returns the Site of the line that called it. The optional skip
// counts additional stack frames to ascend, for logging helpers that
// capture on behalf of their own callers.
func Caller(skip ...int) Site {
	frames := 1
	for _, n := range skip {
		frames += n
	}

	pc, file, line, ok := runtime.Caller(frames)
	if !ok {
		return Site{}
	}

	site := Site{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		site.Func = fn.Name()
	}

	return site
}

// IsZero reports whether the site carries no location information.
func (s Site) IsZero() bool {
	return s == Site{}
}

// Base returns the file name with its leading directory path removed.
// Both slash forms are recognized as separators.
func (s Site) Base() string {
	if i := strings.LastIndexAny(s.File, `/\`); i >= 0 {
		return s.File[i+1:]
	}

	return s.File
}
