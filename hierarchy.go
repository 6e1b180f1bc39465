package bole

import (
	"maps"
	"slices"
	"strings"
	"sync"
)

// Hierarchy is a registry of loggers forming a single rooted tree.
//
// Loggers are keyed by dot-separated names: "db.pool" is a child of
// "db", which is a child of the root (whose name is empty). Name
// segments are opaque byte strings; only the dots matter. Requesting a
// logger creates it and every missing ancestor, and loggers live as long
// as their hierarchy.
//
// Independent hierarchies share nothing. Most programs use the
// package-level [Default] hierarchy through [GetLogger] and [Root].
type Hierarchy struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
	root    *Logger
}

// New returns an empty hierarchy. Its root logger starts with
// [DefaultLevel], no sinks, and additivity on, unless overridden by
// options.
func New(opts ...Option) *Hierarchy {
	c := apply(config{level: DefaultLevel}, opts...)

	h := &Hierarchy{loggers: make(map[string]*Logger)}
	h.root = &Logger{
		hier:     h,
		level:    c.level,
		sinks:    slices.Clone(c.sinks),
		additive: true,
	}

	return h
}

// Root returns the hierarchy's root logger.
func (h *Hierarchy) Root() *Logger {
	return h.root
}

// GetLogger returns the logger with the given dot-separated name,
// creating it and any missing ancestors on the way. The empty name
// returns the root. Created loggers start with [LevelInherit], no sinks,
// and additivity on. Repeated calls with the same name return the same
// logger, from any number of goroutines.
func (h *Hierarchy) GetLogger(name string) *Logger {
	if name == "" {
		return h.root
	}

	h.mu.RLock()
	l, ok := h.loggers[name]
	h.mu.RUnlock()

	if ok {
		return l
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.get(name)
}

// get resolves or creates name and its ancestors with h.mu held for
// writing.
func (h *Hierarchy) get(name string) *Logger {
	if name == "" {
		return h.root
	}

	if l, ok := h.loggers[name]; ok {
		return l
	}

	parent := h.root
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		parent = h.get(name[:i])
	}

	l := &Logger{
		hier:     h,
		parent:   parent,
		name:     name,
		level:    LevelInherit,
		additive: true,
	}
	h.loggers[name] = l

	return l
}

// Loggers returns the sorted names of every logger created so far,
// excluding the root.
func (h *Hierarchy) Loggers() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return slices.Sorted(maps.Keys(h.loggers))
}

// defaultHierarchy backs the package-level logging functions.
//
//nolint:gochecknoglobals
var defaultHierarchy = New()

// Default returns the package-level hierarchy shared by [GetLogger] and
// [Root].
func Default() *Hierarchy {
	return defaultHierarchy
}

// GetLogger returns a logger from the package-level hierarchy, creating
// it and any missing ancestors on the way.
func GetLogger(name string) *Logger {
	return defaultHierarchy.GetLogger(name)
}

// Root returns the package-level hierarchy's root logger.
func Root() *Logger {
	return defaultHierarchy.Root()
}
