// Package bole provides hierarchical, leveled logging with named sinks.
//
// Loggers form a single rooted tree keyed by dot-separated names:
// requesting "db.pool" creates "db" and "db.pool" on demand, and both
// share the root as their ultimate ancestor. Each logger carries a
// severity level, an ordered set of sinks, and an additivity flag that
// controls whether accepted entries also reach its ancestors' sinks.
//
// # Basic Usage
//
//	bole.Root().AddSink(bole.NewWriterSink(os.Stderr))
//	logger := bole.GetLogger("db.pool")
//	logger.Warn("connection pool exhausted")
//
// # Level Inheritance
//
// A logger created by [GetLogger] starts at [LevelInherit]: its
// effective level is resolved by walking toward the root until a logger
// with a concrete severity is found. The root starts at [DefaultLevel]
// and always stores a concrete severity, so resolution terminates.
// Setting a level with [Logger.SetLevel] affects the logger and every
// descendant that still inherits:
//
//	bole.GetLogger("db").SetLevel(bole.LevelDebug)
//	bole.GetLogger("db.pool").Level() // LevelDebug
//
// # Dispatch
//
// A log call is gated once, at the origin logger, against its effective
// level. An accepted entry is delivered to the origin's sinks and then,
// while additivity holds, to each ancestor's sinks in turn; ancestor
// levels are never consulted. Delivery is best effort: sinks swallow
// write errors rather than disturb the call site.
//
// # Streams
//
// [Logger.Stream] defers a log call, accumulating message text until
// [Stream.Close] finalizes it into exactly one entry:
//
//	s := logger.Stream(bole.LevelInfo)
//	s.Print("loaded ").Print(n).Print(" records")
//	s.Close()
//
// # Formatting
//
// Sinks render entries through a [Formatter]. [Plain] emits
// "LEVEL - message"; [NewTemplate] composes [Column] field renderers,
// [Stamp] time renderers, and literal text into custom layouts; and
// [Colorize] brackets any formatter's output in severity-selected ANSI
// colors.
//
// # Filtering
//
// Beyond per-logger levels, a sink may carry a [Filter] mapping channel
// names to minimum severities with dot-prefix fallback, so one sink
// attached near the root can still select per-subtree verbosity.
//
// # Declarative Configuration
//
// The config subpackage assembles a hierarchy from a YAML document
// describing levels, sinks, formats, and filters.
package bole
