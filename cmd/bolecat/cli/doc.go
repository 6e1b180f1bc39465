// Package cli contains the command line interface for bolecat.
//
// # Usage
//
// bolecat reads log lines produced by the library's formatters (from
// files or stdin), filters them, and re-emits them through a sink of its
// own, so the output is again well-formed input:
//
//	bolecat --level=info server.log
//	tail -f server.log | bolecat --rule db=debug --format=color
//	bolecat follow server.log
//
// # Commands
//
//   - cat (default): filter and reformat log lines
//   - follow: watch log lines in an interactive viewer
//
// # Filtering
//
//   - --level: drop entries below this severity
//   - --rule CHAN=LEVEL: per-channel minimum severity (repeatable);
//     rules use the same longest-prefix match as the library's filter,
//     with --level as the default rule
//   - --where EXPR: keep lines satisfying an expression over the fields
//     level, severity, channel, message, file, line, and raw, e.g.
//     --where 'severity >= 3 && channel startsWith "db"'
//
// Lines that do not match a recognized shape pass through verbatim, so a
// plain bolecat behaves like cat.
//
// # Output
//
//   - --format: plain, wide, time, or color
//   - --output: write to a file instead of stdout
//
// # Configuration
//
// Flags load their defaults from the first config.yml found on the
// search path (the directories of $BOLECAT_CONFIG_PATH, then the user
// config directory), or from config.json beside it. Keys are flag names:
//
//	log-level: debug
//	format: wide
//
// Environment variables of the form BOLECAT_FLAG_NAME override file
// values, and command-line flags override both.
//
// # Self-Logging
//
// bolecat reports its own diagnostics through the library it ships with:
//
//   - --log-level: set self-log severity (default warn)
//   - --log-file: write self-log to a file instead of stderr
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof ./cmd/bolecat
//
//   - --pprof-mode: enable profiling (allocs, block, clock, cpu,
//     goroutine, heap, mem, mutex, thread, trace)
//   - --pprof-dir: set profile output directory (default:
//     ~/.cache/bolecat/pprof)
package cli
