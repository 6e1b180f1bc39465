// Package profile provides optional runtime profiling for the bolecat
// command.
//
// # Overview
//
// This package integrates [github.com/pkg/profile] behind conditional
// compilation. Profiling is opt-in at build time via the "pprof" build
// tag; default builds compile every operation to a no-op with zero
// runtime overhead.
//
// # Available Profiling Modes
//
// The following modes are supported when built with the pprof tag:
//
//   - allocs:    Memory allocation profiling (all allocations)
//   - block:     Block (synchronization) profiling
//   - clock:     Wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: Goroutine profiling
//   - heap:      Heap memory profiling (live allocations)
//   - mem:       General memory profiling
//   - mutex:     Mutex contention profiling
//   - thread:    Thread creation profiling
//   - trace:     Execution trace profiling
//
// Use [Modes] to retrieve the list of supported modes programmatically.
//
// # Usage
//
// A profiler is described by a [Config] and started with [Config.Start]:
//
//	ctrl := profile.Make(
//	    profile.WithMode("cpu"),
//	    profile.WithPath("/tmp/profiles"),
//	    profile.WithQuiet(true),
//	).Start()
//	defer ctrl.Stop()
//
// Profile files are written to the configured directory with names
// matching the profiling mode (e.g., cpu.pprof, heap.pprof). Analyze them
// with:
//
//	go tool pprof /tmp/profiles/cpu.pprof
//
// # Command-Line Usage
//
// The bolecat command exposes profiling flags when built with the tag:
//
//	go build -tags pprof ./cmd/bolecat
//
//	# CPU profile written to the default cache directory
//	bolecat --pprof-mode cpu app.log
//
//	# Heap profile with a custom output directory
//	bolecat --pprof-mode heap --pprof-dir ./profiles app.log
//
// The default output directory is:
//
//	$XDG_CACHE_HOME/bolecat/pprof   (Linux/Unix)
//	~/Library/Caches/bolecat/pprof  (macOS)
//	%LocalAppData%\bolecat\pprof    (Windows)
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
