package bole

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Filter maps channel names to minimum severities with dot-prefix
// fallback. A channel is the dot-separated name of an entry's origin
// logger; the most specific rule whose name is a dot-prefix of the
// channel decides, and the default rule (the empty name) decides for
// channels nothing else matches.
//
// Filters are configured once and then read: finish every [Filter.Rule]
// call before handing the filter to concurrently used sinks.
type Filter struct {
	rules map[string]Level
}

// NewFilter returns a filter whose default rule is def. The default rule
// always exists; constructing a filter any other way and calling
// [Filter.Check] on it panics.
func NewFilter(def Level) *Filter {
	return &Filter{rules: map[string]Level{"": def}}
}

// Rule sets the minimum severity for one channel, overwriting any prior
// rule for the same name. It returns the receiver for chaining.
func (f *Filter) Rule(channel string, min Level) *Filter {
	f.rules[channel] = min

	return f
}

// Check reports whether a message on the given channel at the given
// severity passes the filter. Lookup tries the channel name itself, then
// each dot-truncated prefix, and finally the default rule; the severity
// passes when it is at least the matched rule's minimum.
func (f *Filter) Check(channel string, level Level) bool {
	min, ok := f.rules[channel]

	for !ok {
		if channel == "" {
			panic("bole: filter has no default rule")
		}

		if i := strings.LastIndexByte(channel, '.'); i >= 0 {
			channel = channel[:i]
		} else {
			channel = ""
		}

		min, ok = f.rules[channel]
	}

	return level >= min
}

// String renders the filter's rules, one "name: LEVEL" line per rule in
// sorted name order, for diagnostics.
func (f *Filter) String() string {
	var sb strings.Builder

	for i, name := range slices.Sorted(maps.Keys(f.rules)) {
		if i > 0 {
			sb.WriteByte('\n')
		}

		fmt.Fprintf(&sb, "%q: %s", name, f.rules[name])
	}

	return sb.String()
}
