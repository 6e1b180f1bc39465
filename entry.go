package bole

import "time"

// Entry is a single log event as delivered to sinks.
//
// Entries are passed by pointer to avoid copying on every hop of the
// hierarchy; sinks must not retain the pointer or mutate the entry after
// their Log call returns.
type Entry struct {
	// Site is the recorded call location, if any.
	Site
	// Time is when the entry was created. For streams this is the
	// creation of the stream, not its finalization.
	Time time.Time
	// Logger is the origin of the entry. It remains the origin while the
	// entry propagates to ancestor sinks.
	Logger *Logger
	// Level is the severity the entry was logged at.
	Level Level
	// Message is the rendered message text.
	Message string
}

// Channel returns the dot-separated name of the originating logger, or
// the empty string when no logger is recorded.
func (e *Entry) Channel() string {
	if e.Logger == nil {
		return ""
	}

	return e.Logger.Name()
}
