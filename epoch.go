package bole

import (
	"sync"
	"time"
)

// epoch holds the process reference instant used by [FieldElapsed].
//
//nolint:gochecknoglobals
var epoch struct {
	mu  sync.Mutex
	at  time.Time
	set bool
}

// Initialize fixes the reference instant to the current time unless one
// is already set. Calling it early in main makes elapsed timestamps
// measure from process start rather than from the first log call.
func Initialize() {
	epoch.mu.Lock()
	defer epoch.mu.Unlock()

	if !epoch.set {
		epoch.at = time.Now()
		epoch.set = true
	}
}

// InitializeAt fixes the reference instant to t, replacing any prior
// value. Tests use it to make elapsed timestamps deterministic.
func InitializeAt(t time.Time) {
	epoch.mu.Lock()
	defer epoch.mu.Unlock()

	epoch.at = t
	epoch.set = true
}

// Deinitialize clears the reference instant. The next use fixes a fresh
// one.
func Deinitialize() {
	epoch.mu.Lock()
	defer epoch.mu.Unlock()

	epoch.at = time.Time{}
	epoch.set = false
}

// StartTime returns the reference instant, fixing it to the current time
// on first use if [Initialize] was never called.
func StartTime() time.Time {
	epoch.mu.Lock()
	defer epoch.mu.Unlock()

	if !epoch.set {
		epoch.at = time.Now()
		epoch.set = true
	}

	return epoch.at
}
