package bole

import (
	"bytes"
	"slices"
	"sync"
	"testing"
)

func TestHierarchy_GetLogger_Idempotent(t *testing.T) {
	h := New()

	first := h.GetLogger("a.b.c")
	second := h.GetLogger("a.b.c")

	if first != second {
		t.Error("expected repeated lookups to return the same logger")
	}

	if first.Name() != "a.b.c" {
		t.Errorf("expected name a.b.c, got %q", first.Name())
	}
}

func TestHierarchy_GetLogger_CreatesAncestors(t *testing.T) {
	h := New()

	h.GetLogger("a.b.c")

	expected := []string{"a", "a.b", "a.b.c"}
	if got := h.Loggers(); !slices.Equal(got, expected) {
		t.Errorf("expected loggers %v, got %v", expected, got)
	}

	if h.GetLogger("a.b").Parent() != h.GetLogger("a") {
		t.Error("expected a.b's parent to be a")
	}

	if h.GetLogger("a").Parent() != h.Root() {
		t.Error("expected a's parent to be the root")
	}
}

func TestHierarchy_GetLogger_EmptyNameIsRoot(t *testing.T) {
	h := New()

	if h.GetLogger("") != h.Root() {
		t.Error("expected the empty name to resolve to the root")
	}

	if h.Root().Name() != "" {
		t.Errorf("expected the root name to be empty, got %q", h.Root().Name())
	}

	if h.Root().Parent() != nil {
		t.Error("expected the root to have no parent")
	}
}

func TestHierarchy_GetLogger_FreshLoggersInherit(t *testing.T) {
	h := New()
	l := h.GetLogger("fresh")

	if !l.Additive() {
		t.Error("expected new loggers to start additive")
	}

	if got := len(l.Sinks()); got != 0 {
		t.Errorf("expected new loggers to start with no sinks, got %d", got)
	}

	if got := l.Level(); got != DefaultLevel {
		t.Errorf("expected effective level to resolve to the root's, got %v", got)
	}
}

func TestHierarchy_GetLogger_OpaqueSegments(t *testing.T) {
	h := New()

	l := h.GetLogger("a..b")

	if l.Parent().Name() != "a." {
		t.Errorf("expected parent a. for empty segment, got %q", l.Parent().Name())
	}

	if h.GetLogger("a.") == h.GetLogger("a") {
		t.Error("expected a. and a to be distinct loggers")
	}
}

func TestHierarchy_Independent(t *testing.T) {
	first := New()
	second := New()

	first.GetLogger("a").SetLevel(LevelDebug)

	if got := second.GetLogger("a").Level(); got != DefaultLevel {
		t.Errorf("expected hierarchies to share nothing, got %v", got)
	}
}

func TestNew_Options(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf)

	h := New(WithRootLevel(LevelInfo), WithRootSink(sink))

	if got := h.Root().Level(); got != LevelInfo {
		t.Errorf("expected root level INFO, got %v", got)
	}

	if got := len(h.Root().Sinks()); got != 1 {
		t.Fatalf("expected 1 root sink, got %d", got)
	}

	h.GetLogger("svc").Info("wired")

	if got := buf.String(); got != "INFO - wired\n" {
		t.Errorf("expected output through the option sink, got %q", got)
	}
}

func TestNew_WithRootLevelInheritIgnored(t *testing.T) {
	h := New(WithRootLevel(LevelInherit))

	if got := h.Root().Level(); got != DefaultLevel {
		t.Errorf("expected root to stay at the default, got %v", got)
	}
}

func TestHierarchy_GetLogger_Concurrent(t *testing.T) {
	h := New()

	const goroutines = 16

	var wg sync.WaitGroup

	results := make([]*Logger, goroutines)

	for i := range goroutines {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[i] = h.GetLogger("svc.worker.queue")
		}()
	}

	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if results[i] != results[0] {
			t.Fatalf("expected one logger for concurrent creation, got distinct at %d", i)
		}
	}
}

func TestDefault_PackageLevel(t *testing.T) {
	if Default() != Default() {
		t.Error("expected a stable package-level hierarchy")
	}

	if GetLogger("") != Root() {
		t.Error("expected package GetLogger to resolve against the default hierarchy")
	}

	if Default().GetLogger("pkg.test") != GetLogger("pkg.test") {
		t.Error("expected package GetLogger to match Default().GetLogger")
	}
}
