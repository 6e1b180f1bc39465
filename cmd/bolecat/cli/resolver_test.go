package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func resolveFlag(t *testing.T, r kong.Resolver, name string) any {
	t.Helper()

	flag := &kong.Flag{Value: &kong.Value{Name: name}}

	value, err := r.Resolve(nil, nil, flag)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	return value
}

func TestResolveConfig_ReturnsValues(t *testing.T) {
	source := "log-level: debug\nformat: wide\n"

	resolver, err := resolveConfig(strings.NewReader(source))
	if err != nil {
		t.Fatalf("resolveConfig failed: %v", err)
	}

	if value := resolveFlag(t, resolver, "log-level"); value != "debug" {
		t.Errorf("expected log-level=debug, got %v", value)
	}

	if value := resolveFlag(t, resolver, "format"); value != "wide" {
		t.Errorf("expected format=wide, got %v", value)
	}

	if value := resolveFlag(t, resolver, "output"); value != nil {
		t.Errorf("expected nil for absent key, got %v", value)
	}
}

func TestResolveConfig_UnderscoreHyphenMapping(t *testing.T) {
	source := "log_level: debug\n"

	resolver, err := resolveConfig(strings.NewReader(source))
	if err != nil {
		t.Fatalf("resolveConfig failed: %v", err)
	}

	// Kong asks with the hyphenated flag name; the underscore spelling
	// in the file must still resolve.
	if value := resolveFlag(t, resolver, "log-level"); value != "debug" {
		t.Errorf("expected log-level=debug, got %v", value)
	}

	if value := resolveFlag(t, resolver, "log_level"); value != "debug" {
		t.Errorf("expected log_level=debug, got %v", value)
	}
}

func TestResolveConfig_NumbersAsStrings(t *testing.T) {
	source := "count: 42\nratio: 1.5\nshift: -7\n"

	resolver, err := resolveConfig(strings.NewReader(source))
	if err != nil {
		t.Fatalf("resolveConfig failed: %v", err)
	}

	if value := resolveFlag(t, resolver, "count"); value != "42" {
		t.Errorf("expected count=%q, got %v (%T)", "42", value, value)
	}

	if value := resolveFlag(t, resolver, "ratio"); value != "1.5" {
		t.Errorf("expected ratio=%q, got %v (%T)", "1.5", value, value)
	}

	if value := resolveFlag(t, resolver, "shift"); value != "-7" {
		t.Errorf("expected shift=%q, got %v (%T)", "-7", value, value)
	}
}

func TestResolveConfig_Empty(t *testing.T) {
	resolver, err := resolveConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("resolveConfig failed: %v", err)
	}

	if value := resolveFlag(t, resolver, "log-level"); value != nil {
		t.Errorf("expected nil from empty config, got %v", value)
	}
}

func TestResolveConfig_Malformed(t *testing.T) {
	// A broken config file degrades to defaults instead of blocking
	// flag parsing.
	resolver, err := resolveConfig(strings.NewReader("a: b\n- c\n"))
	if err != nil {
		t.Fatalf("expected malformed config to degrade, got %v", err)
	}

	if value := resolveFlag(t, resolver, "a"); value != nil {
		t.Errorf("expected nil from malformed config, got %v", value)
	}
}

func TestResolveConfig_Validate(t *testing.T) {
	resolver, err := resolveConfig(strings.NewReader("log-level: debug\n"))
	if err != nil {
		t.Fatalf("resolveConfig failed: %v", err)
	}

	if err := resolver.Validate(nil); err != nil {
		t.Errorf("expected nil from Validate, got %v", err)
	}
}
