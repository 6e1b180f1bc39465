package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/bole"
)

func TestLevelEnum(t *testing.T) {
	expected := "all,trace,debug,info,warn,error,fatal,off"
	if got := levelEnum(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestLogLevel_UnmarshalText(t *testing.T) {
	defer bole.Root().SetLevel(bole.DefaultLevel)

	var level logLevel

	if err := level.UnmarshalText([]byte("debug")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := bole.Root().Level(); got != bole.LevelDebug {
		t.Errorf("expected root level DEBUG, got %v", got)
	}

	if err := level.UnmarshalText([]byte("loud")); err == nil {
		t.Error("expected error for unknown level, got nil")
	}
}

func TestLogConfig_Apply(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "log.yml")
	doc := "loggers:\n  selftest.apply: { level: debug }\n"

	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	f := logConfig{Config: path}

	if err := f.apply(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger := bole.Default().GetLogger("selftest.apply")
	defer logger.SetLevel(bole.LevelInherit)

	if got := logger.Level(); got != bole.LevelDebug {
		t.Errorf("expected configured level DEBUG, got %v", got)
	}

	f.Config = filepath.Join(dir, "absent.yml")
	if err := f.apply(); err == nil {
		t.Error("expected error for missing config file, got nil")
	}
}

func TestLogConfig_Scan(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantLevel logLevel
		wantFile  string
	}{
		{
			name:      "assigned level",
			args:      []string{"--log-level=debug"},
			wantLevel: "debug",
		},
		{
			name:      "separate level",
			args:      []string{"--log-level", "error"},
			wantLevel: "error",
		},
		{
			name:     "log file",
			args:     []string{"--log-file", "/tmp/self.log"},
			wantFile: "/tmp/self.log",
		},
		{
			name:      "position independent",
			args:      []string{"cat", "--format=wide", "--log-level=info", "in.log"},
			wantLevel: "info",
		},
		{
			name: "trailing flag without value",
			args: []string{"--log-level"},
		},
		{
			name: "unrelated flags ignored",
			args: []string{"--level=debug", "--output", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer bole.Root().SetLevel(bole.DefaultLevel)

			var f logConfig

			f.scan(tt.args)

			defer bole.Root().RemoveSink(f.sink)

			if f.Level != tt.wantLevel {
				t.Errorf("expected level %q, got %q", tt.wantLevel, f.Level)
			}

			if f.File != tt.wantFile {
				t.Errorf("expected file %q, got %q", tt.wantFile, f.File)
			}

			if f.sink == nil {
				t.Error("expected scan to attach the stderr sink")
			}
		})
	}
}
