package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/ardnew/bole"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Line
	}{
		{
			name: "level and message",
			raw:  "WARN - disk is full",
			want: Line{Level: bole.LevelWarn, Message: "disk is full"},
		},
		{
			name: "lowercase level",
			raw:  "warn - disk is full",
			want: Line{Level: bole.LevelWarn, Message: "disk is full"},
		},
		{
			name: "padded level column",
			raw:  "INFO  - started",
			want: Line{Level: bole.LevelInfo, Message: "started"},
		},
		{
			name: "empty message",
			raw:  "INFO -",
			want: Line{Level: bole.LevelInfo},
		},
		{
			name: "rfc3339 timestamp",
			raw:  "2026-08-25T10:11:12Z INFO - started",
			want: Line{
				Time:    time.Date(2026, 8, 25, 10, 11, 12, 0, time.UTC),
				Level:   bole.LevelInfo,
				Message: "started",
			},
		},
		{
			name: "millisecond timestamp",
			raw:  "1500 DEBUG - tick",
			want: Line{
				Time:    time.UnixMilli(1500),
				Level:   bole.LevelDebug,
				Message: "tick",
			},
		},
		{
			name: "channel tag",
			raw:  "[db.pool] TRACE - acquire",
			want: Line{
				Channel: "db.pool",
				Level:   bole.LevelTrace,
				Message: "acquire",
			},
		},
		{
			name: "root channel tag",
			raw:  "[] WARN - hello",
			want: Line{Level: bole.LevelWarn, Message: "hello"},
		},
		{
			name: "site token",
			raw:  "ERROR server.go:42 - boom",
			want: Line{
				Level:   bole.LevelError,
				Site:    bole.Site{File: "server.go", Line: 42},
				Message: "boom",
			},
		},
		{
			name: "all fields",
			raw:  "2026-08-25T10:11:12Z [db] ERROR server.go:42 - boom",
			want: Line{
				Time:    time.Date(2026, 8, 25, 10, 11, 12, 0, time.UTC),
				Channel: "db",
				Level:   bole.LevelError,
				Site:    bole.Site{File: "server.go", Line: 42},
				Message: "boom",
			},
		},
		{
			name: "message keeps interior spacing",
			raw:  "INFO - a  b\tc",
			want: Line{Level: bole.LevelInfo, Message: "a  b\tc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)

			if !got.Structured() {
				t.Fatalf("expected structured line, got raw %q", got.Raw)
			}

			tt.want.Raw = tt.raw
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParse_Raw(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty line", raw: ""},
		{name: "prose", raw: "not a log line"},
		{name: "leading dash", raw: "- message without level"},
		{name: "unknown level", raw: "[db] LOUD - boom"},
		{name: "missing separator", raw: "INFO no separator here"},
		{name: "inherit is not a severity", raw: "INHERIT - x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)

			if got.Structured() {
				t.Fatalf("expected raw line, got %+v", got)
			}

			if got.Raw != tt.raw {
				t.Errorf("expected raw %q, got %q", tt.raw, got.Raw)
			}
		})
	}
}

func TestLine_Entry(t *testing.T) {
	h := bole.New()

	line := Parse("[db] INFO server.go:7 - connected")

	e := line.Entry(h)

	if e.Channel() != "db" {
		t.Errorf("expected channel %q, got %q", "db", e.Channel())
	}

	if e.Logger != h.GetLogger("db") {
		t.Error("expected entry logger minted from the hierarchy")
	}

	if e.Level != bole.LevelInfo || e.Message != "connected" {
		t.Errorf("unexpected entry: %+v", e)
	}

	if e.Site.File != "server.go" || e.Site.Line != 7 {
		t.Errorf("unexpected site: %+v", e.Site)
	}
}

func TestParser_Lines(t *testing.T) {
	source := "INFO - one\ngarbage\n[db] WARN - two\n"

	p := NewFromString(source)

	var lines []Line
	for line := range p.Lines() {
		lines = append(lines, line)
	}

	if err := p.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}

	if !lines[0].Structured() || lines[0].Message != "one" {
		t.Errorf("unexpected first line: %+v", lines[0])
	}

	if lines[1].Structured() || lines[1].Raw != "garbage" {
		t.Errorf("unexpected second line: %+v", lines[1])
	}

	if lines[2].Channel != "db" || lines[2].Level != bole.LevelWarn {
		t.Errorf("unexpected third line: %+v", lines[2])
	}
}

func TestParser_Lines_EarlyExit(t *testing.T) {
	p := NewFromString("INFO - one\nINFO - two\nINFO - three\n")

	count := 0
	for range p.Lines() {
		count++
		if count == 2 {
			break
		}
	}

	if count != 2 {
		t.Errorf("expected to iterate 2 times, got %d", count)
	}
}

func TestParser_FromReader(t *testing.T) {
	p := New(strings.NewReader("ERROR - boom"))

	for line := range p.Lines() {
		if line.Level != bole.LevelError {
			t.Errorf("expected %v, got %v", bole.LevelError, line.Level)
		}
	}
}
