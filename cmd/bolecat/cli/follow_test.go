package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/bole"
	"github.com/ardnew/bole/cmd/bolecat/parser"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFollowModel_Visible(t *testing.T) {
	tests := []struct {
		name    string
		level   bole.Level
		pattern string
		line    string
		want    bool
	}{
		{
			name:  "below threshold",
			level: bole.LevelWarn,
			line:  "[db] INFO - quiet",
			want:  false,
		},
		{
			name:  "at threshold",
			level: bole.LevelWarn,
			line:  "[db] WARN - slow",
			want:  true,
		},
		{
			name:  "raw without filter",
			level: bole.LevelWarn,
			line:  "not a log line",
			want:  true,
		},
		{
			name:    "raw hidden by filter",
			level:   bole.LevelAll,
			pattern: "db",
			line:    "not a log line",
			want:    false,
		},
		{
			name:    "fuzzy filter match",
			level:   bole.LevelAll,
			pattern: "dbp",
			line:    "[db.pool] ERROR - boom",
			want:    true,
		},
		{
			name:    "fuzzy filter mismatch",
			level:   bole.LevelAll,
			pattern: "dbp",
			line:    "[net.rpc] ERROR - boom",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := followModel{level: tt.level, pattern: tt.pattern}

			if got := m.visible(parser.Parse(tt.line)); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFollowModel_RenderLine(t *testing.T) {
	var m followModel

	got := m.renderLine(parser.Parse("[db] INFO - hello"))
	if !strings.Contains(got, "[db] INFO  - hello") {
		t.Errorf("expected rendered entry, got %q", got)
	}

	got = m.renderLine(parser.Parse("plain text"))
	if !strings.Contains(got, "plain text") {
		t.Errorf("expected raw text, got %q", got)
	}
}

func TestFollowModel_Update(t *testing.T) {
	lines := make(chan parser.Line, 1)
	m := newFollowModel("-", bole.LevelAll, lines)

	next, cmd := m.Update(lineMsg(parser.Parse("INFO - one")))
	if cmd == nil {
		t.Error("expected a command to wait for the next line")
	}

	m = next.(followModel)
	if len(m.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(m.entries))
	}

	next, _ = m.Update(eofMsg{})

	m = next.(followModel)
	if !m.closed {
		t.Error("expected model to mark input closed")
	}
}

func TestFollowModel_Keys(t *testing.T) {
	lines := make(chan parser.Line)
	m := newFollowModel("-", bole.LevelWarn, lines)

	m, _ = m.handleKey(keyMsg("+"))
	if m.level != bole.LevelError {
		t.Errorf("expected threshold raised to ERROR, got %v", m.level)
	}

	m, _ = m.handleKey(keyMsg("-"))
	m, _ = m.handleKey(keyMsg("-"))
	if m.level != bole.LevelInfo {
		t.Errorf("expected threshold lowered to INFO, got %v", m.level)
	}

	m, _ = m.handleKey(keyMsg("/"))
	if !m.filtering {
		t.Error("expected filter bar focused")
	}

	m, _ = m.handleKey(keyMsg("esc"))
	if m.filtering || m.pattern != "" {
		t.Error("expected filter cleared")
	}

	m, cmd := m.handleKey(keyMsg("q"))
	if !m.quitting || cmd == nil {
		t.Error("expected quit")
	}
}

func TestWaitLine(t *testing.T) {
	lines := make(chan parser.Line, 1)
	lines <- parser.Parse("INFO - one")

	msg := waitLine(lines)()

	line, ok := msg.(lineMsg)
	if !ok {
		t.Fatalf("expected lineMsg, got %T", msg)
	}

	if line.Message != "one" {
		t.Errorf("expected message %q, got %q", "one", line.Message)
	}

	close(lines)

	if _, ok := waitLine(lines)().(eofMsg); !ok {
		t.Error("expected eofMsg after close")
	}
}

func TestTailReader_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	r := &tailReader{ctx: ctx, r: strings.NewReader("abc")}

	buf := make([]byte, 8)

	n, err := r.Read(buf)
	if err != nil || n != 3 {
		t.Fatalf("expected 3 bytes, got %d (%v)", n, err)
	}

	// At end of input the reader polls instead of reporting EOF, so the
	// only way out is the context.
	cancel()

	if _, err := r.Read(buf); err == nil {
		t.Error("expected error after cancel, got nil")
	}
}
