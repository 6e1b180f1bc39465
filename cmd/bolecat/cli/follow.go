package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/bole"
	"github.com/ardnew/bole/cmd/bolecat/parser"
)

// lineMsg delivers the next parsed input line.
type lineMsg parser.Line

// eofMsg is sent when the input ends and no more lines will arrive.
type eofMsg struct{}

const (
	// followBacklog is the reader channel capacity.
	followBacklog = 64
	// followPoll is the delay between read attempts once a followed file
	// is exhausted.
	followPoll = 250 * time.Millisecond
	// chromeHeight is the number of rows reserved around the viewport
	// for the title and status bars.
	chromeHeight = 2
)

// Styles.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	filterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	rawStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	// severityStyle follows the palette of the library's colorized
	// formatter.
	severityStyle = map[bole.Level]lipgloss.Style{
		bole.LevelAll:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		bole.LevelTrace: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		bole.LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		bole.LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		bole.LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		bole.LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		bole.LevelFatal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true),
	}
)

// Follow watches log lines interactively: a scrolling view of rendered
// entries with a fuzzy channel filter and a severity threshold both
// adjustable at runtime.
type Follow struct {
	Level string `default:"all" enum:"${logLevelEnum}" help:"Show entries at or above this severity." short:"l"`

	Path string `arg:"" default:"-" help:"Input file, or '-' for stdin." name:"path"`
}

// Run executes the follow command.
func (f *Follow) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	level, err := bole.ParseLevel(f.Level)
	if err != nil {
		return err
	}

	var (
		in   io.Reader = os.Stdin
		poll bool
	)

	if f.Path != "-" {
		file, err := os.Open(f.Path)
		if err != nil {
			return bole.MakeError(err).Wrapf("open %q", f.Path)
		}
		defer file.Close()

		// Regular files keep growing; pipes end for good at EOF.
		in = file
		poll = true
	}

	lines := make(chan parser.Line, followBacklog)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		if poll {
			in = &tailReader{ctx: ctx, r: in}
		}

		p := parser.New(in)

		for line := range p.Lines() {
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}

		readErr <- p.Err()
	}()

	m := newFollowModel(f.Path, level, lines)

	prog := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err = prog.Run(); err != nil {
		return err
	}

	// The reader has only reported in when its input already ended; a
	// quit mid-stream leaves it blocked, and its error dies with it.
	select {
	case err := <-readErr:
		return err
	default:
		return nil
	}
}

// tailReader blocks at end of file and retries, so a growing file keeps
// yielding lines the way tail does. Reads end when the context does.
type tailReader struct {
	ctx context.Context
	r   io.Reader
}

func (t *tailReader) Read(p []byte) (int, error) {
	for {
		n, err := t.r.Read(p)
		if errors.Is(err, io.EOF) {
			if n > 0 {
				return n, nil
			}

			select {
			case <-t.ctx.Done():
				return 0, t.ctx.Err()
			case <-time.After(followPoll):
				continue
			}
		}

		return n, err
	}
}

// followModel is the Bubble Tea model for the follow command.
type followModel struct {
	path      string
	lines     <-chan parser.Line
	entries   []parser.Line
	view      viewport.Model
	input     textinput.Model
	level     bole.Level // severity threshold
	pattern   string     // committed channel filter
	filtering bool       // filter bar focused
	ready     bool       // viewport sized
	closed    bool       // input ended
	quitting  bool
}

func newFollowModel(
	path string,
	level bole.Level,
	lines <-chan parser.Line,
) followModel {
	ti := textinput.New()
	ti.Prompt = filterStyle.Render("/")
	ti.Placeholder = "channel"
	ti.CharLimit = 256

	return followModel{
		path:  path,
		lines: lines,
		input: ti,
		level: level,
	}
}

// waitLine waits for the next line from the reader.
func waitLine(lines <-chan parser.Line) tea.Cmd {
	return func() tea.Msg {
		line, ok := <-lines
		if !ok {
			return eofMsg{}
		}

		return lineMsg(line)
	}
}

func (m followModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitLine(m.lines))
}

func (m followModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		height := msg.Height - chromeHeight
		if height < 1 {
			height = 1
		}

		if !m.ready {
			m.view = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.view.Width, m.view.Height = msg.Width, height
		}

		m.input.Width = msg.Width - 4
		m.view.SetContent(m.render())
		m.view.GotoBottom()

		return m, nil

	case lineMsg:
		m.entries = append(m.entries, parser.Line(msg))

		if m.ready && m.visible(parser.Line(msg)) {
			// Keep following the tail unless the user scrolled away.
			follow := m.view.AtBottom()
			m.view.SetContent(m.render())

			if follow {
				m.view.GotoBottom()
			}
		}

		return m, waitLine(m.lines)

	case eofMsg:
		m.closed = true

		return m, nil
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)

	return m, cmd
}

func (m followModel) handleKey(msg tea.KeyMsg) (followModel, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "enter":
			m.filtering = false
			m.input.Blur()

			return m, nil

		case "esc":
			m.filtering = false
			m.pattern = ""
			m.input.SetValue("")
			m.input.Blur()
			m.view.SetContent(m.render())
			m.view.GotoBottom()

			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)

		// Live preview: the filter applies as the pattern changes.
		m.pattern = m.input.Value()
		m.view.SetContent(m.render())
		m.view.GotoBottom()

		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true

		return m, tea.Quit

	case "/":
		m.filtering = true
		m.input.Focus()

		return m, textinput.Blink

	case "esc":
		m.pattern = ""
		m.input.SetValue("")
		m.view.SetContent(m.render())
		m.view.GotoBottom()

		return m, nil

	case "+", "=":
		if m.level < bole.LevelOff {
			m.level++
			m.view.SetContent(m.render())
			m.view.GotoBottom()
		}

		return m, nil

	case "-", "_":
		if m.level > bole.LevelAll {
			m.level--
			m.view.SetContent(m.render())
			m.view.GotoBottom()
		}

		return m, nil
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)

	return m, cmd
}

// visible reports whether a line passes the current threshold and
// channel filter. Raw lines carry no severity or channel: they show only
// while no filter is active.
func (m followModel) visible(l parser.Line) bool {
	if !l.Structured() {
		return m.pattern == ""
	}

	if l.Level < m.level {
		return false
	}

	if m.pattern != "" &&
		len(fuzzy.Find(m.pattern, []string{l.Channel})) == 0 {
		return false
	}

	return true
}

// render formats every visible line into viewport content.
func (m followModel) render() string {
	var b strings.Builder

	for i := range m.entries {
		if !m.visible(m.entries[i]) {
			continue
		}

		b.WriteString(m.renderLine(m.entries[i]))
		b.WriteString("\n")
	}

	return b.String()
}

func (m followModel) renderLine(l parser.Line) string {
	if !l.Structured() {
		return rawStyle.Render(l.Raw)
	}

	tag := ""
	if l.Channel != "" {
		tag = "[" + l.Channel + "] "
	}

	return severityStyle[l.Level].Render(
		fmt.Sprintf("%s%-5s - %s", tag, l.Level, l.Message),
	)
}

// shown counts the lines currently passing the filter.
func (m followModel) shown() int {
	n := 0

	for i := range m.entries {
		if m.visible(m.entries[i]) {
			n++
		}
	}

	return n
}

func (m followModel) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.path))
	b.WriteString("\n")
	b.WriteString(m.view.View())
	b.WriteString("\n")

	if m.filtering {
		b.WriteString(m.input.View())

		return b.String()
	}

	status := fmt.Sprintf("%d/%d lines  level %s",
		m.shown(), len(m.entries), m.level)

	if m.pattern != "" {
		status += fmt.Sprintf("  filter %q", m.pattern)
	}

	if m.closed {
		status += "  (input closed)"
	}

	status += "  /: filter  +/-: level  q: quit"

	b.WriteString(statusStyle.Render(status))

	return b.String()
}
