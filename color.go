package bole

import "strings"

// ANSI color codes for colorized output.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// levelColor returns the ANSI sequence for entries at the given level.
func levelColor(l Level) string {
	switch {
	case l >= LevelFatal:
		return colorMagenta
	case l >= LevelError:
		return colorRed
	case l >= LevelWarn:
		return colorYellow
	case l >= LevelInfo:
		return colorGreen
	case l >= LevelDebug:
		return colorCyan
	default:
		return colorGray
	}
}

// Colorize wraps another formatter and brackets its output in an ANSI
// color sequence selected by the entry's severity. A nil Formatter
// colorizes [Plain]. The terminating newline, when present, stays
// outside the colored span so line-oriented tools see a clean reset.
type Colorize struct {
	Formatter
}

// Format implements [Formatter].
func (c Colorize) Format(e *Entry) string {
	f := c.Formatter
	if f == nil {
		f = Plain{}
	}

	text := f.Format(e)

	newline := ""
	if trimmed, ok := strings.CutSuffix(text, "\n"); ok {
		text, newline = trimmed, "\n"
	}

	return levelColor(e.Level) + text + colorReset + newline
}
