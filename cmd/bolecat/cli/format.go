package cli

import (
	"strings"
	"time"

	"github.com/ardnew/bole"
)

// Output preset names accepted by the --format flag.
const (
	formatPlain = "plain"
	formatWide  = "wide"
	formatTime  = "time"
	formatColor = "color"
)

// formatEnum returns the preset names accepted by the --format flag.
func formatEnum() string {
	return strings.Join(
		[]string{formatPlain, formatWide, formatTime, formatColor}, ",",
	)
}

// preset returns the formatter for a named output preset.
//
// Every preset emits one line per entry:
//
//	plain: WARN - message
//	wide:  [channel] WARN  - message
//	time:  2006-01-02T15:04:05Z07:00 [channel] WARN  - message
//	color: plain, bracketed in a severity color
func preset(name string) (bole.Formatter, error) {
	switch name {
	case formatPlain, "":
		return bole.Plain{}, nil

	case formatColor:
		return bole.Colorize{}, nil

	case formatWide:
		return bole.NewTemplate(wideParts()...), nil

	case formatTime:
		parts := append(
			[]any{bole.Stamp{Layout: time.RFC3339}, " "}, wideParts()...,
		)

		return bole.NewTemplate(parts...), nil
	}

	return nil, ErrBadFormat.Wrapf("%q", name)
}

// wideParts lists the template elements shared by the wide and time
// presets. The channel tag and fixed-width level column keep messages
// aligned across a stream, and the layout round-trips through the line
// parser.
func wideParts() []any {
	return []any{
		"[", bole.Column{Field: bole.FieldLogger}, "] ",
		bole.Column{Field: bole.FieldLevel, Width: 5, Justify: bole.Left},
		" - ",
		bole.Column{Field: bole.FieldMessage},
		"\n",
	}
}
