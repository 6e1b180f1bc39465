package bole

import (
	"fmt"
	"slices"
	"strings"
)

// Formatter renders one entry as text.
//
// Format must be a pure function of the entry: formatting the same entry
// twice yields the same string. A single Formatter may be shared by
// several sinks, so implementations must not mutate shared state.
type Formatter interface {
	Format(e *Entry) string
}

// Plain is the default formatter. It renders the level name, a hyphen
// separator, and the message, terminated by a newline:
//
//	WARN - disk nearly full
type Plain struct{}

// Format implements [Formatter].
func (Plain) Format(e *Entry) string {
	return e.Level.String() + " - " + e.Message + "\n"
}

// Template is a formatter assembled from a fixed sequence of parts.
// [Column] parts render entry fields, [Stamp] parts render the entry
// time, and every other part value is rendered literally the way
// fmt.Fprint would. The part sequence is fixed at construction; rendering
// walks it once per entry.
type Template struct {
	parts []any
}

// NewTemplate returns a template that renders the given parts in order.
//
//	NewTemplate(Column{Field: FieldFile}, ":", Column{Field: FieldLine})
//
// renders "server.go:42" style location prefixes.
func NewTemplate(parts ...any) *Template {
	return &Template{parts: slices.Clone(parts)}
}

// Format implements [Formatter].
func (t *Template) Format(e *Entry) string {
	var sb strings.Builder

	for _, part := range t.parts {
		switch p := part.(type) {
		case Column:
			p.render(&sb, e)
		case Stamp:
			p.render(&sb, e)
		default:
			fmt.Fprint(&sb, p)
		}
	}

	return sb.String()
}
