package bole

import (
	"iter"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Field enumerates the entry attributes a [Column] can render.
type Field int

const (
	// FieldMessage renders the entry's message text.
	FieldMessage Field = iota
	// FieldLevel renders the severity name.
	FieldLevel
	// FieldLogger renders the full dot-separated name of the origin
	// logger.
	FieldLogger
	// FieldFile renders the source file name with its directory path
	// removed.
	FieldFile
	// FieldPath renders the source file path as recorded.
	FieldPath
	// FieldLine renders the source line number.
	FieldLine
	// FieldFunc renders the function name, when one was captured.
	FieldFunc
	// FieldElapsed renders the whole milliseconds between the process
	// reference instant (see [StartTime]) and the entry time.
	FieldElapsed
)

// String returns the lower-case name of the field, or "???" for values
// outside the defined set.
func (f Field) String() string {
	switch f {
	case FieldMessage:
		return "message"
	case FieldLevel:
		return "level"
	case FieldLogger:
		return "logger"
	case FieldFile:
		return "file"
	case FieldPath:
		return "path"
	case FieldLine:
		return "line"
	case FieldFunc:
		return "func"
	case FieldElapsed:
		return "elapsed"
	default:
		return "???"
	}
}

// Fields returns an iterator over all defined fields.
func Fields() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for f := FieldMessage; f <= FieldElapsed; f++ {
			if !yield(f) {
				return
			}
		}
	}
}

// ParseField parses a string representation of a field, matching the
// names returned by [Field.String] case-insensitively. Unrecognized
// names return an error wrapping [ErrBadField].
func ParseField(s string) (Field, error) {
	for f := range Fields() {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}

	return FieldMessage, ErrBadField.Wrapf("%q", s)
}

// ErrBadField is returned when a field name cannot be parsed.
var ErrBadField = MakeErrorf("unrecognized field name")

// Justify selects which side of a column the rendered value abuts.
type Justify int

const (
	// Right aligns the value against the column's right edge, padding on
	// the left. It is the zero value.
	Right Justify = iota
	// Left aligns the value against the column's left edge, padding on
	// the right.
	Left
)

// Column renders one entry field into a minimum-width column.
//
// Width counts runes and is a minimum: longer values render in full,
// never truncated. The zero Fill pads with spaces. The zero Column
// renders [FieldMessage] with no padding.
type Column struct {
	Field   Field
	Width   int
	Justify Justify
	Fill    rune
}

// value extracts the column's field from the entry.
func (c Column) value(e *Entry) string {
	switch c.Field {
	case FieldMessage:
		return e.Message
	case FieldLevel:
		return e.Level.String()
	case FieldLogger:
		return e.Channel()
	case FieldFile:
		return e.Base()
	case FieldPath:
		return e.File
	case FieldLine:
		return strconv.Itoa(e.Line)
	case FieldFunc:
		return e.Func
	case FieldElapsed:
		return strconv.FormatInt(e.Time.Sub(StartTime()).Milliseconds(), 10)
	default:
		return ""
	}
}

// render writes the padded field value.
func (c Column) render(sb *strings.Builder, e *Entry) {
	value := c.value(e)

	pad := c.Width - utf8.RuneCountInString(value)
	if pad <= 0 {
		sb.WriteString(value)

		return
	}

	fill := c.Fill
	if fill == 0 {
		fill = ' '
	}

	if c.Justify == Left {
		sb.WriteString(value)
	}

	for range pad {
		sb.WriteRune(fill)
	}

	if c.Justify != Left {
		sb.WriteString(value)
	}
}

// Stamp renders the entry time with a Go time layout. The zero Layout
// uses [time.DateTime].
type Stamp struct {
	Layout string
}

// render writes the formatted entry time.
func (s Stamp) render(sb *strings.Builder, e *Entry) {
	layout := s.Layout
	if layout == "" {
		layout = time.DateTime
	}

	sb.WriteString(e.Time.Format(layout))
}
