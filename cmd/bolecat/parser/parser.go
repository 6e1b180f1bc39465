package parser

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"
	"time"

	"github.com/ardnew/bole"
)

// maxLineSize is the scanner buffer limit for a single input line.
const maxLineSize = 1 << 20

// Line is one input line, parsed into its entry fields when the line
// matches a recognized output shape. Unrecognized lines carry only Raw.
type Line struct {
	// Raw is the input line exactly as read.
	Raw string
	// Time is the leading timestamp, or the zero time when absent.
	Time time.Time
	// Channel is the bracketed channel tag, or "" when absent.
	Channel string
	// Level is the parsed severity, or [bole.LevelInherit] for
	// unrecognized lines.
	Level bole.Level
	// Site holds the file:line token when present.
	Site bole.Site
	// Message is the text following the separator.
	Message string
}

// Structured reports whether the line matched a recognized shape.
func (l Line) Structured() bool {
	return l.Level != bole.LevelInherit
}

// Entry converts the line to a log entry. The entry's logger is minted
// from h so channel names render; h must not be nil.
func (l Line) Entry(h *bole.Hierarchy) bole.Entry {
	return bole.Entry{
		Site:    l.Site,
		Time:    l.Time,
		Logger:  h.GetLogger(l.Channel),
		Level:   l.Level,
		Message: l.Message,
	}
}

// Parse parses one line. The recognized shape is, in order: an optional
// timestamp (RFC 3339 or integer milliseconds since the Unix epoch), an
// optional bracketed channel tag, a severity name, an optional file:line
// token, a "-" separator, and the message. Lines that do not match are
// returned with only Raw set.
func Parse(raw string) Line {
	line := Line{Raw: raw, Level: bole.LevelInherit}

	tok, rest := cut(raw)

	if t, ok := parseStamp(tok); ok {
		line.Time = t
		tok, rest = cut(rest)
	}

	if len(tok) >= 2 && tok[0] == '[' && tok[len(tok)-1] == ']' {
		line.Channel = tok[1 : len(tok)-1]
		tok, rest = cut(rest)
	}

	level, err := bole.ParseLevel(tok)
	if err != nil || level == bole.LevelInherit {
		return Line{Raw: raw, Level: bole.LevelInherit}
	}

	line.Level = level
	tok, rest = cut(rest)

	if site, ok := parseSite(tok); ok {
		line.Site = site
		tok, rest = cut(rest)
	}

	if tok != "-" {
		return Line{Raw: raw, Level: bole.LevelInherit}
	}

	line.Message = rest

	return line
}

// cut splits off the first whitespace-delimited token. The remainder has
// its leading whitespace removed.
func cut(s string) (token, rest string) {
	s = strings.TrimLeft(s, " \t")

	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}

	return s[:i], strings.TrimLeft(s[i:], " \t")
}

// parseStamp recognizes timestamp tokens: RFC 3339, or a run of digits
// interpreted as milliseconds since the Unix epoch.
func parseStamp(tok string) (time.Time, bool) {
	if tok == "" {
		return time.Time{}, false
	}

	digits := true

	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			digits = false

			break
		}
	}

	if digits {
		ms, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return time.Time{}, false
		}

		return time.UnixMilli(ms), true
	}

	if strings.ContainsRune(tok, 'T') {
		if t, err := time.Parse(time.RFC3339, tok); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseSite recognizes file:line tokens.
func parseSite(tok string) (bole.Site, bool) {
	i := strings.LastIndexByte(tok, ':')
	if i <= 0 || i == len(tok)-1 {
		return bole.Site{}, false
	}

	n, err := strconv.Atoi(tok[i+1:])
	if err != nil || n < 0 {
		return bole.Site{}, false
	}

	return bole.Site{File: tok[:i], Line: n}, true
}

// Parser provides streaming access to the lines of an input source.
type Parser struct {
	scanner *bufio.Scanner
	err     error
}

// New creates a streaming parser from an io.Reader.
// The reader is not consumed until the first line access.
func New(r io.Reader) *Parser {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	return &Parser{scanner: s}
}

// NewFromString creates a streaming parser from a source string.
func NewFromString(source string) *Parser {
	return New(strings.NewReader(source))
}

// Lines returns an iterator over the parsed lines of the source.
// Check [Parser.Err] after iteration completes.
func (p *Parser) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for p.scanner.Scan() {
			if !yield(Parse(p.scanner.Text())) {
				return
			}
		}

		p.err = p.scanner.Err()
	}
}

// Err returns the first error encountered while reading the source.
func (p *Parser) Err() error {
	return p.err
}
