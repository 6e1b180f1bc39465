package config

import (
	"errors"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/bole"
)

// Predefined errors (sentinel values).
var (
	ErrConfigParse   = bole.MakeErrorf("cannot parse config")
	ErrUnknownSink   = bole.MakeErrorf("unknown sink name")
	ErrUnknownWriter = bole.MakeErrorf("unknown writer kind")
	ErrMissingPath   = bole.MakeErrorf("file writer requires a path")
	ErrBadElement    = bole.MakeErrorf("malformed format element")
)

// Config is the root of a YAML logging configuration.
type Config struct {
	// Root configures the root logger.
	Root Node `yaml:"root"`
	// Sinks defines named sinks referenced by Root and Loggers.
	Sinks map[string]Sink `yaml:"sinks"`
	// Loggers configures loggers by their dot-separated names.
	Loggers map[string]Node `yaml:"loggers"`
}

// Node configures one logger.
type Node struct {
	// Level is a severity name, or "inherit". Absent leaves the logger's
	// level untouched.
	Level string `yaml:"level"`
	// Additive overrides upward propagation. Absent leaves the default.
	Additive *bool `yaml:"additive"`
	// Sinks lists names from [Config.Sinks] to attach.
	Sinks []string `yaml:"sinks"`
}

// Sink describes one named sink.
type Sink struct {
	// Writer selects the destination: "stdout", "stderr", "discard", or
	// "file". Absent means "stderr".
	Writer string `yaml:"writer"`
	// Path is the file to create for a "file" writer. The file is
	// truncated on open.
	Path string `yaml:"path"`
	// Level is the sink's minimum severity. Absent means "all".
	Level string `yaml:"level"`
	// Color brackets output in severity-selected ANSI colors.
	Color bool `yaml:"color"`
	// Format is the template part sequence. Absent uses the default
	// formatter.
	Format []Element `yaml:"format"`
	// Filter attaches a channel filter.
	Filter *Filter `yaml:"filter"`
}

// Filter describes a sink's channel filter.
type Filter struct {
	// Default is the filter's fallback severity. Absent means "warn".
	Default string `yaml:"default"`
	// Rules maps channel names to minimum severities.
	Rules map[string]string `yaml:"rules"`
}

// Element is one template part. Exactly one of Field, Text, or Stamp
// must be set.
type Element struct {
	// Field names an entry attribute (see [bole.ParseField]).
	Field string `yaml:"field"`
	// Width is the minimum column width for a field element.
	Width int `yaml:"width"`
	// Justify is "right" (the default) or "left".
	Justify string `yaml:"justify"`
	// Fill is a single padding character. Absent means space.
	Fill string `yaml:"fill"`
	// Text is emitted verbatim.
	Text string `yaml:"text"`
	// Stamp renders the entry time.
	Stamp *Stamp `yaml:"stamp"`
}

// Stamp describes a time element.
type Stamp struct {
	// Layout is a named layout (see [ResolveLayout]) or a verbatim Go
	// time layout.
	Layout string `yaml:"layout"`
}

// Load decodes a YAML configuration from r. An empty document yields an
// empty configuration. Validation happens when the configuration is
// applied.
func Load(r io.Reader) (*Config, error) {
	var c Config

	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &Config{}, nil
		}

		return nil, ErrConfigParse.Wrap(err)
	}

	return &c, nil
}

// LoadFile decodes the YAML configuration file at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, bole.MakeError(err).Wrapf("open config %q", path)
	}
	defer f.Close()

	return Load(f)
}

// Hierarchy assembles a fresh hierarchy from the configuration.
func (c *Config) Hierarchy() (*bole.Hierarchy, error) {
	h := bole.New()

	if err := c.Apply(h); err != nil {
		return nil, err
	}

	return h, nil
}

// Apply applies the configuration to an existing hierarchy: named sinks
// are constructed, then the root and each configured logger receive
// their level, additivity, and sink attachments. Loggers apply in sorted
// name order, so ancestors configure before their descendants.
func (c *Config) Apply(h *bole.Hierarchy) error {
	sinks := make(map[string]bole.Sink, len(c.Sinks))

	for _, name := range slices.Sorted(maps.Keys(c.Sinks)) {
		s, err := c.Sinks[name].make()
		if err != nil {
			return wrapf(err, "sink %q", name)
		}

		sinks[name] = s
	}

	if err := applyNode(h.Root(), c.Root, sinks); err != nil {
		return wrapf(err, "root logger")
	}

	for _, name := range slices.Sorted(maps.Keys(c.Loggers)) {
		if err := applyNode(h.GetLogger(name), c.Loggers[name], sinks); err != nil {
			return wrapf(err, "logger %q", name)
		}
	}

	return nil
}

// wrapf extends err with formatted context, preserving an existing chain
// rather than re-unwrapping it.
func wrapf(err error, format string, args ...any) error {
	if e, ok := err.(bole.Error); ok {
		return e.Wrapf(format, args...)
	}

	return bole.MakeError(err).Wrapf(format, args...)
}

// applyNode configures one logger from its node.
func applyNode(l *bole.Logger, n Node, sinks map[string]bole.Sink) error {
	if n.Level != "" {
		level, err := bole.ParseLevel(n.Level)
		if err != nil {
			return err
		}

		l.SetLevel(level)
	}

	if n.Additive != nil {
		l.SetAdditive(*n.Additive)
	}

	for _, name := range n.Sinks {
		s, ok := sinks[name]
		if !ok {
			return ErrUnknownSink.Wrapf("%q", name)
		}

		l.AddSink(s)
	}

	return nil
}

// make constructs the configured sink.
func (s Sink) make() (bole.Sink, error) {
	opts, err := s.options()
	if err != nil {
		return nil, err
	}

	switch s.Writer {
	case "stdout":
		return bole.NewWriterSink(os.Stdout, opts...), nil
	case "stderr", "":
		return bole.NewWriterSink(os.Stderr, opts...), nil
	case "discard":
		return bole.NewWriterSink(nil, opts...), nil
	case "file":
		if s.Path == "" {
			return nil, ErrMissingPath
		}

		return bole.NewFileSink(s.Path, opts...)
	default:
		return nil, ErrUnknownWriter.Wrapf("%q", s.Writer)
	}
}

// options assembles the sink's construction options.
func (s Sink) options() ([]bole.SinkOption, error) {
	var opts []bole.SinkOption

	if s.Level != "" {
		level, err := bole.ParseLevel(s.Level)
		if err != nil {
			return nil, err
		}

		opts = append(opts, bole.WithMinLevel(level))
	}

	if s.Filter != nil {
		filter, err := s.Filter.make()
		if err != nil {
			return nil, err
		}

		opts = append(opts, bole.WithFilter(filter))
	}

	formatter, err := formatterFor(s)
	if err != nil {
		return nil, err
	}

	if formatter != nil {
		opts = append(opts, bole.WithFormatter(formatter))
	}

	return opts, nil
}

// formatterFor builds the sink's formatter, or nil for the default.
// Assembled templates are newline terminated; element lists describe one
// record.
func formatterFor(s Sink) (bole.Formatter, error) {
	var inner bole.Formatter

	if len(s.Format) > 0 {
		parts := make([]any, 0, len(s.Format)+1)

		for i, e := range s.Format {
			part, err := e.part()
			if err != nil {
				return nil, wrapf(err, "format element %d", i)
			}

			parts = append(parts, part)
		}

		inner = bole.NewTemplate(append(parts, "\n")...)
	}

	if s.Color {
		return bole.Colorize{Formatter: inner}, nil
	}

	return inner, nil
}

// make constructs the configured filter.
func (f Filter) make() (*bole.Filter, error) {
	def := bole.DefaultLevel

	if f.Default != "" {
		level, err := bole.ParseLevel(f.Default)
		if err != nil {
			return nil, err
		}

		def = level
	}

	filter := bole.NewFilter(def)

	for _, channel := range slices.Sorted(maps.Keys(f.Rules)) {
		level, err := bole.ParseLevel(f.Rules[channel])
		if err != nil {
			return nil, wrapf(err, "rule %q", channel)
		}

		filter.Rule(channel, level)
	}

	return filter, nil
}

// part converts the element to a template part.
func (e Element) part() (any, error) {
	set := 0
	for _, has := range []bool{e.Field != "", e.Text != "", e.Stamp != nil} {
		if has {
			set++
		}
	}

	if set != 1 {
		return nil, ErrBadElement.Wrapf("need exactly one of field, text, or stamp")
	}

	switch {
	case e.Text != "":
		return e.Text, nil

	case e.Stamp != nil:
		return bole.Stamp{Layout: ResolveLayout(e.Stamp.Layout)}, nil

	default:
		field, err := bole.ParseField(e.Field)
		if err != nil {
			return nil, err
		}

		column := bole.Column{Field: field, Width: e.Width}

		switch strings.ToLower(e.Justify) {
		case "", "right":
		case "left":
			column.Justify = bole.Left
		default:
			return nil, ErrBadElement.Wrapf("justify %q", e.Justify)
		}

		if e.Fill != "" {
			if utf8.RuneCountInString(e.Fill) != 1 {
				return nil, ErrBadElement.Wrapf("fill %q is not a single character", e.Fill)
			}

			fill, _ := utf8.DecodeRuneInString(e.Fill)
			column.Fill = fill
		}

		return column, nil
	}
}

// namedLayout maps named layouts to their corresponding time constants.
//
//nolint:gochecknoglobals
var namedLayout = map[string]string{
	"rfc3339":     time.RFC3339,
	"iso8601":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rubydate":    time.RubyDate,
	"rfc822":      time.RFC822,
	"rfc822z":     time.RFC822Z,
	"rfc850":      time.RFC850,
	"kitchen":     time.Kitchen,
	"datetime":    time.DateTime,
	"dateonly":    time.DateOnly,
	"timeonly":    time.TimeOnly,

	"stamp": time.Stamp,

	"stampmilli": time.StampMilli,
	"milli":      time.StampMilli,
	"millis":     time.StampMilli,
	"ms":         time.StampMilli,

	"stampmicro": time.StampMicro,
	"micro":      time.StampMicro,
	"micros":     time.StampMicro,
	"us":         time.StampMicro,

	"stampnano": time.StampNano,
	"nano":      time.StampNano,
	"nanos":     time.StampNano,
	"ns":        time.StampNano,
}

// ResolveLayout maps a named time layout ("rfc3339", "iso8601",
// "datetime", ...) to its Go layout string. Names are matched ignoring
// case and punctuation; anything unrecognized passes through verbatim as
// a custom layout.
func ResolveLayout(layout string) string {
	// Strip to lowercase alphanumerics only for inspection.
	// Custom layouts are used verbatim.
	trimmed := strings.Map(
		func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}

			return -1
		},
		strings.ToLower(layout),
	)

	if std, ok := namedLayout[trimmed]; ok {
		return std
	}

	return layout
}
