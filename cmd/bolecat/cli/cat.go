package cli

import (
	"context"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/expr-lang/expr/vm"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/bole"
	"github.com/ardnew/bole/cmd/bolecat/parser"
)

// suggestLimit caps the number of "did you mean" candidates reported for
// a rule channel that never matched the input.
const suggestLimit = 3

// Cat reads log lines from files or stdin and re-emits them filtered and
// re-rendered.
type Cat struct {
	Level  string   `default:"all"   enum:"${logLevelEnum}" help:"Drop entries below this severity."      short:"l"`
	Rule   []string `help:"Per-channel minimum severity (repeatable)."   name:"rule" placeholder:"CHAN=LEVEL" short:"r"`
	Where  string   `help:"Keep only lines satisfying this expression."  short:"w" placeholder:"EXPR"`
	Format string   `default:"plain" enum:"${formatEnum}"   help:"Output format preset."                  short:"f"`
	Output string   `default:"-"     help:"Write output to a file instead of stdout." short:"o" placeholder:"PATH"`

	Paths []string `arg:"" optional:"" help:"Input files, or '-' for stdin." name:"path"`
}

func (Cat) vars() kong.Vars {
	return kong.Vars{
		"formatEnum": formatEnum(),
	}
}

// Run executes the cat command.
func (f *Cat) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	sink, out, done, err := f.sink()
	if err != nil {
		return err
	}
	defer done()

	var program *vm.Program

	if f.Where != "" {
		program, err = compileWhere(f.Where)
		if err != nil {
			return err
		}
	}

	paths := f.Paths
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	// Channels observed in the input, for rule suggestions afterward.
	seen := make(map[string]struct{})

	// Entry loggers are minted from a private hierarchy so channel names
	// render without touching the self-log tree.
	h := bole.New()

	for _, path := range paths {
		err = f.relay(ctx, path, h, sink, out, program, seen)
		if err != nil {
			return err
		}
	}

	f.suggest(seen)

	return nil
}

// relay copies one input through the sink.
func (f *Cat) relay(
	ctx context.Context,
	path string,
	h *bole.Hierarchy,
	sink *bole.WriterSink,
	out io.Writer,
	program *vm.Program,
	seen map[string]struct{},
) error {
	in := os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return bole.MakeError(err).Wrapf("open %q", path)
		}
		defer file.Close()

		in = file
	}

	p := parser.New(in)

	for line := range p.Lines() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if line.Structured() {
			seen[line.Channel] = struct{}{}
		}

		if program != nil {
			keep, err := evalWhere(program, line)
			if err != nil {
				return err
			}

			if !keep {
				continue
			}
		}

		if !line.Structured() {
			// Unrecognized lines pass through verbatim, bypassing the
			// severity gate and formatter.
			if _, err := io.WriteString(out, line.Raw+"\n"); err != nil {
				return bole.MakeError(err).Wrapf("write %q", f.Output)
			}

			continue
		}

		entry := line.Entry(h)
		sink.Log(&entry)
	}

	if err := p.Err(); err != nil {
		return bole.MakeError(err).Wrapf("read %q", path)
	}

	return nil
}

// sink builds the output sink applying the severity gate, channel rules,
// and format preset. The returned writer shares the sink's destination
// for raw passthrough, and done releases it.
func (f *Cat) sink() (*bole.WriterSink, io.Writer, func(), error) {
	level, err := bole.ParseLevel(f.Level)
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []bole.SinkOption{}

	// With channel rules the filter alone gates severity, using --level
	// as its default rule. Stacking the plain minimum on top would
	// override rules that admit lower severities.
	if len(f.Rule) > 0 {
		filter, err := f.filter(level)
		if err != nil {
			return nil, nil, nil, err
		}

		opts = append(opts, bole.WithFilter(filter))
	} else {
		opts = append(opts, bole.WithMinLevel(level))
	}

	formatter, err := preset(f.Format)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, bole.WithFormatter(formatter))

	var out io.Writer = os.Stdout

	done := func() {}

	if f.Output != "" && f.Output != "-" {
		file, err := os.Create(f.Output)
		if err != nil {
			return nil, nil, nil, bole.MakeError(err).Wrapf("create %q", f.Output)
		}

		out = file
		done = func() { _ = file.Close() }
	}

	return bole.NewWriterSink(out, opts...), out, done, nil
}

// filter assembles the sink filter from --rule arguments. Each rule has
// the form channel=level; def becomes the filter's default rule.
func (f *Cat) filter(def bole.Level) (*bole.Filter, error) {
	filter := bole.NewFilter(def)

	for _, rule := range f.Rule {
		channel, name, ok := strings.Cut(rule, "=")
		if !ok {
			return nil, ErrBadRule.Wrapf("%q", rule)
		}

		level, err := bole.ParseLevel(name)
		if err != nil {
			return nil, ErrBadRule.Wrapf("%q", rule).Wrap(err)
		}

		filter.Rule(channel, level)
	}

	return filter, nil
}

// suggest reports rule channels that never matched an input channel,
// with fuzzy-matched candidates from the channels that did appear.
func (f *Cat) suggest(seen map[string]struct{}) {
	if len(f.Rule) == 0 {
		return
	}

	channels := make([]string, 0, len(seen))
	for channel := range seen {
		channels = append(channels, channel)
	}

	slices.Sort(channels)

	for _, rule := range f.Rule {
		name, _, _ := strings.Cut(rule, "=")
		if name == "" || matchesAny(name, channels) {
			continue
		}

		matches := fuzzy.Find(name, channels)
		if len(matches) == 0 {
			bole.Root().Warnf("rule channel %q not seen in input", name)

			continue
		}

		limit := min(len(matches), suggestLimit)
		found := make([]string, limit)

		for i := 0; i < limit; i++ {
			found[i] = matches[i].Str
		}

		bole.Root().Warnf("rule channel %q not seen in input (did you mean %s?)",
			name, strings.Join(found, ", "))
	}
}

// matchesAny reports whether a rule channel governs any of the given
// channels, by the same prefix relation the filter applies.
func matchesAny(name string, channels []string) bool {
	for _, channel := range channels {
		if channel == name || strings.HasPrefix(channel, name+".") {
			return true
		}
	}

	return false
}
