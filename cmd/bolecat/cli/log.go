package cli

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/bole"
	boleconfig "github.com/ardnew/bole/config"
)

// logLevel is a custom type that configures the self-log threshold as a
// side effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-level flag, this method is called, allowing us
// to configure the logger early enough to affect messages during parsing.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)

	level, err := bole.ParseLevel(string(*l))
	if err != nil {
		return err
	}

	bole.Root().SetLevel(level)

	return nil
}

type logConfig struct {
	Level  logLevel `default:"warn" enum:"${logLevelEnum}" help:"Set self-log level."`
	File   string   `help:"Write self-log to a file instead of stderr." placeholder:"PATH" type:"path"`
	Config string   `help:"Configure self-log sinks and loggers from a YAML file." placeholder:"PATH" type:"path"`

	sink *bole.WriterSink
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelEnum": levelEnum(),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

// levelEnum returns the lower-case severity names accepted by level flags.
func levelEnum() string {
	names := make([]string, 0, int(bole.LevelOff)+1)
	for level := range bole.Levels() {
		names = append(names, strings.ToLower(level.String()))
	}

	return strings.Join(names, ",")
}

// start finalizes self-log configuration with all parsed values,
// including any resolved from configuration files, and returns a
// function that releases the log destination.
func (f *logConfig) start() (stop func()) {
	stop = func() {}

	level, err := bole.ParseLevel(string(f.Level))
	if err == nil {
		bole.Root().SetLevel(level)
	}

	if f.File != "" {
		sink, err := bole.NewFileSink(f.File)
		if err != nil {
			bole.Root().Errorf("open log file: %v", err)
		} else {
			bole.Root().RemoveSink(f.sink)
			bole.Root().AddSink(sink)
			f.sink = sink
			stop = func() {
				// Late diagnostics fall back to stderr.
				bole.Root().RemoveSink(sink)
				_ = sink.Close()
				f.sink = bole.NewWriterSink(os.Stderr)
				bole.Root().AddSink(f.sink)
			}
		}
	}

	if f.Config != "" {
		if err := f.apply(); err != nil {
			bole.Root().Errorf("apply log config: %v", err)
		}
	}

	bole.Root().Debugf("self-log initialized: level=%s file=%q config=%q",
		level, f.File, f.Config)

	return stop
}

// apply loads the configuration file and applies it to the default
// hierarchy. Settings it names take precedence over the flags above;
// anything it leaves out stays as the flags configured it.
func (f *logConfig) apply() error {
	c, err := boleconfig.LoadFile(f.Config)
	if err != nil {
		return err
	}

	return c.Apply(bole.Default())
}

// scan performs an early pass over command-line arguments to extract and
// apply self-log configuration before Kong begins parsing. This ensures
// diagnostics emitted while parsing (and while resolving configuration
// files) honor the requested level regardless of flag position.
//
// While the logLevel type implements encoding.TextUnmarshaler to apply
// the threshold as flags are encountered during parsing, configuration
// file resolution happens before any flag reaches that interface. This
// pre-scan also attaches the stderr sink that carries diagnostics until
// start finalizes the destination.
func (f *logConfig) scan(args []string) {
	const flagPrefix = "--log-"

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if len(arg) < len(flagPrefix) || arg[:len(flagPrefix)] != flagPrefix {
			continue
		}

		// Extract flag name and value
		var (
			name, value string
			assigned    bool
		)

		name = arg
		for j := len(flagPrefix); j < len(arg); j++ {
			if arg[j] == '=' {
				name, value = arg[:j], arg[j+1:]
				assigned = true

				break
			}
		}

		// All self-log flags take a value: consume the next argument
		// when not assigned with '='.
		if !assigned && i+1 < len(args) && len(args[i+1]) > 0 &&
			args[i+1][0] != '-' {
			value = args[i+1]
			i++
		}

		switch name {
		case "--log-level":
			_ = f.Level.UnmarshalText([]byte(value))

		case "--log-file":
			f.File = value
		}
	}

	f.sink = bole.NewWriterSink(os.Stderr)
	bole.Root().AddSink(f.sink)
}
