package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/ardnew/mung"

	"github.com/ardnew/bole/pkg"
)

const (
	// cmdName is the executable name; pkg.Name identifies the library it
	// ships with.
	cmdName        = "bolecat"
	cmdDescription = "Filter, reformat, and follow leveled log streams"

	// baseConfig is the base name of the configuration file.
	baseConfig = "config"
)

// defaultDirMode is the default permission mode for created directories.
var defaultDirMode os.FileMode = 0o700

// CLI is the top-level command-line interface for bolecat.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit." short:"V"`

	Cat    Cat    `cmd:"" default:"withargs" help:"Filter and reformat log lines (default)."`
	Follow Follow `cmd:""                    help:"Watch log lines interactively."`
}

// Run executes the bolecat CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	// Pre-scan for self-log flags to ensure early configuration
	// regardless of flag position. TextUnmarshaler on logLevel handles
	// the threshold during normal parsing, but this early scan applies
	// it before configuration files resolve.
	cli.Log.scan(args)

	conf, err := initRuntime()
	if err != nil {
		return err
	}

	vars := kong.Vars{
		"version": cmdName + " " + strings.TrimSpace(pkg.Version),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars()).
		CloneWith(cli.Cat.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Parse command line
	parser, err := kong.New(&cli,
		kong.Name(cmdName),
		kong.Description(cmdDescription),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.DefaultEnvars(pkg.Prefix()),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                false,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, conf+".json"),
		kong.Configuration(resolveConfig, searchFiles()...),
		vars,
	)
	if err != nil {
		return err
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Finalize self-log configuration with all parsed values, including
	// any resolved from configuration files.
	defer cli.Log.start()()

	defer cli.Pprof.start()() // no-op unless built with tag pprof and enabled

	// Execute the selected command
	return kongCtx.Run()
}

// searchPath returns the ordered directories consulted for configuration
// files: each entry of the executable's _CONFIG_PATH environment list
// first, then the user config directory, without duplicates.
//
//nolint:gochecknoglobals
var searchPath = sync.OnceValue(
	func() []string {
		env := strings.ToUpper(pkg.Prefix()) + "_CONFIG_PATH"

		list := mung.Make(
			mung.WithSubjectItems(pkg.ConfigDir()),
			mung.WithDelim(string(os.PathListSeparator)),
			mung.WithPrefixItems(os.Getenv(env)),
			mung.WithFilter(func(item string) bool { return item != "" }),
		).String()

		return filepath.SplitList(list)
	},
)

// searchFiles returns the candidate configuration file paths, one per
// search path directory.
func searchFiles() []string {
	dirs := searchPath()

	files := make([]string, len(dirs))
	for i, dir := range dirs {
		files[i] = filepath.Join(dir, baseConfig+".yml")
	}

	return files
}

// initRuntime creates all required runtime directories and returns the
// primary configuration file path, without extension.
func initRuntime() (conf string, err error) {
	err = os.MkdirAll(pkg.ConfigDir(), defaultDirMode)
	if err != nil {
		return "", err
	}

	err = os.MkdirAll(pkg.CacheDir(), defaultDirMode)
	if err != nil {
		return "", err
	}

	return filepath.Join(pkg.ConfigDir(), baseConfig), nil
}
