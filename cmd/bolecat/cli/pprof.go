//go:build pprof

package cli

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/bole"
	"github.com/ardnew/bole/pkg"
	"github.com/ardnew/bole/profile"
)

type pprofConfig struct {
	Mode string `default:""            enum:",${pprofModeEnum}" help:"Enable profiling."         placeholder:"${enum}" short:"p"`
	Dir  string `default:"${pprofDir}"                          help:"Profile output directory."                                 type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
		"pprofDir":      filepath.Join(pkg.CacheDir(), profile.Tag),
	}
}

func (pprofConfig) group() kong.Group {
	var group kong.Group

	group.Key = "pprof"
	group.Title = "Profiling (pprof)"

	return group
}

// start starts profiling if configured.
func (f pprofConfig) start() (stop func()) {
	if f.Mode == "" {
		return func() {}
	}

	bole.Root().Debugf("pprof start: mode=%s dir=%s", f.Mode, f.Dir)

	profiler := profile.Make(
		profile.WithMode(f.Mode),
		profile.WithPath(f.Dir),
		profile.WithQuiet(true),
	).Start()

	return func() {
		bole.Root().Debugf("pprof stop: mode=%s dir=%s", f.Mode, f.Dir)
		profiler.Stop()
	}
}
