package cli

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/bole"
)

// resolveConfig is a [kong.ConfigurationLoader] that reads flag values
// from a YAML mapping.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolveConfig, "/path/to/config.yml")
//
// The mapping is flat: each key names a flag, and each value is the
// flag's text. Flag names with hyphens (e.g., "log-level") may use
// underscores in the config file (e.g., "log_level").
//
// Example config file:
//
//	log-level: debug
//	format: wide
//	output: /var/log/filtered.log
//
// Command-line flags override config file values.
func resolveConfig(r io.Reader) (kong.Resolver, error) {
	var values map[string]any

	err := yaml.NewDecoder(r).Decode(&values)
	if err != nil && !errors.Is(err, io.EOF) {
		// A malformed config file must not block flag parsing; report
		// it through the self-log and continue with defaults.
		bole.Root().Warnf("%v", ErrConfigLoad.Wrap(err))

		return config{}, nil
	}

	flags := make(config, len(values))

	for key, value := range values {
		// Kong requires numbers as strings for parsing.
		switch num := value.(type) {
		case int64:
			flags[key] = strconv.FormatInt(num, 10)
		case uint64:
			flags[key] = strconv.FormatUint(num, 10)
		case float64:
			flags[key] = strconv.FormatFloat(num, 'f', -1, 64)
		default:
			flags[key] = value
		}
	}

	return flags, nil
}

// config implements [kong.Resolver] for YAML flag maps.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed; the mapping was already decoded successfully.
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but YAML keys may use
	// underscores. Try both forms.
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	// Not found; return nil to let Kong use defaults.
	return nil, nil
}
