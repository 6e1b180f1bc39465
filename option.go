package bole

// config holds the configuration options for a new Hierarchy.
type config struct {
	sinks []Sink
	level Level
}

// Option applies a configuration option to config.
type Option func(config) config

// apply applies multiple options to a config.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithRootLevel sets the root logger's initial level. [LevelInherit] is
// ignored: the root must store a concrete severity.
func WithRootLevel(level Level) Option {
	return func(c config) config {
		if level != LevelInherit {
			c.level = level
		}

		return c
	}
}

// WithRootSink attaches a sink to the root logger. The option may be
// repeated; sinks attach in option order.
func WithRootSink(s Sink) Option {
	return func(c config) config {
		if s != nil {
			c.sinks = append(c.sinks, s)
		}

		return c
	}
}
