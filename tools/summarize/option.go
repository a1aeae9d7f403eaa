package summarize

import "newssense/tools"

type Option func(*Config)

func WithCompleter(c Completer) Option {
	return func(cfg *Config) {
		cfg.completer = c
	}
}

// WithToolOptions applies base tool options such as title and hooks.
func WithToolOptions(opts ...tools.Option) Option {
	return func(c *Config) {
		for _, opt := range opts {
			opt(&c.Config)
		}
	}
}
