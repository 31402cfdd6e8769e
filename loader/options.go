package loader

import "time"

// ============================================================================
// LOADER OPTIONS — Functional options for Load() and Decode()
// ============================================================================

// Option configures loader behavior via functional options pattern.
type Option func(*config)

type config struct {
	Format        Format        // overrides extension sniffing in Load
	ScriptTimeout time.Duration // max run time for JS menu files
	ItemSeparator string        // splits the CSV items column
}

// WithFormat forces the input format instead of guessing from the file extension.
func WithFormat(f Format) Option {
	return func(c *config) {
		c.Format = f
	}
}

// WithScriptTimeout bounds how long a JS menu file may run.
func WithScriptTimeout(d time.Duration) Option {
	return func(c *config) {
		c.ScriptTimeout = d
	}
}

// WithItemSeparator sets the separator used inside the CSV items column.
func WithItemSeparator(sep string) Option {
	return func(c *config) {
		c.ItemSeparator = sep
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		ScriptTimeout: 2 * time.Second,
		ItemSeparator: ";",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
