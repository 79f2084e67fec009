package navigator

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/wanderer/overrides"
)

type config struct {
	reporter  Reporter
	logger    *slog.Logger
	overrides []int
}

// Option configures a Navigator.
type Option func(*config)

// WithReporter sets the event sink. Default discards events.
func WithReporter(r Reporter) Option {
	return func(c *config) {
		if r != nil {
			c.reporter = r
		}
	}
}

// WithLogger sets the diagnostic logger. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOverrides seeds the override set with types treated as passable from
// the start. Walls and negative types are ignored.
func WithOverrides(types ...int) Option {
	return func(c *config) {
		c.overrides = append(c.overrides, types...)
	}
}

func defaultConfig() config {
	return config{
		reporter: nopReporter{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (c config) newOverrides() *overrides.Set {
	return overrides.New(c.overrides...)
}
