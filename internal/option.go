package internal

import (
	"io"
	"log/slog"
	"time"

	"github.com/starford/weeklydigest/internal/builder"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config    *Config
	builder   builder.Builder
	logger    *slog.Logger
	now       func() time.Time
	out       io.Writer
	dryRun    bool
	skipBuild bool
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithBuilder replaces the site builder configured under build.command.
func WithBuilder(b builder.Builder) Option {
	return func(a *application) {
		a.builder = b
	}
}

// WithLogger sets the logger. Without it a logger is built from app config
// and installed as the slog default.
func WithLogger(l *slog.Logger) Option {
	return func(a *application) {
		a.logger = l
	}
}

// WithClock sets the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(a *application) {
		a.now = now
	}
}

// WithOutput sets where a dry run prints the digest.
func WithOutput(w io.Writer) Option {
	return func(a *application) {
		a.out = w
	}
}

// WithDryRun prints the digest instead of writing it and skips the build.
func WithDryRun(enabled bool) Option {
	return func(a *application) {
		a.dryRun = enabled
	}
}

// WithSkipBuild writes the digest but does not run the site builder.
func WithSkipBuild(enabled bool) Option {
	return func(a *application) {
		a.skipBuild = enabled
	}
}
