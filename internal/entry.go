// Package internal provides the digest pipeline and the watch loop.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starford/weeklydigest/internal/apperr"
	"github.com/starford/weeklydigest/internal/builder"
	"github.com/starford/weeklydigest/internal/digest"
	"github.com/starford/weeklydigest/internal/loader"
	"github.com/starford/weeklydigest/internal/storage"
	"github.com/starford/weeklydigest/internal/watch"
)

func newApplication(opts []Option) (*application, error) {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := app.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg := app.config

	if app.logger == nil {
		app.logger = newLogger(cfg.App)
		slog.SetDefault(app.logger)
	}
	if app.now == nil {
		app.now = time.Now
	}
	if app.out == nil {
		app.out = os.Stdout
	}
	if app.builder == nil {
		app.builder = builder.NewExec(cfg.Build.Command, cfg.Build.Dir, app.logger)
	}
	return app, nil
}

func newLogger(cfg ApplicationConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// Run generates one digest post covering the configured lookback window,
// writes it to the posts directory and rebuilds the site.
//
// The run stops with apperr.ErrNoPosts when nothing was published in the
// window, and with an error wrapping apperr.ErrBuildFailed when the site
// builder fails. The digest file stays on disk in the latter case.
func Run(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config
	logger := app.logger

	logger.Info("Generating digest",
		slog.Int("days", cfg.Digest.Days),
		slog.String("posts_dir", cfg.Posts.Dir))

	store, err := storage.NewFS(cfg.Posts.Dir)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	posts, err := loader.Load(store, logger)
	if err != nil {
		return fmt.Errorf("load posts: %w", err)
	}

	start, end := digest.Window(app.now(), cfg.Digest.Days)
	selected := digest.Filter(posts, start, end)
	if len(selected) == 0 {
		return fmt.Errorf("past %d days: %w", cfg.Digest.Days, apperr.ErrNoPosts)
	}

	content, ok := digest.Compose(selected, start, end, digest.ComposeOptions{
		LinkPrefix: cfg.Digest.LinkPrefix,
		Signature:  cfg.Digest.Signature,
	})
	if !ok {
		return apperr.ErrEmptyDigest
	}

	if app.dryRun {
		_, err := fmt.Fprint(app.out, content)
		return err
	}

	files, err := store.List()
	if err != nil {
		return fmt.Errorf("list posts: %w", err)
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	name := digest.FileName(digest.NextNumber(names), end)

	if err := store.Write(name, []byte(content)); err != nil {
		return fmt.Errorf("write digest: %w", err)
	}
	logger.Info("Created digest post",
		slog.String("file", name),
		slog.Int("posts", len(selected)))

	if app.skipBuild {
		logger.Info("Site build skipped")
		return nil
	}

	if err := app.builder.Build(ctx); err != nil {
		return fmt.Errorf("rebuild after %s: %w", name, err)
	}

	logger.Info("Digest generated and site rebuilt")
	return nil
}

// Watch rebuilds the site whenever posts change, until ctx is cancelled or
// the process receives SIGINT or SIGTERM.
func Watch(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config
	logger := app.logger

	store, err := storage.NewFS(cfg.Posts.Dir)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return watch.Run(gCtx, store.Root(), app.builder, cfg.Watch.Debounce, logger)
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			cancel()
		case <-gCtx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Watcher stopped")
	return nil
}
