// Package watch rebuilds the site when the posts directory changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/weeklydigest/internal/builder"
)

const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Run watches dir and runs b once changes to .md files have been quiet for
// debounce. A failed build is logged and watching continues. Run returns nil
// when ctx is cancelled.
func Run(ctx context.Context, dir string, b builder.Builder, debounce time.Duration, logger *slog.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}

	logger.Info("watcher: started", slog.String("dir", dir), slog.Duration("debounce", debounce))

	var timer *time.Timer
	var fire <-chan time.Time
	pending := make(map[string]struct{})

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			fire = timer.C
		} else {
			timer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-fire:
			logger.Info("watcher: rebuilding", slog.Int("changed", len(pending)))
			clear(pending)
			if err := b.Build(ctx); err != nil {
				logger.Error("watcher: build failed", slog.String("error", err.Error()))
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&relevantOps == 0 || !strings.HasSuffix(ev.Name, ".md") {
				continue
			}
			name := filepath.Base(ev.Name)
			logger.Debug("watcher: change", slog.String("file", name), slog.String("op", ev.Op.String()))
			pending[name] = struct{}{}
			schedule()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
