// Package builder runs the external site builder.
package builder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/starford/weeklydigest/internal/apperr"
)

// Builder regenerates the site.
type Builder interface {
	Build(ctx context.Context) error
}

// Func adapts a plain function to Builder.
type Func func(ctx context.Context) error

// Build calls f.
func (f Func) Build(ctx context.Context) error {
	return f(ctx)
}

// Exec runs a command and waits for it. Output goes straight to Stdout and
// Stderr; only the exit status is interpreted.
type Exec struct {
	Command []string
	Dir     string
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
}

// NewExec creates an Exec builder writing to the process's own stdout/stderr.
func NewExec(command []string, dir string, logger *slog.Logger) *Exec {
	return &Exec{
		Command: command,
		Dir:     dir,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Logger:  logger,
	}
}

// Build runs the command. A non-zero exit yields an error wrapping
// apperr.ErrBuildFailed.
func (e *Exec) Build(ctx context.Context) error {
	if len(e.Command) == 0 {
		return fmt.Errorf("builder: empty command")
	}

	cmd := exec.CommandContext(ctx, e.Command[0], e.Command[1:]...)
	cmd.Dir = e.Dir
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if e.Logger != nil {
		e.Logger.Info("Running site build",
			slog.String("command", strings.Join(e.Command, " ")),
			slog.String("dir", e.Dir))
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %s exited with status %d", apperr.ErrBuildFailed, e.Command[0], exitErr.ExitCode())
		}
		return fmt.Errorf("%w: %v", apperr.ErrBuildFailed, err)
	}
	return nil
}
