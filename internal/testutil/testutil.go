// Package testutil provides shared test helpers for setting up posts directories.
package testutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/starford/weeklydigest/internal/storage"
)

// PostsDir creates a temporary posts directory with a storage.FS on top of it.
func PostsDir(t *testing.T) (string, *storage.FS) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// PostFixture describes a post to write with WritePost.
type PostFixture struct {
	Name        string
	Title       string
	Date        string
	Description string
	Tags        []string
	Body        string
}

// WritePost writes p as a Markdown file with YAML frontmatter into dir.
func WritePost(t *testing.T, dir string, p PostFixture) {
	t.Helper()
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", p.Title)
	if p.Date != "" {
		fmt.Fprintf(&b, "date: %s\n", p.Date)
	}
	if p.Description != "" {
		fmt.Fprintf(&b, "description: %q\n", p.Description)
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, "tags: [%s]\n", strings.Join(p.Tags, ", "))
	}
	b.WriteString("---\n\n")
	body := p.Body
	if body == "" {
		body = "Some words for the body.\n"
	}
	b.WriteString(body)

	if err := os.WriteFile(filepath.Join(dir, p.Name), []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
}

// Logger returns a logger that discards everything below error level.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}
