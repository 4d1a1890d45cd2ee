package internal

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/starford/weeklydigest/internal/apperr"
	"github.com/starford/weeklydigest/internal/builder"
	"github.com/starford/weeklydigest/internal/testutil"
)

type fakeBuilder struct {
	calls int
	err   error
}

func (f *fakeBuilder) Build(context.Context) error {
	f.calls++
	return f.err
}

func fixedClock() time.Time {
	return time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local)
}

func testConfig(dir string) *Config {
	cfg := NewDefaultConfig()
	cfg.Posts.Dir = dir
	return cfg
}

func runDigest(t *testing.T, dir string, b builder.Builder, extra ...Option) error {
	t.Helper()
	opts := append([]Option{
		WithConfig(testConfig(dir)),
		WithBuilder(b),
		WithClock(fixedClock),
		WithLogger(testutil.Logger()),
	}, extra...)
	return Run(context.Background(), opts...)
}

func mdFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		t.Fatal(err)
	}
	for i, m := range matches {
		matches[i] = filepath.Base(m)
	}
	return matches
}

func seedWeek(t *testing.T, dir string) {
	t.Helper()
	testutil.WritePost(t, dir, testutil.PostFixture{
		Name: "001-a.md", Title: "A", Date: "2024-03-04", Description: "About A", Tags: []string{"go"},
	})
	testutil.WritePost(t, dir, testutil.PostFixture{
		Name: "002-b.md", Title: "B", Date: "2024-03-06", Description: "About B", Tags: []string{"rust"},
	})
}

func TestRun_EndToEnd(t *testing.T) {
	dir, _ := testutil.PostsDir(t)
	seedWeek(t, dir)
	b := &fakeBuilder{}

	if err := runDigest(t, dir, b); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if b.calls != 1 {
		t.Errorf("builder calls = %d, want 1", b.calls)
	}

	data, err := os.ReadFile(filepath.Join(dir, "003-weekly-digest-2024-03-10.md"))
	if err != nil {
		t.Fatalf("digest not written: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, "title: Weekly Digest — March 03 - March 10, 2024\n") {
		t.Errorf("unexpected title in:\n%s", out)
	}
	if !strings.Contains(out, "**2 posts** covering go and rust.") {
		t.Errorf("unexpected opening in:\n%s", out)
	}
	a := strings.Index(out, "## [A](/blog/001-a.html)")
	bIdx := strings.Index(out, "## [B](/blog/002-b.html)")
	if a < 0 || bIdx < 0 || a > bIdx {
		t.Errorf("post blocks missing or out of order:\n%s", out)
	}
	if !strings.Contains(out, "*2024-03-04 · 1 min read*\n\nAbout A\n") {
		t.Errorf("byline missing in:\n%s", out)
	}
}

func TestRun_NoPostsInWindow(t *testing.T) {
	dir, _ := testutil.PostsDir(t)
	testutil.WritePost(t, dir, testutil.PostFixture{Name: "001-old.md", Title: "Old", Date: "2023-01-01"})
	testutil.WritePost(t, dir, testutil.PostFixture{Name: "002-future.md", Title: "Future", Date: "2024-04-01"})
	testutil.WritePost(t, dir, testutil.PostFixture{Name: "003-undated.md", Title: "Undated"})
	b := &fakeBuilder{}

	err := runDigest(t, dir, b)
	if !errors.Is(err, apperr.ErrNoPosts) {
		t.Fatalf("err = %v, want ErrNoPosts", err)
	}
	if b.calls != 0 {
		t.Errorf("builder should not run, calls = %d", b.calls)
	}
	if files := mdFiles(t, dir); len(files) != 3 {
		t.Errorf("no file should be written, have %v", files)
	}
}

func TestRun_BuildFailureKeepsDigest(t *testing.T) {
	dir, _ := testutil.PostsDir(t)
	seedWeek(t, dir)
	b := &fakeBuilder{err: apperr.ErrBuildFailed}

	err := runDigest(t, dir, b)
	if !errors.Is(err, apperr.ErrBuildFailed) {
		t.Fatalf("err = %v, want ErrBuildFailed", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "003-weekly-digest-2024-03-10.md")); statErr != nil {
		t.Errorf("digest should remain on disk: %v", statErr)
	}
}

func TestRun_TwiceCreatesTwoFiles(t *testing.T) {
	dir, _ := testutil.PostsDir(t)
	seedWeek(t, dir)

	for i := 0; i < 2; i++ {
		if err := runDigest(t, dir, &fakeBuilder{}); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	for _, name := range []string{"003-weekly-digest-2024-03-10.md", "004-weekly-digest-2024-03-10.md"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	// The second digest covers the first one too, but not its own tags.
	data, _ := os.ReadFile(filepath.Join(dir, "004-weekly-digest-2024-03-10.md"))
	if !strings.Contains(string(data), "**3 posts** covering go and rust.") {
		t.Errorf("unexpected second digest:\n%s", data)
	}
}

func TestRun_DryRun(t *testing.T) {
	dir, _ := testutil.PostsDir(t)
	seedWeek(t, dir)
	b := &fakeBuilder{}
	var out bytes.Buffer

	if err := runDigest(t, dir, b, WithDryRun(true), WithOutput(&out)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "---\ntitle: Weekly Digest") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
	if b.calls != 0 {
		t.Errorf("dry run should not build")
	}
	if files := mdFiles(t, dir); len(files) != 2 {
		t.Errorf("dry run should not write, have %v", files)
	}
}

func TestRun_SkipBuild(t *testing.T) {
	dir, _ := testutil.PostsDir(t)
	seedWeek(t, dir)
	b := &fakeBuilder{}

	if err := runDigest(t, dir, b, WithSkipBuild(true)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if b.calls != 0 {
		t.Errorf("builder calls = %d, want 0", b.calls)
	}
	if files := mdFiles(t, dir); len(files) != 3 {
		t.Errorf("digest should be written, have %v", files)
	}
}

func TestRun_CustomWindow(t *testing.T) {
	dir, _ := testutil.PostsDir(t)
	seedWeek(t, dir)
	cfg := testConfig(dir)
	cfg.Digest.Days = 5

	err := Run(context.Background(),
		WithConfig(cfg),
		WithBuilder(&fakeBuilder{}),
		WithClock(fixedClock),
		WithLogger(testutil.Logger()))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, _ := os.ReadFile(filepath.Join(dir, "003-weekly-digest-2024-03-10.md"))
	if !strings.Contains(string(data), "**1 post** covering rust.") {
		t.Errorf("unexpected digest:\n%s", data)
	}
	if !strings.Contains(string(data), "March 05 - March 10, 2024") {
		t.Errorf("unexpected title:\n%s", data)
	}
}

func TestRun_ConfigRequired(t *testing.T) {
	if err := Run(context.Background()); err == nil {
		t.Fatal("expected error without config")
	}
}

func TestRun_MissingPostsDir(t *testing.T) {
	err := runDigest(t, filepath.Join(t.TempDir(), "missing"), &fakeBuilder{})
	if err == nil {
		t.Fatal("expected error for missing posts dir")
	}
}

func TestWatch_StopsOnCancel(t *testing.T) {
	dir, _ := testutil.PostsDir(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx,
			WithConfig(testConfig(dir)),
			WithBuilder(&fakeBuilder{}),
			WithLogger(testutil.Logger()))
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
