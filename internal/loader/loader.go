// Package loader reads the posts directory into Post records.
package loader

import (
	"log/slog"
	"strings"

	"github.com/starford/weeklydigest/internal/models"
	"github.com/starford/weeklydigest/internal/parser"
	"github.com/starford/weeklydigest/internal/storage"
)

// LinkExt is the extension of rendered posts that digest entries link to.
const LinkExt = ".html"

// Load parses every .md file of the posts directory. Drafts are left out and
// unreadable files are logged and skipped; neither is an error.
func Load(store storage.Provider, logger *slog.Logger) ([]models.Post, error) {
	files, err := store.List()
	if err != nil {
		return nil, err
	}

	posts := make([]models.Post, 0, len(files))
	for _, f := range files {
		data, err := store.Read(f.Name)
		if err != nil {
			logger.Warn("loader: read failed", slog.String("file", f.Name), slog.String("error", err.Error()))
			continue
		}
		post, err := FromFile(f.Name, data)
		if err != nil {
			logger.Warn("loader: parse failed", slog.String("file", f.Name), slog.String("error", err.Error()))
			continue
		}
		if post.Draft {
			logger.Debug("loader: skipping draft", slog.String("file", f.Name))
			continue
		}
		posts = append(posts, post)
	}

	logger.Debug("loader: posts loaded", slog.Int("count", len(posts)))
	return posts, nil
}

// FromFile builds a Post from the raw contents of the named file.
func FromFile(name string, data []byte) (models.Post, error) {
	r, err := parser.Parse(data)
	if err != nil {
		return models.Post{}, err
	}

	stem := strings.TrimSuffix(name, ".md")
	title := r.Title
	if title == "" {
		title = stem
	}

	return models.Post{
		Path:        name,
		Filename:    stem + LinkExt,
		Title:       title,
		Date:        r.Date,
		ReadingTime: r.ReadingTime(),
		Description: r.Description,
		Tags:        r.Tags,
		Draft:       r.Draft,
	}, nil
}
