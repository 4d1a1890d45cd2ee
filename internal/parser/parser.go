// Package parser extracts frontmatter metadata and body statistics from a
// Markdown post.
package parser

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// DateLayout is the layout of post dates.
const DateLayout = "2006-01-02"

// WordsPerMinute is the reading speed used for reading time estimates.
const WordsPerMinute = 200

// Result holds the output of parsing a Markdown post.
type Result struct {
	Frontmatter map[string]any
	Body        string
	Title       string
	Date        string
	Description string
	Tags        []string
	Draft       bool
	Words       int
}

// ReadingTime returns the estimated reading time in whole minutes, never
// less than one.
func (r *Result) ReadingTime() int {
	minutes := (r.Words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Parse extracts frontmatter, title, date, description, tags and word count
// from raw Markdown bytes.
func Parse(data []byte) (*Result, error) {
	fm, body := splitFrontmatter(data)
	stats := analyzeBody(body)

	description := scalar(fm["description"])
	if description == "" {
		description = stats.firstParagraph
	}

	return &Result{
		Frontmatter: fm,
		Body:        string(body),
		Title:       deriveTitle(fm, string(body)),
		Date:        scalar(fm["date"]),
		Description: description,
		Tags:        extractTags(fm),
		Draft:       isDraft(fm),
		Words:       stats.words,
	}, nil
}

// splitFrontmatter separates the frontmatter block (YAML, TOML or JSON) from
// the Markdown body. Missing or malformed frontmatter leaves the entire
// content as body.
func splitFrontmatter(data []byte) (map[string]any, []byte) {
	var fm map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	if err != nil {
		return nil, data
	}
	return fm, body
}

// scalar renders a frontmatter value as a string. Timestamps decoded by the
// YAML layer are formatted back to DateLayout; collections yield "".
func scalar(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case time.Time:
		return x.Format(DateLayout)
	case []any, map[string]any, map[any]any:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

// extractTags returns the deduplicated items of a list-valued "tags" field.
// Any other shape yields no tags.
func extractTags(fm map[string]any) []string {
	raw, ok := fm["tags"].([]any)
	if !ok {
		return nil
	}
	seen := make(map[string]struct{}, len(raw))
	var out []string
	for _, item := range raw {
		s := scalar(item)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func isDraft(fm map[string]any) bool {
	b, ok := fm["draft"].(bool)
	return ok && b
}

// deriveTitle returns the frontmatter "title" if present, otherwise the first
// H1 heading, otherwise empty string.
func deriveTitle(fm map[string]any, body string) string {
	if s := scalar(fm["title"]); s != "" {
		return s
	}
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}
