// Package digest selects recent posts and renders them into a digest post.
package digest

import (
	"sort"
	"time"

	"github.com/starford/weeklydigest/internal/models"
	"github.com/starford/weeklydigest/internal/parser"
)

// Window returns the lookback interval of days ending at now.
func Window(now time.Time, days int) (start, end time.Time) {
	return now.AddDate(0, 0, -days), now
}

// Filter returns the posts dated within [start, end], oldest first.
// A post date is midnight of its calendar day in end's location, so a post
// dated on the start day is only included when start itself is midnight.
// Posts without a parsable date are skipped.
func Filter(posts []models.Post, start, end time.Time) []models.Post {
	var out []models.Post
	for _, p := range posts {
		d, err := time.ParseInLocation(parser.DateLayout, p.Date, end.Location())
		if err != nil {
			continue
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
