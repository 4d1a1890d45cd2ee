package digest

import (
	"fmt"
	"strings"
	"time"

	"github.com/starford/weeklydigest/internal/models"
	"github.com/starford/weeklydigest/internal/parser"
)

// Fixed frontmatter values of every digest post.
const (
	Description = "A roundup of everything published this week"
	Closing     = "That's the week. More to come."
)

// Tags are the frontmatter tags of every digest post.
var Tags = []string{"digest", "meta"}

// ComposeOptions tune the parts of the digest that differ between blogs.
type ComposeOptions struct {
	// LinkPrefix is prepended to each post's Filename in its heading link.
	LinkPrefix string
	// Signature follows the closing line, after an em dash.
	Signature string
}

// Title returns the digest title for the window, e.g.
// "Weekly Digest — March 03 - March 10, 2024".
func Title(start, end time.Time) string {
	return fmt.Sprintf("Weekly Digest — %s - %s", start.Format("January 02"), end.Format("January 02, 2006"))
}

// Compose renders the digest for posts, which must already be filtered and
// sorted. It reports false when there is nothing to summarise.
func Compose(posts []models.Post, start, end time.Time, opts ComposeOptions) (string, bool) {
	if len(posts) == 0 {
		return "", false
	}

	var b strings.Builder

	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %s\n", Title(start, end))
	fmt.Fprintf(&b, "date: %s\n", end.Format(parser.DateLayout))
	fmt.Fprintf(&b, "description: %s\n", Description)
	fmt.Fprintf(&b, "tags: [%s]\n", strings.Join(Tags, ", "))
	b.WriteString("---\n\n")

	noun := "post"
	if len(posts) != 1 {
		noun = "posts"
	}
	fmt.Fprintf(&b, "This week I published **%d %s** covering %s.\n\n", len(posts), noun, TopicPhrase(Topics(posts)))

	for _, p := range posts {
		fmt.Fprintf(&b, "## [%s](%s%s)\n", p.Title, opts.LinkPrefix, p.Filename)
		fmt.Fprintf(&b, "*%s · %d min read*\n\n", p.Date, p.ReadingTime)
		fmt.Fprintf(&b, "%s\n\n", p.Description)
	}

	b.WriteString("---\n\n")
	b.WriteString(Closing + "\n\n")
	fmt.Fprintf(&b, "— %s\n", opts.Signature)

	return b.String(), true
}
