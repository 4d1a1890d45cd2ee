package digest

import (
	"sort"
	"strings"

	"github.com/starford/weeklydigest/internal/models"
)

// FallbackTopic is used when the posts carry no tags of their own.
const FallbackTopic = "various topics"

var ownTags = map[string]struct{}{
	"digest": {},
	"meta":   {},
}

// Topics returns the union of the posts' tags, minus the digest's own tags,
// in lexicographic order.
func Topics(posts []models.Post) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			if _, skip := ownTags[t]; skip {
				continue
			}
			set[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// TopicPhrase joins topics into an English list: "a", "a and b",
// "a, b, and c".
func TopicPhrase(topics []string) string {
	switch len(topics) {
	case 0:
		return FallbackTopic
	case 1:
		return topics[0]
	case 2:
		return topics[0] + " and " + topics[1]
	default:
		last := len(topics) - 1
		return strings.Join(topics[:last], ", ") + ", and " + topics[last]
	}
}
