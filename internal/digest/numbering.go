package digest

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/starford/weeklydigest/internal/parser"
)

// NextNumber returns one more than the highest numeric prefix among the
// given .md file names, or 1 when none is numbered. The prefix is the part of
// the name before its first hyphen; names whose prefix is not an integer are
// ignored. Numbers are never reused, gaps are left alone.
//
// Nothing guards against two runs allocating the same number at once.
func NextNumber(names []string) int {
	highest := 0
	found := false
	for _, name := range names {
		stem, ok := strings.CutSuffix(name, ".md")
		if !ok {
			continue
		}
		prefix, _, _ := strings.Cut(stem, "-")
		n, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}
		if !found || n > highest {
			highest = n
			found = true
		}
	}
	if !found {
		return 1
	}
	return highest + 1
}

// FileName returns the digest file name for number n and the window end.
func FileName(n int, end time.Time) string {
	return fmt.Sprintf("%03d-weekly-digest-%s.md", n, end.Format(parser.DateLayout))
}
