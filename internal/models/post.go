// Package models defines the domain types for the digest tool.
package models

// Post is one blog entry as read from the posts directory.
type Post struct {
	// Path is the source file name relative to the posts directory.
	Path string `json:"path"`
	// Filename is the link target of the rendered post, e.g. "012-hello.html".
	Filename    string   `json:"filename"`
	Title       string   `json:"title"`
	Date        string   `json:"date"` // YYYY-MM-DD when well-formed
	ReadingTime int      `json:"reading_time"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Draft       bool     `json:"draft,omitempty"`
}

// PostFile is a lightweight directory entry returned by list operations.
type PostFile struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}
