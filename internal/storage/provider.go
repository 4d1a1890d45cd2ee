// Package storage defines the posts directory abstraction.
package storage

import "github.com/starford/weeklydigest/internal/models"

// Provider is the interface for posts directory operations.
type Provider interface {
	// List returns every top-level .md file of the posts directory, sorted by name.
	List() ([]models.PostFile, error)
	// Read returns the raw bytes of the named file.
	Read(name string) ([]byte, error)
	// Write atomically writes content to name, replacing any existing file.
	Write(name string, content []byte) error
	// Root returns the absolute path of the posts directory.
	Root() string
}
