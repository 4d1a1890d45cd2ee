// Package apperr holds the sentinel errors that end a digest run.
package apperr

import "errors"

var (
	ErrNoPosts     = errors.New("no posts in window")
	ErrEmptyDigest = errors.New("digest has no content")
	ErrBuildFailed = errors.New("site build failed")
)
