package webassets

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when a referenced asset file does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrMalformedList is returned when a CSS list file lacks its header line.
	ErrMalformedList = errors.New("malformed list")
)

// NotFoundError names the asset file that could not be found.
type NotFoundError struct {
	Kind string // "CSS", "JavaScript" or "CSS list"
	Path string // resolved path on disk
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s file '%s' not found", e.Kind, e.Path)
}

// Unwrap lets errors.Is match ErrFileNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrFileNotFound
}

// ListError reports an invalid entry in a CSS list file.
type ListError struct {
	File string // resolved path of the list file
	Line int    // 1-based
	Err  error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}
