package storage

import (
	"context"
	"io"
)

// Storage is the blob store behind the upload pipeline. Paths are relative
// to the store root ("perfiles/x.jpg", "cv/y.pdf").
type Storage interface {
	// Save stores a file at the given path
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Delete removes a file at the given path
	Delete(ctx context.Context, path string) error
}

// Config holds storage configuration.
type Config struct {
	BasePath string // filesystem root
}
