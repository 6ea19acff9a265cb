package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where employee photos live. Local disk today; an
// object store can slot in behind the same contract.
type FileStorage interface {
	// Upload stores a file and returns its path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// GetURL returns a public URL for the stored file
	GetURL(ctx context.Context, path string) (string, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
