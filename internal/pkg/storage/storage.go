package storage

import (
	"context"
	"io"
)

// FileStorage persists generated artifacts (bank remittance files).
type FileStorage interface {
	// Save writes a file and returns its storage path/key.
	Save(ctx context.Context, file io.Reader, path string) (string, error)

	// Open retrieves a previously saved file.
	Open(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists checks if the file exists.
	Exists(ctx context.Context, path string) (bool, error)
}
