package storage

import (
	"context"
	"io"
)

// Storage saves and removes uploaded files.
type Storage interface {
	// Save writes data under key and returns the server-relative URL.
	Save(ctx context.Context, key string, data io.Reader) (url string, err error)

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
