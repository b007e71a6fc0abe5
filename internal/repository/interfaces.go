package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no blob is stored under the key.
var ErrNotFound = errors.New("blob not found")

// BlobRepo is a key-value store of opaque documents. Each Put replaces the
// whole value under its key.
type BlobRepo interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	// PutAll writes several keys. Backends that support transactions write
	// them atomically.
	PutAll(ctx context.Context, blobs map[string][]byte) error
	Delete(ctx context.Context, key string) error
}
