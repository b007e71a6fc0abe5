package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvBlobRepo implements BlobRepo with one file per key under a base
// directory. Writes go through a temp file and rename.
type DiskvBlobRepo struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskvBlobRepo creates a DiskvBlobRepo rooted at basePath.
func NewDiskvBlobRepo(basePath string) *DiskvBlobRepo {
	return &DiskvBlobRepo{
		d: diskv.New(diskv.Options{
			BasePath:  basePath,
			TempDir:   filepath.Join(basePath, ".tmp"),
			Transform: func(string) []string { return []string{} },
		}),
		basePath: basePath,
	}
}

// BasePath returns the directory holding the blob files.
func (r *DiskvBlobRepo) BasePath() string { return r.basePath }

// Get reads past the cache so writes made by another process are seen.
func (r *DiskvBlobRepo) Get(_ context.Context, key string) ([]byte, error) {
	rc, err := r.d.ReadStream(key, true)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("key %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("reading key %q: %w", key, err)
	}
	defer rc.Close()
	val, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading key %q: %w", key, err)
	}
	return val, nil
}

func (r *DiskvBlobRepo) Put(_ context.Context, key string, value []byte) error {
	if err := r.d.Write(key, value); err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

// PutAll writes each key in turn; a failure part way leaves earlier keys written.
func (r *DiskvBlobRepo) PutAll(ctx context.Context, blobs map[string][]byte) error {
	return putSorted(ctx, r, blobs)
}

func (r *DiskvBlobRepo) Delete(_ context.Context, key string) error {
	if err := r.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}
