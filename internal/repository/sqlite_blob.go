package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/alexanderramin/tally/internal/db"
)

// SQLiteBlobRepo implements BlobRepo on the kv_store table.
type SQLiteBlobRepo struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteBlobRepo creates a new SQLiteBlobRepo. uow may be nil when conn is
// already a transaction; PutAll then writes through conn directly.
func NewSQLiteBlobRepo(conn db.DBTX, uow db.UnitOfWork) *SQLiteBlobRepo {
	return &SQLiteBlobRepo{db: conn, uow: uow}
}

func (r *SQLiteBlobRepo) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("key %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("reading key %q: %w", key, err)
	}
	return []byte(value), nil
}

func (r *SQLiteBlobRepo) Put(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, string(value), nowUTC()); err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteBlobRepo) PutAll(ctx context.Context, blobs map[string][]byte) error {
	if r.uow == nil {
		return putSorted(ctx, r, blobs)
	}
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return putSorted(ctx, NewSQLiteBlobRepo(tx, nil), blobs)
	})
}

func (r *SQLiteBlobRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	return nil
}

// putSorted writes blobs in key order so repeated runs touch keys identically.
func putSorted(ctx context.Context, repo BlobRepo, blobs map[string][]byte) error {
	for _, key := range slices.Sorted(maps.Keys(blobs)) {
		if err := repo.Put(ctx, key, blobs[key]); err != nil {
			return err
		}
	}
	return nil
}
