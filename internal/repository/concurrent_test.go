package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alexanderramin/tally/internal/db"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAccess_ReadDuringWrite verifies that readers never see a torn
// document while a writer keeps replacing it.
func TestConcurrentAccess_ReadDuringWrite(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	repo := NewSQLiteBlobRepo(database, db.NewSQLiteUnitOfWork(database))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "doc", []byte("v-0")))

	var wg sync.WaitGroup
	writeErrs := make(chan error, 20)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= 20; i++ {
			if err := repo.Put(ctx, "doc", []byte(fmt.Sprintf("v-%d", i))); err != nil {
				writeErrs <- err
			}
		}
	}()

	readErrs := make(chan error, 100)
	for r := 0; r < 5; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				got, err := repo.Get(ctx, "doc")
				if err != nil {
					readErrs <- err
					continue
				}
				if len(got) < 3 || string(got[:2]) != "v-" {
					readErrs <- fmt.Errorf("torn value %q", got)
				}
			}
		}()
	}

	wg.Wait()
	close(writeErrs)
	close(readErrs)
	for err := range writeErrs {
		t.Errorf("write error: %v", err)
	}
	for err := range readErrs {
		t.Errorf("read error: %v", err)
	}

	got, err := repo.Get(ctx, "doc")
	require.NoError(t, err)
	assert.Equal(t, "v-20", string(got))
}

// TestConcurrentAccess_PutAllFromManyWriters runs transactional writes from
// several goroutines; each must wait its turn rather than fail as busy.
func TestConcurrentAccess_PutAllFromManyWriters(t *testing.T) {
	database := testutil.NewFileTestDB(t)
	repo := NewSQLiteBlobRepo(database, db.NewSQLiteUnitOfWork(database))
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			v := []byte(fmt.Sprintf("w-%d", w))
			if err := repo.PutAll(ctx, map[string][]byte{"state": v, "view": v}); err != nil {
				errs <- err
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("write error: %v", err)
	}

	state, err := repo.Get(ctx, "state")
	require.NoError(t, err)
	view, err := repo.Get(ctx, "view")
	require.NoError(t, err)
	assert.Equal(t, string(state), string(view), "both keys come from the same writer")
}
