package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/tally/internal/db"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/alexanderramin/tally/internal/store"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

// setupStore returns a loaded store over an in-memory SQLite database,
// seeded with the given projects.
func setupStore(t *testing.T, projects ...*domain.Project) *store.Store {
	t.Helper()
	st, _ := setupStoreWithRepo(t, projects...)
	return st
}

func setupStoreWithRepo(t *testing.T, projects ...*domain.Project) (*store.Store, repository.BlobRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteBlobRepo(database, db.NewSQLiteUnitOfWork(database))
	st := store.New(repo, store.WithClock(func() time.Time { return testNow }))
	ctx := context.Background()
	require.NoError(t, st.Load(ctx))
	if len(projects) > 0 {
		require.NoError(t, st.Update(ctx, func(state *domain.AppState) error {
			state.Projects = append(state.Projects, projects...)
			return nil
		}))
	}
	return st, repo
}

// persisted loads the saved document from repo into a fresh store.
func persisted(t *testing.T, repo repository.BlobRepo) *domain.AppState {
	t.Helper()
	fresh := store.New(repo)
	require.NoError(t, fresh.Load(context.Background()))
	var out *domain.AppState
	require.NoError(t, fresh.Read(func(state *domain.AppState) error {
		out = state
		return nil
	}))
	return out
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.events)
	return o.events[len(o.events)-1]
}
