package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/tally/internal/db"
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/repository"
	"github.com/alexanderramin/tally/internal/store"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialsService_AddAndList(t *testing.T) {
	p := testutil.NewPhasedProject("Thesis")
	st, repo := setupStoreWithRepo(t, p)
	svc := NewMaterialsService(st)
	ctx := context.Background()
	at := domain.WeekRef("w1")

	require.NoError(t, svc.AddNote(ctx, p.ID, at, "skim chapter 2"))
	v, err := svc.AddVideo(ctx, p.ID, at, "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", v.ID)
	l, err := svc.AddLink(ctx, p.ID, at, "https://go.dev", "")
	require.NoError(t, err)
	assert.Equal(t, "https://go.dev", l.Title)

	m, err := svc.List(ctx, p.ID, at)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Total())

	saved := persisted(t, repo)
	sm, ok := domain.ResolveMaterials(saved.Projects[0], at)
	require.True(t, ok)
	assert.Equal(t, []domain.Note{{Text: "skim chapter 2"}}, sm.Notes)

	// Other levels keep their own buckets.
	pm, err := svc.List(ctx, p.ID, domain.ProjectRef())
	require.NoError(t, err)
	assert.Equal(t, 0, pm.Total())
}

func TestMaterialsService_InvalidVideoLeavesStateUnchanged(t *testing.T) {
	p := testutil.NewDailyProject("Daily")
	svc := NewMaterialsService(setupStore(t, p))
	ctx := context.Background()

	_, err := svc.AddVideo(ctx, p.ID, domain.DayRef("dd1"), "https://vimeo.com/123")
	assert.ErrorIs(t, err, domain.ErrInvalidVideoURL)

	m, err := svc.List(ctx, p.ID, domain.DayRef("dd1"))
	require.NoError(t, err)
	assert.Empty(t, m.Videos)
}

func TestMaterialsService_Remove(t *testing.T) {
	p := testutil.NewDailyProject("Daily")
	svc := NewMaterialsService(setupStore(t, p))
	ctx := context.Background()
	at := domain.DayRef("dd1")

	require.NoError(t, svc.AddNote(ctx, p.ID, at, "a"))
	require.NoError(t, svc.AddNote(ctx, p.ID, at, "b"))
	require.NoError(t, svc.Remove(ctx, p.ID, at, domain.MaterialNotes, 0))
	assert.ErrorIs(t, svc.Remove(ctx, p.ID, at, domain.MaterialLinks, 0), domain.ErrIndexOutOfRange)
	assert.Error(t, svc.Remove(ctx, p.ID, at, domain.MaterialKind("photos"), 0))

	m, err := svc.List(ctx, p.ID, at)
	require.NoError(t, err)
	assert.Equal(t, []domain.Note{{Text: "b"}}, m.Notes)
}

func TestMaterialsService_AttachFiles(t *testing.T) {
	p := testutil.NewDailyProject("Daily")
	st := setupStore(t, p)
	obs := &recordingObserver{}
	svc := NewMaterialsService(st, obs)
	ctx := context.Background()
	at := domain.DayRef("dd1")

	notified := 0
	st.OnChange(func(*domain.AppState) { notified++ })

	var files []FileSource
	for i := range 5 {
		name := fmt.Sprintf("f%d.txt", i)
		files = append(files, FileSource{
			Name: name,
			Type: "text/plain",
			Read: func() ([]byte, error) { return []byte(name), nil },
		})
	}
	files = append(files, FileSource{
		Name: "broken.bin",
		Read: func() ([]byte, error) { return nil, errors.New("permission denied") },
	})

	res, err := svc.AttachFiles(ctx, p.ID, at, files)
	require.NoError(t, err)
	sort.Strings(res.Attached)
	assert.Equal(t, []string{"f0.txt", "f1.txt", "f2.txt", "f3.txt", "f4.txt"}, res.Attached)
	assert.Empty(t, res.Skipped)
	require.Contains(t, res.Failed, "broken.bin")
	assert.Equal(t, 1, notified, "listeners hear about the batch once")
	assert.Equal(t, 5, obs.last(t).Fields["attached"])

	m, err := svc.List(ctx, p.ID, at)
	require.NoError(t, err)
	require.Len(t, m.Files, 5)
	for i, f := range m.Files {
		_, content, err := svc.OpenFile(ctx, p.ID, at, i)
		require.NoError(t, err)
		assert.Equal(t, f.Name, string(content))
		assert.Equal(t, int64(len(f.Name)), f.Size)
	}
}

func TestMaterialsService_AttachSkipsRemovedNode(t *testing.T) {
	p := testutil.NewPhasedProject("Thesis")
	st := setupStore(t, p)
	svc := NewMaterialsService(st)
	nodes := NewNodeService(st)
	ctx := context.Background()

	release := make(chan struct{})
	reading := make(chan struct{})
	files := []FileSource{{
		Name: "slow.pdf",
		Type: "application/pdf",
		Read: func() ([]byte, error) {
			close(reading)
			<-release
			return []byte("%PDF"), nil
		},
	}}

	type outcome struct {
		res *AttachResult
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := svc.AttachFiles(ctx, p.ID, domain.DayRef("d1"), files)
		done <- outcome{res, err}
	}()

	<-reading
	require.NoError(t, nodes.Remove(ctx, p.ID, domain.WeekRef("w1")))
	close(release)

	out := <-done
	require.NoError(t, out.err)
	assert.Equal(t, []string{"slow.pdf"}, out.res.Skipped)
	assert.Empty(t, out.res.Attached)
}

func TestMaterialsService_AttachToMissingNode(t *testing.T) {
	p := testutil.NewDailyProject("Daily")
	svc := NewMaterialsService(setupStore(t, p))

	_, err := svc.AttachFiles(context.Background(), p.ID, domain.DayRef("nope"), nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// failAfterRepo lets the first allowed Puts through and fails the rest.
type failAfterRepo struct {
	repository.BlobRepo
	allowed atomic.Int32
}

func (r *failAfterRepo) Put(ctx context.Context, key string, value []byte) error {
	if r.allowed.Add(-1) < 0 {
		return errors.New("disk full")
	}
	return r.BlobRepo.Put(ctx, key, value)
}

func TestMaterialsService_AttachReportsFilesWhenSaveFails(t *testing.T) {
	p := testutil.NewDailyProject("Daily")
	database := testutil.NewTestDB(t)
	repo := &failAfterRepo{BlobRepo: repository.NewSQLiteBlobRepo(database, db.NewSQLiteUnitOfWork(database))}
	repo.allowed.Store(1 << 20)
	st := store.New(repo, store.WithClock(func() time.Time { return testNow }))
	ctx := context.Background()
	require.NoError(t, st.Load(ctx))
	require.NoError(t, st.Update(ctx, func(state *domain.AppState) error {
		state.Projects = append(state.Projects, p)
		return nil
	}))

	// The per-file write lands, the closing save does not.
	repo.allowed.Store(1)
	svc := NewMaterialsService(st)
	res, err := svc.AttachFiles(ctx, p.ID, domain.DayRef("dd1"), []FileSource{{
		Name: "notes.txt",
		Type: "text/plain",
		Read: func() ([]byte, error) { return []byte("hi"), nil },
	}})
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, []string{"notes.txt"}, res.Attached)

	saved := persisted(t, repo.BlobRepo)
	m, ok := domain.ResolveMaterials(saved.Projects[0], domain.DayRef("dd1"))
	require.True(t, ok)
	require.Len(t, m.Files, 1)
	assert.Equal(t, "notes.txt", m.Files[0].Name)
}
