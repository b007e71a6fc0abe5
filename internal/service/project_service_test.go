package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Create(t *testing.T) {
	st, repo := setupStoreWithRepo(t)
	obs := &recordingObserver{}
	svc := NewProjectService(st, obs)
	ctx := context.Background()

	p, err := svc.Create(ctx, "  Thesis ", domain.TemplateFull, " final year ")
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID, "UUID should be generated")
	assert.Equal(t, "Thesis", p.Name)
	assert.Equal(t, "final year", p.Description)
	assert.Equal(t, domain.ShapePhased, p.Shape())
	assert.True(t, p.Structure.HasDays)

	saved := persisted(t, repo)
	require.Len(t, saved.Projects, 1)
	assert.Equal(t, p.ID, saved.Projects[0].ID)
	require.NotNil(t, saved.Settings.LastActivity)
	assert.True(t, testNow.Equal(*saved.Settings.LastActivity))

	ev := obs.last(t)
	assert.Equal(t, "create-project", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, p.ID, ev.Fields["project_id"])
}

func TestProjectService_Create_Rejects(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewProjectService(setupStore(t), obs)
	ctx := context.Background()

	_, err := svc.Create(ctx, "  ", domain.TemplateSimple, "")
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.False(t, obs.last(t).Success)

	_, err = svc.Create(ctx, "X", domain.Template("yearly"), "")
	assert.Error(t, err)

	list, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProjectService_GetReturnsCopy(t *testing.T) {
	p := testutil.NewPhasedProject("Thesis")
	svc := NewProjectService(setupStore(t, p))
	ctx := context.Background()

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	got.Name = "changed"
	got.Phases()[0].Title = "changed"

	again, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Thesis", again.Name)
	assert.Equal(t, "Research", again.Phases()[0].Title)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectService_ListSearchAndProgress(t *testing.T) {
	svc := NewProjectService(setupStore(t,
		testutil.NewPhasedProject("Go Thesis"),
		testutil.NewDailyProject("Journal"),
		testutil.NewTestProject("Chores", domain.TemplateSimple, testutil.WithTasks(true, false, false)),
	))
	ctx := context.Background()

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 50, all[0].Progress)
	assert.Equal(t, domain.Counts{Done: 1, Total: 2}, all[0].Counts)
	assert.Equal(t, 100, all[1].Progress)
	assert.Equal(t, 33, all[2].Progress)

	found, err := svc.List(ctx, "  THESIS ")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Go Thesis", found[0].Name)

	none, err := svc.List(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProjectService_RenameAndDescribe(t *testing.T) {
	p := testutil.NewTestProject("Old", domain.TemplateSimple)
	svc := NewProjectService(setupStore(t, p))
	ctx := context.Background()

	require.NoError(t, svc.Rename(ctx, p.ID, "New"))
	require.NoError(t, svc.Describe(ctx, p.ID, "  about  "))
	assert.ErrorIs(t, svc.Rename(ctx, p.ID, " "), domain.ErrEmptyTitle)
	assert.ErrorIs(t, svc.Rename(ctx, "missing", "x"), domain.ErrNotFound)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
	assert.Equal(t, "about", got.Description)
}

func TestProjectService_SetStructure(t *testing.T) {
	empty := testutil.NewTestProject("Empty", domain.TemplateSimple)
	phased := testutil.NewPhasedProject("Phased")
	svc := NewProjectService(setupStore(t, empty, phased))
	ctx := context.Background()

	require.NoError(t, svc.SetStructure(ctx, empty.ID, domain.Structure{HasWeeks: true}))
	got, err := svc.Get(ctx, empty.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ShapeWeekly, got.Shape(), "an empty body follows the flags")

	require.NoError(t, svc.SetStructure(ctx, phased.ID, domain.Structure{HasDays: true}))
	got, err = svc.Get(ctx, phased.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ShapePhased, got.Shape(), "children are never dropped")
	assert.Equal(t, domain.Structure{HasDays: true}, got.Structure)
}

func TestProjectService_Delete(t *testing.T) {
	keep := testutil.NewTestProject("Keep", domain.TemplateSimple)
	gone := testutil.NewDailyProject("Gone")
	st, repo := setupStoreWithRepo(t, keep, gone)
	svc := NewProjectService(st)
	views := NewViewService(st)
	ctx := context.Background()

	_, err := views.Use(ctx, gone.ID, domain.DayRef("dd1"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, gone.ID))
	assert.ErrorIs(t, svc.Delete(ctx, gone.ID), domain.ErrNotFound)

	saved := persisted(t, repo)
	require.Len(t, saved.Projects, 1)
	assert.Equal(t, keep.ID, saved.Projects[0].ID)

	v, err := st.LoadView(ctx)
	require.NoError(t, err)
	assert.True(t, v.IsHome(), "view of a deleted project returns home")
}
