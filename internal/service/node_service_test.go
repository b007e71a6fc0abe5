package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeService_BuildFullHierarchy(t *testing.T) {
	p := testutil.NewTestProject("Thesis", domain.TemplateFull)
	st, repo := setupStoreWithRepo(t, p)
	obs := &recordingObserver{}
	svc := NewNodeService(st, obs)
	ctx := context.Background()

	ph, err := svc.AddPhase(ctx, p.ID, "Research")
	require.NoError(t, err)
	assert.NotNil(t, ph.Weeks, "full template phases hold weeks")
	assert.Equal(t, ph.ID, obs.last(t).Fields["phase_id"])

	w, err := svc.AddWeek(ctx, p.ID, ph.ID, "Week 1")
	require.NoError(t, err)
	assert.NotNil(t, w.Days)

	d, err := svc.AddDay(ctx, p.ID, w.ID, "Monday", "2025-03-03")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-03", d.Date)

	saved := persisted(t, repo)
	got, ok := domain.FindDay(saved.Projects[0], d.ID)
	require.True(t, ok)
	assert.Equal(t, "Monday", got.Title)
	assert.NotNil(t, got.Materials.Notes)

	ids := map[string]bool{p.ID: true, ph.ID: true, w.ID: true, d.ID: true}
	assert.Len(t, ids, 4, "ids are unique")
}

func TestNodeService_ShapeRules(t *testing.T) {
	weekly := testutil.NewWeeklyProject("Weekly")
	daily := testutil.NewDailyProject("Daily")
	svc := NewNodeService(setupStore(t, weekly, daily))
	ctx := context.Background()

	_, err := svc.AddPhase(ctx, weekly.ID, "P")
	assert.ErrorIs(t, err, domain.ErrShapeMismatch)

	w, err := svc.AddWeek(ctx, weekly.ID, "", "Week 2")
	require.NoError(t, err)
	_, err = svc.AddDay(ctx, weekly.ID, w.ID, "Day", "")
	require.NoError(t, err)
	_, err = svc.AddDay(ctx, weekly.ID, "", "Loose day", "")
	assert.ErrorIs(t, err, domain.ErrShapeMismatch)

	_, err = svc.AddDay(ctx, daily.ID, "", "Day 2", "2025-03-11")
	require.NoError(t, err)
	_, err = svc.AddWeek(ctx, daily.ID, "", "W")
	assert.ErrorIs(t, err, domain.ErrShapeMismatch)

	_, err = svc.AddWeek(ctx, weekly.ID, "no-such-phase", "W")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNodeService_Validation(t *testing.T) {
	p := testutil.NewDailyProject("Daily")
	svc := NewNodeService(setupStore(t, p))
	ctx := context.Background()

	_, err := svc.AddDay(ctx, p.ID, "", "Day", "03/11/2025")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	_, err = svc.AddDay(ctx, p.ID, "", "   ", "")
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	_, err = svc.AddDay(ctx, "missing", "", "Day", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNodeService_RenameAndSetDate(t *testing.T) {
	p := testutil.NewPhasedProject("Thesis")
	st := setupStore(t, p)
	svc := NewNodeService(st)
	projects := NewProjectService(st)
	ctx := context.Background()

	require.NoError(t, svc.Rename(ctx, p.ID, domain.WeekRef("w1"), "Kickoff"))
	require.NoError(t, svc.SetDate(ctx, p.ID, "d2", "2025-03-04"))
	require.NoError(t, svc.SetDate(ctx, p.ID, "d1", ""))
	assert.ErrorIs(t, svc.SetDate(ctx, p.ID, "d1", "tomorrow"), domain.ErrInvalidDate)
	assert.ErrorIs(t, svc.SetDate(ctx, p.ID, "nope", "2025-03-04"), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Rename(ctx, p.ID, domain.DayRef("nope"), "x"), domain.ErrNotFound)

	got, err := projects.Get(ctx, p.ID)
	require.NoError(t, err)
	w, _ := domain.FindWeek(got, "w1")
	assert.Equal(t, "Kickoff", w.Title)
	d1, _ := domain.FindDay(got, "d1")
	d2, _ := domain.FindDay(got, "d2")
	assert.Empty(t, d1.Date)
	assert.Equal(t, "2025-03-04", d2.Date)
}

func TestNodeService_Remove(t *testing.T) {
	p := testutil.NewPhasedProject("Thesis")
	st := setupStore(t, p)
	svc := NewNodeService(st)
	views := NewViewService(st)
	ctx := context.Background()

	_, err := views.Use(ctx, p.ID, domain.DayRef("d1"))
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, p.ID, domain.WeekRef("w1")))
	assert.ErrorIs(t, svc.Remove(ctx, p.ID, domain.WeekRef("w1")), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Remove(ctx, p.ID, domain.ProjectRef()), domain.ErrInvalidRef)

	v, err := st.LoadView(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.View{ProjectID: p.ID, At: domain.ProjectRef()}, v,
		"a view inside the removed week moves up to the project")

	got, err := NewProjectService(st).Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, domain.ProjectProgress(got))
	_, ok := domain.ResolveMaterials(got, domain.DayRef("d1"))
	assert.False(t, ok)
}
