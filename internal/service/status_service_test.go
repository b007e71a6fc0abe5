package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusService_Overview(t *testing.T) {
	st := setupStore(t,
		testutil.NewPhasedProject("Thesis"),
		testutil.NewDailyProject("Journal"),
	)
	svc := NewStatusService(st)

	ov, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Len(t, ov.Projects, 2)
	assert.Equal(t, domain.Counts{Done: 2, Total: 3}, ov.Counts)
	assert.Equal(t, 67, ov.Counts.Percent())
	require.NotNil(t, ov.LastActivity)
	assert.True(t, testNow.Equal(*ov.LastActivity))
}

func TestStatusService_OverviewEmpty(t *testing.T) {
	ov, err := NewStatusService(setupStore(t)).Overview(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ov.Projects)
	assert.Nil(t, ov.LastActivity, "nothing saved yet")
}

func TestStatusService_ProjectStats(t *testing.T) {
	p := testutil.NewPhasedProject("Thesis", testutil.WithTasks(true))
	p.Phases()[0].Goals = testutil.Items(false)
	svc := NewStatusService(setupStore(t, p))

	stats, err := svc.ProjectStats(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Thesis", stats.Name)
	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 2, stats.CompletedItems)
	assert.Equal(t, 50, stats.CompletionRate)
	assert.Equal(t, 1, stats.Phases)
	assert.Equal(t, 1, stats.Weeks)
	assert.Equal(t, 2, stats.Days)
	require.Len(t, stats.Breakdown, 1)
	assert.Equal(t, domain.PhaseRef("ph1"), stats.Breakdown[0].Ref)
	assert.Equal(t, 33, stats.Breakdown[0].Percent)

	_, err = svc.ProjectStats(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStatusService_StatsWithoutPhases(t *testing.T) {
	p := testutil.NewDailyProject("Journal")
	stats, err := NewStatusService(setupStore(t, p)).ProjectStats(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, stats.Breakdown)
	assert.Equal(t, 1, stats.Days)
}
