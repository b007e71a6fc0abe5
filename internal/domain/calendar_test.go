package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkDays_PhasedCarriesAncestors(t *testing.T) {
	p := phasedFixture()
	d, _ := FindDay(p, "d1")
	d.Date = "2025-03-04"

	got := WorkDays(p)
	require.Len(t, got, 1)
	assert.Equal(t, CalendarEntry{
		Date: "2025-03-04", DayID: "d1", ProjectID: "P", PhaseID: "p1", WeekID: "w1",
	}, got[0])
}

func TestWorkDays_SkipsUndated(t *testing.T) {
	p := dailyFixture()
	p.Days()[1].Date = "2025-01-02"

	got := WorkDays(p)
	require.Len(t, got, 1)
	assert.Equal(t, "d2", got[0].DayID)
	assert.Empty(t, got[0].PhaseID)
	assert.Empty(t, got[0].WeekID)

	assert.Empty(t, WorkDays(flatFixture()))
}

func TestWorkDays_Weekly(t *testing.T) {
	p := weeklyFixture()
	for _, w := range p.Weeks() {
		for _, d := range w.Days {
			d.Date = "2025-05-01"
		}
	}
	got := EntriesOn(WorkDays(p), "2025-05-01")
	assert.Len(t, got, 2)
	assert.Empty(t, EntriesOn(WorkDays(p), "2025-5-1"))
}

func TestMonthGrid_StartsOnSunday(t *testing.T) {
	// March 2025 starts on a Saturday and has 31 days.
	entries := []CalendarEntry{{Date: "2025-03-15", DayID: "x"}}
	grid := MonthGrid(2025, time.March, entries)

	require.Len(t, grid, 6)
	assert.Equal(t, 0, grid[0][5].Day)
	assert.Equal(t, 1, grid[0][6].Day)
	assert.Equal(t, "2025-03-01", grid[0][6].Date)

	var found bool
	for _, row := range grid {
		for _, cell := range row {
			if cell.Date == "2025-03-15" {
				found = true
				assert.Len(t, cell.Entries, 1)
			}
		}
	}
	assert.True(t, found)
	assert.Equal(t, 31, grid[5][1].Day)
}

func TestViewForEntry(t *testing.T) {
	v := ViewForEntry(CalendarEntry{ProjectID: "P", DayID: "d1"})
	assert.Equal(t, View{ProjectID: "P", At: DayRef("d1")}, v)
	assert.False(t, v.IsHome())
	assert.True(t, View{}.IsHome())
}
