package domain

import "time"

// CalendarEntry locates a dated day inside a project. PhaseID and WeekID are
// empty when the day does not live under a phase or week.
type CalendarEntry struct {
	Date      string
	DayID     string
	ProjectID string
	PhaseID   string
	WeekID    string
}

// Ref returns the node reference of the entry's day.
func (e CalendarEntry) Ref() NodeRef { return DayRef(e.DayID) }

// WorkDays lists every day with a date, scanning whichever shape the project has.
func WorkDays(p *Project) []CalendarEntry {
	var out []CalendarEntry
	collect := func(days []*Day, phaseID, weekID string) {
		for _, d := range days {
			if d.Date == "" {
				continue
			}
			out = append(out, CalendarEntry{
				Date:      d.Date,
				DayID:     d.ID,
				ProjectID: p.ID,
				PhaseID:   phaseID,
				WeekID:    weekID,
			})
		}
	}
	for _, ph := range p.Phases() {
		for _, w := range ph.Weeks {
			collect(w.Days, ph.ID, w.ID)
		}
	}
	for _, w := range p.Weeks() {
		collect(w.Days, "", w.ID)
	}
	collect(p.Days(), "", "")
	return out
}

// EntriesOn returns the entries whose date equals date exactly.
func EntriesOn(entries []CalendarEntry, date string) []CalendarEntry {
	var out []CalendarEntry
	for _, e := range entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// CalendarCell is one day of a month grid. Day is 0 for padding cells.
type CalendarCell struct {
	Day     int
	Date    string
	Entries []CalendarEntry
}

// MonthGrid lays out a month as rows of seven cells starting on Sunday, with
// the entries of each date attached.
func MonthGrid(year int, month time.Month, entries []CalendarEntry) [][7]CalendarCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	byDate := make(map[string][]CalendarEntry)
	for _, e := range entries {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	var rows [][7]CalendarCell
	var row [7]CalendarCell
	col := int(first.Weekday())
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout)
		row[col] = CalendarCell{Day: day, Date: date, Entries: byDate[date]}
		col++
		if col == 7 {
			rows = append(rows, row)
			row = [7]CalendarCell{}
			col = 0
		}
	}
	if col > 0 {
		rows = append(rows, row)
	}
	return rows
}
