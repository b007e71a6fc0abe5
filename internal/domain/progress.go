package domain

// Counts tallies completed and total checklist items.
type Counts struct {
	Done  int
	Total int
}

func (c Counts) Add(o Counts) Counts {
	return Counts{Done: c.Done + o.Done, Total: c.Total + o.Total}
}

// Percent returns Done/Total as an integer percentage rounded half up, or 0
// when there are no items.
func (c Counts) Percent() int {
	if c.Total <= 0 {
		return 0
	}
	return (c.Done*200 + c.Total) / (2 * c.Total)
}

func countItems(items []Item) Counts {
	c := Counts{Total: len(items)}
	for _, it := range items {
		if it.Completed {
			c.Done++
		}
	}
	return c
}

func DayCounts(d *Day) Counts {
	if d == nil {
		return Counts{}
	}
	return countItems(d.Tasks)
}

// WeekCounts covers the week's goals and the tasks of all its days.
func WeekCounts(w *Week) Counts {
	if w == nil {
		return Counts{}
	}
	c := countItems(w.Goals)
	for _, d := range w.Days {
		c = c.Add(DayCounts(d))
	}
	return c
}

// PhaseCounts covers the phase's goals and everything under its weeks.
func PhaseCounts(ph *Phase) Counts {
	if ph == nil {
		return Counts{}
	}
	c := countItems(ph.Goals)
	for _, w := range ph.Weeks {
		c = c.Add(WeekCounts(w))
	}
	return c
}

// ProjectCounts covers the project's own tasks and every descendant item of
// whichever shape the project has.
func ProjectCounts(p *Project) Counts {
	if p == nil {
		return Counts{}
	}
	c := countItems(p.Tasks)
	switch b := p.Body.(type) {
	case *PhasedBody:
		for _, ph := range b.Phases {
			c = c.Add(PhaseCounts(ph))
		}
	case *WeeklyBody:
		for _, w := range b.Weeks {
			c = c.Add(WeekCounts(w))
		}
	case *DailyBody:
		for _, d := range b.Days {
			c = c.Add(DayCounts(d))
		}
	}
	return c
}

func DayProgress(d *Day) int         { return DayCounts(d).Percent() }
func WeekProgress(w *Week) int       { return WeekCounts(w).Percent() }
func PhaseProgress(ph *Phase) int    { return PhaseCounts(ph).Percent() }
func ProjectProgress(p *Project) int { return ProjectCounts(p).Percent() }

// Stats summarizes a project for the analysis view.
type Stats struct {
	TotalItems     int
	CompletedItems int
	Phases         int
	Weeks          int
	Days           int
	CompletionRate int
}

// ProjectStats counts items and nodes across the whole project.
func ProjectStats(p *Project) Stats {
	c := ProjectCounts(p)
	s := Stats{TotalItems: c.Total, CompletedItems: c.Done, CompletionRate: c.Percent()}
	s.Phases = len(p.Phases())
	weeks := allWeeks(p)
	s.Weeks = len(weeks)
	for _, w := range weeks {
		s.Days += len(w.Days)
	}
	s.Days += len(p.Days())
	return s
}

// NodeProgress is the progress of one direct child of a project.
type NodeProgress struct {
	Ref     NodeRef
	Title   string
	Counts  Counts
	Percent int
}

// ChildProgress lists the progress of each top-level child of the project,
// in order.
func ChildProgress(p *Project) []NodeProgress {
	var out []NodeProgress
	add := func(ref NodeRef, title string, c Counts) {
		out = append(out, NodeProgress{Ref: ref, Title: title, Counts: c, Percent: c.Percent()})
	}
	switch b := p.Body.(type) {
	case *PhasedBody:
		for _, ph := range b.Phases {
			add(PhaseRef(ph.ID), ph.Title, PhaseCounts(ph))
		}
	case *WeeklyBody:
		for _, w := range b.Weeks {
			add(WeekRef(w.ID), w.Title, WeekCounts(w))
		}
	case *DailyBody:
		for _, d := range b.Days {
			add(DayRef(d.ID), d.Title, DayCounts(d))
		}
	}
	return out
}

// PhaseBreakdown lists per-phase progress; empty for projects without phases.
func PhaseBreakdown(p *Project) []NodeProgress {
	if p.Shape() != ShapePhased {
		return nil
	}
	return ChildProgress(p)
}
