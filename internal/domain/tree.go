package domain

import (
	"fmt"
	"slices"
	"strings"
)

// FindPhase returns the phase with the given id.
func FindPhase(p *Project, phaseID string) (*Phase, bool) {
	for _, ph := range p.Phases() {
		if ph.ID == phaseID {
			return ph, true
		}
	}
	return nil, false
}

// FindWeek searches the weeks of every phase first, then the top-level weeks.
func FindWeek(p *Project, weekID string) (*Week, bool) {
	for _, ph := range p.Phases() {
		for _, w := range ph.Weeks {
			if w.ID == weekID {
				return w, true
			}
		}
	}
	for _, w := range p.Weeks() {
		if w.ID == weekID {
			return w, true
		}
	}
	return nil, false
}

// FindDay searches phases→weeks→days, then weeks→days, then top-level days.
func FindDay(p *Project, dayID string) (*Day, bool) {
	for _, ph := range p.Phases() {
		for _, w := range ph.Weeks {
			if d, ok := findDayIn(w.Days, dayID); ok {
				return d, true
			}
		}
	}
	for _, w := range p.Weeks() {
		if d, ok := findDayIn(w.Days, dayID); ok {
			return d, true
		}
	}
	return findDayIn(p.Days(), dayID)
}

func findDayIn(days []*Day, dayID string) (*Day, bool) {
	for _, d := range days {
		if d.ID == dayID {
			return d, true
		}
	}
	return nil, false
}

// allWeeks returns every week of the project regardless of shape.
func allWeeks(p *Project) []*Week {
	var weeks []*Week
	for _, ph := range p.Phases() {
		weeks = append(weeks, ph.Weeks...)
	}
	return append(weeks, p.Weeks()...)
}

// AddPhase appends a phase. Only phased projects have phases.
func (p *Project) AddPhase(ph *Phase) error {
	b, ok := p.Body.(*PhasedBody)
	if !ok {
		return fmt.Errorf("%w: %s project has no phases", ErrShapeMismatch, p.Shape())
	}
	b.Phases = append(b.Phases, ph)
	return nil
}

// AddWeek appends a week to the given phase, or to the top-level weeks when
// phaseID is empty.
func (p *Project) AddWeek(phaseID string, w *Week) error {
	if phaseID != "" {
		ph, ok := FindPhase(p, phaseID)
		if !ok {
			return fmt.Errorf("phase %q: %w", phaseID, ErrNotFound)
		}
		ph.Weeks = append(ph.Weeks, w)
		return nil
	}
	b, ok := p.Body.(*WeeklyBody)
	if !ok {
		return fmt.Errorf("%w: %s project has no top-level weeks", ErrShapeMismatch, p.Shape())
	}
	b.Weeks = append(b.Weeks, w)
	return nil
}

// AddDay appends a day to the given week, or to the top-level days when
// weekID is empty.
func (p *Project) AddDay(weekID string, d *Day) error {
	if weekID != "" {
		w, ok := FindWeek(p, weekID)
		if !ok {
			return fmt.Errorf("week %q: %w", weekID, ErrNotFound)
		}
		w.Days = append(w.Days, d)
		return nil
	}
	b, ok := p.Body.(*DailyBody)
	if !ok {
		return fmt.Errorf("%w: %s project has no top-level days", ErrShapeMismatch, p.Shape())
	}
	b.Days = append(b.Days, d)
	return nil
}

// RemovePhase drops the phase with the given id and reports whether it existed.
func (p *Project) RemovePhase(phaseID string) bool {
	b, ok := p.Body.(*PhasedBody)
	if !ok {
		return false
	}
	n := len(b.Phases)
	b.Phases = slices.DeleteFunc(b.Phases, func(ph *Phase) bool { return ph.ID == phaseID })
	return len(b.Phases) != n
}

// RemoveWeek drops the week wherever it lives.
func (p *Project) RemoveWeek(weekID string) bool {
	match := func(w *Week) bool { return w.ID == weekID }
	for _, ph := range p.Phases() {
		n := len(ph.Weeks)
		if ph.Weeks = slices.DeleteFunc(ph.Weeks, match); len(ph.Weeks) != n {
			return true
		}
	}
	if b, ok := p.Body.(*WeeklyBody); ok {
		n := len(b.Weeks)
		b.Weeks = slices.DeleteFunc(b.Weeks, match)
		return len(b.Weeks) != n
	}
	return false
}

// RemoveDay drops the day wherever it lives.
func (p *Project) RemoveDay(dayID string) bool {
	match := func(d *Day) bool { return d.ID == dayID }
	for _, w := range allWeeks(p) {
		n := len(w.Days)
		if w.Days = slices.DeleteFunc(w.Days, match); len(w.Days) != n {
			return true
		}
	}
	if b, ok := p.Body.(*DailyBody); ok {
		n := len(b.Days)
		b.Days = slices.DeleteFunc(b.Days, match)
		return len(b.Days) != n
	}
	return false
}

// Remove drops the node selected by ref. The project level cannot be removed
// through its own tree.
func (p *Project) Remove(ref NodeRef) bool {
	switch ref.Kind {
	case NodePhase:
		return p.RemovePhase(ref.ID)
	case NodeWeek:
		return p.RemoveWeek(ref.ID)
	case NodeDay:
		return p.RemoveDay(ref.ID)
	default:
		return false
	}
}

// Rename sets the name of the project or the title of the selected node.
func (p *Project) Rename(ref NodeRef, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	switch ref.Kind {
	case NodeProject, "":
		p.Name = title
		return nil
	case NodePhase:
		if ph, ok := FindPhase(p, ref.ID); ok {
			ph.Title = title
			return nil
		}
	case NodeWeek:
		if w, ok := FindWeek(p, ref.ID); ok {
			w.Title = title
			return nil
		}
	case NodeDay:
		if d, ok := FindDay(p, ref.ID); ok {
			d.Title = title
			return nil
		}
	}
	return fmt.Errorf("%s: %w", ref, ErrNotFound)
}

// Title returns the display title of the selected node.
func (p *Project) Title(ref NodeRef) (string, bool) {
	switch ref.Kind {
	case NodeProject, "":
		return p.Name, true
	case NodePhase:
		if ph, ok := FindPhase(p, ref.ID); ok {
			return ph.Title, true
		}
	case NodeWeek:
		if w, ok := FindWeek(p, ref.ID); ok {
			return w.Title, true
		}
	case NodeDay:
		if d, ok := FindDay(p, ref.ID); ok {
			return d.Title, true
		}
	}
	return "", false
}

// ResolveItems returns the checklist of the selected node: project tasks,
// phase goals, week goals or day tasks.
func ResolveItems(p *Project, ref NodeRef) (*[]Item, bool) {
	switch ref.Kind {
	case NodeProject, "":
		return &p.Tasks, true
	case NodePhase:
		if ph, ok := FindPhase(p, ref.ID); ok {
			return &ph.Goals, true
		}
	case NodeWeek:
		if w, ok := FindWeek(p, ref.ID); ok {
			return &w.Goals, true
		}
	case NodeDay:
		if d, ok := FindDay(p, ref.ID); ok {
			return &d.Tasks, true
		}
	}
	return nil, false
}
