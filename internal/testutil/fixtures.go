package testutil

import (
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithDescription(d string) ProjectOption {
	return func(p *domain.Project) {
		p.Description = d
	}
}

// WithTasks appends one project task per flag, completed when the flag is true.
func WithTasks(done ...bool) ProjectOption {
	return func(p *domain.Project) {
		p.Tasks = append(p.Tasks, Items(done...)...)
	}
}

func WithID(id string) ProjectOption {
	return func(p *domain.Project) {
		p.ID = id
	}
}

// NewTestProject builds an empty project from a template with a fresh id.
func NewTestProject(name string, t domain.Template, opts ...ProjectOption) *domain.Project {
	p, err := domain.NewProject(name, t)
	if err != nil {
		panic(err)
	}
	p.ID = uuid.New().String()
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Items returns one checklist item per flag.
func Items(done ...bool) []domain.Item {
	out := make([]domain.Item, 0, len(done))
	for _, d := range done {
		out = append(out, domain.Item{Text: "item", Completed: d})
	}
	return out
}

func NewTestPhase(id, title string, weeks ...*domain.Week) *domain.Phase {
	return &domain.Phase{ID: id, Title: title, Goals: []domain.Item{}, Weeks: weeks, Materials: domain.NewMaterials()}
}

func NewTestWeek(id, title string, days ...*domain.Day) *domain.Week {
	return &domain.Week{ID: id, Title: title, Goals: []domain.Item{}, Days: days, Materials: domain.NewMaterials()}
}

func NewTestDay(id, title, date string, done ...bool) *domain.Day {
	return &domain.Day{ID: id, Title: title, Date: date, Tasks: Items(done...), Materials: domain.NewMaterials()}
}

// NewPhasedProject returns a full-template project holding phase "ph1" with
// week "w1" and days "d1" (dated 2025-03-03, tasks [done, open]) and "d2"
// (undated, no tasks).
func NewPhasedProject(name string, opts ...ProjectOption) *domain.Project {
	p := NewTestProject(name, domain.TemplateFull, opts...)
	p.Body = &domain.PhasedBody{Phases: []*domain.Phase{
		NewTestPhase("ph1", "Research",
			NewTestWeek("w1", "Week 1",
				NewTestDay("d1", "Monday", "2025-03-03", true, false),
				NewTestDay("d2", "Tuesday", ""),
			),
		),
	}}
	return p
}

// NewWeeklyProject returns a weekly project with week "wk1" holding day "wd1"
// dated 2025-03-03 with one open task.
func NewWeeklyProject(name string, opts ...ProjectOption) *domain.Project {
	p := NewTestProject(name, domain.TemplateWeekly, opts...)
	p.Structure.HasDays = true
	p.Body = &domain.WeeklyBody{Weeks: []*domain.Week{
		NewTestWeek("wk1", "Base week", NewTestDay("wd1", "Day 1", "2025-03-03", false)),
	}}
	return p
}

// NewDailyProject returns a daily project with day "dd1" dated 2025-03-10
// holding one completed task.
func NewDailyProject(name string, opts ...ProjectOption) *domain.Project {
	p := NewTestProject(name, domain.TemplateDaily, opts...)
	p.Body = &domain.DailyBody{Days: []*domain.Day{
		NewTestDay("dd1", "Day 1", "2025-03-10", true),
	}}
	return p
}

// NewTestState returns the default state holding the given projects.
func NewTestState(projects ...*domain.Project) *domain.AppState {
	s := domain.DefaultState()
	s.Projects = append(s.Projects, projects...)
	return s
}
