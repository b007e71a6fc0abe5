package domain

import (
	"slices"
	"strings"
	"time"
)

type Settings struct {
	Theme        string
	LastActivity *time.Time
}

// AppState is the whole persisted document.
type AppState struct {
	Projects []*Project
	Settings Settings
}

// DefaultState returns the empty application state.
func DefaultState() *AppState {
	return &AppState{
		Projects: []*Project{},
		Settings: Settings{Theme: ThemeDark},
	}
}

// FindProject returns the project with the given id.
func (s *AppState) FindProject(id string) (*Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// RemoveProject drops the project with the given id and reports whether it existed.
func (s *AppState) RemoveProject(id string) bool {
	n := len(s.Projects)
	s.Projects = slices.DeleteFunc(s.Projects, func(p *Project) bool { return p.ID == id })
	return len(s.Projects) != n
}

// SearchProjects returns the projects whose name contains query, ignoring case.
// An empty query matches every project.
func (s *AppState) SearchProjects(query string) []*Project {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.Projects
	}
	var out []*Project
	for _, p := range s.Projects {
		if strings.Contains(strings.ToLower(p.Name), query) {
			out = append(out, p)
		}
	}
	return out
}

// View is the user's current position: a project and a node inside it. The
// zero View is the home dashboard.
type View struct {
	ProjectID string  `json:"projectId,omitempty"`
	At        NodeRef `json:"at"`
}

// IsHome reports whether no project is selected.
func (v View) IsHome() bool { return v.ProjectID == "" }

// ViewForEntry returns the view that opens a calendar entry's day.
func ViewForEntry(e CalendarEntry) View {
	return View{ProjectID: e.ProjectID, At: e.Ref()}
}
