package schema

import (
	"slices"

	"github.com/alexanderramin/tally/internal/domain"
)

// Normalize fills in every field that older records may lack and returns doc.
// It repairs in place, recursing through whichever collections are present:
// phases and their weeks and days, top-level weeks and their days, and
// top-level days. Normalizing a normalized document changes nothing.
func Normalize(doc *Document) *Document {
	if doc == nil {
		doc = &Document{}
	}
	if doc.Projects == nil {
		doc.Projects = []*ProjectDoc{}
	}
	doc.Projects = dropNil(doc.Projects)
	for _, p := range doc.Projects {
		normalizeProject(p)
	}
	if doc.Settings == nil {
		doc.Settings = &SettingsDoc{}
	}
	if doc.Settings.Theme == "" {
		doc.Settings.Theme = domain.ThemeDark
	}
	return doc
}

func normalizeProject(p *ProjectDoc) {
	if p.Description == nil {
		empty := ""
		p.Description = &empty
	}
	if p.Structure == nil {
		p.Structure = &StructureDoc{}
	}
	if p.Tasks == nil {
		p.Tasks = []ItemDoc{}
	}
	p.Materials = normalizeMaterials(p.Materials)

	if p.Phases != nil {
		p.Phases = dropNil(p.Phases)
		for _, ph := range p.Phases {
			normalizePhase(ph)
		}
	}
	if p.Weeks != nil {
		p.Weeks = dropNil(p.Weeks)
		for _, w := range p.Weeks {
			normalizeWeek(w)
		}
	}
	if p.Days != nil {
		p.Days = dropNil(p.Days)
		for _, d := range p.Days {
			normalizeDay(d)
		}
	}
}

func normalizePhase(ph *PhaseDoc) {
	if ph.Goals == nil {
		ph.Goals = []ItemDoc{}
	}
	ph.Materials = normalizeMaterials(ph.Materials)
	if ph.Weeks != nil {
		ph.Weeks = dropNil(ph.Weeks)
		for _, w := range ph.Weeks {
			normalizeWeek(w)
		}
	}
}

func normalizeWeek(w *WeekDoc) {
	if w.Goals == nil {
		w.Goals = []ItemDoc{}
	}
	w.Materials = normalizeMaterials(w.Materials)
	if w.Days != nil {
		w.Days = dropNil(w.Days)
		for _, d := range w.Days {
			normalizeDay(d)
		}
	}
}

func normalizeDay(d *DayDoc) {
	if d.Tasks == nil {
		d.Tasks = []ItemDoc{}
	}
	d.Materials = normalizeMaterials(d.Materials)
}

func normalizeMaterials(m *MaterialsDoc) *MaterialsDoc {
	if m == nil {
		m = &MaterialsDoc{}
	}
	if m.Notes == nil {
		m.Notes = []NoteDoc{}
	}
	if m.Videos == nil {
		m.Videos = []VideoDoc{}
	}
	if m.Files == nil {
		m.Files = []FileDoc{}
	}
	if m.Links == nil {
		m.Links = []LinkDoc{}
	}
	return m
}

// dropNil removes null entries such as the ones a hand-edited file can carry.
func dropNil[T any](s []*T) []*T {
	return slices.DeleteFunc(s, func(v *T) bool { return v == nil })
}
