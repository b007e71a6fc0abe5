package schema

import (
	"github.com/alexanderramin/tally/internal/domain"
)

// ToState normalizes doc in place and converts it to the domain state.
//
// The body of each project follows the collections that are present: phases
// win over weeks, weeks over days. A project with no collection gets the empty
// body its structure flags call for.
func ToState(doc *Document) *domain.AppState {
	doc = Normalize(doc)
	state := domain.DefaultState()
	for _, pd := range doc.Projects {
		state.Projects = append(state.Projects, toProject(pd))
	}
	state.Settings = domain.Settings{
		Theme:        doc.Settings.Theme,
		LastActivity: doc.Settings.LastActivity,
	}
	return state
}

func toProject(pd *ProjectDoc) *domain.Project {
	s := domain.Structure(*pd.Structure)
	p := &domain.Project{
		ID:          pd.ID,
		Name:        pd.Name,
		Description: *pd.Description,
		Structure:   s,
		Tasks:       toItems(pd.Tasks),
		Materials:   toMaterials(pd.Materials),
	}
	switch {
	case pd.Phases != nil:
		b := &domain.PhasedBody{Phases: make([]*domain.Phase, 0, len(pd.Phases))}
		for _, ph := range pd.Phases {
			b.Phases = append(b.Phases, toPhase(ph))
		}
		p.Body = b
	case pd.Weeks != nil:
		p.Body = &domain.WeeklyBody{Weeks: toWeeks(pd.Weeks)}
	case pd.Days != nil:
		p.Body = &domain.DailyBody{Days: toDays(pd.Days)}
	default:
		p.Body = domain.EmptyBody(s.Shape())
	}
	return p
}

func toPhase(pd *PhaseDoc) *domain.Phase {
	return &domain.Phase{
		ID:        pd.ID,
		Title:     pd.Title,
		Goals:     toItems(pd.Goals),
		Weeks:     toWeeks(pd.Weeks),
		Materials: toMaterials(pd.Materials),
	}
}

func toWeeks(docs []*WeekDoc) []*domain.Week {
	if docs == nil {
		return nil
	}
	out := make([]*domain.Week, 0, len(docs))
	for _, wd := range docs {
		out = append(out, &domain.Week{
			ID:        wd.ID,
			Title:     wd.Title,
			Goals:     toItems(wd.Goals),
			Days:      toDays(wd.Days),
			Materials: toMaterials(wd.Materials),
		})
	}
	return out
}

func toDays(docs []*DayDoc) []*domain.Day {
	if docs == nil {
		return nil
	}
	out := make([]*domain.Day, 0, len(docs))
	for _, dd := range docs {
		out = append(out, &domain.Day{
			ID:        dd.ID,
			Title:     dd.Title,
			Date:      dd.Date,
			Tasks:     toItems(dd.Tasks),
			Materials: toMaterials(dd.Materials),
		})
	}
	return out
}

func toItems(docs []ItemDoc) []domain.Item {
	out := make([]domain.Item, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.Item(d))
	}
	return out
}

func toMaterials(md *MaterialsDoc) domain.Materials {
	m := domain.NewMaterials()
	if md == nil {
		return m
	}
	for _, n := range md.Notes {
		m.Notes = append(m.Notes, domain.Note(n))
	}
	for _, v := range md.Videos {
		m.Videos = append(m.Videos, domain.Video(v))
	}
	for _, f := range md.Files {
		m.Files = append(m.Files, domain.File(f))
	}
	for _, l := range md.Links {
		m.Links = append(m.Links, domain.Link(l))
	}
	return m
}

// FromState converts the domain state to its wire document. The result is
// already normalized.
func FromState(state *domain.AppState) *Document {
	doc := &Document{
		Projects: make([]*ProjectDoc, 0, len(state.Projects)),
		Settings: &SettingsDoc{
			Theme:        state.Settings.Theme,
			LastActivity: state.Settings.LastActivity,
		},
	}
	for _, p := range state.Projects {
		doc.Projects = append(doc.Projects, fromProject(p))
	}
	return Normalize(doc)
}

func fromProject(p *domain.Project) *ProjectDoc {
	desc := p.Description
	s := StructureDoc(p.Structure)
	pd := &ProjectDoc{
		ID:          p.ID,
		Name:        p.Name,
		Description: &desc,
		Structure:   &s,
		Tasks:       fromItems(p.Tasks),
		Materials:   fromMaterials(p.Materials),
	}
	switch b := p.Body.(type) {
	case *domain.PhasedBody:
		pd.Phases = make([]*PhaseDoc, 0, len(b.Phases))
		for _, ph := range b.Phases {
			pd.Phases = append(pd.Phases, &PhaseDoc{
				ID:        ph.ID,
				Title:     ph.Title,
				Goals:     fromItems(ph.Goals),
				Materials: fromMaterials(ph.Materials),
				Weeks:     fromWeeks(ph.Weeks),
			})
		}
	case *domain.WeeklyBody:
		pd.Weeks = fromWeeks(b.Weeks)
		if pd.Weeks == nil {
			pd.Weeks = []*WeekDoc{}
		}
	case *domain.DailyBody:
		pd.Days = fromDays(b.Days)
		if pd.Days == nil {
			pd.Days = []*DayDoc{}
		}
	}
	return pd
}

func fromWeeks(weeks []*domain.Week) []*WeekDoc {
	if weeks == nil {
		return nil
	}
	out := make([]*WeekDoc, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, &WeekDoc{
			ID:        w.ID,
			Title:     w.Title,
			Goals:     fromItems(w.Goals),
			Materials: fromMaterials(w.Materials),
			Days:      fromDays(w.Days),
		})
	}
	return out
}

func fromDays(days []*domain.Day) []*DayDoc {
	if days == nil {
		return nil
	}
	out := make([]*DayDoc, 0, len(days))
	for _, d := range days {
		out = append(out, &DayDoc{
			ID:        d.ID,
			Title:     d.Title,
			Date:      d.Date,
			Tasks:     fromItems(d.Tasks),
			Materials: fromMaterials(d.Materials),
		})
	}
	return out
}

func fromItems(items []domain.Item) []ItemDoc {
	out := make([]ItemDoc, 0, len(items))
	for _, it := range items {
		out = append(out, ItemDoc(it))
	}
	return out
}

func fromMaterials(m domain.Materials) *MaterialsDoc {
	md := &MaterialsDoc{
		Notes:  make([]NoteDoc, 0, len(m.Notes)),
		Videos: make([]VideoDoc, 0, len(m.Videos)),
		Files:  make([]FileDoc, 0, len(m.Files)),
		Links:  make([]LinkDoc, 0, len(m.Links)),
	}
	for _, n := range m.Notes {
		md.Notes = append(md.Notes, NoteDoc(n))
	}
	for _, v := range m.Videos {
		md.Videos = append(md.Videos, VideoDoc(v))
	}
	for _, f := range m.Files {
		md.Files = append(md.Files, FileDoc(f))
	}
	for _, l := range m.Links {
		md.Links = append(md.Links, LinkDoc(l))
	}
	return md
}

// CloneProject returns a deep copy of p that shares no slices or nodes with it.
func CloneProject(p *domain.Project) *domain.Project {
	return toProject(fromProject(p))
}
