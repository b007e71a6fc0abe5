package domain

import (
	"fmt"
	"strings"
)

// Structure holds the per-project nesting flags. The flags are configuration:
// the project's Body is the source of truth for which collection exists.
type Structure struct {
	HasPhases    bool
	HasWeeks     bool
	HasDays      bool
	HasMaterials bool
}

// Shape returns the body shape these flags call for.
func (s Structure) Shape() Shape {
	switch {
	case s.HasPhases:
		return ShapePhased
	case s.HasWeeks:
		return ShapeWeekly
	case s.HasDays:
		return ShapeDaily
	default:
		return ShapeFlat
	}
}

// StructureFor returns the flags a template starts with.
func StructureFor(t Template) Structure {
	switch t {
	case TemplatePhased:
		return Structure{HasPhases: true, HasMaterials: true}
	case TemplateWeekly:
		return Structure{HasWeeks: true, HasMaterials: true}
	case TemplateDaily:
		return Structure{HasDays: true, HasMaterials: true}
	case TemplateFull:
		return Structure{HasPhases: true, HasWeeks: true, HasDays: true, HasMaterials: true}
	default:
		return Structure{}
	}
}

type Project struct {
	ID          string
	Name        string
	Description string
	Structure   Structure
	Tasks       []Item
	Materials   Materials
	Body        Body
}

// NewProject builds an empty project for the given template. The caller
// assigns the ID.
func NewProject(name string, t Template) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTitle
	}
	if t == "" {
		t = TemplateSimple
	}
	if !ValidTemplates[string(t)] {
		return nil, fmt.Errorf("unknown template %q", t)
	}
	s := StructureFor(t)
	return &Project{
		Name:      name,
		Structure: s,
		Tasks:     []Item{},
		Materials: NewMaterials(),
		Body:      EmptyBody(s.Shape()),
	}, nil
}

// Shape returns the shape of the project's body.
func (p *Project) Shape() Shape {
	if p.Body == nil {
		return ShapeFlat
	}
	return p.Body.Shape()
}

// Phases returns the project's phases, or nil when the project is not phased.
func (p *Project) Phases() []*Phase {
	if b, ok := p.Body.(*PhasedBody); ok {
		return b.Phases
	}
	return nil
}

// Weeks returns the project's top-level weeks, or nil when the project is not weekly.
func (p *Project) Weeks() []*Week {
	if b, ok := p.Body.(*WeeklyBody); ok {
		return b.Weeks
	}
	return nil
}

// Days returns the project's top-level days, or nil when the project is not daily.
func (p *Project) Days() []*Day {
	if b, ok := p.Body.(*DailyBody); ok {
		return b.Days
	}
	return nil
}

// SetStructure stores new flags. The body follows the flags only while it
// holds no children, so changing flags never drops phases, weeks or days.
func (p *Project) SetStructure(s Structure) {
	p.Structure = s
	if p.Body == nil || p.Body.Len() == 0 {
		p.Body = EmptyBody(s.Shape())
	}
}

// Ref returns the node reference of the project itself.
func (p *Project) Ref() NodeRef {
	return NodeRef{Kind: NodeProject, ID: p.ID}
}
