package domain

// Body is the top-level child collection of a project. Exactly one variant
// exists per project, which keeps phases, weeks and days from coexisting at
// the top level.
type Body interface {
	Shape() Shape
	// Len reports the number of direct children.
	Len() int
}

// FlatBody is a project with only its own task list.
type FlatBody struct{}

// PhasedBody is a project whose phases own the weeks, which own the days.
type PhasedBody struct {
	Phases []*Phase
}

// WeeklyBody is a project whose top-level weeks own the days.
type WeeklyBody struct {
	Weeks []*Week
}

// DailyBody is a project made of top-level days.
type DailyBody struct {
	Days []*Day
}

func (*FlatBody) Shape() Shape   { return ShapeFlat }
func (*PhasedBody) Shape() Shape { return ShapePhased }
func (*WeeklyBody) Shape() Shape { return ShapeWeekly }
func (*DailyBody) Shape() Shape  { return ShapeDaily }

func (*FlatBody) Len() int     { return 0 }
func (b *PhasedBody) Len() int { return len(b.Phases) }
func (b *WeeklyBody) Len() int { return len(b.Weeks) }
func (b *DailyBody) Len() int  { return len(b.Days) }

// EmptyBody returns a body of the given shape with an empty collection.
func EmptyBody(s Shape) Body {
	switch s {
	case ShapePhased:
		return &PhasedBody{Phases: []*Phase{}}
	case ShapeWeekly:
		return &WeeklyBody{Weeks: []*Week{}}
	case ShapeDaily:
		return &DailyBody{Days: []*Day{}}
	default:
		return &FlatBody{}
	}
}
