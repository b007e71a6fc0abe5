package domain

// Shape identifies which top-level child collection a project carries.
type Shape string

const (
	ShapeFlat   Shape = "flat"
	ShapePhased Shape = "phased"
	ShapeWeekly Shape = "weekly"
	ShapeDaily  Shape = "daily"
)

// Template names the starting structure of a new project.
type Template string

const (
	TemplateSimple Template = "simple"
	TemplatePhased Template = "phased"
	TemplateWeekly Template = "weekly"
	TemplateDaily  Template = "daily"
	TemplateFull   Template = "full"
)

// ValidTemplates is the canonical set of accepted template names.
var ValidTemplates = map[string]bool{
	"simple": true, "phased": true, "weekly": true, "daily": true, "full": true,
}

// NodeKind identifies a level of the project hierarchy.
type NodeKind string

const (
	NodeProject NodeKind = "project"
	NodePhase   NodeKind = "phase"
	NodeWeek    NodeKind = "week"
	NodeDay     NodeKind = "day"
)

// MaterialKind identifies one list of a materials bucket.
type MaterialKind string

const (
	MaterialNotes  MaterialKind = "notes"
	MaterialVideos MaterialKind = "videos"
	MaterialFiles  MaterialKind = "files"
	MaterialLinks  MaterialKind = "links"
)

// ValidMaterialKinds is the canonical set of accepted material kind strings.
var ValidMaterialKinds = map[string]bool{
	"notes": true, "videos": true, "files": true, "links": true,
}

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DateLayout is the ISO calendar date format used for day dates.
const DateLayout = "2006-01-02"
