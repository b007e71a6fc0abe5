package schema

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
)

var validThemes = map[string]bool{domain.ThemeDark: true, domain.ThemeLight: true}

// Validate reports consistency problems in a document: missing or duplicate
// ids, blank names, malformed day dates, and projects holding more than one
// top-level collection. None of them stop a load; the report is shown before
// an import replaces the current state.
func Validate(doc *Document) []error {
	if doc == nil {
		return nil
	}
	v := &validator{seen: make(map[string]string)}

	for i, p := range doc.Projects {
		if p == nil {
			continue
		}
		path := fmt.Sprintf("projects[%d]", i)
		v.checkID(path, p.ID)
		if p.Name == "" {
			v.add(fmt.Errorf("%s.name is required", path))
		}
		if n := collections(p); n > 1 {
			v.add(fmt.Errorf("%s: holds %d top-level collections; only the outermost is kept", path, n))
		}
		for j, ph := range p.Phases {
			if ph == nil {
				continue
			}
			phPath := fmt.Sprintf("%s.phases[%d]", path, j)
			v.checkID(phPath, ph.ID)
			v.weeks(phPath, ph.Weeks)
		}
		v.weeks(path, p.Weeks)
		v.days(path, p.Days)
	}

	if doc.Settings != nil && doc.Settings.Theme != "" && !validThemes[doc.Settings.Theme] {
		v.add(fmt.Errorf("settings.theme: unknown theme %q", doc.Settings.Theme))
	}
	return v.errs
}

type validator struct {
	errs []error
	seen map[string]string // id -> path of first use
}

func (v *validator) add(err error) { v.errs = append(v.errs, err) }

func (v *validator) checkID(path, id string) {
	if id == "" {
		v.add(fmt.Errorf("%s: id is required", path))
		return
	}
	if prev, ok := v.seen[id]; ok {
		v.add(fmt.Errorf("%s: duplicate id %q (also used by %s)", path, id, prev))
		return
	}
	v.seen[id] = path
}

func (v *validator) weeks(parent string, weeks []*WeekDoc) {
	for i, w := range weeks {
		if w == nil {
			continue
		}
		path := fmt.Sprintf("%s.weeks[%d]", parent, i)
		v.checkID(path, w.ID)
		v.days(path, w.Days)
	}
}

func (v *validator) days(parent string, days []*DayDoc) {
	for i, d := range days {
		if d == nil {
			continue
		}
		path := fmt.Sprintf("%s.days[%d]", parent, i)
		v.checkID(path, d.ID)
		if d.Date == "" {
			continue
		}
		if _, err := time.Parse(domain.DateLayout, d.Date); err != nil {
			v.add(fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", path, d.Date))
		}
	}
}

func collections(p *ProjectDoc) int {
	n := 0
	for _, present := range []bool{p.Phases != nil, p.Weeks != nil, p.Days != nil} {
		if present {
			n++
		}
	}
	return n
}
