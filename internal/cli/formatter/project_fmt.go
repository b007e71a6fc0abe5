package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/alexanderramin/tally/internal/service"
)

// FormatProjectList renders the dashboard table of projects inside a box.
func FormatProjectList(projects []service.ProjectSummary) string {
	headers := []string{"ID", "NAME", "SHAPE", "ITEMS", "PROGRESS"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			ShapeBadge(p.Shape),
			CountLabel(p.Counts),
			RenderProgress(p.Progress, 12),
		})
	}
	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectTree renders a project with every phase, week and day and
// the progress of each.
func FormatProjectTree(p *domain.Project) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(p.Name) + "  " + ShapeBadge(p.Shape()) + "\n")
	if p.Description != "" {
		b.WriteString(Dim(p.Description) + "\n")
	}
	b.WriteString(Dim("id ") + StyleDim.Render(p.ID) + "\n\n")
	b.WriteString(RenderProgress(domain.ProjectProgress(p), 20) + "  " + CountLabel(domain.ProjectCounts(p)) + "\n")

	items := buildProjectTree(p)
	if len(items) > 0 {
		b.WriteString("\n" + RenderTree(items))
	}
	if len(p.Tasks) > 0 {
		b.WriteString("\n" + FormatItems("Tasks", p.Tasks))
	}
	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}

func buildProjectTree(p *domain.Project) []TreeItem {
	var items []TreeItem
	addDays := func(days []*domain.Day, level int) {
		for i, d := range days {
			c := domain.DayCounts(d)
			title := d.Title
			if d.Date != "" {
				title += " " + Dim(d.Date)
			}
			items = append(items, TreeItem{
				Title:  title,
				Kind:   "day",
				Level:  level,
				IsLast: i == len(days)-1,
				Done:   c.Total > 0 && c.Done == c.Total,
				Detail: nodeDetail(d.ID, c),
			})
		}
	}
	addWeeks := func(weeks []*domain.Week, level int) {
		for i, w := range weeks {
			c := domain.WeekCounts(w)
			items = append(items, TreeItem{
				Title:  w.Title,
				Kind:   "week",
				Level:  level,
				IsLast: i == len(weeks)-1,
				Done:   c.Total > 0 && c.Done == c.Total,
				Detail: nodeDetail(w.ID, c),
			})
			addDays(w.Days, level+1)
		}
	}

	phases := p.Phases()
	for i, ph := range phases {
		c := domain.PhaseCounts(ph)
		items = append(items, TreeItem{
			Title:  ph.Title,
			Kind:   "phase",
			Level:  1,
			IsLast: i == len(phases)-1,
			Done:   c.Total > 0 && c.Done == c.Total,
			Detail: nodeDetail(ph.ID, c),
		})
		addWeeks(ph.Weeks, 2)
	}
	addWeeks(p.Weeks(), 1)
	addDays(p.Days(), 1)
	return items
}

func nodeDetail(id string, c domain.Counts) string {
	return fmt.Sprintf("%s %s %s", RenderCompactBar(c.Percent(), 8, false), CountLabel(c), TruncID(id))
}

// FormatItems renders a numbered checklist.
func FormatItems(title string, items []domain.Item) string {
	var b strings.Builder
	b.WriteString(Header(title) + "\n")
	if len(items) == 0 {
		b.WriteString(Dim("  nothing here yet") + "\n")
		return b.String()
	}
	for i, it := range items {
		text := it.Text
		if it.Completed {
			text = Dim(text)
		}
		fmt.Fprintf(&b, "%3d. %s %s\n", i+1, Checkbox(it.Completed), text)
	}
	return b.String()
}

// FormatStats renders the analysis of one project.
func FormatStats(s *service.ProjectStats) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(s.Name) + "\n\n")
	b.WriteString(RenderProgress(s.CompletionRate, 20) + "\n\n")

	rows := [][]string{
		{"Items", fmt.Sprintf("%d/%d", s.CompletedItems, s.TotalItems)},
		{"Phases", fmt.Sprint(s.Phases)},
		{"Weeks", fmt.Sprint(s.Weeks)},
		{"Days", fmt.Sprint(s.Days)},
	}
	b.WriteString(RenderTable([]string{"METRIC", "VALUE"}, rows, 1))

	if len(s.Breakdown) > 0 {
		b.WriteString("\n" + Header("Phases") + "\n")
		phaseRows := make([][]string, 0, len(s.Breakdown))
		for _, np := range s.Breakdown {
			phaseRows = append(phaseRows, []string{np.Title, CountLabel(np.Counts), RenderProgress(np.Percent, 12)})
		}
		b.WriteString(RenderTable([]string{"PHASE", "ITEMS", "PROGRESS"}, phaseRows))
	}
	return RenderBox("Analysis", strings.TrimRight(b.String(), "\n"))
}
