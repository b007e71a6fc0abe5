package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var weekdayHeaders = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// FormatMonth renders a month grid. Dates with work days show the number of
// days scheduled on them.
func FormatMonth(year int, month time.Month, grid [][7]domain.CalendarCell) string {
	cell := lipgloss.NewStyle().Width(6).Align(lipgloss.Right)

	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%s %d", month, year)) + "\n")
	for _, h := range weekdayHeaders {
		b.WriteString(cell.Render(Dim(h)))
	}
	b.WriteString("\n")

	for _, row := range grid {
		for _, c := range row {
			switch {
			case c.Day == 0:
				b.WriteString(cell.Render(""))
			case len(c.Entries) > 0:
				b.WriteString(cell.Render(StyleGreen.Render(fmt.Sprintf("%d•%d", c.Day, len(c.Entries)))))
			default:
				b.WriteString(cell.Render(fmt.Sprint(c.Day)))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// CalendarRow is a resolved calendar entry ready for display.
type CalendarRow struct {
	Entry   domain.CalendarEntry
	Project string
	Path    string // phase / week / day titles
}

// FormatEntries renders the work days of one or more dates.
func FormatEntries(rows []CalendarRow) string {
	if len(rows) == 0 {
		return Dim("Nothing scheduled.") + "\n"
	}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{r.Entry.Date, Bold(r.Project), r.Path, Dim(r.Entry.Ref().String())})
	}
	return RenderTable([]string{"DATE", "PROJECT", "DAY", "REF"}, table)
}
