package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// LastActivity renders the time of the last save relative to now.
func LastActivity(t *time.Time, now time.Time) string {
	if t == nil {
		return Dim("never")
	}
	return humanize.RelTime(*t, now, "ago", "from now")
}

// FileSize renders a byte count like "1.2 kB".
func FileSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}

// ShapeBadge labels the nesting a project uses.
func ShapeBadge(s domain.Shape) string {
	switch s {
	case domain.ShapePhased:
		return StylePurple.Render("phases")
	case domain.ShapeWeekly:
		return StyleBlue.Render("weeks")
	case domain.ShapeDaily:
		return StyleYellow.Render("days")
	default:
		return StyleDim.Render("tasks")
	}
}

// Checkbox renders an item marker.
func Checkbox(done bool) string {
	if done {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}

// CountLabel renders "3/5".
func CountLabel(c domain.Counts) string {
	return Dim(humanize.Comma(int64(c.Done)) + "/" + humanize.Comma(int64(c.Total)))
}
