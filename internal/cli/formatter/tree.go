package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one line of a project tree.
type TreeItem struct {
	Title  string
	Kind   string // shown dimmed before the title, e.g. "phase"
	Level  int
	IsLast bool
	Done   bool
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeSpace  = "   "
)

// RenderTree renders items as an indented tree with box-drawing connectors.
// Finished nodes get a green check and details are right-aligned.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type line struct {
		content string
		badge   string
	}
	lines := make([]line, len(items))
	widest := 0

	// open[l] is true while the ancestor at level l still has siblings below.
	open := map[int]bool{}
	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			for l := 1; l < item.Level; l++ {
				if open[l] {
					prefix += treePipe
				} else {
					prefix += treeSpace
				}
			}
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
			open[item.Level] = !item.IsLast
		}

		title := item.Title
		if item.Kind != "" {
			title = Dim(item.Kind+" ") + title
		}
		if item.Done {
			title = StyleGreen.Render("✔ ") + title
		}
		content := prefix + title
		lines[idx].content = content
		if item.Detail != "" {
			lines[idx].badge = item.Detail
		}
		if w := lipgloss.Width(content); w > widest {
			widest = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge == "" {
			b.WriteString(li.content + "\n")
			continue
		}
		pad := max(widest-lipgloss.Width(li.content), 0)
		fmt.Fprintf(&b, "%s%s  %s\n", li.content, strings.Repeat(" ", pad), li.badge)
	}
	return b.String()
}
