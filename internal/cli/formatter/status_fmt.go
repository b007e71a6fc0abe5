package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tally/internal/service"
)

// FormatOverview renders the dashboard summary above the project table.
func FormatOverview(ov *service.Overview, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Overview") + "\n")
	fmt.Fprintf(&b, "%s  %d\n", Dim("projects     "), len(ov.Projects))
	fmt.Fprintf(&b, "%s  %s %s\n", Dim("items        "), RenderProgress(ov.Counts.Percent(), 20), CountLabel(ov.Counts))
	fmt.Fprintf(&b, "%s  %s\n", Dim("last activity"), LastActivity(ov.LastActivity, now))
	if len(ov.Projects) == 0 {
		b.WriteString("\n" + Dim("No projects yet. Create one with: tally project add NAME") + "\n")
		return b.String()
	}
	b.WriteString("\n" + FormatProjectList(ov.Projects) + "\n")
	return b.String()
}
