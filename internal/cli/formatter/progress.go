package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45%.
func RenderProgress(pct int, width int) string {
	pct = min(max(pct, 0), 100)
	if width < 2 {
		width = 2
	}
	return fmt.Sprintf("[%s] %3d%%", ProgressStyle(pct).Render(bar(pct, width)), pct)
}

// RenderCompactBar renders only the blocks, without brackets or percentage.
// A dimmed bar ignores the progress colors.
func RenderCompactBar(pct int, width int, dim bool) string {
	pct = min(max(pct, 0), 100)
	if width < 2 {
		width = 2
	}
	if dim {
		return StyleDim.Render(bar(pct, width))
	}
	return ProgressStyle(pct).Render(bar(pct, width))
}

func bar(pct, width int) string {
	filled := pct * width / 100
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}
