package playerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmorvan/cadence/internal/format"
	"github.com/tmorvan/cadence/internal/icons"
)

var (
	filledBlock = "▓"
	emptyBlock  = "░"
)

// RenderProgressBar renders a block-style progress bar.
// Format: ▶  1:23  ▓▓▓▓▓░░░░░  4:56
func RenderProgressBar(position, duration float64, width int, playing bool) string {
	status := icons.Play()
	if !playing {
		status = icons.Pause()
	}

	posStr := format.Time(position)
	durStr := format.Time(duration)

	// Format: "▶  1:23  ▓▓▓░░░  4:56"
	fixedWidth := lipgloss.Width(status) + 2 + lipgloss.Width(posStr) + 2 + 2 + lipgloss.Width(durStr)
	barWidth := width - fixedWidth

	if barWidth < 3 {
		// Too narrow for a bar, just show times
		return status + "  " + posStr + " / " + durStr
	}

	filled := int(float64(barWidth) * format.ProgressRatio(position, duration))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, barWidth-filled)

	return status + "  " + posStr + "  " + bar + "  " + durStr
}
