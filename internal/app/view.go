package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/tmorvan/cadence/internal/ui/playerbar"
	"github.com/tmorvan/cadence/internal/ui/render"
	"github.com/tmorvan/cadence/internal/ui/styles"
)

// View renders the full application layout: status line on top, queue
// and detail panels side by side, transport bar at the bottom.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	status := m.renderStatusLine()
	panels := lipgloss.JoinHorizontal(lipgloss.Top, m.queue.View(), m.detail.View())
	bar := playerbar.Render(playerbar.NewState(m.player, m.connected), m.width)

	return status + "\n" + panels + "\n" + bar
}

func (m Model) renderStatusLine() string {
	s := styles.T().S()

	var left string
	switch {
	case m.statusErr != "":
		left = s.Error.Render(render.Truncate(m.statusErr, m.width/2))
	case !m.connected:
		left = s.Muted.Render(m.spin.View() + " reconnecting to engine")
	default:
		left = s.Subtle.Render("connected")
	}

	right := s.Subtle.Render("synced " + humanize.Time(m.lastSync))
	return render.Row(left, right, m.width)
}
