package queuepanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmorvan/cadence/internal/icons"
	"github.com/tmorvan/cadence/internal/session"
	"github.com/tmorvan/cadence/internal/ui/render"
	"github.com/tmorvan/cadence/internal/ui/styles"
)

// View renders the queue panel.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	innerWidth := max(m.width-2, 0)
	listHeight := m.listHeight()

	header := m.renderHeader(innerWidth)
	separator := render.Separator(innerWidth)
	trackList := m.renderTrackList(innerWidth, listHeight)

	content := header + "\n" + separator + "\n" + trackList

	return styles.PanelStyle(m.focused).
		Width(innerWidth).
		Render(content)
}

// renderHeader renders the queue header with the engine's summary text
// right-aligned when present.
func (m Model) renderHeader(innerWidth int) string {
	playingIdx := m.playingIndex()
	left := fmt.Sprintf("Queue (%d/%d)", playingIdx+1, len(m.tracks))
	if playingIdx < 0 {
		left = fmt.Sprintf("Queue (%d)", len(m.tracks))
	}

	// The summary strings are engine-rendered; shown verbatim.
	right := m.summary.QueuedText
	if m.summary.SelectedText != "" {
		right = m.summary.SelectedText
	}
	right = render.Truncate(right, innerWidth/2)

	line := render.Row(render.Truncate(left, innerWidth/2), right, innerWidth)
	return styles.T().S().Title.Render(line)
}

func (m Model) renderTrackList(innerWidth, listHeight int) string {
	lines := make([]string, 0, listHeight)
	for i := 0; i < listHeight; i++ {
		idx := i + m.offset
		if idx >= len(m.tracks) {
			lines = append(lines, render.EmptyLine(innerWidth))
			continue
		}
		lines = append(lines, m.renderTrackLine(m.tracks[idx], idx, innerWidth))
	}
	return strings.Join(lines, "\n")
}

// renderTrackLine renders one entry: marker, title, artist, duration.
func (m Model) renderTrackLine(track session.QueueTrack, idx, width int) string {
	prefix := "  "
	switch {
	case track.IsPlaying:
		prefix = icons.Play() + " "
	case track.IsNextUp:
		prefix = icons.NextUp() + " "
	}

	// Duration labels come preformatted from the engine.
	suffix := " " + track.DurationLabel

	contentWidth := width - lipgloss.Width(prefix) - lipgloss.Width(suffix)
	titleWidth := contentWidth / 2
	artistWidth := contentWidth - titleWidth

	title := render.TruncateAndPad(track.Title, titleWidth)
	artist := render.TruncateAndPad(track.Artist, artistWidth)

	return m.trackStyle(track, idx).Render(prefix + title + artist + suffix)
}

func (m Model) trackStyle(track session.QueueTrack, idx int) lipgloss.Style {
	s := styles.T().S()
	isCursor := idx == m.cursor && m.focused

	switch {
	case isCursor && track.IsPlaying:
		return s.Cursor.Inherit(s.Playing)
	case isCursor:
		return s.Cursor
	case track.IsPlaying:
		return s.Playing
	case track.IsNextUp:
		return s.NextUp
	default:
		return s.Base
	}
}

func (m Model) playingIndex() int {
	for i, t := range m.tracks {
		if t.IsPlaying {
			return i
		}
	}
	return -1
}
