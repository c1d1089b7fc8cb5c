// Package trackinfo renders the focused-track detail sidebar: rich
// metadata, format details and lyrics for whatever is playing.
package trackinfo

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmorvan/cadence/internal/format"
	"github.com/tmorvan/cadence/internal/session"
	"github.com/tmorvan/cadence/internal/ui/render"
	"github.com/tmorvan/cadence/internal/ui/styles"
)

// Model represents the track detail sidebar.
type Model struct {
	detail  *session.DetailedTrackInfo
	loading bool
	width   int
	height  int
	focused bool
	scroll  int
}

// New creates an empty sidebar model.
func New() Model {
	return Model{}
}

// SetDetail replaces the displayed detail. A nil detail shows the
// empty state.
func (m *Model) SetDetail(d *session.DetailedTrackInfo) {
	m.detail = d
	m.loading = false
	m.scroll = 0
}

// SetLoading marks a fetch in flight for a newly focused track.
func (m *Model) SetLoading() {
	m.loading = true
	m.scroll = 0
}

// SetFocused sets whether the panel is focused.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// IsFocused returns whether the panel is focused.
func (m Model) IsFocused() bool {
	return m.focused
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles scrolling through long lyrics.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		m.scroll++
	case "k", "up":
		if m.scroll > 0 {
			m.scroll--
		}
	case "g":
		m.scroll = 0
	}
	return m, nil
}

// View renders the sidebar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	innerWidth := max(m.width-2, 0)
	innerHeight := max(m.height-2, 0)

	lines := m.contentLines(innerWidth)

	// Clamp scroll so the last page stays full.
	maxScroll := max(len(lines)-innerHeight, 0)
	scroll := min(m.scroll, maxScroll)

	visible := make([]string, 0, innerHeight)
	for i := 0; i < innerHeight; i++ {
		idx := i + scroll
		if idx < len(lines) {
			visible = append(visible, lines[idx])
		} else {
			visible = append(visible, render.EmptyLine(innerWidth))
		}
	}

	return styles.PanelStyle(m.focused).
		Width(innerWidth).
		Render(strings.Join(visible, "\n"))
}

func (m Model) contentLines(width int) []string {
	s := styles.T().S()

	if m.loading {
		return []string{s.Muted.Render(render.TruncateAndPad("Loading details...", width))}
	}
	if m.detail == nil {
		return []string{s.Muted.Render(render.TruncateAndPad("No track selected", width))}
	}

	d := m.detail
	var lines []string

	lines = append(lines, styles.TitleGradient(render.Truncate(d.Title, width)))
	if d.Artist != "" {
		lines = append(lines, s.Base.Render(render.TruncateAndPad(d.Artist, width)))
	}
	if d.Album != "" {
		lines = append(lines, s.Muted.Render(render.TruncateAndPad(d.Album, width)))
	}
	lines = append(lines, render.EmptyLine(width))

	fields := []struct {
		label string
		value string
	}{
		{"Year", d.Year},
		{"Genre", d.Genre},
		{"Composer", d.Composer},
		{"Format", d.FormatDetails},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		lines = append(lines, fieldLine(f.label, f.value, width))
	}
	if d.DurationSeconds > 0 {
		lines = append(lines, fieldLine("Length", format.Time(d.DurationSeconds), width))
	}

	if d.Lyrics != "" {
		lines = append(lines, render.EmptyLine(width))
		lines = append(lines, s.Title.Render(render.TruncateAndPad("Lyrics", width)))
		for _, l := range strings.Split(d.Lyrics, "\n") {
			lines = append(lines, s.Muted.Render(render.TruncateAndPad(l, width)))
		}
	}

	return lines
}

func fieldLine(label, value string, width int) string {
	s := styles.T().S()
	labelWidth := 10
	l := s.Subtle.Render(render.TruncateAndPad(label, labelWidth))
	v := s.Base.Render(render.Truncate(value, max(width-labelWidth, 0)))
	return l + v
}
