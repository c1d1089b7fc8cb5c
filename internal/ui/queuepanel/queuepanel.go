// Package queuepanel renders the pending-play list with its playing
// and next-up markers.
package queuepanel

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmorvan/cadence/internal/session"
)

// PlayTrackMsg is sent when the user selects a queue entry to play.
type PlayTrackMsg struct {
	TrackID string
}

// Model represents the queue panel state.
type Model struct {
	tracks  []session.QueueTrack
	summary session.QueueSummary
	cursor  int
	offset  int
	width   int
	height  int
	focused bool
}

// New creates an empty queue panel model.
func New() Model {
	return Model{}
}

// SetQueue replaces the displayed queue.
func (m *Model) SetQueue(tracks []session.QueueTrack, summary session.QueueSummary) {
	m.tracks = tracks
	m.summary = summary
	if m.cursor >= len(tracks) {
		m.cursor = max(len(tracks)-1, 0)
	}
	m.ensureCursorVisible()
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
	m.ensureCursorVisible()
}

// Update handles messages for the queue panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g":
		m.cursor = 0
		m.offset = 0
	case "G":
		if len(m.tracks) > 0 {
			m.cursor = len(m.tracks) - 1
			m.ensureCursorVisible()
		}
	case "enter":
		if m.cursor < len(m.tracks) {
			id := m.tracks[m.cursor].ID
			return m, func() tea.Msg {
				return PlayTrackMsg{TrackID: id}
			}
		}
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if len(m.tracks) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.tracks) {
		m.cursor = len(m.tracks) - 1
	}
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	h := m.listHeight()
	if h <= 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

// listHeight is the number of track rows inside the borders, header
// and separator.
func (m Model) listHeight() int {
	return max(m.height-4, 0)
}
