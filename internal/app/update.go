package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmorvan/cadence/internal/errmsg"
	"github.com/tmorvan/cadence/internal/ui/playerbar"
	"github.com/tmorvan/cadence/internal/ui/queuepanel"
)

// Update routes messages to the session dispatcher and the panels.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case queuepanel.PlayTrackMsg:
		m.sess.PlayTrackFromQueue(msg.TrackID)
		return m, nil

	case PlayerChangedMsg:
		return m.applyPlayerChange(msg)

	case PositionChangedMsg:
		m.player.CurrentTimeSeconds = msg.Seconds
		return m, m.WatchSessionEvents()

	case QueueChangedMsg:
		m.queue.SetQueue(msg.Tracks, msg.Summary)
		return m, m.WatchSessionEvents()

	case DetailChangedMsg:
		m.detail.SetDetail(msg.Detail)
		return m, m.WatchSessionEvents()

	case ConnChangedMsg:
		m.connected = msg.Connected
		cmds := []tea.Cmd{m.WatchSessionEvents()}
		if !m.connected {
			cmds = append(cmds, m.spin.Tick)
		}
		return m, tea.Batch(cmds...)

	case SessionErrorMsg:
		m.statusErr = errmsg.Format(msg.Op, msg.Err)
		return m, tea.Batch(m.WatchSessionEvents(), ClearStatusCmd())

	case clearStatusMsg:
		m.statusErr = ""
		return m, nil

	case SessionClosedMsg:
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.toggleFocus()
		return m, nil

	case " ":
		m.sess.PlayPause()
		return m, nil
	case "n":
		m.sess.SkipNext()
		return m, nil
	case "p":
		m.sess.SkipPrevious()
		return m, nil
	case "s":
		m.sess.ToggleShuffle()
		return m, nil
	case "r":
		m.sess.ToggleRepeatMode()
		return m, nil

	case "m":
		m.sess.ToggleMute()
		return m, m.saveVolume()
	case "+", "=":
		m.sess.SetVolume(m.player.Volume + volumeStep)
		return m, m.saveVolume()
	case "-":
		m.sess.SetVolume(m.player.Volume - volumeStep)
		return m, m.saveVolume()

	case "left":
		m.sess.Seek(m.player.CurrentTimeSeconds - seekStep)
		return m, nil
	case "right":
		m.sess.Seek(m.player.CurrentTimeSeconds + seekStep)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusQueue:
		m.queue, cmd = m.queue.Update(msg)
	case focusDetail:
		m.detail, cmd = m.detail.Update(msg)
	}
	return m, cmd
}

func (m *Model) applyPlayerChange(msg PlayerChangedMsg) (tea.Model, tea.Cmd) {
	m.player = msg.Current
	m.lastSync = time.Now()

	if m.announcer != nil {
		id, title, artist := "", "", ""
		if msg.Current.CurrentTrack != nil {
			id = msg.Current.CurrentTrack.ID
			title = msg.Current.CurrentTrack.Title
			artist = msg.Current.CurrentTrack.Artist
		}
		m.announcer.TrackChanged(id, title, artist)
	}

	// A focus change means a detail fetch is in flight.
	prevID, curID := "", ""
	if msg.Previous.CurrentTrack != nil {
		prevID = msg.Previous.CurrentTrack.ID
	}
	if msg.Current.CurrentTrack != nil {
		curID = msg.Current.CurrentTrack.ID
	}
	if curID != "" && curID != prevID {
		m.detail.SetLoading()
	}

	return *m, m.WatchSessionEvents()
}

func (m *Model) toggleFocus() {
	if m.focus == focusQueue {
		m.focus = focusDetail
	} else {
		m.focus = focusQueue
	}
	m.queue.SetFocused(m.focus == focusQueue)
	m.detail.SetFocused(m.focus == focusDetail)
}

// saveVolume persists the current (post-patch) volume preference.
func (m Model) saveVolume() tea.Cmd {
	if m.settings == nil {
		return nil
	}
	p := m.sess.Store().Player()
	m.settings.SaveVolume(p.Volume, p.IsMuted)
	return nil
}

func (m *Model) layoutPanels() {
	panelHeight := max(m.height-playerbar.Height-1, 0)
	queueWidth := m.width * 3 / 5
	m.queue.SetSize(queueWidth, panelHeight)
	m.detail.SetSize(m.width-queueWidth, panelHeight)
}
