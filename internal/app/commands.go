package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// WatchSessionEvents returns a command that waits for the next session
// event and converts it to a tea.Msg. Update re-arms it after every
// delivered event.
func (m Model) WatchSessionEvents() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	sub := m.sub
	return func() tea.Msg {
		select {
		case e := <-sub.PlayerChanged:
			return PlayerChangedMsg(e)
		case e := <-sub.PositionChanged:
			return PositionChangedMsg(e)
		case e := <-sub.QueueChanged:
			return QueueChangedMsg(e)
		case e := <-sub.DetailChanged:
			return DetailChangedMsg(e)
		case e := <-sub.ConnChanged:
			return ConnChangedMsg(e)
		case e := <-sub.Error:
			return SessionErrorMsg(e)
		case <-sub.Done:
			return SessionClosedMsg{}
		}
	}
}

// ClearStatusCmd clears the error line after a few seconds.
func ClearStatusCmd() tea.Cmd {
	return tea.Tick(5*time.Second, func(_ time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
