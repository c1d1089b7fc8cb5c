// Package app contains the top-level TUI model wiring the playback
// session to the panels.
package app

import (
	"github.com/tmorvan/cadence/internal/session"
)

// PlayerChangedMsg wraps a player slice change from the session.
type PlayerChangedMsg session.PlayerChange

// PositionChangedMsg wraps a playback position update.
type PositionChangedMsg session.PositionChange

// QueueChangedMsg wraps a queue replacement.
type QueueChangedMsg session.QueueChange

// DetailChangedMsg wraps a focused-track detail change.
type DetailChangedMsg session.DetailChange

// ConnChangedMsg wraps an engine connection state change.
type ConnChangedMsg session.ConnChange

// SessionErrorMsg wraps a non-fatal session error.
type SessionErrorMsg session.ErrorEvent

// SessionClosedMsg is sent when the session subscription closes.
type SessionClosedMsg struct{}

// clearStatusMsg clears the transient error line.
type clearStatusMsg struct{}
