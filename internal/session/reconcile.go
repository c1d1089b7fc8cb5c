package session

// Reconciliation: how fetched, pushed, and optimistic state merge.
//
// Each push channel owns a disjoint part of state and every applied
// payload is last-write-wins for the fields it owns. No causal ordering
// across channels is attempted; the engine is the sole writer of
// authoritative truth and each payload is self-consistent at emission.

import "github.com/tmorvan/cadence/internal/engine"

// applyApplicationState applies the one-shot full fetch. It goes
// through the same paths as pushes so startup and reconnect-refresh
// behave identically.
func (s *Session) applyApplicationState(st *engine.ApplicationState) {
	s.applyPlayerState(st.Player)
	s.applyQueue(st.Queue)
}

// applyPlayerState replaces the whole player slice, with one exception:
// the position survives unless the payload carries an explicit time or
// no track at all. State pushes fire on discrete transitions while time
// rides its own channel; resetting the position here on every minor
// transition would make the progress bar flicker back to zero.
func (s *Session) applyPlayerState(p engine.PlayerStatePayload) {
	next := playerStateFromPayload(p)

	var prev PlayerState
	switch {
	case next.CurrentTrack == nil:
		// Nothing playing: position and duration are already zero in next.
		prev = s.store.SetPlayer(next)
	case p.CurrentTimeSeconds != nil:
		next.CurrentTimeSeconds = *p.CurrentTimeSeconds
		prev = s.store.SetPlayer(next)
	default:
		prev = s.store.ReplacePlayerKeepTime(next)
	}

	// Focus coupling: a different active track id triggers a detail
	// fetch; an absent track clears the detail panel immediately.
	newID := ""
	if next.CurrentTrack != nil {
		newID = next.CurrentTrack.ID
	}
	switch {
	case newID == "":
		if s.focusID != "" {
			s.focusID = ""
			s.store.ClearDetail()
			s.notifyDetail(nil)
		}
	case newID != s.focusID:
		s.requestDetails(newID)
	}

	s.notifyPlayer(prev, s.store.Player())
}

// applyTime assigns the position and nothing else. This is the
// highest-frequency handler; it stays one store write and one notify.
func (s *Session) applyTime(seconds float64) {
	s.store.PatchTime(seconds)
	s.notifyPosition(seconds)
}

// applyQueue replaces the queue slice and summary wholesale.
func (s *Session) applyQueue(p engine.QueuePayload) {
	tracks, summary := queueFromPayload(p)
	s.store.SetQueue(tracks, summary)
	s.notifyQueue(tracks, summary)
}
