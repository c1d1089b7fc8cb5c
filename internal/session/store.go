package session

import "sync"

// Store owns the three state slices: player transport state, queue
// state, and focused-track detail. It is the single source of truth for
// rendering. Replacement is whole-slice except for the few field-level
// patches the reconciliation policy allows.
//
// Getters return copies; callers never hold references into the store.
// No operation blocks beyond the mutex.
type Store struct {
	mu      sync.RWMutex
	player  PlayerState
	queue   []QueueTrack
	summary QueueSummary
	detail  *DetailedTrackInfo
}

// NewStore creates a store holding the default loading snapshot.
func NewStore() *Store {
	return &Store{}
}

// Player returns a snapshot of the player slice.
func (s *Store) Player() PlayerState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyPlayer(s.player)
}

// SetPlayer replaces the player slice wholesale and returns the
// previous snapshot.
func (s *Store) SetPlayer(p PlayerState) PlayerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := copyPlayer(s.player)
	s.player = copyPlayer(p)
	return prev
}

// ReplacePlayerKeepTime replaces the player slice but keeps the current
// position, unless the new state has no track (then position and
// duration are already zero in p).
func (s *Store) ReplacePlayerKeepTime(p PlayerState) PlayerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := copyPlayer(s.player)
	if p.CurrentTrack != nil {
		p.CurrentTimeSeconds = s.player.CurrentTimeSeconds
	}
	s.player = copyPlayer(p)
	return prev
}

// PatchTime assigns the playback position and nothing else. This is the
// hottest write path and stays a single field assignment.
func (s *Store) PatchTime(seconds float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player.CurrentTimeSeconds = seconds
}

// PatchVolume applies an optimistic volume change.
func (s *Store) PatchVolume(volume int, muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player.Volume = clampVolume(volume)
	s.player.IsMuted = muted
}

// ToggleMute flips the mute flag and returns the new value.
func (s *Store) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.player.IsMuted = !s.player.IsMuted
	return s.player.IsMuted
}

// Queue returns snapshots of the queue slice and its summary.
func (s *Store) Queue() ([]QueueTrack, QueueSummary) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tracks := make([]QueueTrack, len(s.queue))
	copy(tracks, s.queue)
	return tracks, s.summary
}

// SetQueue replaces the queue slice and summary wholesale.
func (s *Store) SetQueue(tracks []QueueTrack, summary QueueSummary) {
	cp := make([]QueueTrack, len(tracks))
	copy(cp, tracks)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = cp
	s.summary = summary
}

// Detail returns a copy of the focused-track detail, or nil.
func (s *Store) Detail() *DetailedTrackInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.detail == nil {
		return nil
	}
	d := *s.detail
	return &d
}

// SetDetail replaces the focused-track detail.
func (s *Store) SetDetail(d *DetailedTrackInfo) {
	var cp *DetailedTrackInfo
	if d != nil {
		v := *d
		cp = &v
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detail = cp
}

// ClearDetail drops the focused-track detail.
func (s *Store) ClearDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detail = nil
}

func copyPlayer(p PlayerState) PlayerState {
	if p.CurrentTrack != nil {
		t := *p.CurrentTrack
		p.CurrentTrack = &t
	}
	return p
}
