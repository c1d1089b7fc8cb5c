package session

import (
	"context"

	"github.com/tmorvan/cadence/internal/errmsg"
)

// Dispatcher: fire-and-forget intent methods.
//
// Intents with a simple, deterministic, latency-sensitive effect
// (volume, mute, seek) patch the store immediately so the UI responds
// before the engine confirms. Everything else (play/pause, skips,
// shuffle, repeat, queue selection) is sent without a patch: the
// resulting state depends on queue and shuffle logic the engine owns.
//
// Delivery failure is logged and surfaced as an ErrorEvent; the
// optimistic patch is never rolled back. The next authoritative push is
// the sole correction mechanism.

// PlayPause toggles playback.
func (s *Session) PlayPause() {
	s.send(errmsg.OpPlayPause, s.client.PlayPause)
}

// SkipNext advances to the next track.
func (s *Session) SkipNext() {
	s.send(errmsg.OpSkipNext, s.client.SkipNext)
}

// SkipPrevious goes back to the previous track.
func (s *Session) SkipPrevious() {
	s.send(errmsg.OpSkipPrevious, s.client.SkipPrevious)
}

// ToggleShuffle toggles shuffle mode.
func (s *Session) ToggleShuffle() {
	s.send(errmsg.OpToggleShuffle, s.client.ToggleShuffle)
}

// ToggleRepeatMode cycles the repeat mode.
func (s *Session) ToggleRepeatMode() {
	s.send(errmsg.OpToggleRepeat, s.client.ToggleRepeatMode)
}

// PlayTrackFromQueue starts playback of a queue entry.
func (s *Session) PlayTrackFromQueue(trackID string) {
	s.send(errmsg.OpPlayFromQueue, func(ctx context.Context) error {
		return s.client.PlayTrackFromQueue(ctx, trackID)
	})
}

// Seek jumps to a position. The position patch is visible immediately
// and may transiently exceed the known duration.
func (s *Session) Seek(positionSeconds float64) {
	if positionSeconds < 0 {
		positionSeconds = 0
	}
	s.store.PatchTime(positionSeconds)
	s.notifyPosition(positionSeconds)

	s.send(errmsg.OpSeek, func(ctx context.Context) error {
		return s.client.Seek(ctx, positionSeconds)
	})
}

// SetVolume sets the volume, deriving the mute flag: a non-zero volume
// unmutes, zero mutes.
func (s *Session) SetVolume(volume int) {
	volume = clampVolume(volume)
	prev := s.store.Player()
	s.store.PatchVolume(volume, volume == 0)
	s.notifyPlayer(prev, s.store.Player())

	s.send(errmsg.OpSetVolume, func(ctx context.Context) error {
		return s.client.SetVolume(ctx, volume)
	})
}

// ToggleMute flips the mute flag.
func (s *Session) ToggleMute() {
	prev := s.store.Player()
	s.store.ToggleMute()
	s.notifyPlayer(prev, s.store.Player())

	s.send(errmsg.OpToggleMute, s.client.ToggleMute)
}

// send delivers an intent off the caller's goroutine. The caller never
// waits; a delivery failure degrades to stale-until-next-push.
func (s *Session) send(op errmsg.Op, fn func(context.Context) error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), intentTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			s.log.Warn("intent delivery failed", "op", string(op), "error", err)
			s.notifyError(op, err)
		}
	}()
}
