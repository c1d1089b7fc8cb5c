// Package session keeps a local view of the remote playback engine's
// state and reconciles the three sources that feed it: the one-shot
// startup fetch, optimistic patches applied on user intent, and the
// engine's asynchronous push channels.
package session

import "github.com/tmorvan/cadence/internal/engine"

// RepeatMode defines the repeat behavior reported by the engine.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatAll
	RepeatOne
)

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOff:
		return "Off"
	case RepeatAll:
		return "All"
	case RepeatOne:
		return "One"
	default:
		return "Unknown"
	}
}

func parseRepeatMode(s string) RepeatMode {
	switch s {
	case "all":
		return RepeatAll
	case "one":
		return RepeatOne
	default:
		return RepeatOff
	}
}

// TrackRef is the minimal identity of the active track, used for queue
// highlighting and detail-fetch triggering.
type TrackRef struct {
	ID          string
	Title       string
	Artist      string
	AlbumArtURL string
}

// PlayerState is the transport snapshot the UI renders from.
//
// CurrentTimeSeconds may transiently exceed DurationSeconds during an
// optimistic seek; the next authoritative push corrects it.
type PlayerState struct {
	IsPlaying          bool
	IsShuffleActive    bool
	RepeatMode         RepeatMode
	CurrentTrack       *TrackRef
	CurrentTimeSeconds float64
	DurationSeconds    float64
	Volume             int // 0-100
	IsMuted            bool
}

// HasTrack returns true if something is playing or paused on a track.
func (s PlayerState) HasTrack() bool {
	return s.CurrentTrack != nil
}

// QueueTrack is one entry of the pending-play list. IsNextUp marks the
// entry immediately after the playing one; it is derived locally, the
// engine only sends IsPlaying.
type QueueTrack struct {
	ID            string
	Title         string
	Artist        string
	AlbumArtURL   string
	DurationLabel string
	IsPlaying     bool
	IsNextUp      bool
}

// QueueSummary holds the engine's aggregate queue description, rendered
// verbatim.
type QueueSummary struct {
	SelectedText string
	QueuedText   string
}

// DetailedTrackInfo is the rich metadata for the focused track. At most
// one is resident, matching the most recently resolved fetch for the
// most recently requested focus id.
type DetailedTrackInfo struct {
	Title            string
	Artist           string
	Album            string
	Year             string
	Genre            string
	Composer         string
	FormatDetails    string
	Lyrics           string
	DurationSeconds  float64
	LargeAlbumArtURL string
}

func clampVolume(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// playerStateFromPayload converts a wire payload into the local model.
// Time handling is the caller's job (see reconcile.go); the returned
// state carries a zero position.
func playerStateFromPayload(p engine.PlayerStatePayload) PlayerState {
	st := PlayerState{
		IsPlaying:       p.IsPlaying,
		IsShuffleActive: p.IsShuffleActive,
		RepeatMode:      parseRepeatMode(p.RepeatMode),
		Volume:          clampVolume(p.Volume),
		IsMuted:         p.IsMuted,
	}
	if p.CurrentTrack != nil {
		st.CurrentTrack = &TrackRef{
			ID:          p.CurrentTrack.ID,
			Title:       p.CurrentTrack.Title,
			Artist:      p.CurrentTrack.Artist,
			AlbumArtURL: p.CurrentTrack.AlbumArtURL,
		}
		st.DurationSeconds = p.CurrentTrack.DurationSeconds
	}
	return st
}

// queueFromPayload converts a queue payload, deriving the next-up
// marker from the playing entry.
func queueFromPayload(p engine.QueuePayload) ([]QueueTrack, QueueSummary) {
	tracks := make([]QueueTrack, len(p.Tracks))
	playingIdx := -1
	for i, t := range p.Tracks {
		tracks[i] = QueueTrack{
			ID:            t.ID,
			Title:         t.Title,
			Artist:        t.Artist,
			AlbumArtURL:   t.AlbumArtURL,
			DurationLabel: t.Duration,
			IsPlaying:     t.IsPlaying,
		}
		if t.IsPlaying && playingIdx < 0 {
			playingIdx = i
		}
	}
	if playingIdx >= 0 && playingIdx+1 < len(tracks) {
		tracks[playingIdx+1].IsNextUp = true
	}

	var summary QueueSummary
	if p.Summary != nil {
		summary = QueueSummary{
			SelectedText: p.Summary.SelectedText,
			QueuedText:   p.Summary.QueuedText,
		}
	}
	return tracks, summary
}

func detailFromPayload(d *engine.DetailedTrackInfo) *DetailedTrackInfo {
	if d == nil {
		return nil
	}
	return &DetailedTrackInfo{
		Title:            d.Title,
		Artist:           d.Artist,
		Album:            d.Album,
		Year:             d.Year,
		Genre:            d.Genre,
		Composer:         d.Composer,
		FormatDetails:    d.FormatDetails,
		Lyrics:           d.Lyrics,
		DurationSeconds:  d.DurationSeconds,
		LargeAlbumArtURL: d.LargeAlbumArtURL,
	}
}
