// Package engine defines the boundary with the remote playback engine:
// the wire payloads it emits, the intents and queries it accepts, and
// the Client contract transports implement.
//
// The engine is the sole writer of authoritative playback truth. This
// package makes no delivery guarantees beyond what the transport gives:
// pushes may arrive reordered relative to other channels, and intents
// are fire-and-forget.
package engine

import (
	"context"
	"errors"
)

// Sentinel errors transports return to callers.
var (
	// ErrNotConnected is returned when an intent or query is issued
	// while the transport has no live connection to the engine.
	ErrNotConnected = errors.New("engine: not connected")

	// ErrNotFound is returned by TrackDetails when the engine does not
	// know the requested track.
	ErrNotFound = errors.New("engine: track not found")
)

// TrackPayload is the engine's minimal track reference, nested inside
// a player state payload. Absence of the whole object means nothing is
// playing.
type TrackPayload struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Artist          string  `json:"artist"`
	AlbumArtURL     string  `json:"albumArtUrl,omitempty"`
	DurationSeconds float64 `json:"durationSeconds,omitempty"`
}

// PlayerStatePayload is the engine's transport snapshot. State pushes
// fire on discrete transitions (track change, pause); they are not the
// time cadence. CurrentTimeSeconds is a pointer so a payload can omit
// it entirely, in which case the client keeps whatever position the
// dedicated time channel last delivered.
type PlayerStatePayload struct {
	IsPlaying          bool          `json:"isPlaying"`
	IsShuffleActive    bool          `json:"isShuffleActive"`
	RepeatMode         string        `json:"repeatMode"` // "off", "all", "one"
	CurrentTrack       *TrackPayload `json:"currentTrack"`
	CurrentTimeSeconds *float64      `json:"currentTimeSeconds,omitempty"`
	Volume             int           `json:"volume"` // 0-100
	IsMuted            bool          `json:"isMuted"`
}

// QueueTrackPayload is one entry of the pending-play list.
type QueueTrackPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	AlbumArtURL string `json:"albumArtUrl,omitempty"`
	Duration    string `json:"duration"` // preformatted "M:SS" label
	IsPlaying   bool   `json:"isPlaying"`
}

// QueueSummaryPayload carries the engine's aggregate description of the
// queue. Both strings are opaque to the client and rendered verbatim.
type QueueSummaryPayload struct {
	SelectedText string `json:"selectedText"`
	QueuedText   string `json:"queuedText"`
}

// QueuePayload replaces the whole queue slice on arrival.
type QueuePayload struct {
	Tracks  []QueueTrackPayload  `json:"tracks"`
	Summary *QueueSummaryPayload `json:"summary,omitempty"`
}

// TimePayload is the high-frequency position update. It carries exactly
// one field and must stay that cheap to apply.
type TimePayload struct {
	CurrentTimeSeconds float64 `json:"currentTimeSeconds"`
}

// ApplicationState is the answer to the one-shot startup query.
type ApplicationState struct {
	Player PlayerStatePayload `json:"player"`
	Queue  QueuePayload       `json:"queue"`
}

// DetailedTrackInfo is the rich metadata returned by the track details
// query. Empty strings mean the engine has no value for the field.
type DetailedTrackInfo struct {
	Title            string  `json:"title"`
	Artist           string  `json:"artist"`
	Album            string  `json:"album"`
	Year             string  `json:"year,omitempty"`
	Genre            string  `json:"genre,omitempty"`
	Composer         string  `json:"composer,omitempty"`
	FormatDetails    string  `json:"formatDetails,omitempty"`
	Lyrics           string  `json:"lyrics,omitempty"`
	DurationSeconds  float64 `json:"durationSeconds,omitempty"`
	LargeAlbumArtURL string  `json:"largeAlbumArtUrl,omitempty"`
}

// Client is the contract a transport to the playback engine fulfills.
//
// Intent methods return only delivery errors; the engine never answers
// them directly. Its reaction, if any, arrives later on a push channel.
type Client interface {
	// Intents (fire-and-forget)
	PlayPause(ctx context.Context) error
	SkipNext(ctx context.Context) error
	SkipPrevious(ctx context.Context) error
	ToggleShuffle(ctx context.Context) error
	ToggleRepeatMode(ctx context.Context) error
	Seek(ctx context.Context, positionSeconds float64) error
	SetVolume(ctx context.Context, volume int) error
	ToggleMute(ctx context.Context) error
	PlayTrackFromQueue(ctx context.Context, trackID string) error

	// Queries (request/response, awaited once per call)
	ApplicationState(ctx context.Context) (*ApplicationState, error)
	TrackDetails(ctx context.Context, trackID string) (*DetailedTrackInfo, error)

	// Subscribe registers a new push subscription. Subscriptions live
	// until the client is closed.
	Subscribe() *Subscription

	Close() error
}
