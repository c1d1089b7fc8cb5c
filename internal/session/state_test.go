package session

import (
	"testing"

	"github.com/tmorvan/cadence/internal/engine"
)

func TestRepeatModeString(t *testing.T) {
	tests := []struct {
		mode RepeatMode
		want string
	}{
		{RepeatOff, "Off"},
		{RepeatAll, "All"},
		{RepeatOne, "One"},
		{RepeatMode(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("RepeatMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestParseRepeatMode(t *testing.T) {
	tests := []struct {
		in   string
		want RepeatMode
	}{
		{"off", RepeatOff},
		{"all", RepeatAll},
		{"one", RepeatOne},
		{"", RepeatOff},
		{"garbage", RepeatOff},
	}
	for _, tt := range tests {
		if got := parseRepeatMode(tt.in); got != tt.want {
			t.Errorf("parseRepeatMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-10, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{140, 100},
	}
	for _, tt := range tests {
		if got := clampVolume(tt.in); got != tt.want {
			t.Errorf("clampVolume(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPlayerStateFromPayload(t *testing.T) {
	t.Run("with track", func(t *testing.T) {
		st := playerStateFromPayload(engine.PlayerStatePayload{
			IsPlaying:  true,
			RepeatMode: "all",
			Volume:     120,
			CurrentTrack: &engine.TrackPayload{
				ID:              "t1",
				Title:           "Aja",
				Artist:          "Steely Dan",
				DurationSeconds: 478,
			},
		})
		if !st.IsPlaying || st.RepeatMode != RepeatAll {
			t.Errorf("transport flags wrong: %+v", st)
		}
		if st.Volume != 100 {
			t.Errorf("Volume = %d, want clamped 100", st.Volume)
		}
		if st.CurrentTrack == nil || st.CurrentTrack.ID != "t1" {
			t.Fatalf("CurrentTrack = %+v", st.CurrentTrack)
		}
		if st.DurationSeconds != 478 {
			t.Errorf("DurationSeconds = %v, want 478", st.DurationSeconds)
		}
		if st.CurrentTimeSeconds != 0 {
			t.Errorf("CurrentTimeSeconds = %v, want 0", st.CurrentTimeSeconds)
		}
	})

	t.Run("without track", func(t *testing.T) {
		st := playerStateFromPayload(engine.PlayerStatePayload{RepeatMode: "one"})
		if st.CurrentTrack != nil {
			t.Error("CurrentTrack should be nil")
		}
		if st.DurationSeconds != 0 {
			t.Errorf("DurationSeconds = %v, want 0", st.DurationSeconds)
		}
		if st.RepeatMode != RepeatOne {
			t.Errorf("RepeatMode = %v, want RepeatOne", st.RepeatMode)
		}
	})
}

func TestQueueFromPayload_NextUpDerivation(t *testing.T) {
	tests := []struct {
		name       string
		tracks     []engine.QueueTrackPayload
		wantNextUp int // index, -1 for none
	}{
		{
			name: "middle entry playing",
			tracks: []engine.QueueTrackPayload{
				{ID: "a"},
				{ID: "b", IsPlaying: true},
				{ID: "c"},
			},
			wantNextUp: 2,
		},
		{
			name: "last entry playing",
			tracks: []engine.QueueTrackPayload{
				{ID: "a"},
				{ID: "b", IsPlaying: true},
			},
			wantNextUp: -1,
		},
		{
			name:       "nothing playing",
			tracks:     []engine.QueueTrackPayload{{ID: "a"}, {ID: "b"}},
			wantNextUp: -1,
		},
		{
			name:       "empty queue",
			tracks:     nil,
			wantNextUp: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracks, _ := queueFromPayload(engine.QueuePayload{Tracks: tt.tracks})
			for i, tr := range tracks {
				want := i == tt.wantNextUp
				if tr.IsNextUp != want {
					t.Errorf("tracks[%d].IsNextUp = %v, want %v", i, tr.IsNextUp, want)
				}
			}
		})
	}
}

func TestQueueFromPayload_Summary(t *testing.T) {
	_, summary := queueFromPayload(engine.QueuePayload{
		Summary: &engine.QueueSummaryPayload{
			SelectedText: "Selected: 2 albums",
			QueuedText:   "Queued: 1:17:03",
		},
	})
	if summary.SelectedText != "Selected: 2 albums" || summary.QueuedText != "Queued: 1:17:03" {
		t.Errorf("summary = %+v", summary)
	}

	_, summary = queueFromPayload(engine.QueuePayload{})
	if summary != (QueueSummary{}) {
		t.Errorf("summary = %+v, want zero value when payload has none", summary)
	}
}
