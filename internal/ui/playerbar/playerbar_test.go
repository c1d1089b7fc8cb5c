package playerbar

import (
	"strings"
	"testing"

	"github.com/tmorvan/cadence/internal/icons"
	"github.com/tmorvan/cadence/internal/session"
)

func TestNewState(t *testing.T) {
	p := session.PlayerState{
		IsPlaying: true,
		CurrentTrack: &session.TrackRef{
			ID:     "t1",
			Title:  "Peg",
			Artist: "Steely Dan",
		},
		CurrentTimeSeconds: 42,
		DurationSeconds:    237,
		Volume:             65,
		IsShuffleActive:    true,
	}

	s := NewState(p, true)
	if !s.Playing || !s.HasTrack || !s.Shuffle {
		t.Errorf("state = %+v", s)
	}
	if s.Title != "Peg" || s.Artist != "Steely Dan" {
		t.Errorf("track fields = %q / %q", s.Title, s.Artist)
	}
	if s.Position != 42 || s.Duration != 237 {
		t.Errorf("time fields = %v / %v", s.Position, s.Duration)
	}
}

func TestNewState_NoTrack(t *testing.T) {
	s := NewState(session.PlayerState{Volume: 50}, true)
	if s.HasTrack || s.Title != "" {
		t.Errorf("state = %+v, want empty track fields", s)
	}
}

func TestRenderProgressBar(t *testing.T) {
	icons.Init("none")
	defer icons.Init("unicode")

	bar := RenderProgressBar(65, 210, 40, true)
	if !strings.Contains(bar, "1:05") || !strings.Contains(bar, "3:30") {
		t.Errorf("bar = %q, want both time labels", bar)
	}
	if !strings.Contains(bar, filledBlock) || !strings.Contains(bar, emptyBlock) {
		t.Errorf("bar = %q, want partial fill", bar)
	}

	// Paused shows the pause marker.
	bar = RenderProgressBar(0, 210, 40, false)
	if !strings.Contains(bar, icons.Pause()) {
		t.Errorf("bar = %q, want pause marker", bar)
	}

	// Too narrow for a bar: falls back to times only.
	bar = RenderProgressBar(65, 210, 10, true)
	if strings.Contains(bar, filledBlock) {
		t.Errorf("bar = %q, want no blocks at narrow width", bar)
	}
	if !strings.Contains(bar, "1:05 / 3:30") {
		t.Errorf("bar = %q, want compact times", bar)
	}
}

func TestRenderVolumeCompact(t *testing.T) {
	icons.Init("none")
	defer icons.Init("unicode")

	out := RenderVolumeCompact(65, false)
	if !strings.Contains(out, "65%") {
		t.Errorf("volume = %q", out)
	}

	out = RenderVolumeCompact(65, true)
	if !strings.Contains(out, icons.VolumeMute()) {
		t.Errorf("muted volume = %q", out)
	}
}

func TestRenderIdle(t *testing.T) {
	out := Render(State{Connected: true}, 60)
	if !strings.Contains(out, "Nothing playing") {
		t.Errorf("idle bar = %q", out)
	}

	out = Render(State{}, 60)
	if !strings.Contains(out, "Connecting") {
		t.Errorf("disconnected bar = %q", out)
	}
}
