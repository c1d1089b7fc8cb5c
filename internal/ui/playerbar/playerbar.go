// Package playerbar renders the transport bar: track line, progress
// bar, volume readout and mode icons.
package playerbar

import (
	"strings"

	"github.com/tmorvan/cadence/internal/icons"
	"github.com/tmorvan/cadence/internal/session"
	"github.com/tmorvan/cadence/internal/ui/render"
	"github.com/tmorvan/cadence/internal/ui/styles"
)

// Height is the rendered height including borders.
const Height = 4

// State holds everything needed to render the player bar.
type State struct {
	Playing   bool
	HasTrack  bool
	Title     string
	Artist    string
	Position  float64
	Duration  float64
	Volume    int
	Muted     bool
	Shuffle   bool
	Repeat    session.RepeatMode
	Connected bool
}

// NewState builds the render state from a player snapshot.
func NewState(p session.PlayerState, connected bool) State {
	s := State{
		Playing:   p.IsPlaying,
		HasTrack:  p.HasTrack(),
		Position:  p.CurrentTimeSeconds,
		Duration:  p.DurationSeconds,
		Volume:    p.Volume,
		Muted:     p.IsMuted,
		Shuffle:   p.IsShuffleActive,
		Repeat:    p.RepeatMode,
		Connected: connected,
	}
	if p.CurrentTrack != nil {
		s.Title = p.CurrentTrack.Title
		s.Artist = p.CurrentTrack.Artist
	}
	return s
}

// Render returns the player bar for the given width.
func Render(s State, width int) string {
	innerWidth := max(width-2, 0)

	var top string
	if !s.HasTrack {
		idle := "Nothing playing"
		if !s.Connected {
			idle = "Connecting to engine..."
		}
		top = styles.T().S().Muted.Render(render.TruncateAndPad(idle, innerWidth))
	} else {
		top = renderTrackLine(s, innerWidth)
	}

	bottom := render.Row(
		RenderProgressBar(s.Position, s.Duration, innerWidth-volumeWidth()-2, s.Playing),
		RenderVolumeCompact(s.Volume, s.Muted),
		innerWidth,
	)

	return styles.PanelStyle(false).
		Width(innerWidth).
		Render(top + "\n" + bottom)
}

// renderTrackLine renders "title — artist" with mode icons right-aligned.
func renderTrackLine(s State, width int) string {
	modeIcons, modeWidth := renderModeIcons(s)

	title := render.Sanitize(s.Title)
	if title == "" {
		title = "Unknown Track"
	}
	left := styles.TitleGradient(render.Truncate(title, width/2))
	if s.Artist != "" {
		left += styles.T().S().Muted.Render(
			"  " + render.Truncate(render.Sanitize(s.Artist), width/2-modeWidth-2))
	}

	return render.Row(left, modeIcons, width)
}

// renderModeIcons returns the styled shuffle/repeat icons and their width.
func renderModeIcons(s State) (styled string, width int) {
	var parts []string

	if s.Shuffle {
		parts = append(parts, icons.Shuffle())
	}

	switch s.Repeat {
	case session.RepeatOff:
		// No icon for repeat off
	case session.RepeatAll:
		parts = append(parts, icons.RepeatAll())
	case session.RepeatOne:
		parts = append(parts, icons.RepeatOne())
	}

	if !s.Connected {
		parts = append(parts, "offline")
	}

	if len(parts) == 0 {
		return "", 0
	}

	raw := strings.Join(parts, "  ")
	styled = styles.T().S().Subtle.Render(raw)
	return styled, len([]rune(raw))
}
