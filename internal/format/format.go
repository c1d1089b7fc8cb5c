// Package format holds the pure presentation helpers shared by the UI
// panels: time labels, progress ratios and volume levels.
package format

import "fmt"

// Time renders a position or duration in seconds as "M:SS", flooring
// fractional seconds. Negative inputs render as "0:00".
func Time(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// ProgressRatio returns position/duration clamped to [0, 1]. A zero or
// negative duration yields 0 so an idle player renders an empty bar.
func ProgressRatio(position, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	r := position / duration
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// Level classifies a volume for icon selection.
type Level int

const (
	LevelMuted Level = iota
	LevelLow
	LevelHigh
)

// VolumeLevel maps a volume and mute flag to a Level. Mute wins
// regardless of the stored volume.
func VolumeLevel(volume int, muted bool) Level {
	switch {
	case muted || volume <= 0:
		return LevelMuted
	case volume > 50:
		return LevelHigh
	default:
		return LevelLow
	}
}
