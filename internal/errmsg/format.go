// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Engine connection
	OpConnect    Op = "connect to playback engine"
	OpFetchState Op = "fetch player state"

	// Intents
	OpPlayPause     Op = "toggle play/pause"
	OpSkipNext      Op = "skip to next track"
	OpSkipPrevious  Op = "skip to previous track"
	OpToggleShuffle Op = "toggle shuffle"
	OpToggleRepeat  Op = "change repeat mode"
	OpSeek          Op = "seek"
	OpSetVolume     Op = "change volume"
	OpToggleMute    Op = "toggle mute"
	OpPlayFromQueue Op = "play track from queue"

	// Track details
	OpFetchDetails Op = "fetch track details"

	// Settings persistence
	OpSettingsLoad Op = "load saved settings"
	OpSettingsSave Op = "save settings"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
