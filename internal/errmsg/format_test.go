//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpConnect,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpConnect,
			err:      errors.New("connection refused"),
			expected: "Failed to connect to playback engine: connection refused",
		},
		{
			name:     "state fetch operation",
			op:       OpFetchState,
			err:      errors.New("timeout"),
			expected: "Failed to fetch player state: timeout",
		},
		{
			name:     "volume intent",
			op:       OpSetVolume,
			err:      errors.New("not connected"),
			expected: "Failed to change volume: not connected",
		},
		{
			name:     "seek intent",
			op:       OpSeek,
			err:      errors.New("not connected"),
			expected: "Failed to seek: not connected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpFetchDetails,
			context:  "track-42",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpFetchDetails,
			context:  "track-42",
			err:      errors.New("not found"),
			expected: "Failed to fetch track details 'track-42': not found",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpFetchDetails,
			context:  "",
			err:      errors.New("not found"),
			expected: "Failed to fetch track details: not found",
		},
		{
			name:     "play from queue with track context",
			op:       OpPlayFromQueue,
			context:  "track-7",
			err:      errors.New("not connected"),
			expected: "Failed to play track from queue 'track-7': not connected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	// Verify that Op constants are non-empty and produce valid messages
	ops := []Op{
		OpConnect, OpFetchState,
		OpPlayPause, OpSkipNext, OpSkipPrevious,
		OpToggleShuffle, OpToggleRepeat,
		OpSeek, OpSetVolume, OpToggleMute, OpPlayFromQueue,
		OpFetchDetails,
		OpSettingsLoad, OpSettingsSave,
		OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			result := Format(op, testErr)
			if result == "" {
				t.Error("Format should return non-empty string for non-nil error")
			}

			expected := "Failed to " + string(op) + ": test error"
			if result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
