package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play       string
	Pause      string
	Shuffle    string
	RepeatAll  string
	RepeatOne  string
	VolumeHigh string
	VolumeLow  string
	VolumeMute string
	NextUp     string
}

var (
	nerdIcons = Icons{
		Play:       "", // nf-fa-play
		Pause:      "", // nf-fa-pause
		Shuffle:    "󰒟",      // nf-md-shuffle
		RepeatAll:  "󰑖",      // nf-md-repeat
		RepeatOne:  "󰑘",      // nf-md-repeat_once
		VolumeHigh: "󰕾",      // nf-md-volume_high
		VolumeLow:  "󰖀",      // nf-md-volume_medium
		VolumeMute: "󰖁",      // nf-md-volume_mute
		NextUp:     "󰒭",      // nf-md-skip_next
	}

	unicodeIcons = Icons{
		Play:       "▶",
		Pause:      "⏸",
		Shuffle:    "🔀",
		RepeatAll:  "🔁",
		RepeatOne:  "🔂",
		VolumeHigh: "🔊",
		VolumeLow:  "🔉",
		VolumeMute: "🔇",
		NextUp:     "⏭",
	}

	noneIcons = Icons{
		Play:       ">",
		Pause:      "||",
		Shuffle:    "[S]",
		RepeatAll:  "[R]",
		RepeatOne:  "[1]",
		VolumeHigh: "vol",
		VolumeLow:  "vol",
		VolumeMute: "mut",
		NextUp:     ">>",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Play returns the playing indicator.
func Play() string {
	return current.Play
}

// Pause returns the paused indicator.
func Pause() string {
	return current.Pause
}

// Shuffle returns the shuffle icon.
func Shuffle() string {
	return current.Shuffle
}

// RepeatAll returns the repeat all icon.
func RepeatAll() string {
	return current.RepeatAll
}

// RepeatOne returns the repeat one icon.
func RepeatOne() string {
	return current.RepeatOne
}

// VolumeHigh returns the loud volume icon.
func VolumeHigh() string {
	return current.VolumeHigh
}

// VolumeLow returns the quiet volume icon.
func VolumeLow() string {
	return current.VolumeLow
}

// VolumeMute returns the muted icon.
func VolumeMute() string {
	return current.VolumeMute
}

// NextUp returns the next-up queue marker.
func NextUp() string {
	return current.NextUp
}
