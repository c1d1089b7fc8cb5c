package playerbar

import (
	"fmt"

	"github.com/tmorvan/cadence/internal/format"
	"github.com/tmorvan/cadence/internal/icons"
	"github.com/tmorvan/cadence/internal/ui/styles"
)

// RenderVolumeCompact renders the volume indicator.
// Format: "🔊 100%" or "🔇 100%" when muted
func RenderVolumeCompact(volume int, muted bool) string {
	var icon string
	switch format.VolumeLevel(volume, muted) {
	case format.LevelMuted:
		icon = icons.VolumeMute()
	case format.LevelLow:
		icon = icons.VolumeLow()
	default:
		icon = icons.VolumeHigh()
	}
	return styles.T().S().Muted.Render(fmt.Sprintf("%s %3d%%", icon, volume))
}

// volumeWidth is the reserved cell width of the volume readout.
func volumeWidth() int {
	return 7
}
