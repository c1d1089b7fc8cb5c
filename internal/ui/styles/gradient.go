package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// TitleGradient renders the focused-track title with a horizontal color
// sweep from the primary to the secondary accent.
func TitleGradient(text string) string {
	return Gradient(text, defaultTheme.Primary, defaultTheme.Secondary)
}

// Gradient renders text blending from one hex color to another.
// Blending runs in HCL space for perceptually even steps. Non-hex
// colors fall back to a flat render.
func Gradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	c1, err1 := colorful.Hex(string(from))
	c2, err2 := colorful.Hex(string(to))
	if err1 != nil || err2 != nil {
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	// Grapheme clusters, not runes: combining marks stay with their base.
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) < 2 {
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	var b strings.Builder
	for i, cluster := range clusters {
		t := float64(i) / float64(len(clusters)-1)
		hex := c1.BlendHcl(c2, t).Clamped().Hex()
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(hex)).
			Bold(true).
			Render(cluster))
	}
	return b.String()
}
