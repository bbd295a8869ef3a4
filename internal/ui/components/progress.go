package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/theme"
)

// ProgressBar renders a single-line accuracy or category-mastery bar.
// Percent is a ratio in [0, 1]; values outside that range are clamped.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar builds a bar sized to fit within width cells, label
// and percentage readout included.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the bar as label, filled and empty track segments, and
// an optional trailing percentage.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	// Reserve room for the widest readout, "  100%".
	reserved := lipgloss.Width(b.String())
	if p.ShowPercent {
		reserved += 6
	}
	track := p.Width - reserved
	if track < 4 {
		track = 4
	}

	filled := int(float64(track) * p.Percent)
	switch {
	case filled < 0:
		filled = 0
	case filled > track:
		filled = track
	}

	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", track-filled)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100))))
	}

	return b.String()
}
