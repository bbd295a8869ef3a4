package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestProgressBarView(t *testing.T) {
	t.Run("percent readout", func(t *testing.T) {
		out := NewProgressBar("Commands", 1, true, 40).View()
		if !strings.Contains(out, "100%") {
			t.Errorf("View() = %q, want a 100%% readout", out)
		}
		if !strings.Contains(out, "Commands") {
			t.Errorf("View() = %q, want the label rendered", out)
		}
	})

	t.Run("ratio clamped to the track", func(t *testing.T) {
		want := lipgloss.Width(NewProgressBar("", 1, false, 20).View())
		for _, pct := range []float64{2.0, -1.0} {
			got := lipgloss.Width(NewProgressBar("", pct, false, 20).View())
			if got != want {
				t.Errorf("percent %v rendered %d cells, want %d", pct, got, want)
			}
		}
	})

	t.Run("track keeps a minimum width", func(t *testing.T) {
		got := lipgloss.Width(NewProgressBar("", 0.5, false, 2).View())
		if got < 4 {
			t.Errorf("narrow bar rendered %d cells, want at least 4", got)
		}
	})
}
