// Package awards shows unlocked badges, progress toward locked ones,
// and the session leaderboard.
package awards

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/achievements"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/screen"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/components"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/layout"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/theme"
)

// AwardsScreen is a read-only view over the achievement ledger.
type AwardsScreen struct {
	ledger *achievements.Ledger
}

var _ screen.Screen = (*AwardsScreen)(nil)
var _ screen.KeyHintProvider = (*AwardsScreen)(nil)

// New creates the achievements screen.
func New(ledger *achievements.Ledger) *AwardsScreen {
	return &AwardsScreen{ledger: ledger}
}

func (s *AwardsScreen) Init() tea.Cmd {
	return nil
}

func (s *AwardsScreen) Title() string {
	return "Achievements"
}

func (s *AwardsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AwardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *AwardsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  Badges"))
	b.WriteString("\n")

	unlocked := s.ledger.BadgeList()
	for _, badge := range unlocked {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(
			"  " + achievements.Description(badge)))
		b.WriteString("\n")
	}
	if len(unlocked) == 0 {
		b.WriteString(theme.Hint.Render("  None yet. Badges unlock as you study."))
		b.WriteString("\n")
	}

	progress := s.ledger.ProgressTowardLocked()
	locked := lockedBadges(s.ledger)
	if len(locked) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  Still locked"))
		b.WriteString("\n")
		defs := achievements.Definitions()
		for _, badge := range locked {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("  %s — %s", badge, defs[badge])))
			b.WriteString("\n")
			if p, ok := progress[badge]; ok && p.Target > 0 {
				pct := float64(p.Current) / float64(p.Target)
				bar := components.NewProgressBar("", pct, false, min(width-24, 40))
				b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
					fmt.Sprintf("    %s %d/%d", bar.View(), p.Current, p.Target)))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  Leaderboard — best sessions"))
	b.WriteString("\n")
	if len(s.ledger.Leaderboard) == 0 {
		b.WriteString(theme.Hint.Render("  Finish a session to get on the board."))
		b.WriteString("\n")
	}
	for i, entry := range s.ledger.Leaderboard {
		line := fmt.Sprintf("  %2d.  %s   %d/%d   %5.1f%%   %d pts",
			i+1,
			entry.Date.Format("2006-01-02"),
			entry.Score, entry.Total,
			entry.Accuracy,
			entry.Points)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == 0 {
			style = theme.Streak
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// lockedBadges returns every defined badge the ledger has not unlocked,
// sorted for stable display.
func lockedBadges(ledger *achievements.Ledger) []string {
	var locked []string
	for badge := range achievements.Definitions() {
		if !ledger.Has(badge) {
			locked = append(locked, badge)
		}
	}
	sort.Strings(locked)
	return locked
}

