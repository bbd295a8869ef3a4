// Package stats renders lifetime performance: overall accuracy, the
// per-category breakdown, and the incorrect-review queue.
package stats

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/quiz"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/screen"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/components"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/layout"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/theme"
)

// StatsScreen is a read-only view over the history store.
type StatsScreen struct {
	ctrl *quiz.Controller
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the statistics screen.
func New(ctrl *quiz.Controller) *StatsScreen {
	// Questions may have been edited out of the pool since the review
	// keys were flagged.
	ctrl.History().PruneReview(ctrl.Pool().Contains)
	return &StatsScreen{ctrl: ctrl}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	hist := s.ctrl.History()
	var b strings.Builder

	answered := hist.TotalAnswered()
	correct := hist.TotalCorrect()
	accuracy := 0.0
	if answered > 0 {
		accuracy = float64(correct) / float64(answered)
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("  Overall: %d answered, %d correct", answered, correct)))
	b.WriteString("\n\n")
	b.WriteString("  " + components.NewProgressBar("Accuracy", accuracy, true, width-8).View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  By category"))
	b.WriteString("\n")

	cats := make([]string, 0, len(hist.Categories))
	for cat := range hist.Categories {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	if len(cats) == 0 {
		b.WriteString(theme.Hint.Render("  Nothing yet. Answer some questions first."))
		b.WriteString("\n")
	}
	for _, cat := range cats {
		rec := hist.Categories[cat]
		line := fmt.Sprintf("  %-40s %4d answered  %5.1f%%", cat, rec.Attempts, rec.Accuracy()*100)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  Review queue"))
	b.WriteString("\n")
	keys := hist.ReviewKeys()
	if len(keys) == 0 {
		b.WriteString(theme.Hint.Render("  Empty. Questions you miss land here until you get them right."))
		b.WriteString("\n")
	}
	for _, key := range keys {
		rec := hist.Questions[key]
		acc := 0.0
		if rec != nil {
			acc = rec.Accuracy() * 100
		}
		text := key
		if maxLen := width - 16; maxLen > 3 && len(text) > maxLen {
			text = text[:maxLen-3] + "..."
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("  %5.1f%%  %s", acc, text)))
		b.WriteString("\n")
	}

	return b.String()
}
