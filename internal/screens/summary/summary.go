// Package summary displays the end-of-session report, including the
// verify-mode answer review when the session recorded one.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/achievements"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/quiz"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/router"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/screen"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/layout"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/theme"
)

// SummaryScreen displays the finished session.
type SummaryScreen struct {
	result *quiz.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(result *quiz.Summary) *SummaryScreen {
	return &SummaryScreen{result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.result
	if res == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	if res.Total == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No questions answered this time."))
		b.WriteString("\n")
		return b.String()
	}

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		res.Total, res.Score, res.Accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	pointsLine := fmt.Sprintf("Session points: %+d        Lifetime points: %d",
		res.SessionPoints, res.TotalPoints)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(pointsLine))
	b.WriteString("\n")

	for _, badge := range res.NewBadges {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.BadgeNew.Render(achievements.Description(badge))))
	}
	b.WriteString("\n")

	if res.Verify != nil {
		b.WriteString(s.renderVerify(width, res.Verify))
	}

	return b.String()
}

// renderVerify lists every verify-mode answer with its verdict.
func (s *SummaryScreen) renderVerify(width int, v *quiz.VerifyResult) string {
	var b strings.Builder

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Answer Review")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for i, a := range v.Answers {
		verdict := theme.Correct.Render("✓")
		if !a.Correct {
			verdict = theme.Incorrect.Render("✗")
		}
		chosen := ""
		if a.ChosenIndex >= 0 && a.ChosenIndex < len(a.Question.Options) {
			chosen = a.Question.Options[a.ChosenIndex]
		}
		line := fmt.Sprintf("  %s %d. %s", verdict, i+1, a.Question.Text)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString("\n")
		if !a.Correct {
			correct := a.Question.Options[a.Question.CorrectIndex]
			detail := fmt.Sprintf("       you chose %q, correct was %q", chosen, correct)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
			b.WriteString("\n")
		}
	}

	return b.String()
}
