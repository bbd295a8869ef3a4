package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/achievements"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/quiz"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.phase == phaseQuitConfirm:
		return renderQuitConfirm(width)
	case s.phase == phaseBreak:
		return renderBreak(width)
	case s.phase == phaseFeedback:
		return s.renderFeedback(width)
	case s.current == nil:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Picking a question...")
	default:
		return s.renderQuestion(width)
	}
}

func (s *Screen) renderQuestion(width int) string {
	var b strings.Builder

	status := s.ctrl.Status()
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", s.current.Question.Category))

	counter := fmt.Sprintf("Q %d", s.current.Number)
	if s.qf != nil {
		counter = fmt.Sprintf("Q %d/%d", s.qf.Answered+1, s.qf.Target)
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  ✓ %d  🔥 %d", counter, status.Score, status.Streak))
	if s.qf != nil {
		infoRight += "  " + renderTimer(s.qf)
	}

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(s.choice.View()))
	return b.String()
}

func renderTimer(qf *quiz.QuickFireStatus) string {
	secs := int(qf.Remaining.Seconds())
	text := fmt.Sprintf("⏱ %d:%02d", secs/60, secs%60)
	if secs <= 30 {
		return theme.TimerLow.Render(text)
	}
	return theme.Timer.Render(text)
}

func (s *Screen) renderFeedback(width int) string {
	var b strings.Builder
	res := s.result

	b.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(s.choice.View()))
	b.WriteString("\n")

	if s.ctrl.Mode() == quiz.ModeVerify {
		// No verdict, points, explanation, or badge lines in verify
		// mode. Any of those would give the answer away early.
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  Answer recorded. Results come at the end of the session."))
		b.WriteString("\n")
		return b.String()
	}

	if res.Correct {
		verdict := fmt.Sprintf("  Correct!  +%d points", res.Points)
		if res.Streak >= 2 {
			verdict += fmt.Sprintf("   🔥 %d in a row", res.Streak)
		}
		b.WriteString(theme.Correct.Render(verdict))
	} else {
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("  Incorrect  %d points", res.Points)))
	}
	b.WriteString("\n")

	if res.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Padding(0, 2).
			Width(width - 4).
			Render(res.Explanation))
		b.WriteString("\n")
	}

	for _, badge := range res.NewBadges {
		b.WriteString("\n")
		b.WriteString(theme.BadgeNew.Render("  Achievement unlocked: " + achievements.Description(badge)))
	}

	return b.String()
}

func renderBreak(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render("\n\n☕ You've been at it a while.\n\nStretch, breathe, then press any key to continue.")
}

func renderQuitConfirm(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("\n\nEnd this session?\n\nYour progress will be saved.")
}

func renderError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("\n\nSomething went wrong:\n\n" + msg + "\n\nPress any key to go back.")
}
