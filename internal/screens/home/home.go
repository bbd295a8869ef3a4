// Package home is the main menu: quiz mode selection plus entry points
// to statistics, achievements, and question-file loading.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/quiz"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/router"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/screen"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/screens/awards"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/screens/category"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/screens/load"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/screens/play"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/screens/stats"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/components"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/theme"
)

// HomeScreen is the application's main menu.
type HomeScreen struct {
	ctrl   *quiz.Controller
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(ctrl *quiz.Controller) *HomeScreen {
	h := &HomeScreen{ctrl: ctrl}

	items := []components.MenuItem{
		{Label: "Practice Quiz", Hint: "untimed, pick a category", Action: func() tea.Cmd {
			return h.pickCategory(quiz.ModeStandard)
		}},
		{Label: "Verify Knowledge", Hint: "answers reviewed at the end", Action: func() tea.Cmd {
			return h.pickCategory(quiz.ModeVerify)
		}},
		{Label: "Quick Fire", Hint: "5 questions, 3 minutes", Action: func() tea.Cmd {
			return h.startQuiz(quiz.ModeQuickFire, "")
		}},
		{Label: "Mini Quiz", Hint: "3 quick questions", Action: func() tea.Cmd {
			return h.startQuiz(quiz.ModeMiniQuiz, "")
		}},
		{Label: "Daily Challenge", Hint: "one question, same for everyone today", Action: func() tea.Cmd {
			return h.startQuiz(quiz.ModeDailyChallenge, "")
		}},
		{Label: "Pop Quiz", Hint: "one random question", Action: func() tea.Cmd {
			return h.startQuiz(quiz.ModePopQuiz, "")
		}},
		{Label: "Review Incorrect", Hint: "retry the questions you missed", Action: func() tea.Cmd {
			return h.startQuiz(quiz.ModeReview, "")
		}},
		{Label: "Statistics", Action: func() tea.Cmd {
			return pushCmd(stats.New(ctrl))
		}},
		{Label: "Achievements", Action: func() tea.Cmd {
			return pushCmd(awards.New(ctrl.Ledger()))
		}},
		{Label: "Load Questions", Hint: "import a question file", Action: func() tea.Cmd {
			return pushCmd(load.New(ctrl))
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) pickCategory(mode quiz.Mode) tea.Cmd {
	return pushCmd(category.New(h.ctrl, mode))
}

func (h *HomeScreen) startQuiz(mode quiz.Mode, cat string) tea.Cmd {
	if err := h.ctrl.Start(mode, cat); err != nil {
		h.errMsg = err.Error()
		return nil
	}
	h.errMsg = ""
	return pushCmd(play.New(h.ctrl))
}

func pushCmd(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Linux+ Study"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("CompTIA Linux+ certification practice"))
	b.WriteString("\n\n")

	hist := h.ctrl.History()
	ledger := h.ctrl.Ledger()
	answered := hist.TotalAnswered()
	accuracy := 0.0
	if answered > 0 {
		accuracy = float64(hist.TotalCorrect()) / float64(answered) * 100
	}
	statsLine := fmt.Sprintf("%d questions answered   %.0f%% accuracy   %d points   %d badges",
		answered, accuracy, ledger.PointsEarned, len(ledger.Badges))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(statsLine))
	b.WriteString("\n\n")

	b.WriteString(h.menu.View())

	if review := len(hist.Review); review > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(
			fmt.Sprintf("  %d question(s) waiting in Review Incorrect", review)))
		b.WriteString("\n")
	}

	if h.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("  " + h.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}
