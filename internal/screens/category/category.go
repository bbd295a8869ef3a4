// Package category lets the player narrow a quiz to one exam domain
// before it starts.
package category

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/quiz"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/router"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/screen"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/screens/play"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/components"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/theme"
)

// CategoryScreen picks the category filter for a pending session.
type CategoryScreen struct {
	ctrl   *quiz.Controller
	mode   quiz.Mode
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*CategoryScreen)(nil)

// New builds the picker from the pool's categories.
func New(ctrl *quiz.Controller, mode quiz.Mode) *CategoryScreen {
	s := &CategoryScreen{ctrl: ctrl, mode: mode}

	items := []components.MenuItem{
		{Label: "All Categories", Action: func() tea.Cmd {
			return s.start("")
		}},
	}
	for _, cat := range ctrl.Pool().Categories() {
		items = append(items, components.MenuItem{
			Label: cat,
			Action: func() tea.Cmd {
				return s.start(cat)
			},
		})
	}

	s.menu = components.NewMenu(items)
	return s
}

// start begins the session and swaps this picker for the play screen,
// so the quiz sits directly above home on the stack.
func (s *CategoryScreen) start(cat string) tea.Cmd {
	if err := s.ctrl.Start(s.mode, cat); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: play.New(s.ctrl)}
	}
}

func (s *CategoryScreen) Init() tea.Cmd {
	return nil
}

func (s *CategoryScreen) Title() string {
	return "Choose Category"
}

func (s *CategoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *CategoryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Which area do you want to practice?"))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("  " + s.errMsg))
	}

	return b.String()
}
