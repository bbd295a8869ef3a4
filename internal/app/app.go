// Package app owns the root Bubble Tea model: window sizing, the
// header/footer frame, and global key handling around the screen
// router.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/quiz"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/router"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/screen"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/screens/home"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/layout"
)

// Options carries the app's dependencies.
type Options struct {
	Controller *quiz.Controller
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctrl   *quiz.Controller
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel with the home screen on the stack.
func newAppModel(opts Options) AppModel {
	return AppModel{
		ctrl:   opts.Controller,
		router: router.New(home.New(opts.Controller)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			// Unlike Esc this bypasses screen Leave hooks, so flush any
			// running session first.
			m.ctrl.ForceEndSession()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := m.ctrl.Status()
	header := layout.RenderHeader(title, m.ctrl.Ledger().PointsEarned, status.Streak, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints prefers the active screen's hints, falling back to stack
// defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
