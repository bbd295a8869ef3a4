// Package load imports a question file into the running app after
// validating it against the question schema.
package load

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/pool"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/quiz"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/screen"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/components"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/layout"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/theme"
)

// LoadScreen prompts for a question-file path and swaps the pool in.
type LoadScreen struct {
	ctrl   *quiz.Controller
	input  components.TextInput
	status string
	failed bool
}

var _ screen.Screen = (*LoadScreen)(nil)
var _ screen.KeyHintProvider = (*LoadScreen)(nil)

// New creates the question-file loader screen.
func New(ctrl *quiz.Controller) *LoadScreen {
	return &LoadScreen{
		ctrl:  ctrl,
		input: components.NewTextInput("/path/to/questions.json", 200),
	}
}

func (s *LoadScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *LoadScreen) Title() string {
	return "Load Questions"
}

func (s *LoadScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Load file"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LoadScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		s.loadFile(strings.TrimSpace(s.input.Value()))
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *LoadScreen) loadFile(path string) {
	if path == "" {
		return
	}
	questions, err := pool.LoadFile(path)
	if err != nil {
		s.failed = true
		s.status = err.Error()
		s.input.Submit(false)
		return
	}
	p := pool.NewStderr(questions)
	if err := s.ctrl.ReplacePool(p); err != nil {
		s.failed = true
		s.status = err.Error()
		s.input.Submit(false)
		return
	}
	s.failed = false
	s.status = fmt.Sprintf("Loaded %d questions in %d categories.", p.Len(), len(p.Categories()))
	s.input.Submit(true)
}

func (s *LoadScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Import a JSON question file"))
	b.WriteString("\n\n")
	b.WriteString("  Path: " + s.input.View())
	b.WriteString("\n\n")

	if s.status != "" {
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if s.failed {
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		b.WriteString("  " + style.Render(s.status))
		b.WriteString("\n")
	} else {
		b.WriteString(theme.Hint.Render("  Files must hold an array of questions: text, options, correct_index, category."))
		b.WriteString("\n")
	}

	return b.String()
}
