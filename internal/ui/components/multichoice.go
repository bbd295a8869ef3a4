package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/theme"
)

const optionLabels = "ABCDEFGH"

// MultiChoice is a multiple-choice answer selector. After submission it
// locks; with Reveal set it also recolors the options to show the
// correct answer.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int

	// Reveal controls whether a submitted view shows the verdict.
	// Deferred-feedback flows clear it so only the chosen option is
	// marked, with no hint of right or wrong.
	Reveal bool
}

// NewMultiChoice creates a selector for one question. The verdict is
// revealed on submission unless the caller clears Reveal.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
		Reveal:       true,
	}
}

// Update handles navigation and selection. Options can also be chosen
// directly by their letter or number.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenIndex = m.Selected
	default:
		if i := optionIndex(key, len(m.Options)); i >= 0 {
			m.Selected = i
			m.Submitted = true
			m.ChosenIndex = i
		}
	}

	return m, nil
}

// optionIndex maps a pressed key to an option index, or -1.
func optionIndex(key string, count int) int {
	if len(key) != 1 {
		return -1
	}
	c := key[0]
	switch {
	case c >= '1' && c <= '9':
		if i := int(c - '1'); i < count {
			return i
		}
	case c >= 'a' && c <= 'z':
		if i := int(c - 'a'); i < count && i < len(optionLabels) {
			return i
		}
	}
	return -1
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	for i, opt := range m.Options {
		label := "?"
		if i < len(optionLabels) {
			label = string(optionLabels[i])
		}
		marked := i == m.Selected && !m.Submitted
		if m.Submitted && !m.Reveal && i == m.ChosenIndex {
			marked = true
		}
		prefix := "  "
		if marked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case m.Submitted && m.Reveal && i == m.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case m.Submitted && m.Reveal && i == m.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Submitted && m.Reveal:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case marked:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect reports whether the submitted choice was right.
func (m MultiChoice) IsCorrect() bool {
	return m.Submitted && m.ChosenIndex == m.CorrectIndex
}
