package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/layout"
)

// Screen is one full-window view: the home menu, a running quiz, a
// summary, and so on. Screens are stacked by the router.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface screens implement to supply
// custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Leaver is an optional interface for screens that need a veto or
// cleanup step before the router pops them, such as a live quiz that
// must end its session first.
type Leaver interface {
	Leave() tea.Cmd
}
