// Package play is the live quiz screen: it serves questions from the
// controller, grades answers, and hands over to the summary screen when
// the session ends.
package play

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/quiz"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/router"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/screen"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/screens/summary"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/components"
	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/ui/layout"
)

type phase int

const (
	phaseQuestion phase = iota
	phaseFeedback
	phaseBreak
	phaseQuitConfirm
)

// Screen runs one quiz session. The session must already be started on
// the controller before the screen is pushed.
type Screen struct {
	ctrl    *quiz.Controller
	choice  components.MultiChoice
	current *quiz.QuestionView
	result  *quiz.AnswerResult
	qf      *quiz.QuickFireStatus
	phase   phase
	errMsg  string
	ended   bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.Leaver = (*Screen)(nil)

// New creates the play screen for the controller's running session.
func New(ctrl *quiz.Controller) *Screen {
	return &Screen{ctrl: ctrl}
}

func (s *Screen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.serveNext()}
	if s.ctrl.Mode() == quiz.ModeQuickFire {
		cmds = append(cmds, tickTimer())
	}
	return tea.Batch(cmds...)
}

func (s *Screen) Title() string {
	if s.ctrl.Active() {
		return modeTitle(s.ctrl.Mode())
	}
	return "Quiz"
}

func modeTitle(m quiz.Mode) string {
	switch m {
	case quiz.ModeVerify:
		return "Verify Knowledge"
	case quiz.ModeQuickFire:
		return "Quick Fire"
	case quiz.ModeMiniQuiz:
		return "Mini Quiz"
	case quiz.ModeDailyChallenge:
		return "Daily Challenge"
	case quiz.ModePopQuiz:
		return "Pop Quiz"
	case quiz.ModeReview:
		return "Review Incorrect"
	default:
		return "Practice Quiz"
	}
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseFeedback, phaseBreak:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "S", Description: "Skip"},
			{Key: "Q", Description: "End session"},
		}
	}
}

// Leave force-ends the session when the screen is popped mid-run.
func (s *Screen) Leave() tea.Cmd {
	if !s.ended {
		s.ctrl.ForceEndSession()
		s.ended = true
	}
	return nil
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionServedMsg:
		return s.handleServed(msg)

	case timerTickMsg:
		return s.handleTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleServed(msg questionServedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	if msg.View == nil {
		// Pool exhausted, fixed-length budget met, or timer expired.
		return s, s.finish()
	}
	s.current = msg.View
	s.qf = msg.View.QuickFire
	s.choice = components.NewMultiChoice(
		msg.View.Question.Text,
		msg.View.Question.Options,
		msg.View.Question.CorrectIndex,
	)
	// Verify mode holds all verdicts back until the session summary.
	s.choice.Reveal = s.ctrl.Mode() != quiz.ModeVerify
	s.phase = phaseQuestion
	return s, nil
}

func (s *Screen) handleTick() (screen.Screen, tea.Cmd) {
	if s.ended || s.ctrl.Mode() != quiz.ModeQuickFire {
		return s, nil
	}
	status := s.ctrl.QuickFireStatus()
	if status == nil {
		return s, nil
	}
	s.qf = status
	if status.TimedOut && s.phase != phaseFeedback {
		return s, s.finish()
	}
	return s, tickTimer()
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, popCmd()
	}

	switch s.phase {
	case phaseQuitConfirm:
		switch msg.String() {
		case "y", "Y", "enter":
			return s, s.finish()
		default:
			s.phase = phaseQuestion
			return s, nil
		}

	case phaseBreak:
		s.ctrl.ResetBreakCounter()
		return s, s.serveNext()

	case phaseFeedback:
		if s.result != nil && s.result.SessionComplete {
			return s, s.finish()
		}
		if s.ctrl.BreakDue() {
			s.phase = phaseBreak
			return s, nil
		}
		return s, s.serveNext()

	default:
		switch msg.String() {
		case "q", "Q":
			s.phase = phaseQuitConfirm
			return s, nil
		case "s", "S":
			return s.skip()
		}

		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			return s.submit()
		}
		return s, cmd
	}
}

func (s *Screen) submit() (screen.Screen, tea.Cmd) {
	result, err := s.ctrl.SubmitAnswer(s.choice.ChosenIndex)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.result = result
	s.phase = phaseFeedback
	return s, nil
}

func (s *Screen) skip() (screen.Screen, tea.Cmd) {
	res, err := s.ctrl.SkipQuestion()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if res.SessionComplete {
		return s, s.finish()
	}
	return s, s.serveNext()
}

// finish ends the session and swaps in the summary screen.
func (s *Screen) finish() tea.Cmd {
	if s.ended {
		return popCmd()
	}
	s.ended = true
	result := s.ctrl.ForceEndSession()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(result)}
	}
}

func (s *Screen) serveNext() tea.Cmd {
	return func() tea.Msg {
		view, err := s.ctrl.NextQuestion()
		return questionServedMsg{View: view, Err: err}
	}
}

func tickTimer() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}
