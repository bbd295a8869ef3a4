package play

import (
	"time"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/quiz"
)

// questionServedMsg carries the next question, or nil when the session
// has nothing left to ask.
type questionServedMsg struct {
	View *quiz.QuestionView
	Err  error
}

// timerTickMsg drives the Quick Fire countdown.
type timerTickMsg time.Time
