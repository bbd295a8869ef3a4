package quiz

import "errors"

var (
	// ErrNoActiveSession is returned by operations that require a
	// running session.
	ErrNoActiveSession = errors.New("quiz: no active session")

	// ErrSessionActive is returned by Start when a session is already
	// running. Callers end the old session first.
	ErrSessionActive = errors.New("quiz: session already active")

	// ErrNoCurrentQuestion is returned by SubmitAnswer when no question
	// has been served since the last answer or skip.
	ErrNoCurrentQuestion = errors.New("quiz: no current question")

	// ErrInvalidAnswer is returned when the chosen option index is out
	// of range for the current question.
	ErrInvalidAnswer = errors.New("quiz: answer index out of range")
)
