package quiz

import "time"

// sessionState holds everything that resets between sessions. A zero
// value means no session is running.
type sessionState struct {
	active   bool
	id       string
	mode     Mode
	category string

	score    int
	answered int
	skipped  int
	streak   int

	// target is the question budget for fixed-length modes, 0 for
	// open-ended ones.
	target int

	// used tracks pool indices already served this session.
	used map[int]bool

	// allowed restricts selection to a fixed index set, nil for no
	// restriction. Review mode snapshots the review queue here at start
	// so the set is stable while answers clear queue entries.
	allowed map[int]bool

	// current is the served-but-unanswered question, nil between
	// questions. NextQuestion returns it unchanged until it is
	// answered or skipped.
	current *QuestionView

	quickFireActive   bool
	quickFireStart    time.Time
	quickFireAnswered int

	verifyAnswers []VerifyAnswer

	questionsSinceBreak int
}
