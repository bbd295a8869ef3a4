package quiz

import (
	"time"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/pool"
)

// QuestionView is what the UI renders for the question being asked.
type QuestionView struct {
	Question pool.Question

	// PoolIndex is the question's position in the loaded pool.
	PoolIndex int

	// Number is the 1-based position within the session.
	Number int

	// Streak is the run of correct answers going into this question.
	Streak int

	// QuickFire is set in Quick Fire mode.
	QuickFire *QuickFireStatus
}

// AnswerResult reports the outcome of a single submitted answer.
type AnswerResult struct {
	Correct      bool
	ChosenIndex  int
	CorrectIndex int
	Explanation  string

	// Points is the delta applied for this answer, bonus included.
	Points int

	// Streak is the run of correct answers after this one.
	Streak int

	// NewBadges lists achievements unlocked by this answer, in the
	// order they were earned.
	NewBadges []string

	SessionScore    int
	SessionAnswered int

	// SessionComplete is set when this answer finished the session's
	// question budget. The caller still ends the session to record it.
	SessionComplete bool

	// QuickFireComplete is set when this answer used the last Quick
	// Fire slot before the timer ran out.
	QuickFireComplete bool
}

// SkipResult reports the effect of skipping the current question.
type SkipResult struct {
	// SessionComplete is set when the skip consumed the last question
	// slot of a fixed-length session.
	SessionComplete bool
}

// QuickFireStatus is a point-in-time snapshot of a Quick Fire run.
type QuickFireStatus struct {
	Answered  int
	Target    int
	Remaining time.Duration

	// ShouldContinue is false once the timer expired or every slot was
	// used.
	ShouldContinue bool

	// TimedOut is set when the run ended because the clock ran out.
	TimedOut bool
}

// VerifyAnswer is one recorded answer from a verify-mode session.
type VerifyAnswer struct {
	Question    pool.Question
	ChosenIndex int
	Correct     bool
}

// VerifyResult summarizes a verify-mode session for review.
type VerifyResult struct {
	Answers  []VerifyAnswer
	Score    int
	Total    int
	Accuracy float64
}

// Status is a snapshot of the controller's session state.
type Status struct {
	Active              bool
	Mode                Mode
	Category            string
	Score               int
	Answered            int
	Streak              int
	SessionPoints       int
	QuestionsSinceBreak int
}

// Summary reports a finished session.
type Summary struct {
	Mode     Mode
	Score    int
	Total    int
	Accuracy float64

	// SessionPoints is the net point delta for the session.
	SessionPoints int

	// TotalPoints is the lifetime total after the session was applied.
	TotalPoints int

	// NewBadges lists achievements unlocked at session end.
	NewBadges []string

	// Verify carries the per-answer review for verify-mode sessions.
	Verify *VerifyResult
}
