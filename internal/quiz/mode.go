package quiz

import "fmt"

// Mode identifies how a session selects questions and when it ends.
type Mode int

const (
	// ModeStandard runs until the pool (or category filter) is exhausted
	// or the player quits.
	ModeStandard Mode = iota

	// ModeVerify behaves like standard but records every answer for an
	// end-of-session review.
	ModeVerify

	// ModeQuickFire is a fixed number of questions against the clock.
	ModeQuickFire

	// ModeMiniQuiz is a short fixed-length session.
	ModeMiniQuiz

	// ModeDailyChallenge serves the single date-determined question.
	ModeDailyChallenge

	// ModePopQuiz serves one randomly selected question.
	ModePopQuiz

	// ModeReview runs like standard but draws only from the
	// incorrect-review queue.
	ModeReview
)

var modeNames = map[Mode]string{
	ModeStandard:       "standard",
	ModeVerify:         "verify",
	ModeQuickFire:      "quick_fire",
	ModeMiniQuiz:       "mini_quiz",
	ModeDailyChallenge: "daily_challenge",
	ModePopQuiz:        "pop_quiz",
	ModeReview:         "review",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode maps a mode name back to its Mode value.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return ModeStandard, fmt.Errorf("unknown quiz mode %q", name)
}

// singleQuestion reports whether the mode serves exactly one question.
func (m Mode) singleQuestion() bool {
	return m == ModeDailyChallenge || m == ModePopQuiz
}
