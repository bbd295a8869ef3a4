package quiz

import "time"

// Config carries the gameplay tuning knobs. It is immutable after
// construction; tests pass custom values instead of patching globals.
type Config struct {
	// PointsPerCorrect is awarded for each correct answer.
	PointsPerCorrect int

	// PointsPerIncorrect is applied on a miss. May be zero or negative;
	// negative values only ever reduce the session counter, never the
	// lifetime total.
	PointsPerIncorrect int

	// StreakBonusThreshold is the streak length at which the bonus
	// multiplier kicks in.
	StreakBonusThreshold int

	// StreakBonusMultiplier scales PointsPerCorrect once the streak
	// reaches the threshold. The result is truncated toward zero.
	StreakBonusMultiplier float64

	// QuickFireQuestions is the Quick Fire slot budget.
	QuickFireQuestions int

	// QuickFireTimeLimit is the Quick Fire wall-clock budget.
	QuickFireTimeLimit time.Duration

	// MiniQuizQuestions is the mini quiz target length.
	MiniQuizQuestions int

	// BreakInterval is the number of questions between break reminders.
	BreakInterval int
}

// DefaultConfig returns the standard gameplay constants.
func DefaultConfig() Config {
	return Config{
		PointsPerCorrect:      10,
		PointsPerIncorrect:    -2,
		StreakBonusThreshold:  5,
		StreakBonusMultiplier: 1.5,
		QuickFireQuestions:    5,
		QuickFireTimeLimit:    3 * time.Minute,
		MiniQuizQuestions:     3,
		BreakInterval:         10,
	}
}
