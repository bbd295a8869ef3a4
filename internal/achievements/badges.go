package achievements

// Badge names. Stored as strings so persisted ledgers survive renames of
// the Go identifiers.
const (
	BadgeStreakMaster      = "streak_master"
	BadgeDedicatedLearner  = "dedicated_learner"
	BadgeCenturyClub       = "century_club"
	BadgePointCollector    = "point_collector"
	BadgeQuickFireChampion = "quick_fire_champion"
	BadgeDailyWarrior      = "daily_warrior"
	BadgePerfectSession    = "perfect_session"
)

// Unlock thresholds.
const (
	StreakMasterLength   = 5
	DedicatedLearnerDays = 3
	CenturyClubQuestions = 100
	PointCollectorPoints = 500
)

// Description returns the display line for a badge, with icon.
func Description(badge string) string {
	switch badge {
	case BadgeStreakMaster:
		return "🔥 Streak Master - Answered 5 questions in a row correctly!"
	case BadgeDedicatedLearner:
		return "📚 Dedicated Learner - Studied on 3 different days!"
	case BadgeCenturyClub:
		return "💯 Century Club - Answered 100 questions!"
	case BadgePointCollector:
		return "⭐ Point Collector - Earned 500 points!"
	case BadgeQuickFireChampion:
		return "⚡ Quick Fire Champion - Completed Quick Fire mode!"
	case BadgeDailyWarrior:
		return "🗓️ Daily Warrior - Completed a daily challenge!"
	case BadgePerfectSession:
		return "🎯 Perfect Session - 100% accuracy in a session!"
	default:
		return "🏆 Achievement: " + badge
	}
}

// Definitions maps every badge to its unlock requirement, for the stats
// screen.
func Definitions() map[string]string {
	return map[string]string{
		BadgeStreakMaster:      "Answer 5 questions correctly in a row",
		BadgeDedicatedLearner:  "Study on 3 different days",
		BadgeCenturyClub:       "Answer 100 questions total",
		BadgePointCollector:    "Earn 500 points",
		BadgeQuickFireChampion: "Complete Quick Fire mode",
		BadgeDailyWarrior:      "Complete a daily challenge",
		BadgePerfectSession:    "Get 100% accuracy in a session (3+ questions)",
	}
}
