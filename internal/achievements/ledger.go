// Package achievements keeps the gamification ledger: badges, points,
// study-day tracking, and the top-10 session leaderboard. The ledger is
// mutated in place by the quiz controller and persisted by the store at
// session checkpoints.
package achievements

import (
	"sort"
	"time"
)

// LeaderboardSize caps the retained session summaries.
const LeaderboardSize = 10

// LeaderboardEntry is one finished session's summary. SessionID ties
// the entry back to the session that produced it.
type LeaderboardEntry struct {
	SessionID string    `json:"session_id"`
	Date      time.Time `json:"date"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	Accuracy  float64   `json:"accuracy"`
	Points    int       `json:"points"`
}

// Progress reports advancement toward a locked badge.
type Progress struct {
	Current int
	Target  int
}

// Ledger is the cumulative achievement state. Badges and lifetime points
// only grow during gameplay; the session points counter is the one field
// that may go negative.
type Ledger struct {
	Badges            map[string]bool
	PointsEarned      int
	QuestionsAnswered int
	DaysStudied       map[string]bool
	DailyWarriorDates map[string]bool
	Leaderboard       []LeaderboardEntry

	// SessionPoints is the running total for the active session. Unlike
	// PointsEarned it absorbs negative deltas and resets at session start.
	SessionPoints int
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{
		Badges:            make(map[string]bool),
		DaysStudied:       make(map[string]bool),
		DailyWarriorDates: make(map[string]bool),
	}
}

// AddPoints applies a point delta. The session counter takes the delta
// as-is; the lifetime total only ever absorbs positive deltas, so a
// penalty-heavy session can never shrink what the learner has earned.
func (l *Ledger) AddPoints(delta int) {
	l.SessionPoints += delta
	if delta > 0 {
		l.PointsEarned += delta
	}
}

// ResetSessionPoints zeroes the session counter. Called at session start.
func (l *Ledger) ResetSessionPoints() {
	l.SessionPoints = 0
}

// Has reports whether a badge is unlocked.
func (l *Ledger) Has(badge string) bool {
	return l.Badges[badge]
}

// Unlock adds a badge and reports whether it was newly awarded.
func (l *Ledger) Unlock(badge string) bool {
	if l.Badges[badge] {
		return false
	}
	l.Badges[badge] = true
	return true
}

// BadgeList returns the unlocked badges, sorted for stable display.
func (l *Ledger) BadgeList() []string {
	out := make([]string, 0, len(l.Badges))
	for b := range l.Badges {
		out = append(out, b)
	}
	sort.Strings(out)
	return out
}

// CheckAnswer runs the per-answer achievement pass: records the study
// day, bumps the lifetime answer count, and returns any badges that
// crossed their threshold on this answer. Each badge is reported once,
// the moment it unlocks.
func (l *Ledger) CheckAnswer(today string, streak int) []string {
	l.DaysStudied[today] = true
	l.QuestionsAnswered++

	var newBadges []string
	if streak >= StreakMasterLength && l.Unlock(BadgeStreakMaster) {
		newBadges = append(newBadges, BadgeStreakMaster)
	}
	if len(l.DaysStudied) >= DedicatedLearnerDays && l.Unlock(BadgeDedicatedLearner) {
		newBadges = append(newBadges, BadgeDedicatedLearner)
	}
	if l.QuestionsAnswered >= CenturyClubQuestions && l.Unlock(BadgeCenturyClub) {
		newBadges = append(newBadges, BadgeCenturyClub)
	}
	if l.PointsEarned >= PointCollectorPoints && l.Unlock(BadgePointCollector) {
		newBadges = append(newBadges, BadgePointCollector)
	}
	return newBadges
}

// CheckPerfectSession unlocks perfect_session for a 100%-accurate
// session of at least three questions. Reports whether the badge was
// newly awarded.
func (l *Ledger) CheckPerfectSession(score, total int) bool {
	if total < 3 || score != total {
		return false
	}
	return l.Unlock(BadgePerfectSession)
}

// CompleteDailyChallenge records a correctly answered daily challenge
// for the given ISO date and reports whether daily_warrior was newly
// awarded.
func (l *Ledger) CompleteDailyChallenge(today string) bool {
	l.DailyWarriorDates[today] = true
	return l.Unlock(BadgeDailyWarrior)
}

// CompleteQuickFire awards quick_fire_champion for a non-timeout Quick
// Fire finish. Reports whether the badge was newly awarded.
func (l *Ledger) CompleteQuickFire() bool {
	return l.Unlock(BadgeQuickFireChampion)
}

// UpdateLeaderboard appends a session summary and keeps the top entries
// ranked by accuracy, then points. Empty sessions are not recorded.
func (l *Ledger) UpdateLeaderboard(sessionID string, score, total, points int, at time.Time) {
	if total == 0 {
		return
	}
	l.Leaderboard = append(l.Leaderboard, LeaderboardEntry{
		SessionID: sessionID,
		Date:      at,
		Score:     score,
		Total:     total,
		Accuracy:  float64(score) / float64(total) * 100,
		Points:    points,
	})
	sort.SliceStable(l.Leaderboard, func(i, j int) bool {
		a, b := l.Leaderboard[i], l.Leaderboard[j]
		if a.Accuracy != b.Accuracy {
			return a.Accuracy > b.Accuracy
		}
		return a.Points > b.Points
	})
	if len(l.Leaderboard) > LeaderboardSize {
		l.Leaderboard = l.Leaderboard[:LeaderboardSize]
	}
}

// ProgressTowardLocked returns current/target progress for each badge
// still locked that has a countable threshold.
func (l *Ledger) ProgressTowardLocked() map[string]Progress {
	progress := make(map[string]Progress)
	if !l.Has(BadgeCenturyClub) {
		progress[BadgeCenturyClub] = Progress{Current: l.QuestionsAnswered, Target: CenturyClubQuestions}
	}
	if !l.Has(BadgePointCollector) {
		progress[BadgePointCollector] = Progress{Current: l.PointsEarned, Target: PointCollectorPoints}
	}
	if !l.Has(BadgeDedicatedLearner) {
		progress[BadgeDedicatedLearner] = Progress{Current: len(l.DaysStudied), Target: DedicatedLearnerDays}
	}
	return progress
}

// Reset wipes the ledger back to its initial state. Only the explicit
// reset command goes through here; gameplay never shrinks the ledger.
func (l *Ledger) Reset() {
	*l = *NewLedger()
}
