package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/achievements"
)

const (
	counterPointsEarned      = "points_earned"
	counterQuestionsAnswered = "questions_answered"
)

// LoadAchievements reads the achievement ledger from the database. A
// fresh database yields an empty ledger.
func (s *Store) LoadAchievements() (*achievements.Ledger, error) {
	ledger := achievements.NewLedger()

	if err := s.loadSet(`SELECT name FROM badges`, ledger.Badges); err != nil {
		return nil, fmt.Errorf("load badges: %w", err)
	}
	if err := s.loadSet(`SELECT day FROM study_days`, ledger.DaysStudied); err != nil {
		return nil, fmt.Errorf("load study days: %w", err)
	}
	if err := s.loadSet(`SELECT day FROM daily_challenges`, ledger.DailyWarriorDates); err != nil {
		return nil, fmt.Errorf("load daily challenges: %w", err)
	}

	var err error
	if ledger.PointsEarned, err = s.counter(counterPointsEarned); err != nil {
		return nil, fmt.Errorf("load points counter: %w", err)
	}
	if ledger.QuestionsAnswered, err = s.counter(counterQuestionsAnswered); err != nil {
		return nil, fmt.Errorf("load answer counter: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT session_id, date, score, total, accuracy, points FROM leaderboard ORDER BY accuracy DESC, points DESC`)
	if err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			entry achievements.LeaderboardEntry
			date  string
		)
		if err := rows.Scan(&entry.SessionID, &date, &entry.Score, &entry.Total, &entry.Accuracy, &entry.Points); err != nil {
			return nil, fmt.Errorf("scan leaderboard entry: %w", err)
		}
		if entry.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
			return nil, fmt.Errorf("leaderboard date %q: %w", date, err)
		}
		ledger.Leaderboard = append(ledger.Leaderboard, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load leaderboard: %w", err)
	}
	return ledger, nil
}

func (s *Store) loadSet(query string, into map[string]bool) error {
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return err
		}
		into[key] = true
	}
	return rows.Err()
}

func (s *Store) counter(name string) (int, error) {
	var value int
	err := s.db.QueryRow(`SELECT value FROM counters WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return value, nil
}

// SaveAchievements rewrites the persisted ledger inside one transaction.
func (s *Store) SaveAchievements(ledger *achievements.Ledger) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"badges", "study_days", "daily_challenges", "counters", "leaderboard"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for badge := range ledger.Badges {
		if _, err := tx.Exec(`INSERT INTO badges (name) VALUES (?)`, badge); err != nil {
			return fmt.Errorf("save badge: %w", err)
		}
	}
	for day := range ledger.DaysStudied {
		if _, err := tx.Exec(`INSERT INTO study_days (day) VALUES (?)`, day); err != nil {
			return fmt.Errorf("save study day: %w", err)
		}
	}
	for day := range ledger.DailyWarriorDates {
		if _, err := tx.Exec(`INSERT INTO daily_challenges (day) VALUES (?)`, day); err != nil {
			return fmt.Errorf("save daily challenge: %w", err)
		}
	}
	counters := map[string]int{
		counterPointsEarned:      ledger.PointsEarned,
		counterQuestionsAnswered: ledger.QuestionsAnswered,
	}
	for name, value := range counters {
		if _, err := tx.Exec(`INSERT INTO counters (name, value) VALUES (?, ?)`, name, value); err != nil {
			return fmt.Errorf("save counter %s: %w", name, err)
		}
	}
	for _, entry := range ledger.Leaderboard {
		_, err := tx.Exec(
			`INSERT INTO leaderboard (session_id, date, score, total, accuracy, points) VALUES (?, ?, ?, ?, ?, ?)`,
			entry.SessionID, entry.Date.Format(time.RFC3339Nano), entry.Score, entry.Total, entry.Accuracy, entry.Points)
		if err != nil {
			return fmt.Errorf("save leaderboard entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LoadAchievementsOrNew loads the ledger, falling back to an empty one
// with a warning when the database cannot be read.
func (s *Store) LoadAchievementsOrNew(warnings io.Writer) *achievements.Ledger {
	ledger, err := s.LoadAchievements()
	if err != nil {
		fmt.Fprintln(warnings, "warning: loading achievements, starting fresh:", err)
		return achievements.NewLedger()
	}
	return ledger
}

// ResetAll wipes every persisted table. Only the reset command calls
// this, after an explicit confirmation.
func (s *Store) ResetAll() error {
	tables := []string{
		"question_records", "category_records", "outcomes", "review_queue",
		"badges", "study_days", "daily_challenges", "counters", "leaderboard",
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()
	for _, table := range tables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
