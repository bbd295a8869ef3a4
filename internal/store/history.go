package store

import (
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/history"
)

// LoadHistory reads the full history store from the database. A fresh
// database yields an empty store.
func (s *Store) LoadHistory() (*history.Store, error) {
	hist := history.NewStore()

	if err := s.loadRecords(`SELECT key, attempts, correct FROM question_records`, hist.Questions); err != nil {
		return nil, fmt.Errorf("load question records: %w", err)
	}
	if err := s.loadRecords(`SELECT category, attempts, correct FROM category_records`, hist.Categories); err != nil {
		return nil, fmt.Errorf("load category records: %w", err)
	}
	if err := s.loadOutcomes("question", hist.Questions); err != nil {
		return nil, fmt.Errorf("load question outcomes: %w", err)
	}
	if err := s.loadOutcomes("category", hist.Categories); err != nil {
		return nil, fmt.Errorf("load category outcomes: %w", err)
	}

	rows, err := s.db.Query(`SELECT key FROM review_queue`)
	if err != nil {
		return nil, fmt.Errorf("load review queue: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan review key: %w", err)
		}
		hist.Review[key] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load review queue: %w", err)
	}
	return hist, nil
}

func (s *Store) loadRecords(query string, into map[string]*history.Record) error {
	rows, err := s.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		rec := &history.Record{}
		if err := rows.Scan(&key, &rec.Attempts, &rec.Correct); err != nil {
			return err
		}
		into[key] = rec
	}
	return rows.Err()
}

func (s *Store) loadOutcomes(scope string, into map[string]*history.Record) error {
	rows, err := s.db.Query(
		`SELECT record_key, correct, at FROM outcomes WHERE scope = ? ORDER BY id`, scope)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			key     string
			correct bool
			at      string
		)
		if err := rows.Scan(&key, &correct, &at); err != nil {
			return err
		}
		ts, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return fmt.Errorf("outcome timestamp %q: %w", at, err)
		}
		rec := into[key]
		if rec == nil {
			// Orphan outcome row; tolerate rather than fail the load.
			rec = &history.Record{}
			into[key] = rec
		}
		rec.Outcomes = append(rec.Outcomes, history.Outcome{Timestamp: ts, Correct: correct})
	}
	return rows.Err()
}

// SaveHistory rewrites the persisted history inside one transaction.
// The in-memory store is the source of truth during a run, so a full
// rewrite keeps load and save trivially symmetric.
func (s *Store) SaveHistory(hist *history.Store) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"question_records", "category_records", "outcomes", "review_queue"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if err := saveRecords(tx, "question_records", "key", "question", hist.Questions); err != nil {
		return err
	}
	if err := saveRecords(tx, "category_records", "category", "category", hist.Categories); err != nil {
		return err
	}
	for key := range hist.Review {
		if _, err := tx.Exec(`INSERT INTO review_queue (key) VALUES (?)`, key); err != nil {
			return fmt.Errorf("save review key: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func saveRecords(tx *sql.Tx, table, keyCol, scope string, records map[string]*history.Record) error {
	for key, rec := range records {
		_, err := tx.Exec(
			fmt.Sprintf(`INSERT INTO %s (%s, attempts, correct) VALUES (?, ?, ?)`, table, keyCol),
			key, rec.Attempts, rec.Correct)
		if err != nil {
			return fmt.Errorf("save %s record: %w", scope, err)
		}
		for _, o := range rec.Outcomes {
			_, err := tx.Exec(
				`INSERT INTO outcomes (scope, record_key, correct, at) VALUES (?, ?, ?, ?)`,
				scope, key, o.Correct, o.Timestamp.Format(time.RFC3339Nano))
			if err != nil {
				return fmt.Errorf("save %s outcome: %w", scope, err)
			}
		}
	}
	return nil
}

// LoadHistoryOrNew loads history, falling back to an empty store with a
// warning when the database cannot be read. Losing stats must never
// keep the learner from studying.
func (s *Store) LoadHistoryOrNew(warnings io.Writer) *history.Store {
	hist, err := s.LoadHistory()
	if err != nil {
		fmt.Fprintln(warnings, "warning: loading history, starting fresh:", err)
		return history.NewStore()
	}
	return hist
}
