// Package store persists history and achievements in a local SQLite
// database. The app loads both ledgers at startup and rewrites them at
// session checkpoints, so the schema favors simple whole-ledger reads
// and writes over incremental updates.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite handle.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies the recommended
// pragmas, and creates any missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// migrate creates the schema. Every statement is idempotent, so opening
// an existing database is a no-op.
func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS question_records (
			key      TEXT PRIMARY KEY,
			attempts INTEGER NOT NULL,
			correct  INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS category_records (
			category TEXT PRIMARY KEY,
			attempts INTEGER NOT NULL,
			correct  INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS outcomes (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			scope      TEXT NOT NULL CHECK (scope IN ('question', 'category')),
			record_key TEXT NOT NULL,
			correct    INTEGER NOT NULL,
			at         TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS review_queue (
			key TEXT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS badges (
			name TEXT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS study_days (
			day TEXT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS daily_challenges (
			day TEXT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS counters (
			name  TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS leaderboard (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			date       TEXT NOT NULL,
			score      INTEGER NOT NULL,
			total      INTEGER NOT NULL,
			accuracy   REAL NOT NULL,
			points     INTEGER NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LINUX_PLUS_DB environment variable
// 2. $XDG_DATA_HOME/linuxplus/linuxplus.db
// 3. ~/.local/share/linuxplus/linuxplus.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LINUX_PLUS_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "linuxplus", "linuxplus.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
