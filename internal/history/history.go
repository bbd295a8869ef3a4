// Package history tracks per-question and per-category answer outcomes.
// The quiz controller is the only writer; persistence layers load and
// save the whole store at session checkpoints.
package history

import (
	"sort"
	"time"

	"github.com/Christiancoding/New-Linux-Practice-sub000/internal/selection"
)

// Outcome is a single timestamped answer result. Outcome logs are
// append-only.
type Outcome struct {
	Timestamp time.Time `json:"timestamp"`
	Correct   bool      `json:"correct"`
}

// Record accumulates attempts for one question key or one category.
// Invariant: 0 <= Correct <= Attempts.
type Record struct {
	Attempts int       `json:"attempts"`
	Correct  int       `json:"correct"`
	Outcomes []Outcome `json:"history"`
}

// Accuracy returns the fraction of correct attempts, or 0 with no attempts.
func (r *Record) Accuracy() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Attempts)
}

// Store holds all performance records plus the incorrect-review set.
type Store struct {
	Questions  map[string]*Record
	Categories map[string]*Record

	// Review is the set of question keys currently flagged wrong. A key
	// enters on an incorrect answer and leaves on a later correct one.
	Review map[string]bool
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		Questions:  make(map[string]*Record),
		Categories: make(map[string]*Record),
		Review:     make(map[string]bool),
	}
}

// RecordAnswer appends one outcome for the question key and its category,
// and maintains the incorrect-review set.
func (s *Store) RecordAnswer(key, category string, correct bool, at time.Time) {
	q := s.record(s.Questions, key)
	q.Attempts++
	if correct {
		q.Correct++
	}
	q.Outcomes = append(q.Outcomes, Outcome{Timestamp: at, Correct: correct})

	c := s.record(s.Categories, category)
	c.Attempts++
	if correct {
		c.Correct++
	}
	c.Outcomes = append(c.Outcomes, Outcome{Timestamp: at, Correct: correct})

	if correct {
		delete(s.Review, key)
	} else {
		s.Review[key] = true
	}
}

func (s *Store) record(m map[string]*Record, key string) *Record {
	r := m[key]
	if r == nil {
		r = &Record{}
		m[key] = r
	}
	return r
}

// Stats implements selection.StatsSource.
func (s *Store) Stats(key string) selection.Stats {
	r := s.Questions[key]
	if r == nil {
		return selection.Stats{}
	}
	return selection.Stats{Attempts: r.Attempts, Correct: r.Correct}
}

// TotalAnswered returns the lifetime attempt count across all questions.
func (s *Store) TotalAnswered() int {
	total := 0
	for _, r := range s.Questions {
		total += r.Attempts
	}
	return total
}

// TotalCorrect returns the lifetime correct count across all questions.
func (s *Store) TotalCorrect() int {
	total := 0
	for _, r := range s.Questions {
		total += r.Correct
	}
	return total
}

// PruneReview drops review entries whose question no longer exists in
// the current pool. Called lazily when the review set is read, so stale
// keys from edited question files cost nothing until then.
func (s *Store) PruneReview(exists func(key string) bool) {
	for key := range s.Review {
		if !exists(key) {
			delete(s.Review, key)
		}
	}
}

// ReviewKeys returns the incorrect-review set sorted worst accuracy
// first (ties broken by more attempts, then key for stability).
func (s *Store) ReviewKeys() []string {
	keys := make([]string, 0, len(s.Review))
	for key := range s.Review {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := s.Questions[keys[i]], s.Questions[keys[j]]
		ai, aj := 0.0, 0.0
		ni, nj := 0, 0
		if ri != nil {
			ai, ni = ri.Accuracy(), ri.Attempts
		}
		if rj != nil {
			aj, nj = rj.Accuracy(), rj.Attempts
		}
		if ai != aj {
			return ai < aj
		}
		if ni != nj {
			return ni > nj
		}
		return keys[i] < keys[j]
	})
	return keys
}
