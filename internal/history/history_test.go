package history

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func TestRecordAnswerCounts(t *testing.T) {
	s := NewStore()
	s.RecordAnswer("q1", "Security", true, t0)
	s.RecordAnswer("q1", "Security", false, t0.Add(time.Minute))
	s.RecordAnswer("q2", "Security", true, t0.Add(2*time.Minute))

	q1 := s.Questions["q1"]
	if q1.Attempts != 2 || q1.Correct != 1 {
		t.Errorf("q1 = %d/%d attempts/correct, want 2/1", q1.Attempts, q1.Correct)
	}
	if len(q1.Outcomes) != 2 {
		t.Errorf("q1 outcomes = %d, want 2", len(q1.Outcomes))
	}

	cat := s.Categories["Security"]
	if cat.Attempts != 3 || cat.Correct != 2 {
		t.Errorf("category = %d/%d, want 3/2", cat.Attempts, cat.Correct)
	}
}

func TestCorrectNeverExceedsAttempts(t *testing.T) {
	s := NewStore()
	results := []bool{true, true, false, true, false, false, true}
	for i, correct := range results {
		s.RecordAnswer("q", "General", correct, t0.Add(time.Duration(i)*time.Second))
		r := s.Questions["q"]
		if r.Correct < 0 || r.Correct > r.Attempts {
			t.Fatalf("after %d answers: correct %d out of range [0, %d]", i+1, r.Correct, r.Attempts)
		}
	}
}

func TestReviewSetLifecycle(t *testing.T) {
	s := NewStore()

	s.RecordAnswer("q1", "General", false, t0)
	if !s.Review["q1"] {
		t.Fatal("q1 should be flagged for review after an incorrect answer")
	}

	s.RecordAnswer("q1", "General", true, t0.Add(time.Minute))
	if s.Review["q1"] {
		t.Fatal("q1 should leave the review set after a correct answer")
	}
}

func TestPruneReview(t *testing.T) {
	s := NewStore()
	s.RecordAnswer("kept", "General", false, t0)
	s.RecordAnswer("stale", "General", false, t0)

	s.PruneReview(func(key string) bool { return key == "kept" })

	if !s.Review["kept"] {
		t.Error("kept should survive pruning")
	}
	if s.Review["stale"] {
		t.Error("stale should be pruned")
	}
}

func TestReviewKeysWorstFirst(t *testing.T) {
	s := NewStore()
	// bad: 0/3, mid: 1/2, both currently flagged.
	s.RecordAnswer("mid", "General", true, t0)
	s.RecordAnswer("mid", "General", false, t0)
	s.RecordAnswer("bad", "General", false, t0)
	s.RecordAnswer("bad", "General", false, t0)
	s.RecordAnswer("bad", "General", false, t0)

	keys := s.ReviewKeys()
	if len(keys) != 2 || keys[0] != "bad" || keys[1] != "mid" {
		t.Errorf("ReviewKeys = %v, want [bad mid]", keys)
	}
}

func TestStatsForUnknownKey(t *testing.T) {
	s := NewStore()
	if st := s.Stats("never-seen"); st.Attempts != 0 || st.Correct != 0 {
		t.Errorf("Stats(unknown) = %+v, want zero", st)
	}
}

func TestLifetimeTotals(t *testing.T) {
	s := NewStore()
	s.RecordAnswer("a", "X", true, t0)
	s.RecordAnswer("b", "X", false, t0)
	s.RecordAnswer("b", "Y", true, t0)

	if got := s.TotalAnswered(); got != 3 {
		t.Errorf("TotalAnswered = %d, want 3", got)
	}
	if got := s.TotalCorrect(); got != 2 {
		t.Errorf("TotalCorrect = %d, want 2", got)
	}
}
