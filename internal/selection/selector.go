// Package selection picks the next quiz question by weighted random
// sampling over historical performance: questions the learner gets wrong
// or has rarely seen are favored, but every candidate keeps a nonzero
// floor so nothing is starved.
package selection

import "math/rand"

// Weight tuning. The accuracy term dominates so weak questions surface
// first; the attempts term keeps unseen questions in rotation.
const (
	accuracyFactor  = 10.0
	noveltyFactor   = 3.0
	minWeight       = 0.1
	defaultAccuracy = 0.5 // assumed accuracy for never-attempted questions
)

// Stats is the per-question attempt record the selector weighs.
type Stats struct {
	Attempts int
	Correct  int
}

// StatsSource supplies attempt stats for a question key. A nil source
// degrades selection to a uniform draw.
type StatsSource interface {
	Stats(questionKey string) Stats
}

// Selector draws candidates using the supplied random source, which
// tests seed for deterministic draws.
type Selector struct {
	rng *rand.Rand
}

// New creates a Selector. rng must not be nil.
func New(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Weight computes the selection weight for a question with the given
// stats. Never-attempted questions are treated as 50% accurate.
func Weight(s Stats) float64 {
	accuracy := defaultAccuracy
	if s.Attempts > 0 {
		accuracy = float64(s.Correct) / float64(s.Attempts)
	}
	w := (1-accuracy)*accuracyFactor + noveltyFactor/float64(s.Attempts+1)
	if w < minWeight {
		return minWeight
	}
	return w
}

// Pick draws one index from candidates, weighted by history. key maps a
// candidate index to its question key. Returns false when candidates is
// empty, which callers treat as pool exhaustion rather than an error.
// Pick does not record the draw; marking the index used is the session's
// job.
func (s *Selector) Pick(candidates []int, key func(int) string, src StatsSource) (int, bool) {
	if len(candidates) == 0 {
		return 0, false
	}
	if src == nil {
		return candidates[s.rng.Intn(len(candidates))], true
	}

	weights := make([]float64, len(candidates))
	total := 0.0
	for i, idx := range candidates {
		w := Weight(src.Stats(key(idx)))
		weights[i] = w
		total += w
	}

	// Single weighted draw via cumulative scan.
	r := s.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return candidates[i], true
		}
	}
	// Floating point slack lands on the last candidate.
	return candidates[len(candidates)-1], true
}
