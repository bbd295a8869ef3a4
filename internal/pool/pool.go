package pool

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// Pool holds the immutable set of questions for a run of the app,
// together with a category index. Malformed questions are dropped at
// construction with a warning rather than propagated.
type Pool struct {
	questions  []Question
	byCategory map[string][]int
}

// New builds a Pool from the given questions, skipping any that fail
// validation. Warnings for skipped questions go to warnings (pass nil
// to silence, e.g. in tests).
func New(questions []Question, warnings io.Writer) *Pool {
	if warnings == nil {
		warnings = io.Discard
	}
	p := &Pool{byCategory: make(map[string][]int)}
	for _, q := range questions {
		if !q.Valid() {
			fmt.Fprintf(warnings, "warning: skipping malformed question %q\n", NormalizeText(q.Text))
			continue
		}
		idx := len(p.questions)
		p.questions = append(p.questions, q)
		p.byCategory[q.Category] = append(p.byCategory[q.Category], idx)
	}
	return p
}

// NewStderr builds a Pool with warnings directed to stderr.
func NewStderr(questions []Question) *Pool {
	return New(questions, os.Stderr)
}

// Len returns the number of questions in the pool.
func (p *Pool) Len() int {
	return len(p.questions)
}

// Question returns the question at the given original index.
func (p *Pool) Question(i int) (Question, bool) {
	if i < 0 || i >= len(p.questions) {
		return Question{}, false
	}
	return p.questions[i], true
}

// Questions returns all questions in pool order.
func (p *Pool) Questions() []Question {
	return p.questions
}

// Categories returns the distinct category names, sorted.
func (p *Pool) Categories() []string {
	cats := make([]string, 0, len(p.byCategory))
	for c := range p.byCategory {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// Indices returns the original indices of questions matching the
// category filter. An empty filter matches every question.
func (p *Pool) Indices(category string) []int {
	if category == "" {
		all := make([]int, len(p.questions))
		for i := range p.questions {
			all[i] = i
		}
		return all
	}
	idxs := p.byCategory[category]
	out := make([]int, len(idxs))
	copy(out, idxs)
	return out
}

// Count returns the number of questions matching the category filter.
func (p *Pool) Count(category string) int {
	if category == "" {
		return len(p.questions)
	}
	return len(p.byCategory[category])
}

// Contains reports whether any question in the pool has the given key.
// Used by the history store to prune stale incorrect-review entries.
func (p *Pool) Contains(key string) bool {
	for _, q := range p.questions {
		if q.Key() == key {
			return true
		}
	}
	return false
}
