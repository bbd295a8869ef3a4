package pool

import "strings"

// Question is a single multiple-choice question. Questions are immutable
// once loaded; all history bookkeeping is keyed by the normalized text,
// so the same question maps to the same record across pool reloads.
type Question struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Category     string   `json:"category"`
	Explanation  string   `json:"explanation,omitempty"`
}

// Key returns the identity of the question for history and duplicate
// tracking: the text with surrounding and internal whitespace collapsed.
func (q Question) Key() string {
	return NormalizeText(q.Text)
}

// Valid reports whether the question has enough data to be asked.
func (q Question) Valid() bool {
	if strings.TrimSpace(q.Text) == "" {
		return false
	}
	if len(q.Options) < 2 {
		return false
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return false
	}
	return true
}

// NormalizeText collapses runs of whitespace to single spaces and trims
// the ends. Question files hand-edited across reloads often differ only
// in wrapping, and those must still hit the same history bucket.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
