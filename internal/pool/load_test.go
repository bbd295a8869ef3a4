package pool

import (
	"os"
	"path/filepath"
	"testing"
)

const goodFile = `[
	{
		"text": "Which command lists files?",
		"options": ["ls", "rm", "mv"],
		"correct_index": 0,
		"category": "Commands",
		"explanation": "ls lists directory contents."
	}
]`

func TestParseValidFile(t *testing.T) {
	questions, err := Parse([]byte(goodFile))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	q := questions[0]
	if q.Category != "Commands" || q.CorrectIndex != 0 || len(q.Options) != 3 {
		t.Fatalf("decoded question = %+v", q)
	}
}

func TestParseRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"not an array", `{"text": "q"}`},
		{"missing options", `[{"text": "q", "correct_index": 0, "category": "c"}]`},
		{"single option", `[{"text": "q", "options": ["a"], "correct_index": 0, "category": "c"}]`},
		{"empty text", `[{"text": "", "options": ["a", "b"], "correct_index": 0, "category": "c"}]`},
		{"negative index", `[{"text": "q", "options": ["a", "b"], "correct_index": -1, "category": "c"}]`},
		{"string index", `[{"text": "q", "options": ["a", "b"], "correct_index": "0", "category": "c"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.raw)); err == nil {
				t.Error("Parse accepted a malformed file")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(goodFile), 0o644); err != nil {
		t.Fatal(err)
	}
	questions, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("LoadFile on a missing path should error")
	}
}

func TestBundledQuestions(t *testing.T) {
	questions := Bundled()
	if len(questions) == 0 {
		t.Fatal("bundled question set is empty")
	}
	for i, q := range questions {
		if !q.Valid() {
			t.Errorf("bundled question %d is invalid: %+v", i, q)
		}
	}
	p := BundledPool(nil)
	if p.Len() != len(questions) {
		t.Fatalf("BundledPool dropped questions: %d of %d", p.Len(), len(questions))
	}
}
