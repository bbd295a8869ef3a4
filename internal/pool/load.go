package pool

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed samples.json
var sampleData []byte

// questionSchema is the JSON Schema a question file must satisfy. The
// structural rules the engine relies on (at least two options, in-range
// correct index) are enforced here so a bad file is rejected as a whole
// instead of silently producing half a pool.
const questionSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["text", "options", "correct_index", "category"],
		"properties": {
			"text": {"type": "string", "minLength": 1},
			"options": {
				"type": "array",
				"items": {"type": "string"},
				"minItems": 2
			},
			"correct_index": {"type": "integer", "minimum": 0},
			"category": {"type": "string", "minLength": 1},
			"explanation": {"type": "string"}
		}
	}
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func questionFileSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(questionSchema), &parsed); err != nil {
			compileErr = fmt.Errorf("parse question schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const schemaURL = "schema://questions.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Parse validates raw JSON against the question-file schema and decodes
// it into questions. Out-of-range correct_index values pass the schema
// (it cannot see the options length) and are dropped by Pool validation.
func Parse(raw []byte) ([]Question, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := questionFileSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("question file rejected: %w", err)
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return questions, nil
}

// LoadFile reads and parses a question file from disk.
func LoadFile(path string) ([]Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}
	return Parse(raw)
}

// Bundled returns the sample questions shipped with the binary, so the
// app is usable before any question file has been imported.
func Bundled() []Question {
	questions, err := Parse(sampleData)
	if err != nil {
		// The embedded file is fixed at build time; a parse failure here
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("bundled questions corrupt: %v", err))
	}
	return questions
}

// BundledPool builds a Pool from the bundled sample questions.
func BundledPool(warnings io.Writer) *Pool {
	return New(Bundled(), warnings)
}
