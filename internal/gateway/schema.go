package gateway

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Wire schemas for the two backend payloads. A 2xx body that fails its
// schema is reported as *DecodeError before any unmarshalling happens.
var questionSchema = &wireSchema{
	name: "interview-question",
	definition: map[string]any{
		"type":     "object",
		"required": []any{"id", "role", "questionText", "difficulty"},
		"properties": map[string]any{
			"id":           map[string]any{"type": "integer"},
			"role":         map[string]any{"type": "string", "minLength": 1},
			"questionText": map[string]any{"type": "string", "minLength": 1},
			"hints":        map[string]any{"type": "string"},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"EASY", "MEDIUM", "HARD"},
			},
			"createdAt": map[string]any{"type": "string"},
		},
	},
}

var feedbackSchema = &wireSchema{
	name: "interview-feedback",
	definition: map[string]any{
		"type":     "object",
		"required": []any{"id", "score", "strengths", "areasForImprovement", "overallComments"},
		"properties": map[string]any{
			"id":                  map[string]any{"type": "integer"},
			"answerId":            map[string]any{"type": "integer"},
			"strengths":           map[string]any{"type": "string"},
			"areasForImprovement": map[string]any{"type": "string"},
			"overallComments":     map[string]any{"type": "string"},
			"score":               map[string]any{"type": "number"},
			"generatedAt":         map[string]any{"type": "string"},
		},
	},
}

type wireSchema struct {
	name       string
	definition map[string]any
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateBody checks raw JSON against the given wire schema.
func validateBody(schema *wireSchema, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(schema *wireSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(schema.definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.name, compiled)
	return compiled, nil
}
