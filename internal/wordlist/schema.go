package wordlist

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// datasetSchema constrains word list documents: a name, a definitions
// map, and questions carrying exactly the four A-D choices.
var datasetSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"definitions": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "string",
			},
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"number": map[string]any{"type": "integer"},
					"word":   map[string]any{"type": "string", "minLength": 1},
					"choices": map[string]any{
						"type": "object",
						"propertyNames": map[string]any{
							"enum": []any{"A", "B", "C", "D"},
						},
						"additionalProperties": map[string]any{"type": "string"},
						"minProperties":        4,
						"maxProperties":        4,
					},
					"answer": map[string]any{
						"enum": []any{"A", "B", "C", "D"},
					},
				},
				"required":             []any{"number", "word", "choices", "answer"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"name", "questions"},
	"additionalProperties": false,
}

var (
	compiledSchema    *jsonschema.Schema
	compiledSchemaErr error
	compileSchemaOnce sync.Once
)

// compileDatasetSchema compiles the dataset schema once per process.
func compileDatasetSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		defBytes, err := json.Marshal(datasetSchema)
		if err != nil {
			compiledSchemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(defBytes, &parsed); err != nil {
			compiledSchemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://wordlist.json"
		if err := c.AddResource(schemaURL, parsed); err != nil {
			compiledSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compiledSchemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, compiledSchemaErr
}

// validateDocument checks a raw word list document against the schema.
func validateDocument(raw []byte) error {
	schema, err := compileDatasetSchema()
	if err != nil {
		return err
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
