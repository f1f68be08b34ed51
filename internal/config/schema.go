package config

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const schemaURL = "schema://animalquiz-config.json"

// configSchema describes the YAML config file. Unknown keys are rejected
// so typos surface instead of silently falling back to defaults.
var configSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"site": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"url": map[string]any{"type": "string", "pattern": "^https?://"},
			},
		},
		"assets": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"base_url": map[string]any{"type": "string"},
			},
		},
		"log": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"level": map[string]any{"enum": []any{"debug", "info", "warn", "error"}},
				"file":  map[string]any{"type": "string"},
			},
		},
		"quiz": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"seed": map[string]any{"type": "integer", "minimum": 0},
			},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		def, err := jsonValue(configSchema)
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validate checks raw YAML against configSchema.
func validate(data []byte) error {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if doc == nil {
		return nil
	}

	parsed, err := jsonValue(doc)
	if err != nil {
		return fmt.Errorf("normalize yaml: %w", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// jsonValue round-trips v through encoding/json. The validator expects
// JSON-shaped values (float64 numbers, map[string]any objects).
func jsonValue(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
