// Package schemas provides JSON Schema validation for configuration files.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema describes the shape of a CLI configuration file. It rejects
// unknown keys so typos like "max_keyword" fail loudly instead of being
// silently ignored.
const configSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"resume": {"type": "string"},
		"job": {"type": "string"},
		"job_url": {"type": "string", "format": "uri"},
		"output": {"type": "string"},
		"max_keywords": {"type": "integer", "minimum": 0},
		"density_limit": {"type": "number", "exclusiveMinimum": 0, "exclusiveMaximum": 1},
		"section_caps": {
			"type": "object",
			"additionalProperties": {"type": "integer", "minimum": 0},
			"propertyNames": {
				"enum": ["summary", "skills", "experience", "projects", "other"]
			}
		},
		"use_browser": {"type": "boolean"},
		"verbose": {"type": "boolean"},
		"database_url": {"type": "string"}
	}
}`

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateConfig validates raw configuration JSON against the built-in schema.
// Returns a *ValidationError describing every violated field, or nil when the
// document is valid.
func ValidateConfig(data []byte) error {
	return validate(configSchema, gojsonschema.NewBytesLoader(data))
}

// ValidateConfigString validates configuration JSON provided as a string.
func ValidateConfigString(content string) error {
	return validate(configSchema, gojsonschema.NewStringLoader(content))
}

func validate(schema string, document gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), document)
	if err != nil {
		return &SchemaLoadError{
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
