// Package schemas validates raw request documents against the embedded JSON
// Schemas before they are decoded.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed json/*.schema.json
var schemaFS embed.FS

// Embedded schema names.
const (
	MatchRequestSchema   = "match_request"
	JobPostingSchema     = "job_posting"
	PersonaRequestSchema = "persona_request"
)

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

// SchemaLoadError represents errors loading the schema or the document itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Schema returns the raw content of an embedded schema.
func Schema(name string) ([]byte, error) {
	data, err := schemaFS.ReadFile("json/" + name + ".schema.json")
	if err != nil {
		return nil, &SchemaLoadError{Path: name, Message: "unknown schema", Cause: err}
	}
	return data, nil
}

// ValidateDocument validates a JSON document against the named embedded schema.
// A document that is not well-formed JSON is reported as a *ValidationError on
// the root field; *SchemaLoadError is reserved for unusable schemas.
func ValidateDocument(name string, document []byte) error {
	schema, err := Schema(name)
	if err != nil {
		return err
	}

	var parsed any
	if err := json.Unmarshal(document, &parsed); err != nil {
		return &ValidationError{Errors: []FieldError{{
			Field:   "(root)",
			Message: "invalid JSON: " + err.Error(),
		}}}
	}

	return validate(name, gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(document))
}

// ValidateMatchRequest validates a candidate matching request document.
func ValidateMatchRequest(document []byte) error {
	return ValidateDocument(MatchRequestSchema, document)
}

// ValidateJobPosting validates a job posting document for analysis.
func ValidateJobPosting(document []byte) error {
	return ValidateDocument(JobPostingSchema, document)
}

// ValidatePersonaRequest validates a persona analysis request document.
func ValidatePersonaRequest(document []byte) error {
	return ValidateDocument(PersonaRequestSchema, document)
}

func validate(path string, schemaLoader, documentLoader gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    path,
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
