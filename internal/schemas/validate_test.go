package schemas

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validMatchRequest = `{
	"job_posting": {
		"title": "Senior Python Developer",
		"description": "Collaborative team",
		"requirements": ["Python", "Django"],
		"experience_level": "senior"
	},
	"candidates": [
		{
			"id": "c1",
			"first_name": "Ada",
			"skills": [{"name": "Python", "years_experience": 6}],
			"persona_analysis": {"work_style": {"collaboration": 85}, "cultural_fit": null},
			"projects": []
		}
	]
}`

func TestSchemasAreValidJSON(t *testing.T) {
	for _, name := range []string{MatchRequestSchema, JobPostingSchema, PersonaRequestSchema} {
		data, err := Schema(name)
		require.NoError(t, err, name)
		assert.True(t, json.Valid(data), name)
	}
}

func TestValidateMatchRequest_Valid(t *testing.T) {
	assert.NoError(t, ValidateMatchRequest([]byte(validMatchRequest)))
}

func TestValidateMatchRequest_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		document string
		field    string
	}{
		{name: "missing candidates", document: `{"job_posting": {}}`, field: "(root)"},
		{name: "requirements not a list", document: `{"job_posting": {"requirements": "Python"}, "candidates": []}`, field: "job_posting.requirements"},
		{name: "candidate without id", document: `{"job_posting": {}, "candidates": [{"skills": []}]}`, field: "candidates.0"},
		{name: "negative years", document: `{"job_posting": {}, "candidates": [{"id": "c", "skills": [{"name": "Go", "years_experience": -2}]}]}`, field: "candidates.0.skills.0.years_experience"},
		{name: "trait above range", document: `{"job_posting": {}, "candidates": [{"id": "c", "persona_analysis": {"work_style": {"leadership": 120}}}]}`, field: "candidates.0.persona_analysis.work_style.leadership"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMatchRequest([]byte(tt.document))
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, tt.field, validationErr.Errors[0].Field)
			assert.Contains(t, err.Error(), "validation failed")
		})
	}
}

func TestValidateDocument_MalformedJSON(t *testing.T) {
	documents := map[string]string{
		"truncated":      `{"job_posting":`,
		"not json":       `not json`,
		"trailing comma": `{"job_posting": {}, "candidates": [],}`,
		"empty":          ``,
	}

	for name, document := range documents {
		t.Run(name, func(t *testing.T) {
			err := ValidateMatchRequest([]byte(document))

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Len(t, validationErr.Errors, 1)
			assert.Equal(t, "(root)", validationErr.Errors[0].Field)
			assert.Contains(t, validationErr.Errors[0].Message, "invalid JSON")

			var loadErr *SchemaLoadError
			assert.False(t, errors.As(err, &loadErr))
		})
	}

	for _, validateFn := range []func([]byte) error{ValidateJobPosting, ValidatePersonaRequest} {
		var validationErr *ValidationError
		assert.ErrorAs(t, validateFn([]byte(`{"text": `)), &validationErr)
	}
}

func TestValidateJobPosting(t *testing.T) {
	assert.NoError(t, ValidateJobPosting([]byte(`{"title": "Dev", "description": "Build", "requirements": []}`)))
	assert.Error(t, ValidateJobPosting([]byte(`{"title": "Dev"}`)))
}

func TestValidatePersonaRequest(t *testing.T) {
	assert.NoError(t, ValidatePersonaRequest([]byte(`{"text": "I enjoy hiking."}`)))
	assert.Error(t, ValidatePersonaRequest([]byte(`{"text": ""}`)))
	assert.Error(t, ValidatePersonaRequest([]byte(`{}`)))
}

func TestValidateDocument_UnknownSchema(t *testing.T) {
	err := ValidateDocument("resume", []byte(`{}`))

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "unknown schema")
}

