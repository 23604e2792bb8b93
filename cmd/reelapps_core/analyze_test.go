package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/NathiDhliso/ReelApps/internal/analysis"
	"github.com/NathiDhliso/ReelApps/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeJobCommand_Fallback(t *testing.T) {
	input := writeFile(t, "job.json", `{"title": "Data Engineer", "description": "Build pipelines", "requirements": ["SQL"]}`)

	out, err := execute(t, "analyze-job", "--input", input)
	require.NoError(t, err)

	var got types.JobAnalysis
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 75, got.Clarity)
	assert.Equal(t, 80, got.Realism)
	assert.Equal(t, 85, got.Inclusivity)
	assert.Len(t, got.Suggestions, 3)
}

func TestAnalyzeJobCommand_InvalidPosting(t *testing.T) {
	input := writeFile(t, "job.json", `{"title": 7}`)

	_, err := execute(t, "analyze-job", "--input", input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid job posting")
}

func TestAnalyzePersonaCommand_RequiresAI(t *testing.T) {
	_, err := execute(t, "analyze-persona", "--text", "I like building things with friends.")
	require.Error(t, err)
	assert.True(t, errors.Is(err, analysis.ErrAIUnavailable))
}

func TestAnalyzePersonaCommand_FlagValidation(t *testing.T) {
	_, err := execute(t, "analyze-persona")
	require.Error(t, err)

	_, err = execute(t, "analyze-persona", "--text", "a", "--text-file", "b.txt")
	require.Error(t, err)

	blank := writeFile(t, "blank.txt", "   \n")
	_, err = execute(t, "analyze-persona", "--text-file", blank)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text is required")
}
