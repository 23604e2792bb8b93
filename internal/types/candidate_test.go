//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateProfile_Validation(t *testing.T) {
	tests := []struct {
		name      string
		candidate CandidateProfile
		wantErr   bool
	}{
		{
			name: "valid candidate",
			candidate: CandidateProfile{
				ID:     "cand-1",
				Skills: []CandidateSkill{{Name: "Go", YearsExperience: 4}},
				Persona: &PersonaTraits{
					WorkStyle: &WorkStyle{Collaboration: Float(80)},
				},
			},
		},
		{
			name:      "valid candidate without skills or persona",
			candidate: CandidateProfile{ID: "cand-2"},
		},
		{
			name:      "missing id",
			candidate: CandidateProfile{Skills: []CandidateSkill{{Name: "Go"}}},
			wantErr:   true,
		},
		{
			name: "negative years",
			candidate: CandidateProfile{
				ID:     "cand-3",
				Skills: []CandidateSkill{{Name: "Go", YearsExperience: -1}},
			},
			wantErr: true,
		},
		{
			name: "NaN years",
			candidate: CandidateProfile{
				ID:     "cand-4",
				Skills: []CandidateSkill{{Name: "Go", YearsExperience: math.NaN()}},
			},
			wantErr: true,
		},
		{
			name: "trait out of range",
			candidate: CandidateProfile{
				ID: "cand-5",
				Persona: &PersonaTraits{
					CulturalFit: &CulturalFit{Innovation: Float(140)},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.candidate.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCandidateProfile_UnmarshalPersona(t *testing.T) {
	data := `{
		"id": "c1",
		"skills": [{"name": "Python"}],
		"persona_analysis": {"work_style": {"leadership": 70}}
	}`

	var c CandidateProfile
	require.NoError(t, json.Unmarshal([]byte(data), &c))

	require.NotNil(t, c.Persona)
	require.NotNil(t, c.Persona.WorkStyle)
	assert.Nil(t, c.Persona.WorkStyle.Collaboration)
	require.NotNil(t, c.Persona.WorkStyle.Leadership)
	assert.Equal(t, 70.0, *c.Persona.WorkStyle.Leadership)
	assert.Nil(t, c.Persona.CulturalFit)
	assert.Equal(t, 0.0, c.Skills[0].YearsExperience)
}

func TestJobPosting_ApplyDefaults(t *testing.T) {
	job := JobPosting{Title: "Engineer"}
	job.ApplyDefaults()

	assert.Equal(t, DefaultExperienceLevel, job.ExperienceLevel)
	assert.NotNil(t, job.Requirements)

	job = JobPosting{ExperienceLevel: "Senior"}
	job.ApplyDefaults()
	assert.Equal(t, "Senior", job.ExperienceLevel)
}

func TestMatchRequest_ValidateDivesIntoCandidates(t *testing.T) {
	req := MatchRequest{
		JobPosting: JobPosting{Title: "Engineer"},
		Candidates: []CandidateProfile{{ID: "ok"}, {ID: ""}},
	}
	assert.Error(t, req.Validate())

	req.Candidates[1].ID = "also-ok"
	assert.NoError(t, req.Validate())
}

func TestPersonaAnalysisRequest_Validation(t *testing.T) {
	assert.Error(t, (&PersonaAnalysisRequest{}).Validate())
	assert.NoError(t, (&PersonaAnalysisRequest{Text: "I enjoy teamwork"}).Validate())
}
