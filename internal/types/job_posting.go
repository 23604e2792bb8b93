// Package types provides type definitions for the records exchanged between the
// matching core, the analysis services and the hosting layer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// DefaultExperienceLevel is used when a job posting does not state a seniority level.
const DefaultExperienceLevel = "mid"

var validate = validator.New()

// JobPosting represents the job a batch of candidates is ranked against.
type JobPosting struct {
	Title           string   `json:"title" validate:"max=500"`
	Description     string   `json:"description" validate:"max=20000"`
	Requirements    []string `json:"requirements" validate:"max=200,dive,max=2000"`
	ExperienceLevel string   `json:"experience_level" validate:"max=64"`
}

// ApplyDefaults fills the fields the hosting layer may leave empty.
func (j *JobPosting) ApplyDefaults() {
	if strings.TrimSpace(j.ExperienceLevel) == "" {
		j.ExperienceLevel = DefaultExperienceLevel
	}
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
}

// Validate validates the JobPosting using the validator.
func (j *JobPosting) Validate() error {
	return validate.Struct(j)
}
