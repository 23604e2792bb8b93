//nolint:revive // types is a standard Go package name pattern
package types

// CandidateSkill is one entry of a candidate's skill list.
// YearsExperience defaults to 0 when absent.
type CandidateSkill struct {
	Name            string  `json:"name" validate:"max=200"`
	Description     string  `json:"description,omitempty" validate:"max=2000"`
	YearsExperience float64 `json:"years_experience,omitempty" validate:"gte=0,lte=100"`
}

// WorkStyle holds 0-100 work style trait scores. Nil fields are absent.
type WorkStyle struct {
	Collaboration *float64 `json:"collaboration,omitempty" validate:"omitempty,gte=0,lte=100"`
	Independence  *float64 `json:"independence,omitempty" validate:"omitempty,gte=0,lte=100"`
	Leadership    *float64 `json:"leadership,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// CulturalFit holds 0-100 cultural preference scores. Nil fields are absent.
type CulturalFit struct {
	Innovation *float64 `json:"innovation,omitempty" validate:"omitempty,gte=0,lte=100"`
	Structure  *float64 `json:"structure,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// PersonaTraits is the optional persona analysis attached to a candidate.
type PersonaTraits struct {
	WorkStyle   *WorkStyle   `json:"work_style,omitempty"`
	CulturalFit *CulturalFit `json:"cultural_fit,omitempty"`
}

// CandidateProfile is a candidate as seen by the matching core.
type CandidateProfile struct {
	ID        string           `json:"id" validate:"required,max=128"`
	FirstName string           `json:"first_name,omitempty"`
	LastName  string           `json:"last_name,omitempty"`
	Headline  string           `json:"headline,omitempty"`
	Skills    []CandidateSkill `json:"skills" validate:"max=500,dive"`
	Persona   *PersonaTraits   `json:"persona_analysis,omitempty"`
}

// Validate validates the CandidateProfile using the validator.
func (c *CandidateProfile) Validate() error {
	return validate.Struct(c)
}

// Float returns a pointer to v. It keeps persona literals short.
func Float(v float64) *float64 {
	return &v
}
