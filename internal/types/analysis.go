//nolint:revive // types is a standard Go package name pattern
package types

// JobAnalysis is the quality assessment of a job description.
type JobAnalysis struct {
	Clarity     int      `json:"clarity"`
	Realism     int      `json:"realism"`
	Inclusivity int      `json:"inclusivity"`
	Suggestions []string `json:"suggestions"`
}

// PersonaAnalysisRequest carries the free text answers to analyze.
type PersonaAnalysisRequest struct {
	Text string `json:"text" validate:"required,max=50000"`
}

// Validate validates the PersonaAnalysisRequest using the validator.
func (r *PersonaAnalysisRequest) Validate() error {
	return validate.Struct(r)
}

// PersonaAnalysis is a Big Five (OCEAN) personality profile.
type PersonaAnalysis struct {
	Openness          int      `json:"openness"`
	Conscientiousness int      `json:"conscientiousness"`
	Extraversion      int      `json:"extraversion"`
	Agreeableness     int      `json:"agreeableness"`
	Neuroticism       int      `json:"neuroticism"`
	Summary           string   `json:"summary"`
	Strengths         []string `json:"strengths"`
	GrowthAreas       []string `json:"growth_areas"`
}
