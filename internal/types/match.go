//nolint:revive // types is a standard Go package name pattern
package types

// MatchResult is the scored outcome for one candidate. Every score is an integer in [0,100].
type MatchResult struct {
	CandidateID     string   `json:"candidate_id"`
	OverallScore    int      `json:"overall_score"`
	SkillsMatch     int      `json:"skills_match"`
	ExperienceMatch int      `json:"experience_match"`
	CultureMatch    int      `json:"culture_match"`
	Reasoning       string   `json:"reasoning"`
	Strengths       []string `json:"strengths"`
	Concerns        []string `json:"concerns"`
}

// MatchRequest is the body accepted by the candidate matching endpoint and CLI.
type MatchRequest struct {
	JobPosting JobPosting         `json:"job_posting"`
	Candidates []CandidateProfile `json:"candidates" validate:"max=1000,dive"`
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	return validate.Struct(r)
}
