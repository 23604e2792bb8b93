package analysis

import (
	"fmt"
	"strings"

	"github.com/NathiDhliso/ReelApps/internal/llm"
	"github.com/NathiDhliso/ReelApps/internal/types"
)

var jobQualitySchema = llm.ResponseSchema{
	Name:        "JobQuality",
	Description: "Analyze the following job posting for clarity, realism, and inclusivity.",
	InputLabel:  "Job posting",
	Fields: []llm.SchemaField{
		{Name: "clarity", Type: "<score 0-100>"},
		{Name: "realism", Type: "<score 0-100>"},
		{Name: "inclusivity", Type: "<score 0-100>"},
		{Name: "suggestions", Type: `["suggestion1", "suggestion2", ...]`},
	},
	Guidelines: []string{
		"Clarity (0-100): How clear and well-structured is the job description? Are responsibilities and requirements clearly defined?",
		"Realism (0-100): Are the requirements realistic for the stated experience level? Is the skill combination reasonable?",
		"Inclusivity (0-100): Does the language promote diversity and inclusion? Are there any potentially exclusionary terms or requirements?",
		"Suggestions: Provide 3-5 specific, actionable suggestions for improvement.",
	},
}

var personaSchema = llm.ResponseSchema{
	Name: "Persona",
	Description: "Analyze the following text for personality traits based on the Big Five (OCEAN) model. " +
		"The text contains combined answers from a questionnaire and conversational analysis.",
	InputLabel: "Text to analyze",
	Fields: []llm.SchemaField{
		{Name: "openness", Type: "<score 0-100>"},
		{Name: "conscientiousness", Type: "<score 0-100>"},
		{Name: "extraversion", Type: "<score 0-100>"},
		{Name: "agreeableness", Type: "<score 0-100>"},
		{Name: "neuroticism", Type: "<score 0-100>"},
		{Name: "summary", Type: `"<one paragraph personality summary>"`},
		{Name: "strengths", Type: `["strength1 with brief explanation", "strength2 with brief explanation", "strength3 with brief explanation"]`},
		{Name: "growth_areas", Type: `["growth area1 with brief explanation", "growth area2 with brief explanation", "growth area3 with brief explanation"]`},
	},
	Guidelines: []string{
		"Openness (0-100): Creativity, curiosity, openness to new experiences and ideas",
		"Conscientiousness (0-100): Organization, discipline, goal-orientation, reliability",
		"Extraversion (0-100): Social energy, assertiveness, tendency to seek stimulation from others",
		"Agreeableness (0-100): Compassion, cooperation, trust in others, empathy",
		"Neuroticism (0-100): Emotional stability (lower scores indicate higher stability)",
		"The summary is one cohesive paragraph that integrates all five dimensions.",
		"List three strengths, each with a brief explanation of how it manifests.",
		"List three growth areas, each with a brief explanation of the potential benefit.",
	},
}

func buildJobPrompt(job types.JobPosting) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Job Title: %s\n", job.Title)
	fmt.Fprintf(&sb, "Experience Level: %s\n\n", job.ExperienceLevel)
	fmt.Fprintf(&sb, "Job Description:\n%s\n\n", job.Description)
	fmt.Fprintf(&sb, "Requirements:\n%s", strings.Join(job.Requirements, ", "))
	return llm.BuildPrompt(jobQualitySchema, sb.String())
}

func buildPersonaPrompt(text string) string {
	return llm.BuildPrompt(personaSchema, text)
}
