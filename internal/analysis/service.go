// Package analysis scores job descriptions for quality and derives Big Five
// persona profiles from free text using the generative-text oracle.
package analysis

import (
	"context"
	"encoding/json"
	"math"

	"github.com/NathiDhliso/ReelApps/internal/llm"
	"github.com/NathiDhliso/ReelApps/internal/logger"
	"github.com/NathiDhliso/ReelApps/internal/types"
	"go.uber.org/zap"
)

const (
	neutralScore   = 50
	listLength     = 3
	rawLogLimit    = 500
	defaultSummary = "Based on the provided information, this individual shows a balanced personality profile across the Big Five dimensions."
)

// Service runs the analyses. A Service without a client still answers job
// analyses with a fixed fallback.
type Service struct {
	client      llm.Client
	jobTier     llm.ModelTier
	personaTier llm.ModelTier
	logger      *zap.Logger
}

// NewService creates a Service. client may be nil when no API key is configured.
func NewService(client llm.Client, log *zap.Logger) *Service {
	return &Service{
		client:      client,
		jobTier:     llm.TierStandard,
		personaTier: llm.TierAdvanced,
		logger:      logger.OrNop(log),
	}
}

// Available reports whether an oracle client is configured.
func (s *Service) Available() bool {
	return s.client != nil
}

// Models returns the model used by each analysis, or nil without a client.
func (s *Service) Models() map[string]string {
	if s.client == nil {
		return nil
	}
	return map[string]string{
		"job_analysis":     s.client.GetModel(s.jobTier),
		"persona_analysis": s.client.GetModel(s.personaTier),
	}
}

// AnalyzeJobDescription rates a job posting for clarity, realism and inclusivity.
// Without a client, or when the response cannot be parsed, a fixed assessment is
// returned. Oracle transport failures are returned as *APICallError.
func (s *Service) AnalyzeJobDescription(ctx context.Context, job types.JobPosting) (*types.JobAnalysis, error) {
	job.ApplyDefaults()

	if s.client == nil {
		s.logger.Warn("Gemini API key not configured, using fallback job analysis", zap.String("job_title", job.Title))
		return offlineJobAnalysis(), nil
	}

	raw, err := s.client.GenerateJSON(ctx, buildJobPrompt(job), s.jobTier)
	if err != nil {
		s.logger.Error("job analysis request failed", zap.String("job_title", job.Title), zap.Error(err))
		return nil, &APICallError{Message: "failed to analyze job description", Cause: err}
	}

	analysis, err := parseJobAnalysis(raw)
	if err != nil {
		s.logger.Error("failed to parse job analysis response, using fallback",
			zap.Error(err),
			zap.String("raw_response", logger.TruncateForLog(raw, rawLogLimit)),
		)
		return unparsedJobAnalysis(), nil
	}

	s.logger.Info("analyzed job description", zap.String("job_title", job.Title))
	return analysis, nil
}

// AnalyzePersona derives a Big Five profile from free text. It requires a client.
func (s *Service) AnalyzePersona(ctx context.Context, req types.PersonaAnalysisRequest) (*types.PersonaAnalysis, error) {
	if s.client == nil {
		return nil, ErrAIUnavailable
	}

	raw, err := s.client.GenerateJSON(ctx, buildPersonaPrompt(req.Text), s.personaTier)
	if err != nil {
		s.logger.Error("persona analysis request failed", zap.Error(err))
		return nil, &APICallError{Message: "failed to analyze persona", Cause: err}
	}

	persona, err := parsePersonaAnalysis(raw)
	if err != nil {
		s.logger.Error("failed to parse persona analysis response",
			zap.Error(err),
			zap.String("raw_response", logger.TruncateForLog(raw, rawLogLimit)),
		)
		return nil, err
	}

	s.logger.Info("completed persona analysis")
	return persona, nil
}

func offlineJobAnalysis() *types.JobAnalysis {
	return &types.JobAnalysis{
		Clarity:     75,
		Realism:     80,
		Inclusivity: 85,
		Suggestions: []string{
			"Consider adding more specific technical requirements",
			"Review language for inclusive terminology",
			"Clarify experience level expectations",
		},
	}
}

func unparsedJobAnalysis() *types.JobAnalysis {
	return &types.JobAnalysis{
		Clarity:     75,
		Realism:     80,
		Inclusivity: 70,
		Suggestions: []string{
			"Consider adding more specific technical requirements",
			"Review language for inclusive terminology",
			"Clarify experience level expectations",
			"Add information about company culture and values",
		},
	}
}

func parseJobAnalysis(raw string) (*types.JobAnalysis, error) {
	fields, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	for _, name := range []string{"clarity", "realism", "inclusivity", "suggestions"} {
		if _, ok := fields[name]; !ok {
			return nil, &ResponseFormatError{Message: "missing required field: " + name}
		}
	}

	suggestions, ok := stringList(fields["suggestions"])
	if !ok {
		suggestions = []string{"Review job description for clarity and completeness"}
	}

	return &types.JobAnalysis{
		Clarity:     score(fields["clarity"]),
		Realism:     score(fields["realism"]),
		Inclusivity: score(fields["inclusivity"]),
		Suggestions: suggestions,
	}, nil
}

func parsePersonaAnalysis(raw string) (*types.PersonaAnalysis, error) {
	fields, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}

	summary, ok := fields["summary"].(string)
	if !ok {
		summary = defaultSummary
	}

	strengths, ok := stringList(fields["strengths"])
	if !ok {
		strengths = []string{
			"Demonstrates self-awareness through thoughtful responses",
			"Shows willingness to engage in personal reflection",
			"Exhibits clear communication skills",
		}
	}

	growth, ok := stringList(fields["growth_areas"])
	if !ok {
		growth = []string{
			"Continue developing self-awareness through regular reflection",
			"Seek feedback from others to gain external perspectives",
			"Consider exploring areas outside comfort zone for growth",
		}
	}

	return &types.PersonaAnalysis{
		Openness:          score(fields["openness"]),
		Conscientiousness: score(fields["conscientiousness"]),
		Extraversion:      score(fields["extraversion"]),
		Agreeableness:     score(fields["agreeableness"]),
		Neuroticism:       score(fields["neuroticism"]),
		Summary:           summary,
		Strengths:         fitLength(strengths, "Additional strength identified through comprehensive analysis"),
		GrowthAreas:       fitLength(growth, "Additional growth opportunity for continued development"),
	}, nil
}

func decodeObject(raw string) (map[string]any, error) {
	var fields map[string]any
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &fields); err != nil {
		return nil, &ResponseFormatError{Message: "AI service returned invalid JSON", Cause: err}
	}
	if fields == nil {
		return nil, &ResponseFormatError{Message: "AI service returned null"}
	}
	return fields, nil
}

// score truncates a JSON number into [0,100]. Anything else is neutral.
func score(v any) int {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) {
		return neutralScore
	}
	return int(math.Max(0, math.Min(100, math.Trunc(f))))
}

// stringList returns the string items of a JSON array. ok is false when v is not an array.
func stringList(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, true
}

// fitLength truncates items to three entries or pads them with filler.
func fitLength(items []string, filler string) []string {
	if len(items) >= listLength {
		return items[:listLength]
	}
	out := append([]string{}, items...)
	for len(out) < listLength {
		out = append(out, filler)
	}
	return out
}
