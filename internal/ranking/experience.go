package ranking

import (
	"fmt"
	"math"
	"strings"

	"github.com/NathiDhliso/ReelApps/internal/types"
	"go.uber.org/zap"
)

const neutralExperienceScore = 50

// Band is an inclusive range of years of experience.
type Band struct {
	Min float64
	Max float64
}

var experienceBands = map[string]Band{
	"entry":     {Min: 0, Max: 2},
	"junior":    {Min: 1, Max: 3},
	"mid":       {Min: 3, Max: 6},
	"senior":    {Min: 5, Max: 10},
	"lead":      {Min: 7, Max: 15},
	"principal": {Min: 10, Max: 20},
}

// DefaultBand applies to unrecognized seniority labels.
var DefaultBand = Band{Min: 0, Max: 5}

// BandFor returns the band for a seniority label, matched case-insensitively.
func BandFor(level string) Band {
	if band, ok := experienceBands[strings.ToLower(strings.TrimSpace(level))]; ok {
		return band
	}
	return DefaultBand
}

// ExperienceScorer compares average years of experience against a seniority band.
type ExperienceScorer struct {
	logger  *zap.Logger
	metrics *Metrics
}

// NewExperienceScorer creates an ExperienceScorer.
func NewExperienceScorer(logger *zap.Logger, metrics *Metrics) *ExperienceScorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExperienceScorer{logger: logger, metrics: metrics}
}

// Score returns 0-100. Under-experience costs 20 points per year, over-experience
// 10 points per year with a floor of 60. Internal failures return 50.
func (s *ExperienceScorer) Score(level string, skills []types.CandidateSkill) int {
	if len(skills) == 0 {
		return 0
	}

	score, err := experienceScore(BandFor(level), skills)
	if err != nil {
		s.logger.Warn("experience scoring failed, using neutral score", zap.Error(err))
		s.metrics.incFallback(ScorerExperience)
		return neutralExperienceScore
	}
	return score
}

func experienceScore(band Band, skills []types.CandidateSkill) (int, error) {
	var total float64
	for _, skill := range skills {
		total += skill.YearsExperience
	}
	avg := total / float64(len(skills))
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		return 0, fmt.Errorf("invalid average years of experience: %v", avg)
	}

	switch {
	case avg >= band.Min && avg <= band.Max:
		return 100, nil
	case avg < band.Min:
		return clampScore(int(math.Round(100 - 20*(band.Min-avg)))), nil
	default:
		return clampScore(max(60, int(math.Round(100-10*(avg-band.Max))))), nil
	}
}
