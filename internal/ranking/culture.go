package ranking

import (
	"fmt"
	"math"
	"strings"

	"github.com/NathiDhliso/ReelApps/internal/types"
	"go.uber.org/zap"
)

const (
	neutralCultureScore  = 50
	noSignalCultureScore = 70
	maxTraitWeight       = 3
	neutralTraitScore    = 1.5
)

type cultureTrait struct {
	name     string
	keywords []string
	source   func(*types.PersonaTraits) *float64
}

var cultureTraits = []cultureTrait{
	{
		name:     "collaborative",
		keywords: []string{"team", "collaborate", "partnership", "together"},
		source: func(p *types.PersonaTraits) *float64 {
			if p.WorkStyle == nil {
				return nil
			}
			return p.WorkStyle.Collaboration
		},
	},
	{
		name:     "independent",
		keywords: []string{"autonomous", "self-directed", "independent", "ownership"},
		source: func(p *types.PersonaTraits) *float64 {
			if p.WorkStyle == nil {
				return nil
			}
			return p.WorkStyle.Independence
		},
	},
	{
		name:     "innovative",
		keywords: []string{"innovation", "creative", "cutting-edge", "disruptive"},
		source: func(p *types.PersonaTraits) *float64 {
			if p.CulturalFit == nil {
				return nil
			}
			return p.CulturalFit.Innovation
		},
	},
	{
		name:     "structured",
		keywords: []string{"process", "methodology", "systematic", "organized"},
		source: func(p *types.PersonaTraits) *float64 {
			if p.CulturalFit == nil {
				return nil
			}
			return p.CulturalFit.Structure
		},
	},
	{
		name:     "fast-paced",
		keywords: []string{"fast-paced", "agile", "rapid", "quick"},
	},
	{
		name:     "leadership",
		keywords: []string{"lead", "mentor", "guide", "manage"},
		source: func(p *types.PersonaTraits) *float64 {
			if p.WorkStyle == nil {
				return nil
			}
			return p.WorkStyle.Leadership
		},
	},
}

// CultureScorer compares keyword-derived job culture weights with persona trait scores.
type CultureScorer struct {
	logger  *zap.Logger
	metrics *Metrics
}

// NewCultureScorer creates a CultureScorer.
func NewCultureScorer(logger *zap.Logger, metrics *Metrics) *CultureScorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CultureScorer{logger: logger, metrics: metrics}
}

// Score returns 0-100. A missing persona scores 50; a description without any
// culture keyword scores 70. Internal failures return 50.
func (s *CultureScorer) Score(description string, persona *types.PersonaTraits) int {
	if persona == nil {
		return neutralCultureScore
	}

	score, err := cultureScore(description, persona)
	if err != nil {
		s.logger.Warn("culture scoring failed, using neutral score", zap.Error(err))
		s.metrics.incFallback(ScorerCulture)
		return neutralCultureScore
	}
	return score
}

// JobTraitWeights returns the keyword hit count per trait, capped at 3.
func JobTraitWeights(description string) map[string]int {
	text := strings.ToLower(description)
	weights := make(map[string]int, len(cultureTraits))
	for _, trait := range cultureTraits {
		hits := 0
		for _, kw := range trait.keywords {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		weights[trait.name] = min(hits, maxTraitWeight)
	}
	return weights
}

func cultureScore(description string, persona *types.PersonaTraits) (int, error) {
	weights := JobTraitWeights(description)

	var totalMatch, totalWeight float64
	for _, trait := range cultureTraits {
		weight := float64(weights[trait.name])
		if weight == 0 {
			continue
		}

		candidate := neutralTraitScore
		if trait.source != nil {
			if v := trait.source(persona); v != nil {
				candidate = *v / 100 * 3
			}
		}
		if math.IsNaN(candidate) || math.IsInf(candidate, 0) {
			return 0, fmt.Errorf("invalid %s trait score: %v", trait.name, candidate)
		}

		totalMatch += math.Min(candidate/3, 1.0) * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return noSignalCultureScore, nil
	}
	return clampScore(int(math.Round(totalMatch / totalWeight * 100))), nil
}
