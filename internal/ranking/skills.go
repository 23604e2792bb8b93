// Package ranking ranks candidate profiles against a job posting by combining
// skills similarity, experience band fit and culture trait alignment.
package ranking

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/NathiDhliso/ReelApps/internal/similarity"
	"github.com/NathiDhliso/ReelApps/internal/types"
	"go.uber.org/zap"
)

const (
	maxSkillStrengths   = 3
	strengthThreshold   = 0.1
	missingKeywordLimit = 5
	limitedOverlapScore = 50
	unknownSkillName    = "Unknown Skill"
)

// Skills concern messages.
const (
	ConcernNoSkills       = "No skills listed"
	ConcernMissingSkills  = "Several required skills not explicitly mentioned"
	ConcernLimitedOverlap = "Limited overlap with job requirements"
	ConcernSkillsError    = "Error analyzing skills match"
)

// SkillsResult is the outcome of skills scoring.
type SkillsResult struct {
	Score     int
	Strengths []string
	Concerns  []string
}

// SkillsScorer scores the textual similarity of job requirements and candidate skills.
type SkillsScorer struct {
	encoders similarity.Factory
	logger   *zap.Logger
	metrics  *Metrics
}

// NewSkillsScorer creates a SkillsScorer. A nil factory uses default TF-IDF options.
func NewSkillsScorer(encoders similarity.Factory, logger *zap.Logger, metrics *Metrics) *SkillsScorer {
	if encoders == nil {
		encoders = similarity.NewTFIDFFactory(similarity.DefaultTFIDFOptions())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SkillsScorer{encoders: encoders, logger: logger, metrics: metrics}
}

// Score returns a 0-100 skills match with strengths and concerns.
// Internal failures never escape; they produce a zero score with an error concern.
func (s *SkillsScorer) Score(requirements []string, skills []types.CandidateSkill) (result SkillsResult) {
	if len(skills) == 0 {
		return SkillsResult{Score: 0, Strengths: []string{}, Concerns: []string{ConcernNoSkills}}
	}

	defer func() {
		if r := recover(); r != nil {
			result = s.fallback(fmt.Errorf("panic: %v", r))
		}
	}()

	res, err := s.score(requirements, skills)
	if err != nil {
		return s.fallback(err)
	}
	return res
}

func (s *SkillsScorer) fallback(err error) SkillsResult {
	s.logger.Warn("skills scoring failed, using default", zap.Error(err))
	s.metrics.incFallback(ScorerSkills)
	return SkillsResult{Score: 0, Strengths: []string{}, Concerns: []string{ConcernSkillsError}}
}

func (s *SkillsScorer) score(requirements []string, skills []types.CandidateSkill) (SkillsResult, error) {
	jobDoc := strings.ToLower(strings.Join(requirements, " "))

	skillDocs := make([]string, len(skills))
	names := make([]string, len(skills))
	for i, skill := range skills {
		skillDocs[i] = strings.ToLower(skill.Name + " " + skill.Description)
		names[i] = skill.Name
		if names[i] == "" {
			names[i] = unknownSkillName
		}
	}

	encoder, err := s.encoders(append([]string{jobDoc}, skillDocs...))
	if err != nil {
		return SkillsResult{}, fmt.Errorf("failed to build encoder: %w", err)
	}

	jobVec := encoder.Encode(jobDoc)
	sims := make([]float64, len(skillDocs))
	var total float64
	for i, doc := range skillDocs {
		sim := encoder.Similarity(jobVec, encoder.Encode(doc))
		if math.IsNaN(sim) {
			sim = 0
		}
		sims[i] = sim
		total += sim
	}

	score := clampScore(int(math.Round(total / float64(len(sims)) * 100)))

	order := make([]int, len(sims))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return sims[order[a]] > sims[order[b]]
	})

	strengths := make([]string, 0, maxSkillStrengths)
	for _, idx := range order[:min(maxSkillStrengths, len(order))] {
		if sims[idx] > strengthThreshold {
			strengths = append(strengths, names[idx])
		}
	}

	concerns := make([]string, 0, 2)
	if countMissingWords(jobDoc, skillDocs) > missingKeywordLimit {
		concerns = append(concerns, ConcernMissingSkills)
	}
	if score < limitedOverlapScore {
		concerns = append(concerns, ConcernLimitedOverlap)
	}

	return SkillsResult{Score: score, Strengths: strengths, Concerns: concerns}, nil
}

// countMissingWords counts whitespace-separated job words absent from every skill document.
func countMissingWords(jobDoc string, skillDocs []string) int {
	have := make(map[string]bool)
	for _, w := range strings.Fields(strings.Join(skillDocs, " ")) {
		have[w] = true
	}

	missing := make(map[string]bool)
	for _, w := range strings.Fields(jobDoc) {
		if !have[w] {
			missing[w] = true
		}
	}
	return len(missing)
}
