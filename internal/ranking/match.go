package ranking

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"time"

	"github.com/NathiDhliso/ReelApps/internal/similarity"
	"github.com/NathiDhliso/ReelApps/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Weights for the overall score.
const (
	skillsWeight     = 0.4
	experienceWeight = 0.3
	cultureWeight    = 0.3
)

type skillsScorer interface {
	Score(requirements []string, skills []types.CandidateSkill) SkillsResult
}

type experienceScorer interface {
	Score(level string, skills []types.CandidateSkill) int
}

type cultureScorer interface {
	Score(description string, persona *types.PersonaTraits) int
}

// Config configures a Matcher.
type Config struct {
	// Workers bounds parallel candidate scoring. Zero means runtime.NumCPU().
	Workers int
	// MaxFeatures caps the TF-IDF vocabulary when Similarity is nil.
	MaxFeatures int
	// Similarity overrides the text encoder used for skills scoring.
	Similarity similarity.Factory
	Logger     *zap.Logger
	Metrics    *Metrics
}

// DefaultConfig returns the default matcher configuration.
func DefaultConfig() Config {
	return Config{
		Workers:     runtime.NumCPU(),
		MaxFeatures: similarity.DefaultTFIDFOptions().MaxFeatures,
	}
}

// Matcher scores candidates against a job posting and orders them.
type Matcher struct {
	skills     skillsScorer
	experience experienceScorer
	culture    cultureScorer
	workers    int
	logger     *zap.Logger
	metrics    *Metrics
}

// NewMatcher creates a Matcher from cfg.
func NewMatcher(cfg Config) *Matcher {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	factory := cfg.Similarity
	if factory == nil {
		opts := similarity.DefaultTFIDFOptions()
		if cfg.MaxFeatures > 0 {
			opts.MaxFeatures = cfg.MaxFeatures
		}
		factory = similarity.NewTFIDFFactory(opts)
	}

	return &Matcher{
		skills:     NewSkillsScorer(factory, logger, cfg.Metrics),
		experience: NewExperienceScorer(logger, cfg.Metrics),
		culture:    NewCultureScorer(logger, cfg.Metrics),
		workers:    workers,
		logger:     logger,
		metrics:    cfg.Metrics,
	}
}

type outcome struct {
	result types.MatchResult
	err    error
}

// Match scores every candidate and returns results sorted by overall score, highest
// first. Ties keep input order. Candidates that fail are logged and dropped; an
// unusable job posting or a cancelled context fails the whole batch.
func (m *Matcher) Match(ctx context.Context, job *types.JobPosting, candidates []types.CandidateProfile) ([]types.MatchResult, error) {
	start := time.Now()

	if job == nil {
		m.metrics.incBatches(StatusFailure)
		return nil, &JobError{Message: "invalid job posting", Cause: ErrNilJob}
	}
	posting := *job
	posting.ApplyDefaults()
	if err := posting.Validate(); err != nil {
		m.metrics.incBatches(StatusFailure)
		return nil, &JobError{Message: "invalid job posting", Cause: err}
	}

	if len(candidates) == 0 {
		m.logger.Warn("no candidates provided for matching", zap.String("job_title", posting.Title))
		m.metrics.incBatches(StatusSuccess)
		return []types.MatchResult{}, nil
	}

	outcomes := make([]outcome, len(candidates))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(m.workers)
	for i := range candidates {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, err := m.MatchCandidate(&posting, &candidates[i])
			outcomes[i] = outcome{result: res, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		m.metrics.incBatches(StatusFailure)
		return nil, fmt.Errorf("matching cancelled: %w", err)
	}

	results := make([]types.MatchResult, 0, len(candidates))
	dropped := 0
	for i, o := range outcomes {
		if o.err != nil {
			dropped++
			m.metrics.incCandidates(OutcomeDropped)
			m.logger.Error("error matching candidate, dropping from results",
				zap.String("candidate_id", candidates[i].ID),
				zap.Error(o.err),
			)
			continue
		}
		m.metrics.incCandidates(OutcomeScored)
		results = append(results, o.result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].OverallScore > results[j].OverallScore
	})

	elapsed := time.Since(start)
	m.metrics.incBatches(StatusSuccess)
	m.metrics.observeBatch(elapsed.Seconds())
	m.logger.Info("matched candidates",
		zap.String("job_title", posting.Title),
		zap.Int("matched", len(results)),
		zap.Int("dropped", dropped),
		zap.Duration("duration", elapsed),
	)

	return results, nil
}

// MatchCandidate scores a single candidate. The job posting is expected to have
// defaults applied. Panics during scoring are returned as *CandidateError.
func (m *Matcher) MatchCandidate(job *types.JobPosting, candidate *types.CandidateProfile) (result types.MatchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = types.MatchResult{}
			err = &CandidateError{
				CandidateID: candidate.ID,
				Message:     "scoring panicked",
				Cause:       fmt.Errorf("%v", r),
			}
		}
	}()

	if err := candidate.Validate(); err != nil {
		return types.MatchResult{}, &CandidateError{CandidateID: candidate.ID, Message: "invalid candidate", Cause: err}
	}

	skills := m.skills.Score(job.Requirements, candidate.Skills)
	skillsScore := clampScore(skills.Score)
	experience := clampScore(m.experience.Score(job.ExperienceLevel, candidate.Skills))
	culture := clampScore(m.culture.Score(job.Description, candidate.Persona))

	overall := clampScore(int(math.Round(
		skillsWeight*float64(skillsScore) +
			experienceWeight*float64(experience) +
			cultureWeight*float64(culture),
	)))

	return types.MatchResult{
		CandidateID:     candidate.ID,
		OverallScore:    overall,
		SkillsMatch:     skillsScore,
		ExperienceMatch: experience,
		CultureMatch:    culture,
		Reasoning:       buildReasoning(skillsScore, experience, culture),
		Strengths:       buildStrengths(skills.Strengths, experience, culture),
		Concerns:        buildConcerns(skills.Concerns, experience, culture),
	}, nil
}
