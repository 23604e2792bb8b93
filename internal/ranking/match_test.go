package ranking

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/NathiDhliso/ReelApps/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// stubSkills scores a candidate by the name of its first skill and panics on "boom".
type stubSkills map[string]int

func (s stubSkills) Score(_ []string, skills []types.CandidateSkill) SkillsResult {
	name := ""
	if len(skills) > 0 {
		name = skills[0].Name
	}
	if name == "boom" {
		panic("scorer exploded")
	}
	return SkillsResult{Score: s[name], Strengths: []string{}, Concerns: []string{}}
}

type fixedScore int

func (f fixedScore) Score(string, []types.CandidateSkill) int { return int(f) }

type fixedCulture int

func (f fixedCulture) Score(string, *types.PersonaTraits) int { return int(f) }

func newStubMatcher(skills stubSkills, experience, culture int, metrics *Metrics) *Matcher {
	return &Matcher{
		skills:     skills,
		experience: fixedScore(experience),
		culture:    fixedCulture(culture),
		workers:    2,
		logger:     zap.NewNop(),
		metrics:    metrics,
	}
}

func candidate(id string, skills ...string) types.CandidateProfile {
	c := types.CandidateProfile{ID: id}
	for _, s := range skills {
		c.Skills = append(c.Skills, types.CandidateSkill{Name: s})
	}
	return c
}

// Skills 24 follows the mean-cosine TF-IDF formula on this four-document corpus;
// that formula cannot reach 80 here.
func TestMatcher_ScoresCandidate(t *testing.T) {
	m := NewMatcher(Config{Workers: 2})

	job := &types.JobPosting{
		Title:           "ML Engineer",
		Description:     "Agile team that moves fast",
		Requirements:    []string{"Python", "React", "Machine Learning"},
		ExperienceLevel: "mid",
	}
	candidates := []types.CandidateProfile{{
		ID: "cand-1",
		Skills: []types.CandidateSkill{
			{Name: "Python", Description: "Expert in Python programming", YearsExperience: 5},
			{Name: "React", Description: "Frontend development with React", YearsExperience: 3},
			{Name: "Machine Learning", Description: "ML model development", YearsExperience: 2},
		},
		Persona: &types.PersonaTraits{},
	}}

	results, err := m.Match(context.Background(), job, candidates)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "cand-1", r.CandidateID)
	assert.Equal(t, 24, r.SkillsMatch)
	assert.Equal(t, 100, r.ExperienceMatch)
	assert.Equal(t, 50, r.CultureMatch)
	assert.Equal(t, 55, r.OverallScore)
	assert.Equal(t, "Limited skills overlap, excellent experience level fit, potential cultural fit concerns.", r.Reasoning)
	assert.Equal(t, []string{"Machine Learning", "React", "Python", StrengthExperience}, r.Strengths)
	assert.Equal(t, []string{ConcernLimitedOverlap}, r.Concerns)
}

func TestMatcher_SortsDescendingWithStableTies(t *testing.T) {
	m := newStubMatcher(stubSkills{"a": 50, "b": 100, "c": 50, "d": 75}, 0, 0, nil)

	results, err := m.Match(context.Background(), &types.JobPosting{}, []types.CandidateProfile{
		candidate("first", "a"),
		candidate("second", "b"),
		candidate("third", "c"),
		candidate("fourth", "d"),
	})
	require.NoError(t, err)

	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.CandidateID
	}
	assert.Equal(t, []string{"second", "fourth", "first", "third"}, ids)
	assert.Equal(t, 40, results[0].OverallScore)
	assert.Equal(t, 20, results[2].OverallScore)
	assert.Equal(t, 20, results[3].OverallScore)
}

func TestMatcher_DropsPanickingCandidate(t *testing.T) {
	metrics := NewMetrics()
	m := newStubMatcher(stubSkills{"ok": 80}, 100, 100, metrics)

	results, err := m.Match(context.Background(), &types.JobPosting{Title: "t"}, []types.CandidateProfile{
		candidate("c1", "ok"),
		candidate("c2", "ok"),
		candidate("c3", "boom"),
		candidate("c4", "ok"),
		candidate("c5", "ok"),
	})
	require.NoError(t, err)
	require.Len(t, results, 4)
	for _, r := range results {
		assert.NotEqual(t, "c3", r.CandidateID)
	}

	assert.Equal(t, 4.0, counterValue(t, metrics.candidates.WithLabelValues(OutcomeScored)))
	assert.Equal(t, 1.0, counterValue(t, metrics.candidates.WithLabelValues(OutcomeDropped)))
	assert.Equal(t, 1.0, counterValue(t, metrics.batches.WithLabelValues(StatusSuccess)))
}

func TestMatcher_DropLogsCandidateID(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	m := newStubMatcher(stubSkills{"ok": 80}, 100, 100, nil)
	m.logger = zap.New(core)

	results, err := m.Match(context.Background(), &types.JobPosting{Title: "t"}, []types.CandidateProfile{
		candidate("c1", "ok"),
		candidate("c2", "boom"),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	dropped := logs.FilterMessage("error matching candidate, dropping from results").All()
	require.Len(t, dropped, 1)
	fields := dropped[0].ContextMap()
	assert.Equal(t, "c2", fields["candidate_id"])
	assert.Contains(t, fields["error"], "scorer exploded")
}

func TestMatcher_MatchCandidatePanicIsCandidateError(t *testing.T) {
	m := newStubMatcher(stubSkills{}, 0, 0, nil)

	job := &types.JobPosting{}
	c := candidate("c3", "boom")
	_, err := m.MatchCandidate(job, &c)

	var candErr *CandidateError
	require.ErrorAs(t, err, &candErr)
	assert.Equal(t, "c3", candErr.CandidateID)
	assert.Contains(t, err.Error(), "scorer exploded")
}

func TestMatcher_DropsInvalidCandidate(t *testing.T) {
	m := NewMatcher(Config{Workers: 1})

	results, err := m.Match(context.Background(), &types.JobPosting{Requirements: []string{"golang"}}, []types.CandidateProfile{
		candidate("", "golang"),
		{ID: "negative", Skills: []types.CandidateSkill{{Name: "golang", YearsExperience: -1}}},
		candidate("valid", "golang"),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "valid", results[0].CandidateID)
}

func TestMatcher_NilJob(t *testing.T) {
	metrics := NewMetrics()
	m := NewMatcher(Config{Metrics: metrics})

	results, err := m.Match(context.Background(), nil, []types.CandidateProfile{candidate("c1", "go")})

	assert.Nil(t, results)
	var jobErr *JobError
	require.ErrorAs(t, err, &jobErr)
	assert.ErrorIs(t, err, ErrNilJob)
	assert.Equal(t, 1.0, counterValue(t, metrics.batches.WithLabelValues(StatusFailure)))
}

func TestMatcher_InvalidJob(t *testing.T) {
	m := NewMatcher(Config{})

	job := &types.JobPosting{Title: strings.Repeat("x", 501)}
	_, err := m.Match(context.Background(), job, []types.CandidateProfile{candidate("c1", "go")})

	var jobErr *JobError
	require.ErrorAs(t, err, &jobErr)
	assert.Contains(t, err.Error(), "invalid job posting")
}

func TestMatcher_NoCandidates(t *testing.T) {
	m := NewMatcher(Config{})

	results, err := m.Match(context.Background(), &types.JobPosting{Title: "Backend"}, nil)

	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestMatcher_CancelledContext(t *testing.T) {
	m := NewMatcher(Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := m.Match(ctx, &types.JobPosting{}, []types.CandidateProfile{candidate("c1", "go")})

	assert.Nil(t, results)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMatcher_DefaultsExperienceLevel(t *testing.T) {
	m := NewMatcher(Config{})

	job := &types.JobPosting{Requirements: []string{"golang"}}
	c := types.CandidateProfile{ID: "c1", Skills: []types.CandidateSkill{{Name: "golang", YearsExperience: 4}}}

	results, err := m.Match(context.Background(), job, []types.CandidateProfile{c})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, 100, results[0].ExperienceMatch)
	assert.Empty(t, job.ExperienceLevel, "caller's job posting must not be modified")
}

func TestMatcher_ClampsScorerOutput(t *testing.T) {
	m := newStubMatcher(stubSkills{"x": 140}, 150, -20, nil)

	results, err := m.Match(context.Background(), &types.JobPosting{}, []types.CandidateProfile{candidate("c1", "x")})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, 100, r.SkillsMatch)
	assert.Equal(t, 100, r.ExperienceMatch)
	assert.Equal(t, 0, r.CultureMatch)
	assert.Equal(t, 70, r.OverallScore)
	assert.Equal(t, []string{StrengthExperience}, r.Strengths)
	assert.Equal(t, []string{ConcernCulture}, r.Concerns)
}

func TestMatcher_IsDeterministic(t *testing.T) {
	job := &types.JobPosting{
		Title:           "Platform Engineer",
		Description:     "Collaborative team building cutting-edge infrastructure. You will mentor others.",
		Requirements:    []string{"Kubernetes", "Terraform", "Python scripting", "AWS"},
		ExperienceLevel: "senior",
	}
	candidates := []types.CandidateProfile{
		{ID: "a", Skills: []types.CandidateSkill{{Name: "Kubernetes", Description: "cluster operations", YearsExperience: 6}, {Name: "AWS", YearsExperience: 4}}},
		{ID: "b", Skills: []types.CandidateSkill{{Name: "Python", Description: "scripting and automation", YearsExperience: 2}}},
		{ID: "c", Skills: []types.CandidateSkill{{Name: "Terraform", YearsExperience: 9}}, Persona: &types.PersonaTraits{
			WorkStyle:   &types.WorkStyle{Collaboration: types.Float(90), Leadership: types.Float(70)},
			CulturalFit: &types.CulturalFit{Innovation: types.Float(80)},
		}},
		{ID: "d"},
	}

	first, err := NewMatcher(Config{Workers: 4}).Match(context.Background(), job, candidates)
	require.NoError(t, err)
	second, err := NewMatcher(Config{Workers: 1}).Match(context.Background(), job, candidates)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first, 4)

	for i, r := range first {
		for _, v := range []int{r.OverallScore, r.SkillsMatch, r.ExperienceMatch, r.CultureMatch} {
			assert.GreaterOrEqual(t, v, 0)
			assert.LessOrEqual(t, v, 100)
		}
		want := int(math.Round(0.4*float64(r.SkillsMatch) + 0.3*float64(r.ExperienceMatch) + 0.3*float64(r.CultureMatch)))
		assert.Equal(t, want, r.OverallScore, r.CandidateID)
		assert.LessOrEqual(t, len(r.Strengths), maxStrengths)
		assert.LessOrEqual(t, len(r.Concerns), maxConcerns)
		if i > 0 {
			assert.GreaterOrEqual(t, first[i-1].OverallScore, r.OverallScore)
		}
	}
}

func TestMatcher_CandidateWithoutSkills(t *testing.T) {
	m := NewMatcher(Config{})

	results, err := m.Match(context.Background(), &types.JobPosting{Requirements: []string{"go"}}, []types.CandidateProfile{{ID: "empty"}})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, 0, r.SkillsMatch)
	assert.Equal(t, 0, r.ExperienceMatch)
	assert.Equal(t, 50, r.CultureMatch)
	assert.Equal(t, 15, r.OverallScore)
	assert.Equal(t, []string{ConcernNoSkills, ConcernExperience}, r.Concerns)
	assert.Empty(t, r.Strengths)
}

func TestErrors_Messages(t *testing.T) {
	cause := errors.New("boom")

	assert.Equal(t, "job error: bad: boom", (&JobError{Message: "bad", Cause: cause}).Error())
	assert.Equal(t, "job error: bad", (&JobError{Message: "bad"}).Error())
	assert.Equal(t, "candidate c1: bad: boom", (&CandidateError{CandidateID: "c1", Message: "bad", Cause: cause}).Error())
	assert.ErrorIs(t, &CandidateError{CandidateID: "c1", Cause: cause}, cause)
}
