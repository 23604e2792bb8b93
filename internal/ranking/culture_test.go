package ranking

import (
	"math"
	"testing"

	"github.com/NathiDhliso/ReelApps/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestCultureScorer_NoPersona(t *testing.T) {
	s := NewCultureScorer(nil, nil)

	assert.Equal(t, 50, s.Score("Team-oriented role requiring collaboration", nil))
}

func TestCultureScorer_NoCultureKeywords(t *testing.T) {
	s := NewCultureScorer(nil, nil)

	personas := []*types.PersonaTraits{
		{},
		{WorkStyle: &types.WorkStyle{Collaboration: types.Float(0)}},
		{CulturalFit: &types.CulturalFit{Innovation: types.Float(100), Structure: types.Float(100)}},
	}
	for _, p := range personas {
		assert.Equal(t, 70, s.Score("Write Go services for payments", p))
	}
}

func TestCultureScorer_StrongAlignment(t *testing.T) {
	s := NewCultureScorer(nil, nil)

	persona := &types.PersonaTraits{
		WorkStyle: &types.WorkStyle{
			Collaboration: types.Float(90),
			Independence:  types.Float(85),
			Leadership:    types.Float(80),
		},
		CulturalFit: &types.CulturalFit{
			Innovation: types.Float(95),
			Structure:  types.Float(60),
		},
	}
	desc := "We are looking for a collaborative team player who can work independently and lead innovative projects in a fast-paced environment."

	// collaborative, independent, fast-paced (neutral 1.5) and leadership each weigh 1
	assert.Equal(t, 76, s.Score(desc, persona))
}

func TestCultureScorer_StructuredMismatch(t *testing.T) {
	s := NewCultureScorer(nil, nil)

	persona := &types.PersonaTraits{
		WorkStyle:   &types.WorkStyle{Collaboration: types.Float(30), Independence: types.Float(95)},
		CulturalFit: &types.CulturalFit{Innovation: types.Float(95), Structure: types.Float(20)},
	}

	assert.Equal(t, 20, s.Score("Highly structured environment requiring systematic approach and process adherence", persona))
}

func TestCultureScorer_MissingTraitsAreNeutral(t *testing.T) {
	s := NewCultureScorer(nil, nil)

	assert.Equal(t, 50, s.Score("Agile team that moves fast", &types.PersonaTraits{}))
}

func TestCultureScorer_WeightCappedAtThree(t *testing.T) {
	s := NewCultureScorer(nil, nil)

	persona := &types.PersonaTraits{WorkStyle: &types.WorkStyle{Collaboration: types.Float(40)}}

	assert.Equal(t, 40, s.Score("Team team partnership together collaborate", persona))
	assert.Equal(t, 3, JobTraitWeights("Team team partnership together collaborate")["collaborative"])
}

func TestCultureScorer_InvalidTraitIsNeutral(t *testing.T) {
	metrics := NewMetrics()
	s := NewCultureScorer(nil, metrics)

	persona := &types.PersonaTraits{WorkStyle: &types.WorkStyle{Leadership: types.Float(math.NaN())}}

	assert.Equal(t, 50, s.Score("You will mentor engineers", persona))
	assert.Equal(t, 1.0, counterValue(t, metrics.fallbacks.WithLabelValues(ScorerCulture)))
}

func TestJobTraitWeights_SubstringMatches(t *testing.T) {
	w := JobTraitWeights("Leadership role; you will manage and guide a self-directed group")

	assert.Equal(t, 3, w["leadership"])
	assert.Equal(t, 1, w["independent"])
	assert.Equal(t, 0, w["structured"])
	assert.Len(t, w, 6)
}
