package ranking

import (
	"strings"
	"unicode"
)

const (
	strongThreshold   = 80
	adequateThreshold = 60
	concernThreshold  = 50

	maxStrengths = 5
	maxConcerns  = 3
)

// Strength and concern messages added by the orchestrator.
const (
	StrengthExperience = "Appropriate experience level"
	StrengthCulture    = "Strong cultural fit"
	ConcernExperience  = "Experience level mismatch"
	ConcernCulture     = "Potential cultural misalignment"
)

// buildReasoning assembles one sentence from the three score buckets.
func buildReasoning(skills, experience, culture int) string {
	var skillsPart, experiencePart, culturePart string

	switch {
	case skills >= strongThreshold:
		skillsPart = "Strong technical skills alignment"
	case skills >= adequateThreshold:
		skillsPart = "Good skills match with some gaps"
	default:
		skillsPart = "Limited skills overlap"
	}

	switch {
	case experience >= strongThreshold:
		experiencePart = "excellent experience level fit"
	case experience >= adequateThreshold:
		experiencePart = "adequate experience level"
	default:
		experiencePart = "experience level mismatch"
	}

	switch {
	case culture >= strongThreshold:
		culturePart = "strong cultural alignment"
	case culture >= adequateThreshold:
		culturePart = "good cultural fit"
	default:
		culturePart = "potential cultural fit concerns"
	}

	return capitalize(skillsPart) + ", " + strings.ToLower(experiencePart) + ", " + strings.ToLower(culturePart) + "."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func buildStrengths(skillStrengths []string, experience, culture int) []string {
	out := make([]string, 0, len(skillStrengths)+2)
	out = append(out, skillStrengths...)
	if experience >= strongThreshold {
		out = append(out, StrengthExperience)
	}
	if culture >= strongThreshold {
		out = append(out, StrengthCulture)
	}
	return truncate(out, maxStrengths)
}

func buildConcerns(skillConcerns []string, experience, culture int) []string {
	out := make([]string, 0, len(skillConcerns)+2)
	out = append(out, skillConcerns...)
	if experience < concernThreshold {
		out = append(out, ConcernExperience)
	}
	if culture < concernThreshold {
		out = append(out, ConcernCulture)
	}
	return truncate(out, maxConcerns)
}

func truncate(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func clampScore(v int) int {
	return max(0, min(100, v))
}
