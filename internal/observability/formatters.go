// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/NathiDhliso/ReelApps/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // verbose output; write errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, shorten(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// shorten truncates s to limit runes, ending with "..." when cut.
func shorten(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

// PrintJobPosting outputs a human-readable summary of the job posting.
func (p *Printer) PrintJobPosting(job *types.JobPosting) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", job.ExperienceLevel))

	if len(job.Requirements) > 0 {
		sb.WriteString("\nRequirements:\n")
		count := min(len(job.Requirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.Requirements[i]))
		}
		if len(job.Requirements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Requirements)-maxItemsToShow))
		}
	}

	p.printBox("JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResults outputs the top N candidates with their component scores.
func (p *Printer) PrintMatchResults(results []types.MatchResult, submitted int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates ranked: %d of %d\n", len(results), submitted))
	if dropped := submitted - len(results); dropped > 0 {
		sb.WriteString(fmt.Sprintf("Dropped:           %d\n", dropped))
	}

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("\n#%d  %s  (%d)\n", i+1, r.CandidateID, r.OverallScore))
		sb.WriteString(fmt.Sprintf("    Skills %d · Experience %d · Culture %d\n", r.SkillsMatch, r.ExperienceMatch, r.CultureMatch))
		if len(r.Strengths) > 0 {
			sb.WriteString(fmt.Sprintf("    + %s\n", strings.Join(r.Strengths, ", ")))
		}
		if len(r.Concerns) > 0 {
			sb.WriteString(fmt.Sprintf("    - %s\n", r.Concerns[0]))
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(results)-maxItemsToShow))
	}

	p.printBox("TOP MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobAnalysis outputs the job description quality scores and suggestions.
func (p *Printer) PrintJobAnalysis(analysis *types.JobAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Clarity:      %3d\n", analysis.Clarity))
	sb.WriteString(fmt.Sprintf("Realism:      %3d\n", analysis.Realism))
	sb.WriteString(fmt.Sprintf("Inclusivity:  %3d\n", analysis.Inclusivity))
	if len(analysis.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range analysis.Suggestions {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	p.printBox("JOB DESCRIPTION ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPersonaAnalysis outputs the Big Five scores.
func (p *Printer) PrintPersonaAnalysis(persona *types.PersonaAnalysis) {
	if persona == nil {
		return
	}

	traits := []struct {
		name  string
		score int
	}{
		{"Openness", persona.Openness},
		{"Conscientiousness", persona.Conscientiousness},
		{"Extraversion", persona.Extraversion},
		{"Agreeableness", persona.Agreeableness},
		{"Neuroticism", persona.Neuroticism},
	}

	var sb strings.Builder
	for _, t := range traits {
		sb.WriteString(fmt.Sprintf("%-18s %3d  %s\n", t.name, t.score, bar(t.score)))
	}
	if persona.Summary != "" {
		sb.WriteString("\n" + persona.Summary + "\n")
	}

	p.printBox("PERSONA ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// bar renders a 0-100 score as a 20 cell bar.
func bar(score int) string {
	filled := max(0, min(score, 100)) / 5
	return strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
}
