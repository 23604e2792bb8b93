package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/NathiDhliso/ReelApps/internal/observability"
	"github.com/NathiDhliso/ReelApps/internal/schemas"
	"github.com/NathiDhliso/ReelApps/internal/types"
	"github.com/spf13/cobra"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job",
	Short: "Rate a job description for clarity, realism and inclusivity",
	Long:  "Reads a JobPosting JSON file and asks Gemini to rate it. Without GEMINI_API_KEY a fixed fallback assessment is written.",
	RunE:  runAnalyzeJob,
}

var analyzePersonaCmd = &cobra.Command{
	Use:   "analyze-persona",
	Short: "Derive a Big Five personality profile from free text",
	Long:  "Reads free text answers and asks Gemini for an OCEAN profile. Requires GEMINI_API_KEY.",
	RunE:  runAnalyzePersona,
}

var (
	analyzeJobInput  string
	analyzeJobOutput string

	personaText     string
	personaTextFile string
	personaOutput   string
)

func init() {
	analyzeJobCmd.Flags().StringVarP(&analyzeJobInput, "input", "i", "", "Path to input JobPosting JSON file (required)")
	analyzeJobCmd.Flags().StringVarP(&analyzeJobOutput, "out", "o", "", "Path to output JobAnalysis JSON file (default stdout)")
	if err := analyzeJobCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	analyzePersonaCmd.Flags().StringVar(&personaText, "text", "", "Text to analyze")
	analyzePersonaCmd.Flags().StringVar(&personaTextFile, "text-file", "", "Path to a file with the text to analyze")
	analyzePersonaCmd.Flags().StringVarP(&personaOutput, "out", "o", "", "Path to output PersonaAnalysis JSON file (default stdout)")
	analyzePersonaCmd.MarkFlagsMutuallyExclusive("text", "text-file")
	analyzePersonaCmd.MarkFlagsOneRequired("text", "text-file")

	rootCmd.AddCommand(analyzeJobCmd, analyzePersonaCmd)
}

func runAnalyzeJob(cmd *cobra.Command, _ []string) error {
	content, err := os.ReadFile(analyzeJobInput)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", analyzeJobInput, err)
	}
	if err := schemas.ValidateJobPosting(content); err != nil {
		return fmt.Errorf("invalid job posting: %w", err)
	}

	var job types.JobPosting
	if err := json.Unmarshal(content, &job); err != nil {
		return fmt.Errorf("failed to unmarshal job posting JSON: %w", err)
	}

	a, err := newApp(cmd.Context(), "stderr")
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.analysis.AnalyzeJobDescription(cmd.Context(), job)
	if err != nil {
		return fmt.Errorf("failed to analyze job description: %w", err)
	}
	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintJobAnalysis(result)
	}

	return writeJSON(cmd.OutOrStdout(), analyzeJobOutput, result)
}

func runAnalyzePersona(cmd *cobra.Command, _ []string) error {
	text := personaText
	if personaTextFile != "" {
		content, err := os.ReadFile(personaTextFile)
		if err != nil {
			return fmt.Errorf("failed to read text file %s: %w", personaTextFile, err)
		}
		text = string(content)
	}

	req := types.PersonaAnalysisRequest{Text: strings.TrimSpace(text)}
	if err := req.Validate(); err != nil {
		return errors.New("text is required and must be at most 50000 characters")
	}

	a, err := newApp(cmd.Context(), "stderr")
	if err != nil {
		return err
	}
	defer a.Close()

	result, err := a.analysis.AnalyzePersona(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to analyze persona: %w", err)
	}
	if verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintPersonaAnalysis(result)
	}

	return writeJSON(cmd.OutOrStdout(), personaOutput, result)
}
