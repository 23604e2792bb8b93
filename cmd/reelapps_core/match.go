package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/NathiDhliso/ReelApps/internal/observability"
	"github.com/NathiDhliso/ReelApps/internal/schemas"
	"github.com/NathiDhliso/ReelApps/internal/types"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank candidates against a job posting",
	Long:  "Reads a MatchRequest JSON file (job_posting and candidates), scores every candidate and writes the results sorted by overall score.",
	RunE:  runMatch,
}

var (
	matchInput  string
	matchOutput string
)

func init() {
	matchCmd.Flags().StringVarP(&matchInput, "input", "i", "", "Path to input MatchRequest JSON file (required)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output results JSON file (default stdout)")

	if err := matchCmd.MarkFlagRequired("input"); err != nil {
		panic(fmt.Sprintf("failed to mark input flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	// 1. Load and validate the request
	content, err := os.ReadFile(matchInput)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", matchInput, err)
	}
	if err := schemas.ValidateMatchRequest(content); err != nil {
		return fmt.Errorf("invalid match request: %w", err)
	}

	var req types.MatchRequest
	if err := json.Unmarshal(content, &req); err != nil {
		return fmt.Errorf("failed to unmarshal match request JSON: %w", err)
	}

	// 2. Score the batch
	a, err := newApp(cmd.Context(), "stderr")
	if err != nil {
		return err
	}
	defer a.Close()

	results, err := a.matcher(nil).Match(cmd.Context(), &req.JobPosting, req.Candidates)
	if err != nil {
		return fmt.Errorf("failed to match candidates: %w", err)
	}

	if verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		job := req.JobPosting
		job.ApplyDefaults()
		printer.PrintJobPosting(&job)
		printer.PrintMatchResults(results, len(req.Candidates))
	}

	// 3. Write results
	if err := writeJSON(cmd.OutOrStdout(), matchOutput, results); err != nil {
		return err
	}
	if matchOutput != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Successfully matched %d of %d candidates to %s\n", len(results), len(req.Candidates), matchOutput)
	}
	return nil
}
