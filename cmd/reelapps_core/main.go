// Package main provides the reelapps_core CLI: candidate matching, job and
// persona analysis, and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "1.0.0"

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "reelapps_core",
	Short:         "ReelApps candidate matching and analysis",
	Long:          "reelapps_core ranks candidates against job postings using skills, experience and culture scores, and analyzes job descriptions and personas with Google Gemini.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to an optional YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print human-readable summaries to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
