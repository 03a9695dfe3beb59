package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/analyze"
	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var (
	matchResumeFile string
	matchSkills     []string
	matchRequired   []string
	matchVerbose    bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a candidate skill set against a job's required skills",
	Long: `Score candidate skills against a job's required skills and print the match
as JSON. Candidate skills come either from --skills or from analyzing a local
resume file given with --resume.`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to a resume file to analyze for candidate skills")
	matchCmd.Flags().StringSliceVar(&matchSkills, "skills", nil, "Candidate skills (comma-separated, alternative to --resume)")
	matchCmd.Flags().StringSliceVar(&matchRequired, "required", nil, "Required skills for the job (comma-separated)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a human-readable summary instead of JSON")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if matchResumeFile == "" && len(matchSkills) == 0 {
		return fmt.Errorf("either --resume or --skills is required")
	}
	if matchResumeFile != "" && len(matchSkills) > 0 {
		return fmt.Errorf("--resume and --skills are mutually exclusive")
	}

	candidateSkills := matchSkills
	if matchResumeFile != "" {
		data, err := os.ReadFile(matchResumeFile)
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
		text, err := extract.New().Extract(data, filepath.Base(matchResumeFile), "")
		if err != nil {
			return fmt.Errorf("failed to extract text: %w", err)
		}
		candidateSkills = analyze.New(nil).Analyze(text).Skills
	}

	result := matching.Match(candidateSkills, matchRequired)

	if matchVerbose {
		observability.NewPrinter(os.Stdout).PrintMatchResult(result)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
