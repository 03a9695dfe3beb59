package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/analyze"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/observability"
)

var (
	parseFile       string
	parseConfigPath string
	parseVerbose    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a local resume file and print the extracted structure",
	Long: `Extract text from a local PDF, DOCX, or plain text resume, analyze it for
contact info and skills, and print the result as JSON. Nothing is stored.`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "Path to the resume file (required)")
	parseCmd.Flags().StringVar(&parseConfigPath, "config", "", "Path to config.json file (skill vocabulary)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a human-readable summary instead of JSON")
	_ = parseCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(parseFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	var vocabulary []string
	if parseConfigPath != "" {
		cfg, err := config.LoadConfig(parseConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		vocabulary = cfg.SkillVocabulary
	}

	text, err := extract.New().Extract(data, filepath.Base(parseFile), "")
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	parsed := analyze.New(vocabulary).Analyze(text)

	if parseVerbose {
		observability.NewPrinter(os.Stdout).PrintParsedResume(&parsed)
		return nil
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(parsed)
}
