// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents settings that can be loaded from a JSON file. All fields
// are optional; missing values use defaults or must be provided via
// environment variables or CLI flags.
type Config struct {
	// Server
	Port        string `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Matching
	SkillVocabulary []string `json:"skill_vocabulary,omitempty"` // Overrides the built-in skill list
	MatchTopN       int      `json:"match_top_n,omitempty"`      // Number of job matches returned per resume
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MatchTopN < 0 {
		return fmt.Errorf("config error: 'match_top_n' must be non-negative")
	}
	for _, skill := range c.SkillVocabulary {
		if skill == "" {
			return fmt.Errorf("config error: 'skill_vocabulary' contains an empty entry")
		}
	}
	return nil
}

// intFromEnv reads an integer environment variable, falling back to the
// given default when the variable is unset or blank.
func intFromEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return n, nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Config file values win over defaults; explicit flags should be
// applied by the caller afterwards.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == "" {
		result.Port = defaults.Port
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if len(result.SkillVocabulary) == 0 {
		result.SkillVocabulary = defaults.SkillVocabulary
	}
	if result.MatchTopN == 0 {
		result.MatchTopN = defaults.MatchTopN
	}

	return result
}
