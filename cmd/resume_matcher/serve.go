package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/server"
)

const defaultPort = "8080"

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume upload, analysis, and job matching.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (port, skill vocabulary, match limit)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	var fileCfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		fileCfg = *loaded
	}

	cfg, err := resolveServeConfig(cmd, fileCfg)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// resolveServeConfig layers settings the same way run commands usually do:
// built-in defaults, then the config file, then explicit flags. The database
// URL comes from the DATABASE_URL environment variable unless the config file
// sets one.
func resolveServeConfig(cmd *cobra.Command, fileCfg config.Config) (server.Config, error) {
	merged := fileCfg.MergeWithDefaults(config.Config{
		Port:        defaultPort,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	})
	if cmd.Flags().Changed("port") {
		merged.Port = strconv.Itoa(servePort)
	}

	if merged.DatabaseURL == "" {
		return server.Config{}, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	port, err := strconv.Atoi(merged.Port)
	if err != nil || port <= 0 || port > 65535 {
		return server.Config{}, fmt.Errorf("invalid port %q", merged.Port)
	}

	return server.Config{
		Port:            port,
		DatabaseURL:     merged.DatabaseURL,
		SkillVocabulary: merged.SkillVocabulary,
		MatchTopN:       merged.MatchTopN,
	}, nil
}
