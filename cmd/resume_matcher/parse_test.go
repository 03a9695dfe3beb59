package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunParse_PlainTextResume(t *testing.T) {
	content := "Jane Doe\njane@example.com\nSkills: Go, Docker\n"
	tmpFile := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	parseFile = tmpFile
	parseConfigPath = ""

	err := runParse(parseCmd, nil)
	assert.NoError(t, err)
}

func TestRunParse_MissingFile(t *testing.T) {
	parseFile = "/nonexistent/resume.pdf"
	parseConfigPath = ""

	err := runParse(parseCmd, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read resume file")
}

func TestRunParse_BadConfig(t *testing.T) {
	content := "plain resume text"
	tmpFile := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	parseFile = tmpFile
	parseConfigPath = "/nonexistent/config.json"

	err := runParse(parseCmd, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}
