// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/analyze"
	"github.com/jonathan/resume-matcher/internal/matching"
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
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedResume outputs a human-readable summary of an analyzed resume.
func (p *Printer) PrintParsedResume(parsed *analyze.ParsedResume) {
	if parsed == nil {
		return
	}

	var sb strings.Builder

	name := parsed.Name
	if name == "" {
		name = "(not detected)"
	}
	sb.WriteString(fmt.Sprintf("Name:   %s\n", name))

	if len(parsed.Emails) > 0 {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", parsed.Emails[0]))
	}
	if len(parsed.Phones) > 0 {
		sb.WriteString(fmt.Sprintf("Phone:  %s\n", parsed.Phones[0]))
	}
	sb.WriteString("\n")

	if len(parsed.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(parsed.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", parsed.Skills[i]))
		}
		if len(parsed.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(parsed.Skills)-maxItemsToShow))
		}
	} else {
		sb.WriteString("Skills: none detected\n")
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs a human-readable summary of a match score.
func (p *Printer) PrintMatchResult(result matching.MatchResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score: %d%%\n", result.Score))

	if len(result.MissingSkills) > 0 {
		sb.WriteString("\nMissing skills:\n")
		count := min(len(result.MissingSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MissingSkills[i]))
		}
		if len(result.MissingSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingSkills)-maxItemsToShow))
		}
	} else {
		sb.WriteString("All required skills matched\n")
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}
