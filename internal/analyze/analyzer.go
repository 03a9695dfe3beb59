// Package analyze derives structured resume fields from extracted plain text:
// contact information via regex scans, a best-effort candidate name, skills
// from a fixed vocabulary, and a first-lines summary.
package analyze

import (
	"regexp"
	"strings"
)

// DefaultVocabulary is the stock skill vocabulary. Detection is substring
// containment, so "java" also fires inside "javascript". That imprecision is
// part of the contract and covered by tests, not a bug to fix silently.
var DefaultVocabulary = []string{
	"python", "javascript", "react", "node", "aws", "docker", "typescript", "java",
}

// ParsedResume holds all fields derived from one resume's extracted text.
type ParsedResume struct {
	RawText string   `json:"rawText"`
	Emails  []string `json:"emails"`
	Phones  []string `json:"phones"`
	Name    string   `json:"name"`
	Skills  []string `json:"skills"`
	Summary string   `json:"summary"`
}

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	nameLabelRe  = regexp.MustCompile(`(?i)^\s*name\s*[:\-]\s*(.+)$`)
	properNameRe = regexp.MustCompile(`^[A-Z][A-Za-z]*(?:\s+[A-Z][A-Za-z]*){1,3}$`)
	sectionRe    = regexp.MustCompile(`(?i)summary|experience|education|skills|projects|certifications|profile|objective`)

	localPartSplitRe = regexp.MustCompile(`[._-]+`)
)

// Analyzer runs field extraction over resume text. The skill vocabulary is
// configurable; a nil vocabulary selects DefaultVocabulary.
type Analyzer struct {
	vocabulary []string
}

// New creates an Analyzer with the given skill vocabulary (nil for default).
func New(vocabulary []string) *Analyzer {
	if vocabulary == nil {
		vocabulary = DefaultVocabulary
	}
	return &Analyzer{vocabulary: vocabulary}
}

// Analyze derives all structured fields from extracted text. It never fails:
// fields degrade to empty values when nothing matches.
func (a *Analyzer) Analyze(text string) ParsedResume {
	emails := emailRe.FindAllString(text, -1)
	phones := phoneRe.FindAllString(text, -1)

	return ParsedResume{
		RawText: text,
		Emails:  emails,
		Phones:  phones,
		Name:    extractName(text, emails),
		Skills:  a.detectSkills(text),
		Summary: summarize(text),
	}
}

// detectSkills scans the lowercased text for each vocabulary term, preserving
// vocabulary order. Vocabulary entries are unique, so the result is too.
func (a *Analyzer) detectSkills(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, skill := range a.vocabulary {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// extractName applies the name heuristics in priority order: explicit
// "Name:" label, first proper-case line that is not contact info or a section
// header, then the local part of the first email. Failure yields "".
func extractName(text string, emails []string) string {
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		if m := nameLabelRe.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if emailRe.MatchString(trimmed) || phoneRe.MatchString(trimmed) {
			continue
		}
		if sectionRe.MatchString(trimmed) {
			continue
		}
		if properNameRe.MatchString(trimmed) {
			return trimmed
		}
	}

	if len(emails) > 0 {
		return nameFromEmail(emails[0])
	}
	return ""
}

// nameFromEmail title-cases the tokens of an email local part,
// e.g. "jane.doe@example.com" becomes "Jane Doe".
func nameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return ""
	}

	var words []string
	for _, token := range localPartSplitRe.Split(local, -1) {
		if token == "" {
			continue
		}
		words = append(words, strings.ToUpper(token[:1])+strings.ToLower(token[1:]))
	}
	return strings.Join(words, " ")
}

// summarize joins the first five lines with single spaces. This is a
// positional excerpt, not a semantic summary.
func summarize(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}
	return strings.Join(lines, " ")
}
