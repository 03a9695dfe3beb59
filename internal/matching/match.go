// Package matching scores candidate skill sets against job skill
// requirements. Scoring is pure set comparison over normalized skill strings;
// no database or network access happens here.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/db"
)

// MatchResult is the outcome of scoring one candidate against one job.
type MatchResult struct {
	Score         int      `json:"score"`
	MissingSkills []string `json:"missingSkills"`
}

// RankedJob pairs a job posting with the candidate's match against it.
type RankedJob struct {
	Job           db.Job   `json:"job"`
	Score         int      `json:"score"`
	MissingSkills []string `json:"missingSkills"`
}

// DefaultTopN is the number of ranked jobs returned when the caller does not
// ask for a specific limit.
const DefaultTopN = 5

// Match scores a candidate's skills against a job's required skills.
//
// A required skill counts as matched when the candidate lists it, compared
// case-insensitively but otherwise exactly. A candidate listing "javascript"
// does not satisfy a requirement of "java"; the looser substring behavior is
// confined to text-level skill detection in the analyze package.
//
// The score is the matched fraction of required skills, as a percentage
// rounded to the nearest integer. A job with no required skills is a
// universal match: score 100, nothing missing. MissingSkills is always
// non-nil and preserves the job's skill order.
func Match(candidateSkills, requiredSkills []string) MatchResult {
	if len(requiredSkills) == 0 {
		return MatchResult{Score: 100, MissingSkills: []string{}}
	}

	have := make(map[string]struct{}, len(candidateSkills))
	for _, s := range candidateSkills {
		have[strings.ToLower(s)] = struct{}{}
	}

	matched := 0
	missing := []string{}
	for _, req := range requiredSkills {
		if _, ok := have[strings.ToLower(req)]; ok {
			matched++
		} else {
			missing = append(missing, req)
		}
	}

	score := int(math.Round(float64(matched) / float64(len(requiredSkills)) * 100))
	return MatchResult{Score: score, MissingSkills: missing}
}

// TopMatches scores the candidate against every job and returns the best
// matches in descending score order. Ties keep the input order, so the
// caller's ordering (typically newest first) breaks ties deterministically.
// A non-positive limit means DefaultTopN.
func TopMatches(jobs []db.Job, candidateSkills []string, limit int) []RankedJob {
	if limit <= 0 {
		limit = DefaultTopN
	}

	ranked := make([]RankedJob, 0, len(jobs))
	for _, job := range jobs {
		result := Match(candidateSkills, job.RequiredSkills)
		ranked = append(ranked, RankedJob{
			Job:           job,
			Score:         result.Score,
			MissingSkills: result.MissingSkills,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
