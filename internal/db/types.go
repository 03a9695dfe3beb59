package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/analyze"
)

// User represents a registered account. Role is either "candidate" or
// "recruiter"; new accounts default to candidate.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Valid user roles.
const (
	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
)

// Resume is a stored resume record. Parsed holds the full derived structure;
// Skills duplicates parsed.skills flat for query convenience. ATSScore is the
// stored placeholder value generated at upload time.
type Resume struct {
	ID        uuid.UUID            `json:"id"`
	UserID    uuid.UUID            `json:"userId"`
	FileName  string               `json:"fileName"`
	Parsed    analyze.ParsedResume `json:"parsed"`
	Skills    []string             `json:"skills"`
	ATSScore  int                  `json:"atsScore"`
	CreatedAt time.Time            `json:"createdAt"`
}

// Job is a stored job posting owned by a recruiter.
type Job struct {
	ID             uuid.UUID `json:"id"`
	RecruiterID    uuid.UUID `json:"recruiterId"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"requiredSkills"`
	Location       string    `json:"location"`
	CreatedAt      time.Time `json:"createdAt"`
}
