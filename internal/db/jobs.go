package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// JobInput holds the caller-supplied fields for creating or updating a job.
type JobInput struct {
	Title          string
	Company        string
	Description    string
	RequiredSkills []string
	Location       string
}

// CreateJob inserts a job posting owned by a recruiter.
func (db *DB) CreateJob(ctx context.Context, recruiterID uuid.UUID, input JobInput) (*Job, error) {
	skillsJSON, err := json.Marshal(orEmpty(input.RequiredSkills))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal required skills: %w", err)
	}

	j := Job{
		RecruiterID:    recruiterID,
		Title:          input.Title,
		Company:        input.Company,
		Description:    input.Description,
		RequiredSkills: orEmpty(input.RequiredSkills),
		Location:       input.Location,
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO jobs (recruiter_id, title, company, description, required_skills, location)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		recruiterID, input.Title, input.Company, input.Description, skillsJSON, input.Location,
	).Scan(&j.ID, &j.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return &j, nil
}

// GetJob retrieves a job by ID regardless of owner.
// Returns (nil, nil) when not found.
func (db *DB) GetJob(ctx context.Context, jobID uuid.UUID) (*Job, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, recruiter_id, title, company, description, required_skills, location, created_at
		 FROM jobs WHERE id = $1`,
		jobID,
	)
	return scanJob(row)
}

// GetJobForRecruiter retrieves a job only when owned by the given recruiter.
func (db *DB) GetJobForRecruiter(ctx context.Context, jobID, recruiterID uuid.UUID) (*Job, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, recruiter_id, title, company, description, required_skills, location, created_at
		 FROM jobs WHERE id = $1 AND recruiter_id = $2`,
		jobID, recruiterID,
	)
	return scanJob(row)
}

// ListJobs retrieves every job posting, most recent first. Candidates browse
// and are matched against this full set.
func (db *DB) ListJobs(ctx context.Context) ([]Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, recruiter_id, title, company, description, required_skills, location, created_at
		 FROM jobs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// ListJobsByRecruiter retrieves a recruiter's jobs, most recent first.
func (db *DB) ListJobsByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, recruiter_id, title, company, description, required_skills, location, created_at
		 FROM jobs WHERE recruiter_id = $1 ORDER BY created_at DESC`,
		recruiterID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// UpdateJob replaces the mutable fields of a job owned by the recruiter.
// Returns (nil, nil) when the job is absent or owned by someone else.
func (db *DB) UpdateJob(ctx context.Context, jobID, recruiterID uuid.UUID, input JobInput) (*Job, error) {
	skillsJSON, err := json.Marshal(orEmpty(input.RequiredSkills))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal required skills: %w", err)
	}

	row := db.pool.QueryRow(ctx,
		`UPDATE jobs
		 SET title = $1, company = $2, description = $3, required_skills = $4, location = $5
		 WHERE id = $6 AND recruiter_id = $7
		 RETURNING id, recruiter_id, title, company, description, required_skills, location, created_at`,
		input.Title, input.Company, input.Description, skillsJSON, input.Location,
		jobID, recruiterID,
	)
	return scanJob(row)
}

// DeleteJob removes a job owned by the recruiter. Returns false when nothing
// matched.
func (db *DB) DeleteJob(ctx context.Context, jobID, recruiterID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM jobs WHERE id = $1 AND recruiter_id = $2`,
		jobID, recruiterID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// scanJob scans one job row, decoding the JSONB skills column.
func scanJob(row pgx.Row) (*Job, error) {
	var j Job
	var skillsJSON []byte

	err := row.Scan(&j.ID, &j.RecruiterID, &j.Title, &j.Company, &j.Description,
		&skillsJSON, &j.Location, &j.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan job: %w", err)
	}

	if skillsJSON != nil {
		if err := json.Unmarshal(skillsJSON, &j.RequiredSkills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal required skills: %w", err)
		}
	}
	return &j, nil
}

// collectJobs drains a job query result.
func collectJobs(rows pgx.Rows) ([]Job, error) {
	var jobs []Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *j)
	}
	return jobs, nil
}

// orEmpty keeps required_skills a JSON array rather than null.
func orEmpty(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}
