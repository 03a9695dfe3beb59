package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-matcher/internal/analyze"
)

// CreateResume stores a parsed resume for a candidate and returns the full
// record. Parsed and skills are stored as JSONB; skills is a flat duplicate
// of parsed.skills kept for query convenience.
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, fileName string, parsed analyze.ParsedResume, atsScore int) (*Resume, error) {
	parsedJSON, err := json.Marshal(parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal parsed resume: %w", err)
	}
	skillsJSON, err := json.Marshal(parsed.Skills)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	r := Resume{
		UserID:   userID,
		FileName: fileName,
		Parsed:   parsed,
		Skills:   parsed.Skills,
		ATSScore: atsScore,
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, file_name, parsed, skills, ats_score)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		userID, fileName, parsedJSON, skillsJSON, atsScore,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return &r, nil
}

// GetResume retrieves a resume owned by the given user.
// Returns (nil, nil) when absent or owned by someone else.
func (db *DB) GetResume(ctx context.Context, resumeID, userID uuid.UUID) (*Resume, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, user_id, file_name, parsed, skills, ats_score, created_at
		 FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	)
	return scanResume(row)
}

// ListResumesByUser retrieves a candidate's resumes, most recent first.
func (db *DB) ListResumesByUser(ctx context.Context, userID uuid.UUID) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, file_name, parsed, skills, ats_score, created_at
		 FROM resumes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	return collectResumes(rows)
}

// ListResumes retrieves every stored resume. Recruiters rank candidates for a
// job against this global pool.
func (db *DB) ListResumes(ctx context.Context) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, file_name, parsed, skills, ats_score, created_at
		 FROM resumes ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	return collectResumes(rows)
}

// DeleteResume removes a resume owned by the given user. Returns false when
// nothing matched.
func (db *DB) DeleteResume(ctx context.Context, resumeID, userID uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// scanResume scans one resume row, decoding the JSONB columns.
func scanResume(row pgx.Row) (*Resume, error) {
	var r Resume
	var parsedJSON, skillsJSON []byte

	err := row.Scan(&r.ID, &r.UserID, &r.FileName, &parsedJSON, &skillsJSON,
		&r.ATSScore, &r.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan resume: %w", err)
	}

	if parsedJSON != nil {
		if err := json.Unmarshal(parsedJSON, &r.Parsed); err != nil {
			return nil, fmt.Errorf("failed to unmarshal parsed resume: %w", err)
		}
	}
	if skillsJSON != nil {
		if err := json.Unmarshal(skillsJSON, &r.Skills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
		}
	}
	return &r, nil
}

// collectResumes drains a resume query result.
func collectResumes(rows pgx.Rows) ([]Resume, error) {
	var resumes []Resume
	for rows.Next() {
		r, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, *r)
	}
	return resumes, nil
}
