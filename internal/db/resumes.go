package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateResume stores a new resume for a user and returns its ID
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, originalText string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, original_text, status)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userID, originalText, StatusPending,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume by ID. Returns nil if no resume exists.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, original_text, optimized_text, job_description,
		        status, keywords_added, created_at, updated_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.UserID, &r.OriginalText, &r.OptimizedText, &r.JobDescription,
		&r.Status, &r.KeywordsAdded, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &r, nil
}

// SaveOptimizedResume records the result of an optimization run
func (db *DB) SaveOptimizedResume(ctx context.Context, id uuid.UUID, optimizedText, jobDescription string, keywordsAdded int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE resumes
		 SET optimized_text = $1, job_description = $2, keywords_added = $3,
		     status = $4, updated_at = NOW()
		 WHERE id = $5`,
		optimizedText, jobDescription, keywordsAdded, StatusOptimized, id,
	)
	if err != nil {
		return fmt.Errorf("failed to save optimized resume: %w", err)
	}
	return nil
}

// MarkResumeFailed marks a resume whose optimization run errored
func (db *DB) MarkResumeFailed(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE resumes SET status = $1, updated_at = NOW() WHERE id = $2`,
		StatusFailed, id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark resume failed: %w", err)
	}
	return nil
}

// ListResumesByUser retrieves all resumes belonging to a user, newest first
func (db *DB) ListResumesByUser(ctx context.Context, userID uuid.UUID) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, original_text, optimized_text, job_description,
		        status, keywords_added, created_at, updated_at
		 FROM resumes WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		var r Resume
		if err := rows.Scan(&r.ID, &r.UserID, &r.OriginalText, &r.OptimizedText,
			&r.JobDescription, &r.Status, &r.KeywordsAdded, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resumes: %w", err)
	}
	return resumes, nil
}

// DeleteResume removes a resume by ID
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	return nil
}
