package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/database"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/models"
)

// SubmissionRepository records which quarters have been submitted.
type SubmissionRepository struct {
	db database.PGXDB
}

// NewSubmissionRepository creates a new SubmissionRepository.
func NewSubmissionRepository(db database.PGXDB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// HasSubmission reports whether a quarter already has a recorded submission.
func (r *SubmissionRepository) HasSubmission(ctx context.Context, businessID string, ty models.TaxYear, q models.Quarter) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM quarterly_submissions
			WHERE business_id = $1 AND tax_year = $2 AND quarter = $3
		)
	`, businessID, ty.StartYear(), int(q)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check submission: %w", err)
	}
	return exists, nil
}

// Record stores a quarter submission. Recording the same quarter twice is
// a no-op; the original submission time stands.
func (r *SubmissionRepository) Record(ctx context.Context, businessID string, ty models.TaxYear, q models.Quarter, submittedAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO quarterly_submissions (business_id, tax_year, quarter, submitted_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (business_id, tax_year, quarter) DO NOTHING
	`, businessID, ty.StartYear(), int(q), submittedAt)
	if err != nil {
		return fmt.Errorf("failed to record submission: %w", err)
	}
	return nil
}
