package repository

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/FormGuard/pkg/domain/submission"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) submission.Repository {
	return &submissionRepository{
		db: db,
	}
}

// Create stores the submission and its values in one transaction.
func (r *submissionRepository) Create(ctx context.Context, s *submission.SubmittedForm) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

func (r *submissionRepository) ListByForm(ctx context.Context, formID uuid.UUID) ([]*submission.SubmittedForm, error) {
	var out []*submission.SubmittedForm
	err := r.db.WithContext(ctx).
		Preload("Values").
		Where("form_id = ?", formID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
