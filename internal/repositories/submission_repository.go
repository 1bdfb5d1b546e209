package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"studiointake/internal/models/db_models"
)

type SubmissionRepositoryInterface interface {
	CreateSubmission(ctx context.Context, sub *db_models.Submission) error
	GetByID(ctx context.Context, id uint) (*db_models.Submission, error)
	SaveSubmission(ctx context.Context, sub *db_models.Submission) error
}

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepositoryInterface {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) CreateSubmission(ctx context.Context, sub *db_models.Submission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id uint) (*db_models.Submission, error) {
	var sub db_models.Submission
	err := r.db.WithContext(ctx).First(&sub, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubmissionRepository) SaveSubmission(ctx context.Context, sub *db_models.Submission) error {
	return r.db.WithContext(ctx).Save(sub).Error
}
