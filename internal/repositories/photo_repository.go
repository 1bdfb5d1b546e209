package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"studiointake/internal/models/db_models"
)

type PhotoRepositoryInterface interface {
	CreatePhoto(ctx context.Context, photo *db_models.Photo) error
	GetByID(ctx context.Context, id uint) (*db_models.Photo, error)
	ListBySubmission(ctx context.Context, submissionID uint) ([]db_models.Photo, error)
	CountBySubmission(ctx context.Context, submissionID uint) (int64, error)
	DeletePhoto(ctx context.Context, photo *db_models.Photo) error
}

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepositoryInterface {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) CreatePhoto(ctx context.Context, photo *db_models.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *PhotoRepository) GetByID(ctx context.Context, id uint) (*db_models.Photo, error) {
	var photo db_models.Photo
	err := r.db.WithContext(ctx).First(&photo, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) ListBySubmission(ctx context.Context, submissionID uint) ([]db_models.Photo, error) {
	var photos []db_models.Photo
	err := r.db.WithContext(ctx).
		Where("submission_id = ?", submissionID).
		Order("id DESC").
		Find(&photos).Error
	if err != nil {
		return nil, err
	}
	return photos, nil
}

func (r *PhotoRepository) CountBySubmission(ctx context.Context, submissionID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Photo{}).
		Where("submission_id = ?", submissionID).
		Count(&count).Error
	return count, err
}

func (r *PhotoRepository) DeletePhoto(ctx context.Context, photo *db_models.Photo) error {
	return r.db.WithContext(ctx).Delete(photo).Error
}
