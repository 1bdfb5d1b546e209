package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"studiointake/internal/models/db_models"
)

type AccessCodeRepositoryInterface interface {
	CreateCode(ctx context.Context, code *db_models.AccessCode) error
	GetByCode(ctx context.Context, code string) (*db_models.AccessCode, error)
	ListCodes(ctx context.Context) ([]db_models.AccessCode, error)
	SaveCode(ctx context.Context, code *db_models.AccessCode) error
}

type AccessCodeRepository struct {
	db *gorm.DB
}

func NewAccessCodeRepository(db *gorm.DB) AccessCodeRepositoryInterface {
	return &AccessCodeRepository{db: db}
}

func (r *AccessCodeRepository) CreateCode(ctx context.Context, code *db_models.AccessCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *AccessCodeRepository) GetByCode(ctx context.Context, code string) (*db_models.AccessCode, error) {
	var record db_models.AccessCode
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *AccessCodeRepository) ListCodes(ctx context.Context) ([]db_models.AccessCode, error) {
	var codes []db_models.AccessCode
	err := r.db.WithContext(ctx).Order("id DESC").Find(&codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *AccessCodeRepository) SaveCode(ctx context.Context, code *db_models.AccessCode) error {
	return r.db.WithContext(ctx).Save(code).Error
}
