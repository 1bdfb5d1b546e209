package services

import (
	"context"
	"fmt"

	"studiointake/internal/models/db_models"
	"studiointake/internal/repositories"
	"studiointake/pkg/utils"
)

const codeGenerationAttempts = 5

type AccessCodeServiceInterface interface {
	CreateCode(ctx context.Context, architectEmail string) (*db_models.AccessCode, error)
	ToggleCode(ctx context.Context, code string) (*db_models.AccessCode, error)
	ListCodes(ctx context.Context) ([]db_models.AccessCode, error)
	// ValidateForRedemption returns the code record if it exists and is
	// active, and (nil, nil) otherwise. An invalid code is a user-facing
	// message, not an error path.
	ValidateForRedemption(ctx context.Context, code string) (*db_models.AccessCode, error)
}

type AccessCodeService struct {
	codeRepo repositories.AccessCodeRepositoryInterface
}

func NewAccessCodeService(codeRepo repositories.AccessCodeRepositoryInterface) AccessCodeServiceInterface {
	return &AccessCodeService{codeRepo: codeRepo}
}

func (s *AccessCodeService) CreateCode(ctx context.Context, architectEmail string) (*db_models.AccessCode, error) {
	for attempt := 0; attempt < codeGenerationAttempts; attempt++ {
		record := &db_models.AccessCode{
			Code:           utils.GenerateAccessCode(),
			ArchitectEmail: architectEmail,
			IsActive:       true,
		}

		existing, err := s.codeRepo.GetByCode(ctx, record.Code)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if existing != nil {
			continue
		}

		if err := s.codeRepo.CreateCode(ctx, record); err != nil {
			return nil, utils.ErrDatabaseError
		}
		return record, nil
	}

	return nil, fmt.Errorf("could not generate a unique code after %d attempts", codeGenerationAttempts)
}

func (s *AccessCodeService) ToggleCode(ctx context.Context, code string) (*db_models.AccessCode, error) {
	record, err := s.codeRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrCodeNotFound
	}

	record.IsActive = !record.IsActive
	if err := s.codeRepo.SaveCode(ctx, record); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return record, nil
}

func (s *AccessCodeService) ListCodes(ctx context.Context) ([]db_models.AccessCode, error) {
	codes, err := s.codeRepo.ListCodes(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return codes, nil
}

func (s *AccessCodeService) ValidateForRedemption(ctx context.Context, code string) (*db_models.AccessCode, error) {
	record, err := s.codeRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil || !record.IsActive {
		return nil, nil
	}
	return record, nil
}
