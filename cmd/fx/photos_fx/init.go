package photos_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"studiointake/internal/config"
	"studiointake/internal/repositories"
	"studiointake/internal/services"
)

var Module = fx.Provide(
	providePhotoRepo, providePhotoService)

func providePhotoRepo(db *gorm.DB) repositories.PhotoRepositoryInterface {
	return repositories.NewPhotoRepository(db)
}

func providePhotoService(
	photoRepo repositories.PhotoRepositoryInterface,
	submissionRepo repositories.SubmissionRepositoryInterface,
	cfg *config.Config,
	logger *zap.Logger,
) services.PhotoServiceInterface {
	return services.NewPhotoService(photoRepo, submissionRepo, cfg.UploadDir, logger)
}
