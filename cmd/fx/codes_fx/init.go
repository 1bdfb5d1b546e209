package codes_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"studiointake/internal/repositories"
	"studiointake/internal/services"
)

var Module = fx.Provide(
	provideAccessCodeRepo, provideAccessCodeService)

func provideAccessCodeRepo(db *gorm.DB) repositories.AccessCodeRepositoryInterface {
	return repositories.NewAccessCodeRepository(db)
}

func provideAccessCodeService(codeRepo repositories.AccessCodeRepositoryInterface) services.AccessCodeServiceInterface {
	return services.NewAccessCodeService(codeRepo)
}
