package survey_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"studiointake/internal/config"
	"studiointake/internal/repositories"
	"studiointake/internal/services"
)

var Module = fx.Provide(
	provideSubmissionRepo, provideNotificationService, provideSurveyService)

func provideSubmissionRepo(db *gorm.DB) repositories.SubmissionRepositoryInterface {
	return repositories.NewSubmissionRepository(db)
}

func provideNotificationService(
	submissionRepo repositories.SubmissionRepositoryInterface,
	codeRepo repositories.AccessCodeRepositoryInterface,
	photoRepo repositories.PhotoRepositoryInterface,
	mailService services.MailServiceInterface,
	cfg *config.Config,
	logger *zap.Logger,
) services.NotificationServiceInterface {
	return services.NewNotificationService(
		submissionRepo, codeRepo, photoRepo, mailService, cfg, services.SurveyQuestions, logger)
}

func provideSurveyService(
	submissionRepo repositories.SubmissionRepositoryInterface,
	photoRepo repositories.PhotoRepositoryInterface,
	codeService services.AccessCodeServiceInterface,
	notifier services.NotificationServiceInterface,
	logger *zap.Logger,
) services.SurveyServiceInterface {
	return services.NewSurveyService(submissionRepo, photoRepo, codeService, notifier, logger)
}
