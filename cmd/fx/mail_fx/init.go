package mail_fx

import (
	"go.uber.org/fx"

	"studiointake/internal/config"
	"studiointake/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config) services.MailServiceInterface {
	return services.NewSMTPMailService(cfg.SMTP)
}
