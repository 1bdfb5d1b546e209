package logger_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"studiointake/internal/config"
	"studiointake/pkg/logger"
)

var Module = fx.Provide(provideLogger)

func provideLogger(cfg *config.Config) *zap.Logger {
	return logger.New(cfg.Environment)
}
