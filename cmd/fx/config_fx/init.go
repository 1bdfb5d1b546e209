package config_fx

import (
	"go.uber.org/fx"

	"studiointake/internal/config"
)

var Module = fx.Provide(config.Load)
