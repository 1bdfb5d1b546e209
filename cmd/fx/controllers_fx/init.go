package controllers_fx

import (
	"go.uber.org/fx"

	"studiointake/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewFounderController),
	fx.Provide(controllers.NewClientController))
