package controllers_fx

import (
	"go.uber.org/fx"

	"bukutamu/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewGuestsController),
	fx.Provide(controllers.NewRecipientsController),
	fx.Provide(controllers.NewVisitsController),
	fx.Provide(controllers.NewWhatsAppController),
	fx.Provide(controllers.NewAuthController),
)
