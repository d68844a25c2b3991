package auth_fx

import (
	"go.uber.org/fx"

	"bukutamu/internal/services"
)

var Module = fx.Options(
	fx.Provide(services.NewAuthService),
)
