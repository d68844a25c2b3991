package guest_fx

import (
	"go.uber.org/fx"

	"bukutamu/internal/repositories"
	"bukutamu/internal/services"
)

var Module = fx.Options(
	fx.Provide(repositories.NewGuestRepository),
	fx.Provide(services.NewGuestService),
	fx.Provide(services.NewCheckinService),
)
