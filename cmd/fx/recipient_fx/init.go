package recipient_fx

import (
	"go.uber.org/fx"

	"bukutamu/internal/repositories"
	"bukutamu/internal/services"
)

var Module = fx.Options(
	fx.Provide(repositories.NewRecipientRepository),
	fx.Provide(services.NewRecipientService),
)
