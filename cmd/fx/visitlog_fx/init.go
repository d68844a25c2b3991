package visitlog_fx

import (
	"go.uber.org/fx"

	"bukutamu/internal/repositories"
	"bukutamu/internal/services"
)

var Module = fx.Options(
	fx.Provide(repositories.NewReceptionLogRepository),
	fx.Provide(services.NewScheduleService),
	fx.Provide(services.NewHistoryService),
)
