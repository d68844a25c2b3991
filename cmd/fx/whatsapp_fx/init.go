package whatsapp_fx

import (
	"context"

	"go.uber.org/fx"

	"bukutamu/internal/services"
)

var Module = fx.Options(
	fx.Provide(services.WAHAConfigFromEnv),
	fx.Provide(services.NewWhatsAppService),
	fx.Provide(services.NewNotifier),
	fx.Provide(func(n *services.Notifier) services.NotifierInterface { return n }),
	fx.Invoke(runNotifier),
)

// runNotifier keeps the host-notification worker alive for the lifetime of
// the app so check-ins never wait on the WhatsApp gateway.
func runNotifier(lc fx.Lifecycle, notifier *services.Notifier) {
	workerCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go notifier.Run(workerCtx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			return nil
		},
	})
}
