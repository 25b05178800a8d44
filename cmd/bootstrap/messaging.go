package bootstrap

import (
	"context"
	"log/slog"

	"turfbook/internal/infra/messaging"
	"turfbook/internal/pkg/config"
	"turfbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher connects to the broker only when the outbox relay runs.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (commands.EventPublisher, error) {
	if !cfg.Outbox.Enabled {
		return messaging.NewLogPublisher(logger), nil
	}

	pub, err := messaging.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
