package bootstrap

import (
	"context"
	"log/slog"

	"majestic-manor/internal/infra/events"
	"majestic-manor/internal/pkg/config"
	"majestic-manor/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		fx.Annotate(
			NewEventPublisher,
			fx.As(new(commands.EventPublisher)),
		),
	),
)

// NewEventPublisher connects to the broker when configured; without an AMQP
// URL it yields a nil publisher, which silently drops events.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) *events.Publisher {
	if cfg.AMQP.URL == "" {
		return nil
	}

	pub, err := events.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		// Events are best effort; a dead broker must not block startup.
		slog.Warn("event publisher disabled", "error", err.Error())
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})

	return pub
}
