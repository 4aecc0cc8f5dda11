package queue_fx

import (
	"context"

	"go.uber.org/fx"

	"gymfit/internal/config"
	"gymfit/internal/queue"
)

var Module = fx.Provide(providePublisher)

func providePublisher(lc fx.Lifecycle, cfg *config.Config) queue.Publisher {
	pub := queue.NewPublisher(cfg.RabbitMQURL, cfg.EventQueue)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return pub.Close()
		},
	})
	return pub
}
