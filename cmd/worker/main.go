package main

import (
	"context"
	"errors"
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymfit/cmd/fx/config_fx"
	"gymfit/cmd/fx/db_fx"
	"gymfit/internal/config"
	"gymfit/internal/queue"
	"gymfit/internal/repositories"
	"gymfit/internal/services"
)

// The worker turns domain events from the broker into admin notifications.
func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		fx.Provide(provideNotificationService),
		fx.Invoke(StartConsumer),
	)

	app.Run()
}

func provideNotificationService(db *gorm.DB) services.NotificationService {
	return services.NewNotificationService(repositories.NewNotificationRepository(db))
}

func StartConsumer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, notifications services.NotificationService) {
	if cfg.RabbitMQURL == "" {
		log.Fatal("RABBITMQ_URL is required for the worker")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				log.Printf("Consuming events from %s", cfg.EventQueue)
				err := queue.Consume(ctx, cfg.RabbitMQURL, cfg.EventQueue, notifications.FromEvent)
				if err != nil && !errors.Is(err, context.Canceled) {
					log.Printf("Event consumer stopped: %v", err)
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			log.Println("Event consumer stopped")
			return nil
		},
	})
}
