package infra

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"gymfit/internal/config"
)

// NewRedisClient returns nil when no address is configured or the server
// does not answer; callers treat nil as "feature disabled".
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		log.Println("REDIS_ADDR not set, rate limiting disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable at %s: %v", cfg.Redis.Addr, err)
		_ = client.Close()
		return nil
	}
	return client
}
