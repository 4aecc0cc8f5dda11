package redis_fx

import (
	"go.uber.org/fx"

	"gymfit/internal/infra"
)

var Module = fx.Provide(infra.NewRedisClient)
