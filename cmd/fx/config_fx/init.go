package config_fx

import (
	"go.uber.org/fx"

	"gymfit/internal/config"
)

var Module = fx.Provide(config.Load)
