package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"

	mem "gymfit/pkg/memcache"
)

const purgeEvery = 10 * time.Minute

var Module = fx.Provide(provideResetTokens)

func provideResetTokens(lc fx.Lifecycle) mem.ResetTokenStore {
	store := mem.NewResetTokens()
	stop := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(purgeEvery)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						store.Purge()
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			close(stop)
			return nil
		},
	})
	return store
}
