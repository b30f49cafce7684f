package bootstrap

import (
	"context"
	"log/slog"

	"workspace-booking/internal/infra/cache"
	"workspace-booking/internal/infra/readstore"
	"workspace-booking/internal/pkg/config"
	"workspace-booking/internal/usecase/commands"
	"workspace-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCatalog,
	),
)

type Catalog struct {
	fx.Out

	Store       queries.OfficeReadStore
	Invalidator commands.CatalogInvalidator
}

// NewCatalog puts the Redis catalog cache in front of the office read store
// when REDIS_ADDR is set, and serves straight from Postgres otherwise.
func NewCatalog(lc fx.Lifecycle, cfg config.Config, store *readstore.OfficeReadStore) (Catalog, error) {
	if !cfg.Cache.Enabled() {
		slog.Info("catalog cache disabled")
		return Catalog{Store: store, Invalidator: cache.NoopInvalidator{}}, nil
	}

	client, cleanup, err := cache.Connect(context.Background(), cfg.Cache)
	if err != nil {
		return Catalog{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	catalog := cache.NewCatalogCache(client, store, cfg.Cache.CatalogTTL)
	slog.Info("catalog cache enabled", "addr", cfg.Cache.Addr, "ttl", cfg.Cache.CatalogTTL)
	return Catalog{Store: catalog, Invalidator: catalog}, nil
}
