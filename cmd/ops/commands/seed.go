package commands

import (
	"context"
	"fmt"

	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/infra/cache"
	"workspace-booking/internal/infra/pgq"
	"workspace-booking/internal/infra/readstore"
	"workspace-booking/internal/infra/seed"
	"workspace-booking/internal/infra/uow"
	"workspace-booking/internal/pkg/config"
	"workspace-booking/internal/usecase/commands"
	"workspace-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Args:  cobra.NoArgs,
		Short: "Insert the reference office catalog into an empty database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, cfg config.Config, pool *pgxpool.Pool) error {
				q := pgq.New()
				store := readstore.NewOfficeReadStore(q, pool)

				invalidator, closeCache, err := catalogInvalidator(ctx, cfg, store)
				if err != nil {
					return err
				}
				defer closeCache()

				officeCmds := commands.NewOfficeCommands(
					uow.NewPostgresUoW(pool, q),
					queries.NewOfficeQueries(store, booking.NewDefaultPriceCalculator()),
					invalidator,
				)

				result, err := officeCmds.Seed(ctx, seed.Offices())
				if err != nil {
					return err
				}
				if result.Skipped {
					fmt.Fprintln(cmd.OutOrStdout(), "offices table is not empty; nothing seeded")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %d offices\n", result.Inserted)
				return nil
			})
		},
	}
}

func catalogInvalidator(ctx context.Context, cfg config.Config, store cache.OfficeSource) (commands.CatalogInvalidator, func(), error) {
	if !cfg.Cache.Enabled() {
		return cache.NoopInvalidator{}, func() {}, nil
	}
	client, cleanup, err := cache.Connect(ctx, cfg.Cache)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewCatalogCache(client, store, cfg.Cache.CatalogTTL), cleanup, nil
}
