package commands

import (
	"context"
	"fmt"

	"workspace-booking/internal/infra/db"
	"workspace-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the ops root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ops",
		Short:         "Operational tasks for the workspace-booking service",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newMigrateCommand(),
		newSeedCommand(),
		newHashPasswordCommand(),
		newTokenCommand(),
		newOutboxCommand(),
		newPruneIdempotencyCommand(),
	)

	return rootCmd
}

// withPool loads the full config and hands fn an open pool.
func withPool(ctx context.Context, fn func(ctx context.Context, cfg config.Config, pool *pgxpool.Pool) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer cleanup()

	return fn(ctx, cfg, pool)
}
