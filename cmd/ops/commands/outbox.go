package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"workspace-booking/internal/infra/pgq"
	"workspace-booking/internal/infra/readstore"
	"workspace-booking/internal/infra/repository"
	"workspace-booking/internal/pkg/config"
	"workspace-booking/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func newOutboxCommand() *cobra.Command {
	var topic string

	cmd := &cobra.Command{
		Use:   "outbox",
		Args:  cobra.NoArgs,
		Short: "List queued notification jobs as JSON lines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, _ config.Config, pool *pgxpool.Pool) error {
				jobs, err := readstore.NewNotificationReadStore(pgq.New(), pool).ListByTopic(ctx, topic)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				for _, job := range jobs {
					if err := enc.Encode(job); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&topic, "topic", commands.NotificationBookingCreated, "notification topic")
	return cmd
}

func newPruneIdempotencyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prune-idempotency",
		Args:  cobra.NoArgs,
		Short: "Delete expired idempotency keys",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, _ config.Config, pool *pgxpool.Pool) error {
				deleted, err := repository.NewIdempotencyRepository(pgq.New(), pool).DeleteExpired(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %d expired idempotency keys\n", deleted)
				return nil
			})
		},
	}
}
