package commands

import (
	"context"
	"fmt"

	"workspace-booking/internal/infra/db"
	"workspace-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	var migrationsPath string

	cmd := &cobra.Command{
		Use:     "migrate",
		Args:    cobra.NoArgs,
		Aliases: []string{"m"},
		Short:   "Apply pending SQL migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, _ config.Config, pool *pgxpool.Pool) error {
				applied, err := db.Migrate(ctx, pool, migrationsPath)
				if err != nil {
					return err
				}
				if len(applied) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
					return nil
				}
				for _, v := range applied {
					fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", v)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&migrationsPath, "path", "p", "migrations", "migrations directory path")
	return cmd
}
