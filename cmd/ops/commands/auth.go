package commands

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"workspace-booking/internal/pkg/config"
	"workspace-booking/internal/pkg/jwt"
	"workspace-booking/internal/pkg/password"

	"github.com/spf13/cobra"
)

func newHashPasswordCommand() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Long:  "Print a bcrypt hash for ADMIN_PASSWORD_HASH. Without an argument the password is read from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var plain string
			if len(args) == 1 {
				plain = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password: %w", err)
				}
				plain = strings.TrimRight(line, "\r\n")
			}

			hash, err := password.HashPasswordWithCost(plain, cost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	cmd.Flags().IntVar(&cost, "cost", password.DefaultCost, "bcrypt cost")
	return cmd
}

func newTokenCommand() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Args:  cobra.NoArgs,
		Short: "Print an admin access token signed with JWT_SECRET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			jwtCfg, err := config.LoadJWTConfig()
			if err != nil {
				return err
			}

			duration := ttl
			if duration <= 0 {
				duration, err = time.ParseDuration(jwtCfg.AccessTokenDuration)
				if err != nil {
					return fmt.Errorf("invalid JWT_ACCESS_TOKEN_DURATION: %w", err)
				}
			}

			token, err := jwt.NewService(jwtCfg.Secret, duration, jwtCfg.Issuer).GenerateAccessToken(subject, jwt.RoleAdmin)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "admin", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to JWT_ACCESS_TOKEN_DURATION)")
	return cmd
}
