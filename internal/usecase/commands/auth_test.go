//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"workspace-booking/internal/pkg/config"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/pkg/jwt"
	"workspace-booking/internal/pkg/password"
	"workspace-booking/internal/usecase/commands"
	commandsmock "workspace-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := password.HashPasswordWithCost("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)
	admin := config.AdminConfig{Username: "admin", PasswordHash: hash}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := commandsmock.NewMockTokenIssuer(ctrl)
		tokens.EXPECT().GenerateAccessToken("admin", jwt.RoleAdmin).Return("signed-token", nil)
		tokens.EXPECT().AccessTokenDuration().Return(15 * time.Minute)

		result, err := commands.NewAuthCommands(admin, tokens).Login(ctx, "admin", "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.AccessToken)
		assert.Equal(t, 15*time.Minute, result.ExpiresIn)
	})

	rejected := []struct {
		name     string
		username string
		pass     string
	}{
		{name: "wrong password", username: "admin", pass: "nope"},
		{name: "unknown user", username: "root", pass: "s3cret-pass"},
		{name: "empty password", username: "admin", pass: ""},
		{name: "username differs by case", username: "Admin", pass: "s3cret-pass"},
	}
	for _, tc := range rejected {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tokens := commandsmock.NewMockTokenIssuer(ctrl)

			result, err := commands.NewAuthCommands(admin, tokens).Login(ctx, tc.username, tc.pass)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errs.Is(err, commands.ErrInvalidCredentials))
		})
	}

	t.Run("token failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := commandsmock.NewMockTokenIssuer(ctrl)
		tokens.EXPECT().GenerateAccessToken("admin", jwt.RoleAdmin).Return("", errors.New("signing failed"))

		_, err := commands.NewAuthCommands(admin, tokens).Login(ctx, "admin", "s3cret-pass")
		assert.True(t, errs.Is(err, commands.ErrTokenGeneration))
	})
}
