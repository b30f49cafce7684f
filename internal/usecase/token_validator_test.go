//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/pkg/jwt"
	"workspace-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	service := jwt.NewService("validator-test-secret", time.Minute, "workspace-booking-test")
	validator := usecase.NewTokenValidator(service)

	t.Run("admin token", func(t *testing.T) {
		token, err := service.GenerateAccessToken("admin", jwt.RoleAdmin)
		require.NoError(t, err)

		subject, role, err := validator.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", subject)
		assert.Equal(t, jwt.RoleAdmin, role)
	})

	t.Run("other role is rejected", func(t *testing.T) {
		token, err := service.GenerateAccessToken("guest", "viewer")
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		require.Error(t, err)
		assert.True(t, errs.Is(err, usecase.ErrUnknownRole))
	})

	t.Run("token from another secret", func(t *testing.T) {
		other := jwt.NewService("some-other-secret", time.Minute, "workspace-booking-test")
		token, err := other.GenerateAccessToken("admin", jwt.RoleAdmin)
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, _, err := validator.ValidateToken("not.a.token")
		assert.Error(t, err)
	})
}
