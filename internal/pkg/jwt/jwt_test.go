//go:build unit

package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	newService := func() *Service {
		s := NewService("secret", time.Hour, "workspace-booking")
		s.now = func() time.Time { return now }
		return s
	}

	t.Run("round trip", func(t *testing.T) {
		s := newService()
		token, err := s.GenerateAccessToken("admin", RoleAdmin)
		require.NoError(t, err)

		claims, err := s.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Subject)
		assert.Equal(t, RoleAdmin, claims.Role)
		assert.WithinDuration(t, now.Add(time.Hour), claims.ExpiresAt.Time, 0)
	})

	t.Run("expired token", func(t *testing.T) {
		s := newService()
		token, err := s.GenerateAccessToken("admin", RoleAdmin)
		require.NoError(t, err)

		s.now = func() time.Time { return now.Add(2 * time.Hour) }
		_, err = s.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := newService().GenerateAccessToken("admin", RoleAdmin)
		require.NoError(t, err)

		other := NewService("other-secret", time.Hour, "workspace-booking")
		other.now = func() time.Time { return now }
		_, err = other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := newService().GenerateAccessToken("admin", RoleAdmin)
		require.NoError(t, err)

		other := NewService("secret", time.Hour, "someone-else")
		other.now = func() time.Time { return now }
		_, err = other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("non-HMAC signing method is rejected", func(t *testing.T) {
		unsigned := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{Role: RoleAdmin})
		token, err := unsigned.SignedString(gojwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = newService().ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := newService().ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
