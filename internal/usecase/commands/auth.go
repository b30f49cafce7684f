package commands

import (
	"context"
	"crypto/subtle"
	"time"

	"workspace-booking/internal/pkg/config"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/pkg/jwt"
	"workspace-booking/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	AccessToken string
	ExpiresIn   time.Duration
}

type TokenIssuer interface {
	GenerateAccessToken(subject, role string) (string, error)
	AccessTokenDuration() time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, username, pass string) (*LoginResult, error)
}

type authCommandsImpl struct {
	admin  config.AdminConfig
	tokens TokenIssuer
}

func NewAuthCommands(admin config.AdminConfig, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		admin:  admin,
		tokens: tokens,
	}
}

// Login checks the single configured back-office account.
func (a *authCommandsImpl) Login(_ context.Context, username, pass string) (*LoginResult, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.admin.Username)) == 1
	// bcrypt runs even for an unknown username.
	passErr := password.ComparePassword(a.admin.PasswordHash, pass)
	if !userOK || passErr != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateAccessToken(a.admin.Username, jwt.RoleAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   a.tokens.AccessTokenDuration(),
	}, nil
}
