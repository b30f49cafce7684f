package usecase

import (
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/pkg/jwt"
)

var ErrUnknownRole = errs.New("unknown role")

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (subject, role string, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	if claims.Role != jwt.RoleAdmin {
		return "", "", errs.Wrapf(ErrUnknownRole, "role %q", claims.Role)
	}

	return claims.Subject, claims.Role, nil
}
