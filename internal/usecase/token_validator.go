package usecase

import (
	"studio-agenda/internal/pkg/errs"
	"studio-agenda/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (studentID string, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

// ValidateToken only checks signature and expiry; the backend stays the authority on the session.
func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", errs.Mark(err, errs.ErrAuth)
	}
	return claims.StudentID(), nil
}
