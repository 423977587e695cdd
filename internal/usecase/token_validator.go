package usecase

import (
	"repaircoin/internal/domain/actor"
	"repaircoin/internal/pkg/errs"
	"repaircoin/internal/pkg/jwt"
)

var ErrInvalidToken = errs.New("invalid or expired token")

// TokenValidator resolves a bearer token to its authenticated subject.
type TokenValidator interface {
	Validate(tokenString string) (subject string, role actor.Role, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) Validate(tokenString string) (string, actor.Role, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", "", errs.Mark(err, ErrInvalidToken)
	}
	role, err := actor.NewRole(claims.Role)
	if err != nil {
		return "", "", errs.Mark(err, ErrInvalidToken)
	}
	return claims.Subject, role, nil
}
