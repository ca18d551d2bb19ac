package service

import (
	"context"

	"vitrine-backend/internal/domains/auth/model"
	"vitrine-backend/pkg/jwt"
)

type ServiceInterface interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
